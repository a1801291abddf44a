package terminal

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

var (
	// csiSequence matches a complete ECMA-48 control sequence.
	csiSequence = regexp.MustCompile("\x1b\\[[0-?]*[ -/]*[@-~]")

	// csiPrefix matches text that can still grow into a control sequence.
	csiPrefix = regexp.MustCompile("\x1b(\\[[0-?]*[ -/]*)?$")
)

// maxEscapeCarry bounds how much of an unterminated escape sequence is held
// back. Longer runs are not a sequence any real terminal emits.
const maxEscapeCarry = 64

// Sanitizer turns raw channel chunks into printable text. It carries
// incomplete UTF-8 runes and unterminated CSI sequences over to the next
// chunk so that splitting the stream at any byte yields the same output.
// A Sanitizer is owned by a single reader goroutine.
type Sanitizer struct {
	decoder *encoding.Decoder
	pending []byte
	carry   string
}

// NewSanitizer returns a Sanitizer whose decoder replaces invalid UTF-8 with
// U+FFFD.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{decoder: unicode.UTF8.NewDecoder()}
}

// Feed consumes chunk and returns the cleaned text that is complete so far.
func (s *Sanitizer) Feed(chunk []byte) string {
	data := append(s.pending, chunk...)
	cut := len(data) - incompleteTail(data)
	s.pending = append([]byte(nil), data[cut:]...)

	return s.clean(s.decode(data[:cut]), false)
}

// Flush returns whatever is still held back, treating the stream as ended:
// a dangling partial rune becomes U+FFFD and an unterminated escape is
// dropped.
func (s *Sanitizer) Flush() string {
	text := s.decode(s.pending)
	s.pending = nil
	return s.clean(text, true)
}

func (s *Sanitizer) decode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out, err := s.decoder.Bytes(b)
	if err != nil {
		// the UTF-8 decoder replaces instead of failing
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}

func (s *Sanitizer) clean(text string, atEOF bool) string {
	text = s.carry + text
	s.carry = ""

	if !atEOF {
		if loc := csiPrefix.FindStringIndex(text); loc != nil && len(text)-loc[0] <= maxEscapeCarry {
			s.carry = text[loc[0]:]
			text = text[:loc[0]]
		}
	} else if loc := csiPrefix.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}

	return StripANSI(text)
}

// StripANSI removes every complete CSI sequence from text.
func StripANSI(text string) string {
	if !strings.Contains(text, "\x1b") {
		return text
	}
	return csiSequence.ReplaceAllString(text, "")
}

// incompleteTail returns how many trailing bytes of b form the start of a
// multi-byte rune that is not yet complete.
func incompleteTail(b []byte) int {
	for i := 1; i <= utf8.UTFMax-1 && i <= len(b); i++ {
		c := b[len(b)-i]
		if utf8.RuneStart(c) {
			if utf8.FullRune(b[len(b)-i:]) {
				return 0
			}
			return i
		}
	}
	return 0
}
