package terminal

import (
	"regexp"
	"strings"
)

// maxPromptTail bounds the text kept from the last unfinished output line.
const maxPromptTail = 256

// secretPrompt matches the tail of a line that asks for a secret, such as
// "[sudo] password for admin: " or "Enter passphrase for key '/id': ".
var secretPrompt = regexp.MustCompile(`(?i)(password|passphrase|passcode)[^\n]*:\s*$`)

// promptTail returns the unfinished last line after text is appended to
// tail. Only the last maxPromptTail bytes are kept.
func promptTail(tail, text string) string {
	if i := strings.LastIndexAny(text, "\r\n"); i >= 0 {
		tail = text[i+1:]
	} else {
		tail += text
	}
	if len(tail) > maxPromptTail {
		tail = tail[len(tail)-maxPromptTail:]
	}
	return tail
}

// IsSecretPrompt reports whether line ends with a password or passphrase
// prompt. A reply typed after such a prompt is kept out of the history.
func IsSecretPrompt(line string) bool {
	return secretPrompt.MatchString(line)
}
