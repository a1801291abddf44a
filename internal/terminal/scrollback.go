package terminal

import (
	"sync"
	"unicode/utf8"
)

// DefaultScrollbackSize is the default maximum scrollback size (1 MB).
const DefaultScrollbackSize = 1024 * 1024

// Scrollback is a thread-safe [OutputSink] that keeps the most recent
// session output for display. When the text exceeds maxLen, older text is
// trimmed from the front on a rune boundary.
type Scrollback struct {
	mu      sync.Mutex
	data    []byte
	drained int // bytes of data already returned by Drain
	maxLen  int
	closed  bool
	notify  chan struct{} // signaled (non-blocking) when new text arrives
}

// NewScrollback creates a scrollback with the given maximum size.
// If maxLen <= 0, DefaultScrollbackSize is used.
func NewScrollback(maxLen int) *Scrollback {
	if maxLen <= 0 {
		maxLen = DefaultScrollbackSize
	}
	return &Scrollback{
		maxLen: maxLen,
		notify: make(chan struct{}, 1),
	}
}

// AppendText implements [OutputSink]. It never blocks on the consumer.
// Text appended after Close is discarded.
func (s *Scrollback) AppendText(text string) {
	if text == "" {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.data = append(s.data, text...)
	if over := len(s.data) - s.maxLen; over > 0 {
		for over < len(s.data) && !utf8.RuneStart(s.data[over]) {
			over++
		}
		s.data = s.data[over:]
		s.drained = max(0, s.drained-over)
	}
	s.mu.Unlock()

	s.signal()
}

// Drain returns the text appended since the previous Drain.
func (s *Scrollback) Drain() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := string(s.data[s.drained:])
	s.drained = len(s.data)
	return out
}

// Snapshot returns a copy of the retained text.
func (s *Scrollback) Snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.data)
}

// Len returns the retained text length in bytes.
func (s *Scrollback) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Clear drops the retained text.
func (s *Scrollback) Clear() {
	s.mu.Lock()
	s.data = nil
	s.drained = 0
	s.mu.Unlock()
}

// Close marks the scrollback as closed and signals readers.
func (s *Scrollback) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.signal()
}

// IsClosed returns whether the scrollback has been closed.
func (s *Scrollback) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Notify returns the channel that is signaled when new text is available.
// Readers should select on this channel and then call Drain or Snapshot.
func (s *Scrollback) Notify() <-chan struct{} {
	return s.notify
}

func (s *Scrollback) signal() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}
