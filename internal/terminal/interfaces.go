package terminal

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/terminal_mock.go -package=mock

// Channel is a bidirectional byte stream to a remote shell.
type Channel interface {
	// Ready reports whether Read can return data without blocking.
	Ready() bool
	// Read returns up to len(p) bytes. io.EOF means the remote side closed.
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	// Close releases the channel. It must be safe to call more than once.
	Close() error
}

// ChannelFactory opens a channel. It blocks until the channel is usable or
// the attempt fails.
type ChannelFactory func(ctx context.Context) (Channel, error)

// OutputSink receives decoded, cleaned text in arrival order. AppendText
// must not block for long: it is called from the reader goroutine.
type OutputSink interface {
	AppendText(text string)
}

// HistoryRecorder receives every command added to a session history.
// Record must not block.
type HistoryRecorder interface {
	Record(command string)
}
