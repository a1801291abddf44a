// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-nas-keeper/internal/app"
	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/utils"
)

// Reader defaults used when [Options] leaves a field zero.
const (
	DefaultPollInterval = 100 * time.Millisecond
	DefaultChunkSize    = 4096
)

var errNoChannel = errors.New("channel factory returned no channel")

// closedDone is returned by Done when no reader was ever started.
var closedDone = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// Options configures a [Session].
type Options struct {
	// Target names the remote end in connect messages, e.g. "192.168.1.10".
	Target string
	// PollInterval is how long the reader waits when no data is ready. It
	// also bounds how long Shutdown waits for the reader to notice the stop.
	PollInterval time.Duration
	// ChunkSize is the read buffer size.
	ChunkSize int
	// Recorder, if set, receives every command appended to the history.
	Recorder HistoryRecorder
	Logger   *logger.Logger
}

// link is one open channel and the lifecycle of the reader attached to it.
type link struct {
	ch        Channel
	stop      chan struct{}
	stopOnce  sync.Once
	closeOnce sync.Once
	done      chan struct{}
	// cause is why the reader was asked to stop; guarded by Session.mu.
	cause error
}

func (l *link) signal() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *link) close() (err error) {
	l.closeOnce.Do(func() { err = l.ch.Close() })
	return err
}

// Session is an interactive shell over a [Channel]. Methods are safe for
// concurrent use. Once shut down, a Session cannot connect again.
type Session struct {
	id   string
	opts Options
	sink OutputSink
	log  *logger.Logger

	// mu guards everything below it up to sinkMu. It is never held across
	// channel I/O or sink calls.
	mu      sync.Mutex
	state   State
	link    *link
	history *History
	err     error
	closed  bool
	// prompt is the unfinished last line of output.
	prompt string

	// sinkMu serialises sink calls so that Shutdown can cut them off.
	sinkMu sync.Mutex
	quiet  bool

	// shutdownDone is closed once the first Shutdown has finished.
	shutdownDone chan struct{}

	// writeMu serialises Channel.Write. Reads never take it.
	writeMu sync.Mutex
}

// NewSession creates a disconnected session that reports output to sink.
func NewSession(sink OutputSink, opts Options) *Session {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	id := utils.NewID()
	return &Session{
		id:      id,
		opts:    opts,
		sink:    sink,
		log:     opts.Logger.WithSession(id),
		history: NewHistory(),

		shutdownDone: make(chan struct{}),
	}
}

// Connect opens a channel with factory and starts the background reader.
// Progress and failure are written to the sink; the failure is also
// returned.
func (s *Session) Connect(ctx context.Context, factory ChannelFactory) error {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return ErrSessionClosed
	case s.state != Disconnected:
		s.mu.Unlock()
		return ErrAlreadyConnected
	}
	s.state = Connecting
	s.mu.Unlock()

	s.emit(fmt.Sprintf(app.MsgAttemptingConnect, s.opts.Target))

	ch, err := factory(utils.WithSessionID(ctx, s.id))
	if err == nil && ch == nil {
		err = errNoChannel
	}
	if err != nil {
		s.setState(Disconnected)
		s.emit(fmt.Sprintf(app.MsgConnectionFailed, err))
		s.log.Err(err).Str("func", "Session.Connect").Str("target", s.opts.Target).Msg("connection failed")
		return fmt.Errorf("connect to %s: %w", s.opts.Target, err)
	}

	l := &link{
		ch:   ch,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	s.mu.Lock()
	if s.closed {
		s.state = Disconnected
		s.mu.Unlock()
		_ = ch.Close()
		return ErrSessionClosed
	}
	s.link = l
	s.state = Connected
	s.err = nil
	s.mu.Unlock()

	s.emit(app.MsgConnected)
	s.log.Info().Str("func", "Session.Connect").Str("target", s.opts.Target).Msg("shell connected")

	go s.readLoop(l)

	return nil
}

func (s *Session) readLoop(l *link) {
	var reason error
	defer func() {
		_ = l.close()

		s.mu.Lock()
		if reason == nil {
			reason = l.cause
		}
		s.err = reason
		if s.link == l {
			s.state = Disconnected
		}
		s.mu.Unlock()

		close(l.done)
	}()

	sanitizer := NewSanitizer()
	buf := make([]byte, s.opts.ChunkSize)
	idle := time.NewTimer(s.opts.PollInterval)
	defer idle.Stop()

	for {
		select {
		case <-l.stop:
			return
		default:
		}

		n := 0
		var err error
		if l.ch.Ready() {
			n, err = l.ch.Read(buf)
		}
		if n > 0 {
			s.output(sanitizer.Feed(buf[:n]))
		}
		if err != nil {
			s.output(sanitizer.Flush())
			s.emit(app.MsgDisconnected)
			s.log.Info().Err(err).Str("func", "Session.readLoop").Msg("shell channel closed")
			reason = err
			return
		}
		if n > 0 {
			continue
		}

		idle.Reset(s.opts.PollInterval)
		select {
		case <-l.stop:
			return
		case <-idle.C:
		}
	}
}

// Submit trims command, records it in the history and sends it followed by
// a newline. It does nothing unless the session is connected. A reply to a
// password or passphrase prompt is sent but never recorded.
func (s *Session) Submit(command string) {
	command = strings.TrimSpace(command)

	s.mu.Lock()
	if s.state != Connected || s.link == nil {
		s.mu.Unlock()
		return
	}
	l := s.link
	secret := IsSecretPrompt(s.prompt)
	s.prompt = ""
	added := false
	if secret {
		s.history.Add("")
	} else {
		added = s.history.Add(command)
	}
	s.mu.Unlock()

	if added && s.opts.Recorder != nil {
		s.opts.Recorder.Record(command)
	}

	s.writeMu.Lock()
	_, err := l.ch.Write([]byte(command + "\n"))
	s.writeMu.Unlock()

	if err != nil {
		s.emit(app.MsgErrorDisconnected)
		s.log.Err(err).Str("func", "Session.Submit").Msg("failed to write command")

		s.mu.Lock()
		if l.cause == nil {
			l.cause = fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		s.mu.Unlock()
		l.signal()
	}
}

// RecallPrevious moves the history cursor back. ok is false, and nothing
// changes, unless the session is connected.
func (s *Session) RecallPrevious() (command string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Connected {
		return "", false
	}
	return s.history.Previous(), true
}

// RecallNext moves the history cursor forward; past the newest entry it
// yields "". ok is false unless the session is connected.
func (s *Session) RecallNext() (command string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Connected {
		return "", false
	}
	return s.history.Next(), true
}

// LoadHistory replaces the history, e.g. with commands persisted by an
// earlier run.
func (s *Session) LoadHistory(commands []string) {
	s.mu.Lock()
	s.history.Load(commands)
	s.mu.Unlock()
}

// History returns a copy of the command history, oldest first.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// Shutdown stops the reader, waits for it to exit and closes the channel.
// It is idempotent and safe in any state. Once any call returns the sink
// receives nothing more; concurrent callers wait for the first one.
func (s *Session) Shutdown() {
	s.mu.Lock()
	first := !s.closed
	s.closed = true
	l := s.link
	wasConnected := s.state == Connected
	s.mu.Unlock()

	if !first {
		<-s.shutdownDone
		return
	}
	defer close(s.shutdownDone)

	s.sinkMu.Lock()
	s.quiet = true
	s.sinkMu.Unlock()

	if l != nil {
		l.signal()
		<-l.done
		_ = l.close()
	}

	if wasConnected {
		s.sinkMu.Lock()
		s.sink.AppendText(app.MsgDisconnected)
		s.sinkMu.Unlock()
		s.log.Info().Str("func", "Session.Shutdown").Msg("shell session shut down")
	}
}

// State returns the current connection state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done is closed when the reader of the current connection has exited. It
// is already closed if the session never connected.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.link == nil {
		return closedDone
	}
	return s.link.done
}

// Err reports why the last connection ended: io.EOF for a remote close, the
// read error, an error wrapping [ErrWriteFailed], or nil after Shutdown.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// output tracks the prompt line and then delivers text to the sink.
func (s *Session) output(text string) {
	if text == "" {
		return
	}
	s.mu.Lock()
	s.prompt = promptTail(s.prompt, text)
	s.mu.Unlock()
	s.emit(text)
}

func (s *Session) emit(text string) {
	if text == "" {
		return
	}
	s.sinkMu.Lock()
	defer s.sinkMu.Unlock()
	if s.quiet {
		return
	}
	s.sink.AppendText(text)
}
