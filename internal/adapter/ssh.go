// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-nas-keeper/internal/config"
	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/terminal"
	"github.com/MKhiriev/go-nas-keeper/internal/utils"
	"github.com/MKhiriev/go-nas-keeper/models"
	"golang.org/x/crypto/ssh"
)

// PTY geometry requested for every shell.
const (
	ptyRows = 24
	ptyCols = 80
)

const pumpBufferSize = 4096

type sshConnector struct {
	cfg      config.ClientAdapter
	hostKeys *hostKeyStore

	logger *logger.Logger
}

// NewSSHConnector creates an [SSHConnector] using cfg for dial timeout, PTY
// type and host key verification.
func NewSSHConnector(cfg config.ClientAdapter, logger *logger.Logger) SSHConnector {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = config.DefaultConnectTimeout
	}
	if cfg.TermType == "" {
		cfg.TermType = config.DefaultTermType
	}
	return &sshConnector{
		cfg:      cfg,
		hostKeys: newHostKeyStore(cfg.KnownHostsPath, logger),
		logger:   logger,
	}
}

func (c *sshConnector) Connect(ctx context.Context, target models.Credentials) (terminal.Channel, error) {
	client, err := c.dial(ctx, target)
	if err != nil {
		return nil, err
	}

	session, err := client.NewSession()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("create ssh session: %w", err)
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          1,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err = session.RequestPty(c.cfg.TermType, ptyRows, ptyCols, modes); err != nil {
		session.Close()
		client.Close()
		return nil, fmt.Errorf("request pty: %w", err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		client.Close()
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		client.Close()
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	if err = session.Shell(); err != nil {
		session.Close()
		client.Close()
		return nil, fmt.Errorf("start shell: %w", err)
	}

	c.logFor(ctx).Info().
		Str("func", "sshConnector.Connect").
		Str("addr", target.SSHAddress()).
		Str("user", target.Username).
		Msg("ssh shell started")

	return newSSHChannel(client, session, stdin, stdout), nil
}

func (c *sshConnector) CheckCredentials(ctx context.Context, target models.Credentials) error {
	client, err := c.dial(ctx, target)
	if err != nil {
		return err
	}
	return client.Close()
}

// dial opens the TCP connection and runs the SSH handshake. ctx and the
// configured timeout bound both steps.
func (c *sshConnector) dial(ctx context.Context, target models.Credentials) (*ssh.Client, error) {
	if !target.SSHReady() {
		return nil, ErrIncompleteCredentials
	}

	// set once the password has left the client
	var sent atomic.Bool

	addr := target.SSHAddress()
	clientCfg := &ssh.ClientConfig{
		User: target.Username,
		Auth: []ssh.AuthMethod{
			ssh.PasswordCallback(func() (string, error) {
				sent.Store(true)
				return target.Password, nil
			}),
			ssh.KeyboardInteractive(passwordChallenge(target.Password, &sent)),
		},
		HostKeyCallback: c.hostKeys.callback(),
		Timeout:         c.cfg.ConnectTimeout,
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()

	dialer := net.Dialer{Timeout: c.cfg.ConnectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	deadline, _ := ctx.Deadline()
	_ = conn.SetDeadline(deadline)
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientCfg)
	stop()
	if err != nil {
		conn.Close()
		c.logFor(ctx).Err(err).Str("func", "sshConnector.dial").Str("addr", addr).Msg("ssh handshake failed")
		if isAuthError(err) || (sent.Load() && ctx.Err() == nil && !isTimeout(err)) {
			return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
		}
		return nil, fmt.Errorf("ssh handshake with %s: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Time{})

	return ssh.NewClient(sshConn, chans, reqs), nil
}

func (c *sshConnector) logFor(ctx context.Context) *logger.Logger {
	if id, ok := utils.GetSessionIDFromContext(ctx); ok {
		return c.logger.WithSession(id)
	}
	return c.logger
}

// passwordChallenge answers every keyboard-interactive prompt with password.
// NAS firmwares commonly offer only this method.
func passwordChallenge(password string, sent *atomic.Bool) ssh.KeyboardInteractiveChallenge {
	return func(_, _ string, questions []string, _ []bool) ([]string, error) {
		if len(questions) > 0 {
			sent.Store(true)
		}
		answers := make([]string, len(questions))
		for i := range answers {
			answers[i] = password
		}
		return answers, nil
	}
}

// isAuthError matches the text x/crypto/ssh uses once every auth method is
// rejected ("ssh: unable to authenticate, attempted methods ..."). The
// package exports no sentinel for it. Servers that hang up after a rejected
// password are covered by the credentials-sent check in dial.
func isAuthError(err error) bool {
	return strings.Contains(err.Error(), "unable to authenticate")
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// sshChannel adapts an SSH shell session to [terminal.Channel]. A pump
// goroutine copies stdout into buf so that Ready and Read never block.
type sshChannel struct {
	client  *ssh.Client
	session *ssh.Session
	stdin   io.WriteCloser

	mu  sync.Mutex
	buf bytes.Buffer
	err error

	closeOnce sync.Once
	closeErr  error
}

func newSSHChannel(client *ssh.Client, session *ssh.Session, stdin io.WriteCloser, stdout io.Reader) *sshChannel {
	ch := &sshChannel{
		client:  client,
		session: session,
		stdin:   stdin,
	}
	go ch.pump(stdout)
	return ch
}

func (s *sshChannel) pump(stdout io.Reader) {
	chunk := make([]byte, pumpBufferSize)
	for {
		n, err := stdout.Read(chunk)

		s.mu.Lock()
		if n > 0 {
			s.buf.Write(chunk[:n])
		}
		if err != nil {
			s.err = err
		}
		s.mu.Unlock()

		if err != nil {
			return
		}
	}
}

func (s *sshChannel) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Len() > 0 || s.err != nil
}

func (s *sshChannel) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf.Len() > 0 {
		return s.buf.Read(p)
	}
	return 0, s.err
}

func (s *sshChannel) Write(p []byte) (int, error) {
	return s.stdin.Write(p)
}

func (s *sshChannel) Close() error {
	s.closeOnce.Do(func() {
		sessErr := s.session.Close()
		if errors.Is(sessErr, io.EOF) {
			sessErr = nil
		}
		s.closeErr = errors.Join(sessErr, s.client.Close())
	})
	return s.closeErr
}
