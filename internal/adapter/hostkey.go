package adapter

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

const knownHostsPerm = 0o600

// hostKeyStore verifies host keys against a known_hosts file and records
// unknown hosts on first use.
type hostKeyStore struct {
	path string

	mu     sync.Mutex
	logger *logger.Logger
}

func newHostKeyStore(path string, logger *logger.Logger) *hostKeyStore {
	return &hostKeyStore{path: path, logger: logger}
}

// callback returns the ssh.HostKeyCallback for one dial. Without a known_hosts
// path every key is accepted.
func (h *hostKeyStore) callback() ssh.HostKeyCallback {
	if h.path == "" {
		h.logger.Warn().Str("func", "hostKeyStore.callback").Msg("no known_hosts file configured, host keys are not verified")
		return ssh.InsecureIgnoreHostKey()
	}
	return h.verify
}

func (h *hostKeyStore) verify(hostname string, remote net.Addr, key ssh.PublicKey) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ensureFile(); err != nil {
		return err
	}

	check, err := knownhosts.New(h.path)
	if err != nil {
		return fmt.Errorf("read known_hosts: %w", err)
	}

	err = check(hostname, remote, key)

	var keyErr *knownhosts.KeyError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &keyErr) && len(keyErr.Want) > 0:
		h.logger.Error().
			Str("func", "hostKeyStore.verify").
			Str("host", hostname).
			Str("fingerprint", ssh.FingerprintSHA256(key)).
			Msg("host key changed")
		return fmt.Errorf("%w for %s", ErrHostKeyMismatch, hostname)
	case errors.As(err, &keyErr):
		return h.add(hostname, key)
	default:
		return err
	}
}

func (h *hostKeyStore) add(hostname string, key ssh.PublicKey) error {
	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_WRONLY, knownHostsPerm)
	if err != nil {
		return fmt.Errorf("open known_hosts: %w", err)
	}
	defer f.Close()

	line := knownhosts.Line([]string{knownhosts.Normalize(hostname)}, key)
	if _, err = fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("write known_hosts: %w", err)
	}

	h.logger.Info().
		Str("func", "hostKeyStore.add").
		Str("host", hostname).
		Str("fingerprint", ssh.FingerprintSHA256(key)).
		Msg("new host key recorded")

	return nil
}

func (h *hostKeyStore) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0o700); err != nil {
		return fmt.Errorf("create known_hosts dir: %w", err)
	}
	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_RDONLY, knownHostsPerm)
	if err != nil {
		return fmt.Errorf("create known_hosts: %w", err)
	}
	return f.Close()
}
