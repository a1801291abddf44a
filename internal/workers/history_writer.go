// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/store"
	"github.com/MKhiriev/go-nas-keeper/internal/terminal"
	"github.com/MKhiriev/go-nas-keeper/models"
)

// DefaultHistoryBuffer is the queue capacity used when none is configured.
const DefaultHistoryBuffer = 64

// HistoryWriter persists submitted commands off the UI goroutine. Commands
// are queued without blocking; when the queue is full they are dropped.
type HistoryWriter struct {
	repo  store.HistoryRepository
	queue chan models.HistoryEntry

	logger *logger.Logger
}

// NewHistoryWriter creates a writer with a queue of buffer entries.
func NewHistoryWriter(repo store.HistoryRepository, buffer int, logger *logger.Logger) *HistoryWriter {
	if buffer <= 0 {
		buffer = DefaultHistoryBuffer
	}
	return &HistoryWriter{
		repo:   repo,
		queue:  make(chan models.HistoryEntry, buffer),
		logger: logger,
	}
}

// ForHost returns a recorder that tags commands with host.
func (w *HistoryWriter) ForHost(host string) terminal.HistoryRecorder {
	return hostRecorder{writer: w, host: host}
}

// Run saves queued commands until ctx is cancelled, then saves whatever is
// still queued and returns. Cancellation never aborts a save in progress.
func (w *HistoryWriter) Run(ctx context.Context) {
	saveCtx := context.WithoutCancel(ctx)
	for {
		select {
		case entry := <-w.queue:
			w.save(saveCtx, entry)
		case <-ctx.Done():
			w.drain(saveCtx)
			return
		}
	}
}

func (w *HistoryWriter) drain(ctx context.Context) {
	for {
		select {
		case entry := <-w.queue:
			w.save(ctx, entry)
		default:
			return
		}
	}
}

func (w *HistoryWriter) save(ctx context.Context, entry models.HistoryEntry) {
	if err := w.repo.Append(ctx, entry); err != nil {
		w.logger.Err(err).
			Str("func", "HistoryWriter.save").
			Str("host", entry.Host).
			Msg("failed to persist shell command")
	}
}

func (w *HistoryWriter) enqueue(entry models.HistoryEntry) bool {
	select {
	case w.queue <- entry:
		return true
	default:
		w.logger.Warn().
			Str("func", "HistoryWriter.enqueue").
			Str("host", entry.Host).
			Msg("history queue full, command dropped")
		return false
	}
}

type hostRecorder struct {
	writer *HistoryWriter
	host   string
}

func (r hostRecorder) Record(command string) {
	r.writer.enqueue(models.HistoryEntry{
		Host:      r.host,
		Command:   command,
		CreatedAt: time.Now().UTC(),
	})
}
