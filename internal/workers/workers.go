package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-nas-keeper/internal/config"
	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/store"
)

// Workers runs a set of workers side by side.
type Workers struct {
	workers []Worker

	// History persists shell commands submitted in the console.
	History *HistoryWriter
}

// NewClientWorkers builds the background workers of the console client.
func NewClientWorkers(cfg config.ClientWorkers, storages *store.ClientStorages, logger *logger.Logger) *Workers {
	history := NewHistoryWriter(storages.History, cfg.HistoryBuffer, logger)
	return &Workers{
		workers: []Worker{history},
		History: history,
	}
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
