package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/tui"
	"github.com/MKhiriev/go-nas-keeper/internal/workers"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

// Closer releases storage handles once the UI and workers have stopped.
type Closer interface {
	Close() error
}

type App struct {
	ui       UI
	workers  *workers.Workers
	storages Closer

	logger *logger.Logger
}

func NewApp(ui UI, workers *workers.Workers, storages Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client app: ui is nil")
	}
	if workers == nil {
		return nil, errors.New("client app: workers are nil")
	}

	return &App{
		ui:       ui,
		workers:  workers,
		storages: storages,
		logger:   logger,
	}, nil
}

// Run starts the background workers, blocks in the UI and then stops the
// workers. Pending history entries are flushed before the storages close.
func (a *App) Run(ctx context.Context) error {
	workerCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.workers.Run(workerCtx)
	}()

	uiErr := a.ui.Run(ctx)

	cancel()
	<-done
	a.logger.Info().Msg("workers stopped")

	var closeErr error
	if a.storages != nil {
		closeErr = a.storages.Close()
	}

	if errors.Is(uiErr, tui.ErrUserQuit) {
		uiErr = nil
	}
	if uiErr != nil {
		uiErr = fmt.Errorf("ui: %w", uiErr)
	}
	if closeErr != nil {
		closeErr = fmt.Errorf("close storages: %w", closeErr)
	}
	return errors.Join(uiErr, closeErr)
}
