package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/store"
)

type historyService struct {
	repo store.HistoryRepository

	logger *logger.Logger
}

func NewHistoryService(repo store.HistoryRepository, logger *logger.Logger) HistoryService {
	return &historyService{repo: repo, logger: logger}
}

func (h *historyService) Preload(ctx context.Context, host string, limit int) ([]string, error) {
	entries, err := h.repo.Recent(ctx, host, limit)
	if err != nil {
		return nil, fmt.Errorf("load history for %s: %w", host, err)
	}

	commands := make([]string, 0, len(entries))
	for _, e := range entries {
		commands = append(commands, e.Command)
	}

	h.logger.Debug().
		Str("func", "historyService.Preload").
		Str("host", host).
		Int("count", len(commands)).
		Msg("history preloaded")

	return commands, nil
}

func (h *historyService) Clear(ctx context.Context, host string) error {
	if err := h.repo.Clear(ctx, host); err != nil {
		return fmt.Errorf("clear history for %s: %w", host, err)
	}
	return nil
}
