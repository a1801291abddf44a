package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/models"
)

type historyRepository struct {
	*DB
	logger *logger.Logger
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		logger: logger,
	}
}

func (h *historyRepository) Append(ctx context.Context, entry models.HistoryEntry) error {
	query, args, err := buildInsertHistoryQuery(entry)
	if err != nil {
		return err
	}

	result, err := h.DB.ExecContext(ctx, query, args...)
	if err != nil {
		h.logger.Err(err).
			Str("func", "historyRepository.Append").
			Str("host", entry.Host).
			Msg("failed to insert history entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrHistoryNotSaved
	}

	return nil
}

func (h *historyRepository) Recent(ctx context.Context, host string, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	query, args, err := buildRecentHistoryQuery(host, limit)
	if err != nil {
		return nil, err
	}

	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		h.logger.Err(err).
			Str("func", "historyRepository.Recent").
			Str("host", host).
			Msg("failed to query history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0, limit)
	for rows.Next() {
		var entry models.HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.Host, &entry.Command, &entry.CreatedAt); err != nil {
			h.logger.Err(err).
				Str("func", "historyRepository.Recent").
				Str("host", host).
				Msg("failed to scan history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	// newest first from the query, oldest first for the caller
	slices.Reverse(entries)

	return entries, nil
}

func (h *historyRepository) Clear(ctx context.Context, host string) error {
	query, args, err := buildClearHistoryQuery(host)
	if err != nil {
		return err
	}

	if _, err := h.DB.ExecContext(ctx, query, args...); err != nil {
		h.logger.Err(err).
			Str("func", "historyRepository.Clear").
			Str("host", host).
			Msg("failed to clear history")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
