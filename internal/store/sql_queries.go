package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-nas-keeper/models"
)

const historyTable = "shell_history"

var historyColumns = []string{"id", "host", "command", "created_at"}

func buildInsertHistoryQuery(entry models.HistoryEntry) (string, []any, error) {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := sq.Insert(historyTable).
		Columns("host", "command", "created_at").
		Values(entry.Host, entry.Command, createdAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildRecentHistoryQuery selects the newest rows first; the repository
// reverses them.
func buildRecentHistoryQuery(host string, limit int) (string, []any, error) {
	query, args, err := sq.Select(historyColumns...).
		From(historyTable).
		Where(sq.Eq{"host": host}).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildClearHistoryQuery(host string) (string, []any, error) {
	builder := sq.Delete(historyTable)
	if host != "" {
		builder = builder.Where(sq.Eq{"host": host})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
