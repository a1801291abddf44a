package models

import "time"

// HistoryEntry is one submitted shell command persisted per host.
type HistoryEntry struct {
	ID        int64
	Host      string
	Command   string
	CreatedAt time.Time
}
