// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-nas-keeper/models"
)

func Test_buildInsertHistoryQuery(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	query, args, err := buildInsertHistoryQuery(models.HistoryEntry{Host: "nas", Command: "ls", CreatedAt: at})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into shell_history")
	assert.Contains(t, q, "host,command,created_at")
	// sqlite placeholder format
	assert.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")
	assert.Equal(t, []any{"nas", "ls", at}, args)
}

func Test_buildRecentHistoryQuery(t *testing.T) {
	query, args, err := buildRecentHistoryQuery("nas", 25)
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, col := range historyColumns {
		assert.Contains(t, q, col)
	}
	assert.Contains(t, q, "from shell_history")
	assert.Contains(t, q, "where host = ?")
	assert.Contains(t, q, "order by id desc")
	assert.Contains(t, q, "limit 25")
	assert.Equal(t, []any{"nas"}, args)
}

func Test_buildClearHistoryQuery(t *testing.T) {
	t.Run("single host", func(t *testing.T) {
		query, args, err := buildClearHistoryQuery("nas")
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM shell_history WHERE host = ?", query)
		assert.Equal(t, []any{"nas"}, args)
	})

	t.Run("all hosts", func(t *testing.T) {
		query, args, err := buildClearHistoryQuery("")
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM shell_history", query)
		assert.Empty(t, args)
	})
}

func Test_sqliteFilePath(t *testing.T) {
	tests := map[string]string{
		"history.db":                      "history.db",
		"file:history.db?_busy_timeout=5": "history.db",
		"/var/lib/nas/history.db":         "/var/lib/nas/history.db",
		":memory:":                        "",
		"file::memory:?cache=shared":      "",
		"file:test.db?mode=memory":        "",
		"":                                "",
	}

	for dsn, want := range tests {
		assert.Equal(t, want, sqliteFilePath(dsn), dsn)
	}
}
