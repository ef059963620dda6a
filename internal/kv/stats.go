package kv

import (
	"context"
	"os"
)

// Stats holds cache statistics.
type Stats struct {
	DBPath      string       `json:"db_path"`
	DBSizeBytes int64        `json:"db_size_bytes"`
	Entries     int          `json:"entries"`
	Keys        []EntryStats `json:"keys"`
}

// EntryStats describes one stored entry.
type EntryStats struct {
	Key       string `json:"key"`
	Bytes     int    `json:"bytes"`
	Rev       string `json:"rev"`
	UpdatedAt string `json:"updated_at"`
}

// Stats returns cache statistics. The size includes the write-ahead log.
func (c *SQLiteCache) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath, Keys: []EntryStats{}}

	for _, p := range []string{dbPath, dbPath + "-wal"} {
		if info, err := os.Stat(p); err == nil {
			st.DBSizeBytes += info.Size()
		}
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT key, LENGTH(value), rev, updated_at
		FROM kv_entries ORDER BY key`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var e EntryStats
		if err := rows.Scan(&e.Key, &e.Bytes, &e.Rev, &e.UpdatedAt); err != nil {
			return st, err
		}
		st.Keys = append(st.Keys, e)
	}
	st.Entries = len(st.Keys)

	return st, rows.Err()
}
