package store

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
)

// Info holds database statistics.
type Info struct {
	DBPath        string   `json:"db_path"`
	DBSizeBytes   int64    `json:"db_size_bytes"`
	Categories    int      `json:"categories"`
	Entries       int      `json:"entries"`
	Categorised   int      `json:"categorised"`
	Uncategorised int      `json:"uncategorised"`
	OrphanEntries int      `json:"orphan_entries"`
	OrphanNames   []string `json:"orphan_names"`
}

// Info returns database statistics.
func (s *SQLiteStore) Info(ctx context.Context, dbPath string) (*Info, error) {
	info := &Info{DBPath: dbPath, OrphanNames: []string{}}

	if fi, err := os.Stat(dbPath); err == nil {
		info.DBSizeBytes = fi.Size()
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM categories),
			COUNT(*),
			COALESCE(SUM(category != ''), 0)
		FROM entries`).Scan(&info.Categories, &info.Entries, &info.Categorised)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count records")
	}
	info.Uncategorised = info.Entries - info.Categorised

	// Names carried by entries that no registered category has.
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*) FROM entries
		WHERE category != '' AND category NOT IN (SELECT name FROM categories)
		GROUP BY category
		ORDER BY MIN(rowid)`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find orphan categories")
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, goerr.Wrap(err, "failed to scan orphan category")
		}
		info.OrphanNames = append(info.OrphanNames, name)
		info.OrphanEntries += n
	}
	return info, rows.Err()
}
