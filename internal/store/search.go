package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/crispyBCN13/LifeLog/internal/model"
)

// ListEntries returns entries matching p, newest first.
//
// Category and age are filtered in SQL. Search is a case-insensitive
// substring match over text, notes and category, applied in Go so that
// non-ASCII text folds the same way strings.ToLower does.
func (s *SQLiteStore) ListEntries(ctx context.Context, p ListParams) ([]model.Entry, error) {
	where := []string{"1 = 1"}
	args := []any{}

	if p.Category != "" {
		where = append(where, "category = ?")
		args = append(args, p.Category)
	}
	if p.Days > 0 {
		cutoff := s.now().Add(-time.Duration(p.Days) * 24 * time.Hour)
		where = append(where, "timestamp >= ?")
		args = append(args, cutoff.UTC().Format(timeLayout))
	}

	query := fmt.Sprintf(`SELECT %s FROM entries WHERE %s ORDER BY timestamp DESC, rowid DESC`,
		entryColumns, strings.Join(where, " AND "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list entries")
	}
	defer rows.Close()

	search := strings.ToLower(strings.TrimSpace(p.Search))
	entries := []model.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		if search != "" && !matchEntry(e, search) {
			continue
		}
		entries = append(entries, e)
		if p.Limit > 0 && len(entries) >= p.Limit {
			break
		}
	}
	return entries, rows.Err()
}

func matchEntry(e model.Entry, lowerQuery string) bool {
	haystack := strings.ToLower(e.Text + " " + e.Notes + " " + e.Category)
	return strings.Contains(haystack, lowerQuery)
}
