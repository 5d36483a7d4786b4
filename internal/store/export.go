package store

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/crispyBCN13/LifeLog/internal/model"
)

// ImportResult reports how many records an import wrote and skipped.
type ImportResult struct {
	Categories int `json:"categories"`
	Entries    int `json:"entries"`
	Skipped    int `json:"skipped"`
}

// Snapshot returns the registry in insertion order and entries most
// recently logged first, the same layout the browser tracker saves.
func (s *SQLiteStore) Snapshot(ctx context.Context) (*model.State, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM entries ORDER BY rowid DESC`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read entries")
	}
	defer rows.Close()

	entries := []model.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read entries")
	}

	return &model.State{Categories: categories, Entries: entries}, nil
}

// Import writes a snapshot in a single transaction. Records whose id is
// already stored are skipped, as are categories without a name and
// entries without text. Missing ids are generated; invalid colours fall
// back to the default.
func (s *SQLiteStore) Import(ctx context.Context, st *model.State) (*ImportResult, error) {
	res := &ImportResult{}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	for _, c := range st.Categories {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			res.Skipped++
			continue
		}
		if c.ID == "" {
			c.ID = s.newID()
		}
		if !model.ValidColor(c.Color) {
			c.Color = model.DefaultColor
		}

		r, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO categories (id, name, color) VALUES (?, ?, ?)`, c.ID, c.Name, c.Color)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to import category", goerr.V("id", c.ID))
		}
		if n, _ := r.RowsAffected(); n == 0 {
			res.Skipped++
			continue
		}
		res.Categories++
	}

	// Snapshots list the newest entry first; insert oldest first so the
	// stored order matches.
	for i := len(st.Entries) - 1; i >= 0; i-- {
		e := st.Entries[i]
		if strings.TrimSpace(e.Text) == "" {
			res.Skipped++
			continue
		}
		if e.ID == "" {
			e.ID = s.newID()
		}
		if e.Type == "" {
			e.Type = model.DefaultEntryType
		}
		if e.Timestamp.IsZero() {
			e.Timestamp = s.now()
		}

		ok, err := insertEntry(ctx, tx, &e)
		if err != nil {
			return nil, err
		}
		if !ok {
			res.Skipped++
			continue
		}
		res.Entries++
	}

	if err := tx.Commit(); err != nil {
		return nil, goerr.Wrap(err, "failed to commit import")
	}
	return res, nil
}
