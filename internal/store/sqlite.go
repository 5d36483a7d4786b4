package store

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/crispyBCN13/LifeLog/internal/model"
)

// timeLayout is fixed-width so stored timestamps compare correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
	now     func() time.Time
}

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithClock sets the clock used for default timestamps, ids and the
// ListParams.Days cutoff.
func WithClock(now func() time.Time) Option {
	return func(s *SQLiteStore) {
		s.now = now
	}
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string, opts ...Option) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create db dir", goerr.V("dir", dir))
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open db", goerr.V("path", dbPath))
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
}

func (s *SQLiteStore) AddCategory(ctx context.Context, p CategoryParams) (*model.Category, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	color := strings.TrimSpace(p.Color)
	if color == "" {
		color = model.DefaultColor
	}
	if !model.ValidColor(color) {
		return nil, goerr.Wrap(ErrInvalidColor, "failed to add category", goerr.V("color", color))
	}

	cat := &model.Category{ID: s.newID(), Name: name, Color: color}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, color) VALUES (?, ?, ?)`,
		cat.ID, cat.Name, cat.Color)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert category", goerr.V("name", name))
	}
	return cat, nil
}

// findCategory resolves ref as an id first, then as a name. When several
// categories share the name, the oldest one wins.
func (s *SQLiteStore) findCategory(ctx context.Context, q querier, ref string) (*model.Category, error) {
	var c model.Category
	err := q.QueryRowContext(ctx,
		`SELECT id, name, color FROM categories
		 WHERE id = ? OR name = ?
		 ORDER BY (id = ?) DESC, rowid
		 LIMIT 1`, ref, ref, ref).Scan(&c.ID, &c.Name, &c.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "category not found", goerr.V("ref", ref))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query category", goerr.V("ref", ref))
	}
	return &c, nil
}

// EditCategory renames and/or recolours a category. Entries keep the old
// name, so they show up as an orphan bucket until re-categorised.
func (s *SQLiteStore) EditCategory(ctx context.Context, p EditCategoryParams) (*model.Category, error) {
	cat, err := s.findCategory(ctx, s.db, p.Ref)
	if err != nil {
		return nil, err
	}

	color := strings.TrimSpace(p.Color)
	if color != "" && !model.ValidColor(color) {
		return nil, goerr.Wrap(ErrInvalidColor, "failed to edit category", goerr.V("color", color))
	}
	if name := strings.TrimSpace(p.Name); name != "" {
		cat.Name = name
	}
	if color != "" {
		cat.Color = color
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, color = ? WHERE id = ?`, cat.Name, cat.Color, cat.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update category", goerr.V("id", cat.ID))
	}
	return cat, nil
}

func (s *SQLiteStore) DeleteCategory(ctx context.Context, ref string) (*model.Category, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	cat, err := s.findCategory(ctx, tx, ref)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, cat.ID); err != nil {
		return nil, goerr.Wrap(err, "failed to delete category", goerr.V("id", cat.ID))
	}
	if _, err := tx.ExecContext(ctx, `UPDATE entries SET category = '' WHERE category = ?`, cat.Name); err != nil {
		return nil, goerr.Wrap(err, "failed to unlink entries", goerr.V("name", cat.Name))
	}

	if err := tx.Commit(); err != nil {
		return nil, goerr.Wrap(err, "failed to commit category delete")
	}
	return cat, nil
}

func (s *SQLiteStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, color FROM categories ORDER BY rowid`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list categories")
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, goerr.Wrap(err, "failed to scan category")
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *SQLiteStore) AddEntry(ctx context.Context, p EntryParams) (*model.Entry, error) {
	text := strings.TrimSpace(p.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	typ := strings.TrimSpace(p.Type)
	if typ == "" {
		typ = model.DefaultEntryType
	}
	ts := p.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}

	e := &model.Entry{
		ID:        s.newID(),
		Text:      text,
		Type:      typ,
		Category:  strings.TrimSpace(p.Category),
		Notes:     strings.TrimSpace(p.Notes),
		ImagePath: strings.TrimSpace(p.ImagePath),
		VideoPath: strings.TrimSpace(p.VideoPath),
		Timestamp: ts.UTC(),
	}
	if _, err := insertEntry(ctx, s.db, e); err != nil {
		return nil, err
	}
	return e, nil
}

// insertEntry writes e, ignoring an existing row with the same id. It
// reports whether a row was written.
func insertEntry(ctx context.Context, q querier, e *model.Entry) (bool, error) {
	res, err := q.ExecContext(ctx,
		`INSERT OR IGNORE INTO entries (id, text, type, category, notes, image_path, video_path, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Text, e.Type, e.Category, e.Notes, e.ImagePath, e.VideoPath,
		e.Timestamp.UTC().Format(timeLayout))
	if err != nil {
		return false, goerr.Wrap(err, "failed to insert entry", goerr.V("id", e.ID))
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (s *SQLiteStore) DeleteEntry(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return goerr.Wrap(err, "failed to delete entry", goerr.V("id", id))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return goerr.Wrap(ErrNotFound, "entry not found", goerr.V("id", id))
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

const entryColumns = `id, text, type, category, notes, image_path, video_path, timestamp`

func scanEntry(row scanner) (model.Entry, error) {
	var e model.Entry
	var ts string
	err := row.Scan(&e.ID, &e.Text, &e.Type, &e.Category, &e.Notes, &e.ImagePath, &e.VideoPath, &ts)
	if err != nil {
		return e, goerr.Wrap(err, "failed to scan entry")
	}
	e.Timestamp, err = time.Parse(timeLayout, ts)
	if err != nil {
		return e, goerr.Wrap(err, "failed to parse entry timestamp", goerr.V("id", e.ID), goerr.V("timestamp", ts))
	}
	return e, nil
}
