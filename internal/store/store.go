// Package store provides the activity-log storage interface and SQLite implementation.
package store

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/crispyBCN13/LifeLog/internal/model"
)

var (
	ErrNotFound     = goerr.New("not found")
	ErrEmptyName    = goerr.New("category name is empty")
	ErrEmptyText    = goerr.New("entry text is empty")
	ErrInvalidColor = goerr.New("invalid color, use a hex code like #ff0000")
)

// CategoryParams holds parameters for creating a category.
type CategoryParams struct {
	Name  string
	Color string // empty means model.DefaultColor
}

// EditCategoryParams holds parameters for editing a category.
type EditCategoryParams struct {
	Ref   string // id or name
	Name  string // blank keeps the current name
	Color string // blank keeps the current colour
}

// EntryParams holds parameters for logging an entry.
type EntryParams struct {
	Text      string
	Type      string
	Category  string
	Notes     string
	ImagePath string
	VideoPath string
	Timestamp time.Time // zero means now
}

// ListParams holds parameters for listing entries.
type ListParams struct {
	Search   string
	Category string
	Days     int // 0 means all time
	Limit    int // 0 means no limit
}

// Store defines the activity-log storage interface.
type Store interface {
	AddCategory(ctx context.Context, p CategoryParams) (*model.Category, error)
	EditCategory(ctx context.Context, p EditCategoryParams) (*model.Category, error)

	// DeleteCategory removes the category and unlinks every entry that
	// referenced it by name.
	DeleteCategory(ctx context.Context, ref string) (*model.Category, error)

	// ListCategories returns the registry in insertion order.
	ListCategories(ctx context.Context) ([]model.Category, error)

	AddEntry(ctx context.Context, p EntryParams) (*model.Entry, error)

	// ListEntries returns entries newest first.
	ListEntries(ctx context.Context, p ListParams) ([]model.Entry, error)

	DeleteEntry(ctx context.Context, id string) error

	// Snapshot returns the whole log as the analytics engine consumes it.
	Snapshot(ctx context.Context) (*model.State, error)

	// Import adds categories and entries from a snapshot, skipping ids
	// that already exist.
	Import(ctx context.Context, st *model.State) (*ImportResult, error)

	Close() error
}
