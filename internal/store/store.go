package store

import (
	"context"

	"github.com/nhle/todoqueue/internal/model"
)

// Store defines the persistence contract consumed by the presentation
// layer. Implementations serialize mutating operations so that no caller
// ever observes a partially-compacted or partially-reordered queue; list
// results are read snapshots the caller must discard and re-fetch after
// any mutation — the store issues no change notifications.
type Store interface {
	// === Task lifecycle ===

	Add(ctx context.Context, text, category, tags string) (model.Task, error)
	Complete(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ClearCompleted(ctx context.Context) (int, error)

	// === Queue order ===

	// Reorder takes the full pending id set in the desired new order and
	// reassigns order_index 0..n-1 atomically.
	Reorder(ctx context.Context, orderedIDs []string) error

	// === Queries ===

	ListPending(ctx context.Context) ([]model.Task, error)
	ListCompleted(ctx context.Context) ([]model.Task, error)
	Counts(ctx context.Context) (pending, completed int, err error)

	// === Categories ===

	ListCategories(ctx context.Context) ([]string, error)
	CategorySuggestions(ctx context.Context) ([]model.Category, error)
	SaveCategory(ctx context.Context, name, color string) error
}
