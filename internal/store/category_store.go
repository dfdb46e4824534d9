package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhle/todoqueue/internal/model"
)

// ListCategories returns the distinct non-empty category values across
// all surviving tasks, pending and completed. A category with no
// remaining tasks no longer appears, even if previously used.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	err := s.db.SelectContext(ctx, &names,
		"SELECT DISTINCT category FROM todos WHERE category != '' ORDER BY category")
	if err != nil {
		return nil, persistErr("listing categories", err)
	}
	return names, nil
}

// CategorySuggestions returns the cached category entries used for UI
// autocompletion, ordered by name. The cache only grows; it is never the
// source of truth for which categories are in use.
func (s *SQLiteStore) CategorySuggestions(ctx context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryxContext(ctx,
		"SELECT name, color, created_at FROM categories ORDER BY name")
	if err != nil {
		return nil, persistErr("querying category cache", err)
	}
	defer rows.Close()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.Name, &c.Color, &c.CreatedAt); err != nil {
			return nil, persistErr("scanning category row", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("iterating category rows", err)
	}
	return cats, nil
}

// SaveCategory upserts a category into the suggestion cache. A blank
// color takes the default.
func (s *SQLiteStore) SaveCategory(ctx context.Context, name, color string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: category name must not be empty", ErrValidation)
	}
	if color == "" {
		color = model.DefaultCategoryColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, color) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET color = excluded.color`,
		name, color)
	if err != nil {
		return persistErr("saving category", err)
	}
	return nil
}
