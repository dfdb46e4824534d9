package model

import "time"

// DefaultCategoryColor is assigned to categories cached without an
// explicit color.
const DefaultCategoryColor = "#3498db"

// Category is a cached suggestion entry for the category combobox.
// The cache is not authoritative: the set of categories actually in use
// is always derived from the task records themselves.
type Category struct {
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
