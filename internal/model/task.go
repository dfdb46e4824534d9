package model

import "time"

// Task status constants.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task is a single item in the queue. Pending tasks form a dense,
// zero-based sequence over OrderIndex; once a task is completed its
// OrderIndex is meaningless and never consulted again.
type Task struct {
	ID       string `json:"id" db:"id"`
	Text     string `json:"text" db:"text"`
	Category string `json:"category,omitempty" db:"category"`

	// Tags is a free-form, comma-separated string. The store treats it
	// as opaque; splitting and validation belong to the caller.
	Tags string `json:"tags,omitempty" db:"tags"`

	Status      string     `json:"status" db:"status"`
	OrderIndex  int        `json:"order_index" db:"order_index"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// IsCompleted reports whether the task has reached its terminal state.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}
