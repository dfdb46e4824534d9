package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nhle/todoqueue/internal/model"
)

const taskColumns = "id, text, category, tags, status, order_index, created_at, completed_at"

// Add inserts a new pending task at the back of the queue and returns the
// stored record. A non-empty category is also remembered in the
// suggestion cache within the same transaction.
func (s *SQLiteStore) Add(ctx context.Context, text, category, tags string) (model.Task, error) {
	if strings.TrimSpace(text) == "" {
		return model.Task{}, fmt.Errorf("%w: task text must not be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := model.Task{
		ID:        uuid.New().String(),
		Text:      text,
		Category:  category,
		Tags:      tags,
		Status:    model.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	err := s.withTx(ctx, "adding task", func(tx *sqlx.Tx) error {
		// Last to arrive goes last: max pending order_index + 1, or 0
		// for an empty queue.
		var maxOrder sql.NullInt64
		err := tx.GetContext(ctx, &maxOrder,
			"SELECT MAX(order_index) FROM todos WHERE status = ?", model.StatusPending)
		if err != nil {
			return persistErr("getting max order_index", err)
		}
		if maxOrder.Valid {
			task.OrderIndex = int(maxOrder.Int64) + 1
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO todos (`+taskColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			task.ID, task.Text, task.Category, task.Tags,
			task.Status, task.OrderIndex, task.CreatedAt, nil,
		); err != nil {
			return persistErr("inserting task", err)
		}

		if task.Category != "" {
			if _, err := tx.ExecContext(ctx,
				"INSERT OR IGNORE INTO categories (name, color) VALUES (?, ?)",
				task.Category, model.DefaultCategoryColor); err != nil {
				return persistErr("caching category", err)
			}
		}
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// ListPending returns all pending tasks ordered by queue position.
func (s *SQLiteStore) ListPending(ctx context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listTasks(ctx, `
		SELECT `+taskColumns+` FROM todos
		WHERE status = ?
		ORDER BY order_index ASC`, model.StatusPending)
}

// ListCompleted returns completed tasks, most recently completed first.
// Identical completion timestamps fall back to insertion order.
func (s *SQLiteStore) ListCompleted(ctx context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listTasks(ctx, `
		SELECT `+taskColumns+` FROM todos
		WHERE status = ?
		ORDER BY completed_at DESC, rowid ASC`, model.StatusCompleted)
}

// Complete marks a pending task as completed, timestamps it, and closes
// the gap it leaves in the pending queue.
func (s *SQLiteStore) Complete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withTx(ctx, "completing task", func(tx *sqlx.Tx) error {
		cur, err := lookupTask(ctx, tx, id)
		if err != nil {
			return err
		}
		if cur.Status == model.StatusCompleted {
			return fmt.Errorf("%w: task %s is already completed", ErrInvalidState, id)
		}

		now := time.Now().UTC()
		if _, err := tx.ExecContext(ctx,
			"UPDATE todos SET status = ?, completed_at = ? WHERE id = ?",
			model.StatusCompleted, now, id); err != nil {
			return persistErr("marking task completed", err)
		}

		return compactAfter(ctx, tx, cur.OrderIndex)
	})
}

// Delete removes a task permanently, whatever its status. Removing a
// pending task closes the gap it leaves in the queue.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withTx(ctx, "deleting task", func(tx *sqlx.Tx) error {
		cur, err := lookupTask(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id); err != nil {
			return persistErr("deleting task", err)
		}

		if cur.Status == model.StatusPending {
			return compactAfter(ctx, tx, cur.OrderIndex)
		}
		return nil
	})
}

// Reorder reassigns order_index 0..n-1 following orderedIDs, which must
// be exactly the current pending id set. Passing the current order is a
// valid no-op.
func (s *SQLiteStore) Reorder(ctx context.Context, orderedIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withTx(ctx, "reordering tasks", func(tx *sqlx.Tx) error {
		var currentIDs []string
		if err := tx.SelectContext(ctx, &currentIDs,
			"SELECT id FROM todos WHERE status = ? ORDER BY order_index ASC",
			model.StatusPending); err != nil {
			return persistErr("loading pending ids", err)
		}

		if err := validateOrder(orderedIDs, currentIDs); err != nil {
			return err
		}

		for i, id := range orderedIDs {
			if _, err := tx.ExecContext(ctx,
				"UPDATE todos SET order_index = ? WHERE id = ?", i, id); err != nil {
				return persistErr("assigning order_index", err)
			}
		}
		return nil
	})
}

// ClearCompleted deletes every completed task and reports how many were
// removed. An empty completed set is a no-op, not an error.
func (s *SQLiteStore) ClearCompleted(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx,
		"DELETE FROM todos WHERE status = ?", model.StatusCompleted)
	if err != nil {
		return 0, persistErr("clearing completed tasks", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, persistErr("counting cleared tasks", err)
	}
	return int(n), nil
}

// Counts returns the number of pending and completed tasks.
func (s *SQLiteStore) Counts(ctx context.Context) (pending, completed int, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryxContext(ctx,
		"SELECT status, COUNT(*) FROM todos GROUP BY status")
	if err != nil {
		return 0, 0, persistErr("counting tasks", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return 0, 0, persistErr("scanning count row", err)
		}
		switch status {
		case model.StatusPending:
			pending = n
		case model.StatusCompleted:
			completed = n
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, persistErr("iterating count rows", err)
	}
	return pending, completed, nil
}

// taskState is the status/position pair loaded before a mutation.
type taskState struct {
	Status     string `db:"status"`
	OrderIndex int    `db:"order_index"`
}

// lookupTask loads the state of a task inside tx, mapping a missing row
// to ErrNotFound.
func lookupTask(ctx context.Context, tx *sqlx.Tx, id string) (taskState, error) {
	var cur taskState
	err := tx.GetContext(ctx, &cur,
		"SELECT status, order_index FROM todos WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return taskState{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return taskState{}, persistErr("looking up task", err)
	}
	return cur, nil
}

// compactAfter shifts every pending order_index above removed down by
// one, closing the gap left by a completed or deleted item. Runs in the
// same transaction as the removal so readers never observe the gap.
func compactAfter(ctx context.Context, tx *sqlx.Tx, removed int) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE todos SET order_index = order_index - 1 WHERE status = ? AND order_index > ?",
		model.StatusPending, removed)
	if err != nil {
		return persistErr("compacting order indexes", err)
	}
	return nil
}

// validateOrder checks that got is a permutation of the current pending
// id set: every pending id exactly once, nothing else.
func validateOrder(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: reorder needs exactly %d pending ids, got %d",
			ErrValidation, len(want), len(got))
	}

	pending := make(map[string]bool, len(want))
	for _, id := range want {
		pending[id] = true
	}

	seen := make(map[string]bool, len(got))
	for _, id := range got {
		if !pending[id] {
			return fmt.Errorf("%w: %s is not a pending task", ErrValidation, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: %s appears more than once", ErrValidation, id)
		}
		seen[id] = true
	}
	return nil
}

// listTasks runs a task query and scans the result rows.
func (s *SQLiteStore) listTasks(ctx context.Context, query string, args ...interface{}) ([]model.Task, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, persistErr("querying tasks", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("iterating task rows", err)
	}
	return tasks, nil
}

// scanTask scans a task row from a sqlx.Rows result set.
func scanTask(rows *sqlx.Rows) (model.Task, error) {
	var (
		task        model.Task
		completedAt *time.Time
	)

	err := rows.Scan(
		&task.ID, &task.Text, &task.Category, &task.Tags,
		&task.Status, &task.OrderIndex, &task.CreatedAt, &completedAt,
	)
	if err != nil {
		return model.Task{}, persistErr("scanning task row", err)
	}

	task.CompletedAt = completedAt
	return task, nil
}
