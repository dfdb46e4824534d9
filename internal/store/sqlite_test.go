package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nhle/todoqueue/internal/store"
)

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "todoqueue.db")

	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	task, err := s.Add(ctx, "survives restart", "work", "a,b")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("closing store: %v", err)
	}

	// Reopening replays no migrations and sees the same data.
	s, err = store.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer s.Close()

	pending, err := s.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending task after reopen, got %d", len(pending))
	}
	if pending[0].ID != task.ID || pending[0].Text != "survives restart" {
		t.Errorf("unexpected task after reopen: %+v", pending[0])
	}
	if pending[0].Category != "work" || pending[0].Tags != "a,b" {
		t.Errorf("metadata lost across reopen: %+v", pending[0])
	}
}

func TestCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "todoqueue.db")

	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("opening store with missing parent dirs: %v", err)
	}
	s.Close()
}

func TestClosedStoreReturnsPersistenceError(t *testing.T) {
	ctx := context.Background()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("closing store: %v", err)
	}

	_, err = s.Add(ctx, "too late", "", "")
	var pe *store.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a PersistenceError, got %v", err)
	}
	if pe.Op == "" {
		t.Error("expected the error to carry an operation label")
	}
}
