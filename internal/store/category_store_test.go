package store_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/nhle/todoqueue/internal/model"
	"github.com/nhle/todoqueue/internal/store"
	"github.com/nhle/todoqueue/tests/testutil"
)

func TestListCategories(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	for _, c := range []struct{ text, category string }{
		{"one", "work"},
		{"two", "home"},
		{"three", "work"},
		{"four", ""},
	} {
		if _, err := s.Add(ctx, c.text, c.category, ""); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	got, err := s.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}

	// Deduplicated, sorted, empty string excluded.
	want := []string{"home", "work"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestListCategories_IncludesCompleted(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	task, err := s.Add(ctx, "one", "work", "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Complete(ctx, task.ID); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	got, err := s.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(got) != 1 || got[0] != "work" {
		t.Errorf("expected [work], got %v", got)
	}
}

func TestListCategories_DropsOrphans(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	task, err := s.Add(ctx, "one", "work", "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Delete(ctx, task.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err := s.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no categories after deleting the only task, got %v", got)
	}

	// The suggestion cache still remembers it.
	cached, err := s.CategorySuggestions(ctx)
	if err != nil {
		t.Fatalf("CategorySuggestions failed: %v", err)
	}
	if len(cached) != 1 || cached[0].Name != "work" {
		t.Errorf("expected cached [work], got %v", cached)
	}
}

func TestAdd_CachesCategory(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if _, err := s.Add(ctx, "one", "work", ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	cached, err := s.CategorySuggestions(ctx)
	if err != nil {
		t.Fatalf("CategorySuggestions failed: %v", err)
	}
	if len(cached) != 1 {
		t.Fatalf("expected 1 cached category, got %d", len(cached))
	}
	if cached[0].Name != "work" {
		t.Errorf("expected name 'work', got %q", cached[0].Name)
	}
	if cached[0].Color != model.DefaultCategoryColor {
		t.Errorf("expected default color %q, got %q", model.DefaultCategoryColor, cached[0].Color)
	}
}

func TestSaveCategory(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.SaveCategory(ctx, "work", "#e74c3c"); err != nil {
		t.Fatalf("SaveCategory failed: %v", err)
	}

	// Saving again updates the color rather than failing.
	if err := s.SaveCategory(ctx, "work", "#2ecc71"); err != nil {
		t.Fatalf("SaveCategory update failed: %v", err)
	}

	// Blank color falls back to the default.
	if err := s.SaveCategory(ctx, "home", ""); err != nil {
		t.Fatalf("SaveCategory with blank color failed: %v", err)
	}

	cached, err := s.CategorySuggestions(ctx)
	if err != nil {
		t.Fatalf("CategorySuggestions failed: %v", err)
	}
	if len(cached) != 2 {
		t.Fatalf("expected 2 cached categories, got %d", len(cached))
	}
	if cached[0].Name != "home" || cached[0].Color != model.DefaultCategoryColor {
		t.Errorf("unexpected first entry: %+v", cached[0])
	}
	if cached[1].Name != "work" || cached[1].Color != "#2ecc71" {
		t.Errorf("unexpected second entry: %+v", cached[1])
	}
}

func TestSaveCategory_BlankName(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.SaveCategory(ctx, "  ", "#e74c3c"); !errors.Is(err, store.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
