package projects

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testProject(owner, title string) Project {
	now := time.Now().UTC()
	return Project{
		ID:             "p-" + title,
		Owner:          owner,
		Title:          title,
		Status:         "Quoted",
		Type:           "PEB Construction",
		Quarter:        "Q1",
		DocumentStatus: "Quotation",
		PaymentStatus:  "Active",
		StartDate:      now,
		PhoneNumber:    "0100000000",
		Address:        "Industrial Zone 4",
		Budget:         1_000_000,
		Paid:           250_000,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestMemoryRepoCreateAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testProject("alice", "Warehouse A")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByTitle(ctx, "alice", "Warehouse A")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Warehouse A" || got.Status != "Quoted" {
		t.Fatalf("unexpected project %+v", got)
	}

	if _, err := repo.GetByTitle(ctx, "bob", "Warehouse A"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}

func TestMemoryRepoCreateDuplicate(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testProject("alice", "Warehouse A")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, testProject("alice", "Warehouse A")); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	// Same title under another owner is a different project.
	if err := repo.Create(ctx, testProject("bob", "Warehouse A")); err != nil {
		t.Fatalf("create for other owner: %v", err)
	}
}

func TestMemoryRepoListHighPriorityFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	older := testProject("alice", "Warehouse A")
	older.UpdatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	newer := testProject("alice", "Factory B")
	newer.UpdatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	urgent := testProject("alice", "Hangar C")
	urgent.HighPriority = true
	urgent.UpdatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, p := range []Project{older, newer, urgent} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create %s: %v", p.Title, err)
		}
	}

	list, err := repo.ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(list))
	}
	for i, want := range []string{"Hangar C", "Factory B", "Warehouse A"} {
		if list[i].Title != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, list[i].Title)
		}
	}
}

func TestMemoryRepoUpdatePreservesIdentity(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	p := testProject("alice", "Warehouse A")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	changed := p
	changed.ID = "should-be-ignored"
	changed.Status = "Erection"
	changed.Paid = 900_000

	updated, err := repo.Update(ctx, changed)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != p.ID {
		t.Fatalf("expected original ID %s, got %s", p.ID, updated.ID)
	}
	if updated.Status != "Erection" || updated.Paid != 900_000 {
		t.Fatalf("mutable fields not applied: %+v", updated)
	}
	if !updated.CreatedAt.Equal(p.CreatedAt) {
		t.Fatal("CreatedAt must not change on update")
	}
}

func TestMemoryRepoDeleteAndExists(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testProject("alice", "Warehouse A")); err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := repo.Exists(ctx, "alice", "Warehouse A")
	if err != nil || !ok {
		t.Fatalf("expected project to exist, ok=%v err=%v", ok, err)
	}

	if err := repo.Delete(ctx, "alice", "Warehouse A"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	ok, err = repo.Exists(ctx, "alice", "Warehouse A")
	if err != nil || ok {
		t.Fatalf("expected project to be gone, ok=%v err=%v", ok, err)
	}
	if err := repo.Delete(ctx, "alice", "Warehouse A"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
