package sqlite

import (
	"context"
	"errors"
	"testing"

	"bookmark-api/internal/domain"
	"bookmark-api/internal/repository"
)

func TestBookmarkRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	users := NewUserRepository(db)
	repo := NewBookmarkRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, users, "a@b.com")

	bookmark := &domain.Bookmark{
		UserID:      owner.ID,
		Title:       "Go",
		Link:        "https://go.dev",
		Description: "language home",
	}
	if _, err := repo.Create(ctx, bookmark); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if bookmark.ID == 0 {
		t.Fatalf("expected generated id")
	}

	got, err := repo.GetByID(ctx, bookmark.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Title != "Go" || got.Link != "https://go.dev" || got.Description != "language home" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.UserID != owner.ID {
		t.Fatalf("owner mismatch: got %d want %d", got.UserID, owner.ID)
	}
}

func TestBookmarkRepository_GetByIDAndOwner(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	users := NewUserRepository(db)
	repo := NewBookmarkRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, users, "a@b.com")
	stranger := createTestUser(t, users, "b@b.com")

	bookmark := &domain.Bookmark{UserID: owner.ID, Title: "x", Link: "y"}
	if _, err := repo.Create(ctx, bookmark); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := repo.GetByIDAndOwner(ctx, bookmark.ID, owner.ID); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if _, err := repo.GetByIDAndOwner(ctx, bookmark.ID, stranger.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}

func TestBookmarkRepository_ListByOwner(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	users := NewUserRepository(db)
	repo := NewBookmarkRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice@b.com")
	bob := createTestUser(t, users, "bob@b.com")

	for _, title := range []string{"one", "two"} {
		if _, err := repo.Create(ctx, &domain.Bookmark{UserID: alice.ID, Title: title, Link: "l"}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	if _, err := repo.Create(ctx, &domain.Bookmark{UserID: bob.ID, Title: "bobs", Link: "l"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	list, err := repo.ListByOwner(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(list))
	}
	for _, b := range list {
		if b.UserID != alice.ID {
			t.Fatalf("foreign bookmark leaked into list: %+v", b)
		}
	}

	empty, err := repo.ListByOwner(ctx, 999)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list, got %d", len(empty))
	}
}

func TestBookmarkRepository_PartialUpdate(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	users := NewUserRepository(db)
	repo := NewBookmarkRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, users, "a@b.com")
	bookmark := &domain.Bookmark{UserID: owner.ID, Title: "old", Link: "old-link", Description: "keep"}
	if _, err := repo.Create(ctx, bookmark); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	title := "new"
	updated, err := repo.Update(ctx, bookmark.ID, repository.UpdateBookmarkParams{Title: &title})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != "new" || updated.Link != "old-link" || updated.Description != "keep" {
		t.Fatalf("partial update wrong: %+v", updated)
	}
	if updated.UserID != owner.ID {
		t.Fatalf("owner changed on update")
	}

	if _, err := repo.Update(ctx, 999, repository.UpdateBookmarkParams{Title: &title}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBookmarkRepository_Delete(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	users := NewUserRepository(db)
	repo := NewBookmarkRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, users, "a@b.com")
	bookmark := &domain.Bookmark{UserID: owner.ID, Title: "x", Link: "y"}
	if _, err := repo.Create(ctx, bookmark); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.Delete(ctx, bookmark.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := repo.GetByID(ctx, bookmark.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, bookmark.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}
