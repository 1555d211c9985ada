package repository

import (
	"context"

	"bookmark-api/internal/domain"
)

// UpdateBookmarkParams carries a partial bookmark update; nil fields are left
// untouched.
type UpdateBookmarkParams struct {
	Title       *string
	Link        *string
	Description *string
}

// BookmarkRepository exposes persistence operations for Bookmark entities.
type BookmarkRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, bookmark *domain.Bookmark) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Bookmark, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Bookmark, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Bookmark, error)
	Update(ctx context.Context, id int64, params UpdateBookmarkParams) (*domain.Bookmark, error)
	Delete(ctx context.Context, id int64) error
}
