package service

import (
	"context"
	"errors"

	"bookmark-api/internal/domain"
	"bookmark-api/internal/repository"
)

// ErrAccessDenied is returned when a mutation targets a bookmark that does
// not exist or belongs to another user. The two cases are deliberately
// indistinguishable.
var ErrAccessDenied = errors.New("access to resource denied")

// CreateBookmarkParams carries the fields of a new bookmark. The owner comes
// from the authenticated identity, never from here.
type CreateBookmarkParams struct {
	Title       string
	Link        string
	Description string
}

// BookmarkService implements owner-scoped bookmark CRUD. Reads scope the
// query to the owner and report misses as absence; mutations load by id and
// reject non-owners explicitly.
type BookmarkService interface {
	List(ctx context.Context, ownerID int64) ([]domain.Bookmark, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Bookmark, error)
	Create(ctx context.Context, ownerID int64, params CreateBookmarkParams) (*domain.Bookmark, error)
	Update(ctx context.Context, id, ownerID int64, params repository.UpdateBookmarkParams) (*domain.Bookmark, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

type bookmarkService struct {
	bookmarks repository.BookmarkRepository
}

func NewBookmarkService(bookmarks repository.BookmarkRepository) BookmarkService {
	return &bookmarkService{bookmarks: bookmarks}
}

func (s *bookmarkService) List(ctx context.Context, ownerID int64) ([]domain.Bookmark, error) {
	return s.bookmarks.ListByOwner(ctx, ownerID)
}

// Get returns (nil, nil) when no bookmark matches id and owner, so a caller
// cannot tell a missing bookmark from someone else's.
func (s *bookmarkService) Get(ctx context.Context, id, ownerID int64) (*domain.Bookmark, error) {
	bookmark, err := s.bookmarks.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return bookmark, nil
}

func (s *bookmarkService) Create(ctx context.Context, ownerID int64, params CreateBookmarkParams) (*domain.Bookmark, error) {
	if params.Title == "" {
		return nil, errors.New("title is required")
	}
	if params.Link == "" {
		return nil, errors.New("link is required")
	}

	bookmark := &domain.Bookmark{
		UserID:      ownerID,
		Title:       params.Title,
		Link:        params.Link,
		Description: params.Description,
	}
	if _, err := s.bookmarks.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

func (s *bookmarkService) Update(ctx context.Context, id, ownerID int64, params repository.UpdateBookmarkParams) (*domain.Bookmark, error) {
	if err := s.checkOwnership(ctx, id, ownerID); err != nil {
		return nil, err
	}
	return s.bookmarks.Update(ctx, id, params)
}

func (s *bookmarkService) Delete(ctx context.Context, id, ownerID int64) error {
	if err := s.checkOwnership(ctx, id, ownerID); err != nil {
		return err
	}
	return s.bookmarks.Delete(ctx, id)
}

func (s *bookmarkService) checkOwnership(ctx context.Context, id, ownerID int64) error {
	bookmark, err := s.bookmarks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAccessDenied
		}
		return err
	}
	if bookmark.UserID != ownerID {
		return ErrAccessDenied
	}
	return nil
}
