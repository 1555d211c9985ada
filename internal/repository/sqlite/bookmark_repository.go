package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookmark-api/internal/domain"
	"bookmark-api/internal/repository"
)

const createBookmarksTable = `
CREATE TABLE IF NOT EXISTS bookmarks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	title TEXT NOT NULL,
	link TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type BookmarkRepository struct {
	db *sql.DB
}

func NewBookmarkRepository(db *sql.DB) repository.BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createBookmarksTable); err != nil {
		return fmt.Errorf("create bookmarks table: %w", err)
	}
	return nil
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *domain.Bookmark) (int64, error) {
	now := time.Now().UTC()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO bookmarks (user_id, title, link, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		bookmark.UserID,
		bookmark.Title,
		bookmark.Link,
		bookmark.Description,
		bookmark.CreatedAt,
		bookmark.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert bookmark: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("bookmark last insert id: %w", err)
	}
	bookmark.ID = id
	return id, nil
}

func (r *BookmarkRepository) GetByID(ctx context.Context, id int64) (*domain.Bookmark, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, title, link, description, created_at, updated_at
FROM bookmarks
WHERE id = ?`,
		id,
	)
	return scanBookmark(row)
}

func (r *BookmarkRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Bookmark, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, title, link, description, created_at, updated_at
FROM bookmarks
WHERE id = ? AND user_id = ?`,
		id,
		ownerID,
	)
	return scanBookmark(row)
}

func (r *BookmarkRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, title, link, description, created_at, updated_at
FROM bookmarks
WHERE user_id = ?`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.Title,
			&b.Link,
			&b.Description,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *BookmarkRepository) Update(ctx context.Context, id int64, params repository.UpdateBookmarkParams) (*domain.Bookmark, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if params.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *params.Title)
	}
	if params.Link != nil {
		sets = append(sets, "link = ?")
		args = append(args, *params.Link)
	}
	if params.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *params.Description)
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE bookmarks SET %s WHERE id = ?`, strings.Join(sets, ", ")),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("update bookmark: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, repository.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *BookmarkRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanBookmark(row interface {
	Scan(dest ...any) error
}) (*domain.Bookmark, error) {
	var b domain.Bookmark
	if err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Title,
		&b.Link,
		&b.Description,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan bookmark: %w", err)
	}
	return &b, nil
}
