package repository

import (
	"context"

	"bookmark-api/internal/domain"
)

// UpdateUserParams carries a partial profile update; nil fields are left
// untouched.
type UpdateUserParams struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, params UpdateUserParams) (*domain.User, error)
}
