package domain

import "time"

// Bookmark represents a saved link owned by exactly one user. The owner is
// set at creation and never changes afterwards.
type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	Link        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
