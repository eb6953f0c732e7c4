package model

import "time"

// Review is a single user's rating of a product. At most one review exists
// per (product, author) pair.
type Review struct {
	ID        int64
	ProductID int64
	UserID    int64
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
