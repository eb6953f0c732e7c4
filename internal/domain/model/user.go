package model

import "time"

// User represents a registered customer. Wishlist mirrors the membership of
// the per-user wishlist collection.
type User struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	Wishlist     []int64
	CreatedAt    time.Time
}

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
