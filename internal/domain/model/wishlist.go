package model

import "time"

// WishlistEntry is one saved product with the time it was added. The same
// membership is mirrored on User.Wishlist; both views change together.
type WishlistEntry struct {
	ProductID int64
	AddedAt   time.Time
}
