package model

import "time"

// CartItem is a product reference with desired quantity. Prices are not
// stored on cart items; totals are recomputed from the catalogue.
type CartItem struct {
	ProductID int64
	Quantity  int
}

// Cart is the per-user shopping cart with a derived total price.
type Cart struct {
	UserID     int64
	Items      []CartItem
	TotalPrice float64
	UpdatedAt  time.Time
}
