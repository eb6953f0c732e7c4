package dto

import "time"

// CartItemRequest is one product/quantity pair to add to the cart.
type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// AddCartItemsRequest describes a cart addition payload.
type AddCartItemsRequest struct {
	Items []CartItemRequest `json:"items"`
}

// UpdateCartItemRequest sets one cart line's quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse is one stored cart line.
type CartItemResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartResponse describes the cart with its derived total.
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalPrice float64            `json:"total_price"`
}

// WishlistItemResponse is one saved wishlist product.
type WishlistItemResponse struct {
	ProductID int64     `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}
