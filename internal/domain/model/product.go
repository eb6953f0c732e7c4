package model

import "time"

// Category groups products by name.
type Category struct {
	ID   int64
	Name string
}

// Product describes a catalogue entry. AverageRating and ReviewCount are
// derived from the reviews collection and maintained transactionally;
// they are never written directly.
type Product struct {
	ID            int64
	Name          string
	Description   string
	Images        []string
	Price         float64
	Stock         int
	CategoryID    int64
	CategoryName  string
	AverageRating float64
	ReviewCount   int64
	Sold          bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductFilter narrows catalogue listings.
type ProductFilter struct {
	CategoryName string
	PriceMin     *float64
	PriceMax     *float64
	StockMin     *int
	Sold         *bool
	SortBy       string
	Descending   bool
	Page         int
	Limit        int
}
