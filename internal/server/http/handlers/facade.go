package handlers

import (
	"context"

	"github.com/tradewind/storefront/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, fullName, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// CheckoutFacade drives the payment lifecycle of an order.
type CheckoutFacade interface {
	CreateOrder(ctx context.Context, userID int64, items []model.LineItem) (*model.Order, error)
	ValidateOrder(ctx context.Context, externalID string) (*model.ProviderOrder, error)
	CaptureOrder(ctx context.Context, externalID string) (*model.Order, error)
	RefundOrder(ctx context.Context, externalID string, amount float64, reason string) (*model.Order, error)
	CancelPayment(ctx context.Context, externalID string) (*model.Order, error)
}

// OrderFacade encapsulates order management exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, userID int64, externalID string) (*model.Order, error)
	CancelOrder(ctx context.Context, userID int64, externalID string) (*model.Order, error)
	UpdateFulfilment(ctx context.Context, externalID string, status model.OrderStatus, trackingNumber string) (*model.Order, error)
	OrderStats(ctx context.Context) ([]model.OrderStat, error)
}

// CatalogFacade exposes the product catalogue.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, product *model.Product, categoryName string) (*model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error)
}

// CartFacade exposes cart operations.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) (*model.Cart, error)
	AddCartItems(ctx context.Context, userID int64, items []model.CartItem) (*model.Cart, error)
	UpdateCartItem(ctx context.Context, userID, productID int64, quantity int) (*model.Cart, error)
	RemoveCartItem(ctx context.Context, userID, productID int64) (*model.Cart, error)
	ClearCart(ctx context.Context, userID int64) error
}

// WishlistFacade exposes wishlist operations.
type WishlistFacade interface {
	Wishlist(ctx context.Context, userID int64) ([]model.WishlistEntry, error)
	AddToWishlist(ctx context.Context, userID, productID int64) error
	RemoveFromWishlist(ctx context.Context, userID, productID int64) error
	ClearWishlist(ctx context.Context, userID int64) error
}

// ReviewFacade exposes review operations.
type ReviewFacade interface {
	CreateReview(ctx context.Context, productID, userID int64, rating int, comment string) (*model.Review, error)
	UpdateReview(ctx context.Context, productID, reviewID, userID int64, rating int, comment string) (*model.Review, error)
	DeleteReview(ctx context.Context, productID, reviewID, userID int64) error
	ProductReviews(ctx context.Context, productID int64, page, limit int) ([]model.Review, int64, error)
}

// MarketingFacade exposes newsletter, contact, and sell-request intake.
type MarketingFacade interface {
	Subscribe(ctx context.Context, email string) (*model.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	CreateCampaign(ctx context.Context, subject, body string) (*model.Campaign, error)
	SubmitContact(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error)
	Contacts(ctx context.Context, status string, page, limit int) ([]model.ContactMessage, int64, error)
	SubmitSellRequest(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error)
	SellRequests(ctx context.Context, page, limit int) ([]model.SellRequest, int64, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CheckoutFacade
	OrderFacade
	CatalogFacade
	CartFacade
	WishlistFacade
	ReviewFacade
	MarketingFacade
}
