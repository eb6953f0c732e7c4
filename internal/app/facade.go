package app

import (
	"context"

	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/usecase"
)

// CommerceFacade aggregates the application use cases behind a single
// surface consumed by HTTP handlers and the newsletter worker.
type CommerceFacade struct {
	auth      *usecase.AuthUseCase
	checkout  *usecase.CheckoutUseCase
	orders    *usecase.OrderUseCase
	catalog   *usecase.CatalogUseCase
	cart      *usecase.CartUseCase
	wishlist  *usecase.WishlistUseCase
	reviews   *usecase.ReviewUseCase
	marketing *usecase.MarketingUseCase
}

func NewCommerceFacade(
	auth *usecase.AuthUseCase,
	checkout *usecase.CheckoutUseCase,
	orders *usecase.OrderUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	wishlist *usecase.WishlistUseCase,
	reviews *usecase.ReviewUseCase,
	marketing *usecase.MarketingUseCase,
) *CommerceFacade {
	return &CommerceFacade{
		auth:      auth,
		checkout:  checkout,
		orders:    orders,
		catalog:   catalog,
		cart:      cart,
		wishlist:  wishlist,
		reviews:   reviews,
		marketing: marketing,
	}
}

func (f *CommerceFacade) Register(ctx context.Context, email, fullName, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, fullName, password)
}

func (f *CommerceFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *CommerceFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *CommerceFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.Profile(ctx, userID)
}

func (f *CommerceFacade) CreateOrder(ctx context.Context, userID int64, items []model.LineItem) (*model.Order, error) {
	return f.checkout.CreateOrder(ctx, userID, items)
}

func (f *CommerceFacade) ValidateOrder(ctx context.Context, externalID string) (*model.ProviderOrder, error) {
	return f.checkout.ValidateForCapture(ctx, externalID)
}

func (f *CommerceFacade) CaptureOrder(ctx context.Context, externalID string) (*model.Order, error) {
	return f.checkout.CaptureOrder(ctx, externalID)
}

func (f *CommerceFacade) RefundOrder(ctx context.Context, externalID string, amount float64, reason string) (*model.Order, error) {
	return f.checkout.RefundOrder(ctx, externalID, amount, reason)
}

func (f *CommerceFacade) CancelPayment(ctx context.Context, externalID string) (*model.Order, error) {
	return f.checkout.CancelOrder(ctx, externalID)
}

func (f *CommerceFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *CommerceFacade) Order(ctx context.Context, userID int64, externalID string) (*model.Order, error) {
	return f.orders.GetForUser(ctx, userID, externalID)
}

func (f *CommerceFacade) CancelOrder(ctx context.Context, userID int64, externalID string) (*model.Order, error) {
	return f.orders.CancelByOwner(ctx, userID, externalID)
}

func (f *CommerceFacade) UpdateFulfilment(ctx context.Context, externalID string, status model.OrderStatus, trackingNumber string) (*model.Order, error) {
	return f.orders.UpdateFulfilment(ctx, externalID, status, trackingNumber)
}

func (f *CommerceFacade) OrderStats(ctx context.Context) ([]model.OrderStat, error) {
	return f.orders.Stats(ctx)
}

func (f *CommerceFacade) CreateProduct(ctx context.Context, product *model.Product, categoryName string) (*model.Product, error) {
	return f.catalog.Create(ctx, product, categoryName)
}

func (f *CommerceFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.GetByID(ctx, id)
}

func (f *CommerceFacade) Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	return f.catalog.List(ctx, filter)
}

func (f *CommerceFacade) Cart(ctx context.Context, userID int64) (*model.Cart, error) {
	return f.cart.Get(ctx, userID)
}

func (f *CommerceFacade) AddCartItems(ctx context.Context, userID int64, items []model.CartItem) (*model.Cart, error) {
	return f.cart.AddItems(ctx, userID, items)
}

func (f *CommerceFacade) UpdateCartItem(ctx context.Context, userID, productID int64, quantity int) (*model.Cart, error) {
	return f.cart.UpdateItem(ctx, userID, productID, quantity)
}

func (f *CommerceFacade) RemoveCartItem(ctx context.Context, userID, productID int64) (*model.Cart, error) {
	return f.cart.RemoveItem(ctx, userID, productID)
}

func (f *CommerceFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

func (f *CommerceFacade) Wishlist(ctx context.Context, userID int64) ([]model.WishlistEntry, error) {
	return f.wishlist.List(ctx, userID)
}

func (f *CommerceFacade) AddToWishlist(ctx context.Context, userID, productID int64) error {
	return f.wishlist.Add(ctx, userID, productID)
}

func (f *CommerceFacade) RemoveFromWishlist(ctx context.Context, userID, productID int64) error {
	return f.wishlist.Remove(ctx, userID, productID)
}

func (f *CommerceFacade) ClearWishlist(ctx context.Context, userID int64) error {
	return f.wishlist.Clear(ctx, userID)
}

func (f *CommerceFacade) CreateReview(ctx context.Context, productID, userID int64, rating int, comment string) (*model.Review, error) {
	return f.reviews.Create(ctx, productID, userID, rating, comment)
}

func (f *CommerceFacade) UpdateReview(ctx context.Context, productID, reviewID, userID int64, rating int, comment string) (*model.Review, error) {
	return f.reviews.Update(ctx, productID, reviewID, userID, rating, comment)
}

func (f *CommerceFacade) DeleteReview(ctx context.Context, productID, reviewID, userID int64) error {
	return f.reviews.Delete(ctx, productID, reviewID, userID)
}

func (f *CommerceFacade) ProductReviews(ctx context.Context, productID int64, page, limit int) ([]model.Review, int64, error) {
	return f.reviews.ListByProduct(ctx, productID, page, limit)
}

func (f *CommerceFacade) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	return f.marketing.Subscribe(ctx, email)
}

func (f *CommerceFacade) Unsubscribe(ctx context.Context, email string) error {
	return f.marketing.Unsubscribe(ctx, email)
}

func (f *CommerceFacade) CreateCampaign(ctx context.Context, subject, body string) (*model.Campaign, error) {
	return f.marketing.CreateCampaign(ctx, subject, body)
}

func (f *CommerceFacade) SubmitContact(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	return f.marketing.SubmitContact(ctx, msg)
}

func (f *CommerceFacade) Contacts(ctx context.Context, status string, page, limit int) ([]model.ContactMessage, int64, error) {
	return f.marketing.ListContacts(ctx, status, page, limit)
}

func (f *CommerceFacade) SubmitSellRequest(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error) {
	return f.marketing.SubmitSellRequest(ctx, req)
}

func (f *CommerceFacade) SellRequests(ctx context.Context, page, limit int) ([]model.SellRequest, int64, error) {
	return f.marketing.ListSellRequests(ctx, page, limit)
}

func (f *CommerceFacade) CampaignsForDispatch(ctx context.Context, limit int) ([]model.Campaign, error) {
	return f.marketing.CampaignsForDispatch(ctx, limit)
}

func (f *CommerceFacade) Subscribers(ctx context.Context, offset, limit int) ([]model.Subscriber, error) {
	return f.marketing.Subscribers(ctx, offset, limit)
}

func (f *CommerceFacade) MarkEmailed(ctx context.Context, emails []string) error {
	return f.marketing.MarkEmailed(ctx, emails)
}

func (f *CommerceFacade) MarkCampaignSent(ctx context.Context, campaignID int64) error {
	return f.marketing.MarkCampaignSent(ctx, campaignID)
}

func (f *CommerceFacade) PublishMail(ctx context.Context, msg model.EmailMessage) error {
	return f.marketing.PublishMail(ctx, msg)
}
