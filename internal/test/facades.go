package test

import (
	"context"
	"sync"

	"github.com/tradewind/storefront/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, error)
	ProfileFn      func(context.Context, int64) (*model.User, error)
}

// Register returns a user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, fullName, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, fullName, password)
	}
	return &model.User{ID: 1, Email: email, FullName: fullName, Role: model.RoleUser}, "token", nil
}

// Authenticate returns a user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleUser}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Profile returns the configured account.
func (s AuthFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Email: "user@example.com", Role: model.RoleUser}, nil
}

// CheckoutFacadeStub provides controllable behaviour for checkout endpoints.
type CheckoutFacadeStub struct {
	CreateOrderFn   func(context.Context, int64, []model.LineItem) (*model.Order, error)
	ValidateOrderFn func(context.Context, string) (*model.ProviderOrder, error)
	CaptureOrderFn  func(context.Context, string) (*model.Order, error)
	RefundOrderFn   func(context.Context, string, float64, string) (*model.Order, error)
	CancelPaymentFn func(context.Context, string) (*model.Order, error)
}

// CreateOrder delegates to provided function or returns a CREATED order.
func (s CheckoutFacadeStub) CreateOrder(ctx context.Context, userID int64, items []model.LineItem) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, userID, items)
	}
	return &model.Order{ExternalID: "EXT-1", UserID: userID, Items: items, Status: model.OrderStatusCreated}, nil
}

// ValidateOrder reports provider approval.
func (s CheckoutFacadeStub) ValidateOrder(ctx context.Context, externalID string) (*model.ProviderOrder, error) {
	if s.ValidateOrderFn != nil {
		return s.ValidateOrderFn(ctx, externalID)
	}
	return &model.ProviderOrder{ExternalID: externalID, Status: model.ProviderOrderApproved}, nil
}

// CaptureOrder returns a COMPLETED order.
func (s CheckoutFacadeStub) CaptureOrder(ctx context.Context, externalID string) (*model.Order, error) {
	if s.CaptureOrderFn != nil {
		return s.CaptureOrderFn(ctx, externalID)
	}
	return &model.Order{ExternalID: externalID, Status: model.OrderStatusCompleted}, nil
}

// RefundOrder returns a REFUNDED order.
func (s CheckoutFacadeStub) RefundOrder(ctx context.Context, externalID string, amount float64, reason string) (*model.Order, error) {
	if s.RefundOrderFn != nil {
		return s.RefundOrderFn(ctx, externalID, amount, reason)
	}
	return &model.Order{ExternalID: externalID, Status: model.OrderStatusRefunded}, nil
}

// CancelPayment returns a CANCELLED order.
func (s CheckoutFacadeStub) CancelPayment(ctx context.Context, externalID string) (*model.Order, error) {
	if s.CancelPaymentFn != nil {
		return s.CancelPaymentFn(ctx, externalID)
	}
	return &model.Order{ExternalID: externalID, Status: model.OrderStatusCancelled}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn           func(context.Context, int64) ([]model.Order, error)
	OrderFn            func(context.Context, int64, string) (*model.Order, error)
	CancelOrderFn      func(context.Context, int64, string) (*model.Order, error)
	UpdateFulfilmentFn func(context.Context, string, model.OrderStatus, string) (*model.Order, error)
	OrderStatsFn       func(context.Context) ([]model.OrderStat, error)
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ExternalID: "EXT-1", UserID: userID, Status: model.OrderStatusCreated}}, nil
}

// Order returns one order.
func (s OrderFacadeStub) Order(ctx context.Context, userID int64, externalID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, externalID)
	}
	return &model.Order{ExternalID: externalID, UserID: userID, Status: model.OrderStatusCreated}, nil
}

// CancelOrder returns a CANCELLED order.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, userID int64, externalID string) (*model.Order, error) {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, userID, externalID)
	}
	return &model.Order{ExternalID: externalID, UserID: userID, Status: model.OrderStatusCancelled}, nil
}

// UpdateFulfilment applies the transition.
func (s OrderFacadeStub) UpdateFulfilment(ctx context.Context, externalID string, status model.OrderStatus, trackingNumber string) (*model.Order, error) {
	if s.UpdateFulfilmentFn != nil {
		return s.UpdateFulfilmentFn(ctx, externalID, status, trackingNumber)
	}
	return &model.Order{ExternalID: externalID, Status: status, TrackingNumber: trackingNumber}, nil
}

// OrderStats returns preconfigured aggregates.
func (s OrderFacadeStub) OrderStats(ctx context.Context) ([]model.OrderStat, error) {
	if s.OrderStatsFn != nil {
		return s.OrderStatsFn(ctx)
	}
	return []model.OrderStat{{Status: model.OrderStatusCompleted, Count: 1, TotalAmount: 10}}, nil
}

// CatalogFacadeStub serves catalogue endpoints in tests.
type CatalogFacadeStub struct {
	CreateProductFn func(context.Context, *model.Product, string) (*model.Product, error)
	ProductFn       func(context.Context, int64) (*model.Product, error)
	ProductsFn      func(context.Context, model.ProductFilter) ([]model.Product, int64, error)
}

// CreateProduct echoes the product back.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product *model.Product, categoryName string) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product, categoryName)
	}
	created := *product
	created.ID = 1
	created.CategoryName = categoryName
	return &created, nil
}

// Product returns one product.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "product", Price: 10}, nil
}

// Products returns a single-product page.
func (s CatalogFacadeStub) Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return []model.Product{{ID: 1, Name: "product", Price: 10}}, 1, nil
}

// CartFacadeStub serves cart endpoints in tests.
type CartFacadeStub struct {
	CartFn       func(context.Context, int64) (*model.Cart, error)
	AddFn        func(context.Context, int64, []model.CartItem) (*model.Cart, error)
	UpdateFn     func(context.Context, int64, int64, int) (*model.Cart, error)
	RemoveFn     func(context.Context, int64, int64) (*model.Cart, error)
	ClearFn      func(context.Context, int64) error
	ClearedUsers []int64
}

// Cart returns the configured cart.
func (s *CartFacadeStub) Cart(ctx context.Context, userID int64) (*model.Cart, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return &model.Cart{UserID: userID}, nil
}

// AddCartItems echoes items back.
func (s *CartFacadeStub) AddCartItems(ctx context.Context, userID int64, items []model.CartItem) (*model.Cart, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, items)
	}
	return &model.Cart{UserID: userID, Items: items}, nil
}

// UpdateCartItem sets one line.
func (s *CartFacadeStub) UpdateCartItem(ctx context.Context, userID, productID int64, quantity int) (*model.Cart, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, productID, quantity)
	}
	return &model.Cart{UserID: userID, Items: []model.CartItem{{ProductID: productID, Quantity: quantity}}}, nil
}

// RemoveCartItem drops one line.
func (s *CartFacadeStub) RemoveCartItem(ctx context.Context, userID, productID int64) (*model.Cart, error) {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	return &model.Cart{UserID: userID}, nil
}

// ClearCart records the cleared user.
func (s *CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	s.ClearedUsers = append(s.ClearedUsers, userID)
	return nil
}

// WishlistFacadeStub serves wishlist endpoints in tests.
type WishlistFacadeStub struct {
	ListFn   func(context.Context, int64) ([]model.WishlistEntry, error)
	AddFn    func(context.Context, int64, int64) error
	RemoveFn func(context.Context, int64, int64) error
	ClearFn  func(context.Context, int64) error
}

// Wishlist returns configured entries.
func (s WishlistFacadeStub) Wishlist(ctx context.Context, userID int64) ([]model.WishlistEntry, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.WishlistEntry{{ProductID: 1}}, nil
}

// AddToWishlist executes the override or succeeds.
func (s WishlistFacadeStub) AddToWishlist(ctx context.Context, userID, productID int64) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID)
	}
	return nil
}

// RemoveFromWishlist executes the override or succeeds.
func (s WishlistFacadeStub) RemoveFromWishlist(ctx context.Context, userID, productID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	return nil
}

// ClearWishlist executes the override or succeeds.
func (s WishlistFacadeStub) ClearWishlist(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// ReviewFacadeStub serves review endpoints in tests.
type ReviewFacadeStub struct {
	CreateFn func(context.Context, int64, int64, int, string) (*model.Review, error)
	UpdateFn func(context.Context, int64, int64, int64, int, string) (*model.Review, error)
	DeleteFn func(context.Context, int64, int64, int64) error
	ListFn   func(context.Context, int64, int, int) ([]model.Review, int64, error)
}

// CreateReview echoes the review back.
func (s ReviewFacadeStub) CreateReview(ctx context.Context, productID, userID int64, rating int, comment string) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, productID, userID, rating, comment)
	}
	return &model.Review{ID: 1, ProductID: productID, UserID: userID, Rating: rating, Comment: comment}, nil
}

// UpdateReview echoes the review back.
func (s ReviewFacadeStub) UpdateReview(ctx context.Context, productID, reviewID, userID int64, rating int, comment string) (*model.Review, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, productID, reviewID, userID, rating, comment)
	}
	return &model.Review{ID: reviewID, ProductID: productID, UserID: userID, Rating: rating, Comment: comment}, nil
}

// DeleteReview executes the override or succeeds.
func (s ReviewFacadeStub) DeleteReview(ctx context.Context, productID, reviewID, userID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, productID, reviewID, userID)
	}
	return nil
}

// ProductReviews returns configured reviews.
func (s ReviewFacadeStub) ProductReviews(ctx context.Context, productID int64, page, limit int) ([]model.Review, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, productID, page, limit)
	}
	return []model.Review{{ID: 1, ProductID: productID, Rating: 5}}, 1, nil
}

// MarketingFacadeStub serves marketing endpoints in tests.
type MarketingFacadeStub struct {
	SubscribeFn         func(context.Context, string) (*model.Subscriber, error)
	UnsubscribeFn       func(context.Context, string) error
	CreateCampaignFn    func(context.Context, string, string) (*model.Campaign, error)
	SubmitContactFn     func(context.Context, *model.ContactMessage) (*model.ContactMessage, error)
	ContactsFn          func(context.Context, string, int, int) ([]model.ContactMessage, int64, error)
	SubmitSellRequestFn func(context.Context, *model.SellRequest) (*model.SellRequest, error)
	SellRequestsFn      func(context.Context, int, int) ([]model.SellRequest, int64, error)
}

// Subscribe returns a subscriber.
func (s MarketingFacadeStub) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	if s.SubscribeFn != nil {
		return s.SubscribeFn(ctx, email)
	}
	return &model.Subscriber{ID: 1, Email: email, Subscribed: true}, nil
}

// Unsubscribe executes the override or succeeds.
func (s MarketingFacadeStub) Unsubscribe(ctx context.Context, email string) error {
	if s.UnsubscribeFn != nil {
		return s.UnsubscribeFn(ctx, email)
	}
	return nil
}

// CreateCampaign returns a pending campaign.
func (s MarketingFacadeStub) CreateCampaign(ctx context.Context, subject, body string) (*model.Campaign, error) {
	if s.CreateCampaignFn != nil {
		return s.CreateCampaignFn(ctx, subject, body)
	}
	return &model.Campaign{ID: 1, Subject: subject, Body: body, Status: model.CampaignStatusPending}, nil
}

// SubmitContact echoes the message back.
func (s MarketingFacadeStub) SubmitContact(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	if s.SubmitContactFn != nil {
		return s.SubmitContactFn(ctx, msg)
	}
	stored := *msg
	stored.ID = 1
	return &stored, nil
}

// Contacts returns configured messages.
func (s MarketingFacadeStub) Contacts(ctx context.Context, status string, page, limit int) ([]model.ContactMessage, int64, error) {
	if s.ContactsFn != nil {
		return s.ContactsFn(ctx, status, page, limit)
	}
	return nil, 0, nil
}

// SubmitSellRequest echoes the request back.
func (s MarketingFacadeStub) SubmitSellRequest(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error) {
	if s.SubmitSellRequestFn != nil {
		return s.SubmitSellRequestFn(ctx, req)
	}
	stored := *req
	stored.ID = 1
	return &stored, nil
}

// SellRequests returns configured requests.
func (s MarketingFacadeStub) SellRequests(ctx context.Context, page, limit int) ([]model.SellRequest, int64, error) {
	if s.SellRequestsFn != nil {
		return s.SellRequestsFn(ctx, page, limit)
	}
	return nil, 0, nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CheckoutFacadeStub
	OrderFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	WishlistFacadeStub
	ReviewFacadeStub
	MarketingFacadeStub
}

// WorkerFacadeStub mimics worker interactions with the marketing facade.
type WorkerFacadeStub struct {
	CampaignBatches [][]model.Campaign
	CampaignsFn     func(context.Context, int) ([]model.Campaign, error)
	SubscribersFn   func(context.Context, int, int) ([]model.Subscriber, error)
	MarkEmailedFn   func(context.Context, []string) error
	MarkSentFn      func(context.Context, int64) error
	PublishFn       func(context.Context, model.EmailMessage) error

	SubscriberList []model.Subscriber
	Published      []model.EmailMessage
	Emailed        [][]string
	Sent           []int64

	mu        sync.Mutex
	callCount int
}

// CampaignsForDispatch returns the next configured batch.
func (s *WorkerFacadeStub) CampaignsForDispatch(ctx context.Context, limit int) ([]model.Campaign, error) {
	if s.CampaignsFn != nil {
		return s.CampaignsFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.callCount >= len(s.CampaignBatches) {
		return nil, nil
	}
	batch := s.CampaignBatches[s.callCount]
	s.callCount++
	return batch, nil
}

// Subscribers pages the configured slice.
func (s *WorkerFacadeStub) Subscribers(ctx context.Context, offset, limit int) ([]model.Subscriber, error) {
	if s.SubscribersFn != nil {
		return s.SubscribersFn(ctx, offset, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if offset >= len(s.SubscriberList) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.SubscriberList) {
		end = len(s.SubscriberList)
	}
	return s.SubscriberList[offset:end], nil
}

// MarkEmailed records the batch.
func (s *WorkerFacadeStub) MarkEmailed(ctx context.Context, emails []string) error {
	if s.MarkEmailedFn != nil {
		return s.MarkEmailedFn(ctx, emails)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Emailed = append(s.Emailed, emails)
	return nil
}

// MarkCampaignSent records the campaign.
func (s *WorkerFacadeStub) MarkCampaignSent(ctx context.Context, campaignID int64) error {
	if s.MarkSentFn != nil {
		return s.MarkSentFn(ctx, campaignID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, campaignID)
	return nil
}

// PublishMail records the message.
func (s *WorkerFacadeStub) PublishMail(ctx context.Context, msg model.EmailMessage) error {
	if s.PublishFn != nil {
		return s.PublishFn(ctx, msg)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Published = append(s.Published, msg)
	return nil
}

// Lock guards direct access to the recorded slices.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases the guard taken by Lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// SentCount reports recorded campaign completions.
func (s *WorkerFacadeStub) SentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Sent)
}

// PublishedCount reports recorded mail messages.
func (s *WorkerFacadeStub) PublishedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Published)
}
