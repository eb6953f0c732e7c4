package test

import (
	"context"
	"encoding/json"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, fullName, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, FullName: fullName, PasswordHash: passwordHash, Role: model.RoleUser}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderStatusCall records one status update invocation.
type OrderStatusCall struct {
	ExternalID string
	Status     model.OrderStatus
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn          func(context.Context, *model.Order) (*model.Order, error)
	GetByExternalIDFn func(context.Context, string) (*model.Order, error)
	ListByUserFn      func(context.Context, int64) ([]model.Order, error)
	UpdateStatusFn    func(context.Context, string, model.OrderStatus) error
	SetCapturedFn     func(context.Context, string, json.RawMessage) error
	AppendRefundFn    func(context.Context, string, model.Refund) error
	SetFulfilmentFn   func(context.Context, string, model.OrderStatus, string) error
	StatsByStatusFn   func(context.Context) ([]model.OrderStat, error)

	Orders       map[string]*model.Order
	Created      []*model.Order
	StatusCalls  []OrderStatusCall
	RefundCalls  []model.Refund
	CaptureCalls []string
	Stats        []model.OrderStat
}

// NewOrderRepositoryStub constructs stub repository with an initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

// Create stores the order keyed by external id.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	stored := *order
	stored.ID = int64(len(s.Orders) + 1)
	s.Orders[order.ExternalID] = &stored
	s.Created = append(s.Created, &stored)
	return &stored, nil
}

// GetByExternalID returns a copy of a stored order.
func (s *OrderRepositoryStub) GetByExternalID(ctx context.Context, externalID string) (*model.Order, error) {
	if s.GetByExternalIDFn != nil {
		return s.GetByExternalIDFn(ctx, externalID)
	}
	if order, ok := s.Orders[externalID]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser filters stored orders by owner.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var orders []model.Order
	for _, order := range s.Orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

// UpdateStatus records update invocations and mutates stored state.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, externalID string, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, externalID, status)
	}
	s.StatusCalls = append(s.StatusCalls, OrderStatusCall{ExternalID: externalID, Status: status})
	order, ok := s.Orders[externalID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = status
	return nil
}

// SetCaptured marks the order COMPLETED with the provider payload.
func (s *OrderRepositoryStub) SetCaptured(ctx context.Context, externalID string, details json.RawMessage) error {
	if s.SetCapturedFn != nil {
		return s.SetCapturedFn(ctx, externalID, details)
	}
	s.CaptureCalls = append(s.CaptureCalls, externalID)
	order, ok := s.Orders[externalID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = model.OrderStatusCompleted
	order.PaymentDetails = details
	return nil
}

// AppendRefund records the refund and flips the order to REFUNDED.
func (s *OrderRepositoryStub) AppendRefund(ctx context.Context, externalID string, refund model.Refund) error {
	if s.AppendRefundFn != nil {
		return s.AppendRefundFn(ctx, externalID, refund)
	}
	s.RefundCalls = append(s.RefundCalls, refund)
	order, ok := s.Orders[externalID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Refunds = append(order.Refunds, refund)
	order.Status = model.OrderStatusRefunded
	return nil
}

// SetFulfilment applies a fulfilment transition.
func (s *OrderRepositoryStub) SetFulfilment(ctx context.Context, externalID string, status model.OrderStatus, trackingNumber string) error {
	if s.SetFulfilmentFn != nil {
		return s.SetFulfilmentFn(ctx, externalID, status, trackingNumber)
	}
	order, ok := s.Orders[externalID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = status
	if trackingNumber != "" {
		order.TrackingNumber = trackingNumber
	}
	return nil
}

// StatsByStatus returns configured aggregates.
func (s *OrderRepositoryStub) StatsByStatus(ctx context.Context) ([]model.OrderStat, error) {
	if s.StatsByStatusFn != nil {
		return s.StatsByStatusFn(ctx)
	}
	return s.Stats, nil
}

// ProductRepositoryStub serves catalogue data from a map.
type ProductRepositoryStub struct {
	CreateFn  func(context.Context, *model.Product, string) (*model.Product, error)
	GetByIDFn func(context.Context, int64) (*model.Product, error)
	GetManyFn func(context.Context, []int64) ([]model.Product, error)
	ListFn    func(context.Context, model.ProductFilter) ([]model.Product, int64, error)

	Products map[int64]*model.Product
}

// NewProductRepositoryStub constructs stub repository with an initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product)}
}

// Create stores the product.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product, categoryName string) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product, categoryName)
	}
	stored := *product
	stored.ID = int64(len(s.Products) + 1)
	stored.CategoryName = categoryName
	s.Products[stored.ID] = &stored
	return &stored, nil
}

// GetByID returns a stored product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if product, ok := s.Products[id]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetMany returns the products matching the supplied ids.
func (s *ProductRepositoryStub) GetMany(ctx context.Context, ids []int64) ([]model.Product, error) {
	if s.GetManyFn != nil {
		return s.GetManyFn(ctx, ids)
	}
	var products []model.Product
	for _, id := range ids {
		if product, ok := s.Products[id]; ok {
			products = append(products, *product)
		}
	}
	return products, nil
}

// List returns all stored products.
func (s *ProductRepositoryStub) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	var products []model.Product
	for _, product := range s.Products {
		products = append(products, *product)
	}
	return products, int64(len(products)), nil
}

// ReviewRepositoryStub lets tests control review persistence.
type ReviewRepositoryStub struct {
	CreateFn        func(context.Context, *model.Review) (*model.Review, error)
	UpdateFn        func(context.Context, *model.Review) (*model.Review, error)
	DeleteFn        func(context.Context, int64, int64, int64) error
	ListByProductFn func(context.Context, int64, int, int) ([]model.Review, int64, error)

	Created []*model.Review
	Items   []model.Review
}

// Create tracks invocations and echoes the review back.
func (s *ReviewRepositoryStub) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, review)
	}
	stored := *review
	stored.ID = int64(len(s.Created) + 1)
	s.Created = append(s.Created, &stored)
	return &stored, nil
}

// Update echoes the review back.
func (s *ReviewRepositoryStub) Update(ctx context.Context, review *model.Review) (*model.Review, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, review)
	}
	return review, nil
}

// Delete executes the override or succeeds.
func (s *ReviewRepositoryStub) Delete(ctx context.Context, productID, reviewID, userID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, productID, reviewID, userID)
	}
	return nil
}

// ListByProduct returns the configured slice.
func (s *ReviewRepositoryStub) ListByProduct(ctx context.Context, productID int64, page, limit int) ([]model.Review, int64, error) {
	if s.ListByProductFn != nil {
		return s.ListByProductFn(ctx, productID, page, limit)
	}
	return s.Items, int64(len(s.Items)), nil
}

// WishlistRepositoryStub keeps wishlist membership in-memory.
type WishlistRepositoryStub struct {
	AddFn      func(context.Context, int64, int64) error
	RemoveFn   func(context.Context, int64, int64) error
	ClearFn    func(context.Context, int64) error
	ListFn     func(context.Context, int64) ([]model.WishlistEntry, error)
	ContainsFn func(context.Context, int64, int64) (bool, error)

	Items map[int64][]int64
}

// NewWishlistRepositoryStub constructs stub repository with an initialized map.
func NewWishlistRepositoryStub() *WishlistRepositoryStub {
	return &WishlistRepositoryStub{Items: make(map[int64][]int64)}
}

// Add records membership, rejecting duplicates.
func (s *WishlistRepositoryStub) Add(ctx context.Context, userID, productID int64) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID)
	}
	for _, id := range s.Items[userID] {
		if id == productID {
			return domainErrors.ErrAlreadyExists
		}
	}
	s.Items[userID] = append(s.Items[userID], productID)
	return nil
}

// Remove drops membership or reports not found.
func (s *WishlistRepositoryStub) Remove(ctx context.Context, userID, productID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	items := s.Items[userID]
	for i, id := range items {
		if id == productID {
			s.Items[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Clear empties the stored wishlist.
func (s *WishlistRepositoryStub) Clear(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	delete(s.Items, userID)
	return nil
}

// List returns stored membership as entries.
func (s *WishlistRepositoryStub) List(ctx context.Context, userID int64) ([]model.WishlistEntry, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	var entries []model.WishlistEntry
	for _, id := range s.Items[userID] {
		entries = append(entries, model.WishlistEntry{ProductID: id})
	}
	return entries, nil
}

// Contains reports stored membership.
func (s *WishlistRepositoryStub) Contains(ctx context.Context, userID, productID int64) (bool, error) {
	if s.ContainsFn != nil {
		return s.ContainsFn(ctx, userID, productID)
	}
	for _, id := range s.Items[userID] {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

// CartRepositoryStub lets tests observe cart mutations.
type CartRepositoryStub struct {
	AddItemsFn   func(context.Context, int64, []model.CartItem) (*model.Cart, error)
	UpdateItemFn func(context.Context, int64, int64, int) (*model.Cart, error)
	RemoveItemFn func(context.Context, int64, int64) (*model.Cart, error)
	GetFn        func(context.Context, int64) (*model.Cart, error)
	ClearFn      func(context.Context, int64) error

	AddedItems []model.CartItem
	Cart       *model.Cart
}

// AddItems records the merged items and returns the configured cart.
func (s *CartRepositoryStub) AddItems(ctx context.Context, userID int64, items []model.CartItem) (*model.Cart, error) {
	if s.AddItemsFn != nil {
		return s.AddItemsFn(ctx, userID, items)
	}
	s.AddedItems = append(s.AddedItems, items...)
	if s.Cart != nil {
		return s.Cart, nil
	}
	return &model.Cart{UserID: userID, Items: items}, nil
}

// UpdateItem returns the configured cart.
func (s *CartRepositoryStub) UpdateItem(ctx context.Context, userID, productID int64, quantity int) (*model.Cart, error) {
	if s.UpdateItemFn != nil {
		return s.UpdateItemFn(ctx, userID, productID, quantity)
	}
	if s.Cart != nil {
		return s.Cart, nil
	}
	return &model.Cart{UserID: userID}, nil
}

// RemoveItem returns the configured cart.
func (s *CartRepositoryStub) RemoveItem(ctx context.Context, userID, productID int64) (*model.Cart, error) {
	if s.RemoveItemFn != nil {
		return s.RemoveItemFn(ctx, userID, productID)
	}
	if s.Cart != nil {
		return s.Cart, nil
	}
	return &model.Cart{UserID: userID}, nil
}

// Get returns the configured cart or an empty one.
func (s *CartRepositoryStub) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID)
	}
	if s.Cart != nil {
		return s.Cart, nil
	}
	return &model.Cart{UserID: userID}, nil
}

// Clear executes the override or succeeds.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// MarketingRepositoryStub lets tests control marketing collections.
type MarketingRepositoryStub struct {
	SubscribeFn                  func(context.Context, string) (*model.Subscriber, error)
	UnsubscribeFn                func(context.Context, string) error
	SubscribersFn                func(context.Context, int, int) ([]model.Subscriber, error)
	MarkEmailedFn                func(context.Context, []string) error
	CreateCampaignFn             func(context.Context, string, string) (*model.Campaign, error)
	SelectCampaignsForDispatchFn func(context.Context, int) ([]model.Campaign, error)
	MarkCampaignSentFn           func(context.Context, int64) error
	CreateContactFn              func(context.Context, *model.ContactMessage) (*model.ContactMessage, error)
	ListContactsFn               func(context.Context, string, int, int) ([]model.ContactMessage, int64, error)
	CreateSellRequestFn          func(context.Context, *model.SellRequest) (*model.SellRequest, error)
	ListSellRequestsFn           func(context.Context, int, int) ([]model.SellRequest, int64, error)

	SubscriberList []model.Subscriber
	Campaigns      []model.Campaign
	EmailedCalls   [][]string
	SentCampaigns  []int64
}

// Subscribe returns a subscriber for the supplied email.
func (s *MarketingRepositoryStub) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	if s.SubscribeFn != nil {
		return s.SubscribeFn(ctx, email)
	}
	return &model.Subscriber{ID: 1, Email: email, Subscribed: true}, nil
}

// Unsubscribe executes the override or succeeds.
func (s *MarketingRepositoryStub) Unsubscribe(ctx context.Context, email string) error {
	if s.UnsubscribeFn != nil {
		return s.UnsubscribeFn(ctx, email)
	}
	return nil
}

// Subscribers pages the configured slice.
func (s *MarketingRepositoryStub) Subscribers(ctx context.Context, offset, limit int) ([]model.Subscriber, error) {
	if s.SubscribersFn != nil {
		return s.SubscribersFn(ctx, offset, limit)
	}
	if offset >= len(s.SubscriberList) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.SubscriberList) {
		end = len(s.SubscriberList)
	}
	return s.SubscriberList[offset:end], nil
}

// MarkEmailed records the batch of addresses.
func (s *MarketingRepositoryStub) MarkEmailed(ctx context.Context, emails []string) error {
	if s.MarkEmailedFn != nil {
		return s.MarkEmailedFn(ctx, emails)
	}
	s.EmailedCalls = append(s.EmailedCalls, emails)
	return nil
}

// CreateCampaign returns a pending campaign.
func (s *MarketingRepositoryStub) CreateCampaign(ctx context.Context, subject, body string) (*model.Campaign, error) {
	if s.CreateCampaignFn != nil {
		return s.CreateCampaignFn(ctx, subject, body)
	}
	campaign := model.Campaign{ID: int64(len(s.Campaigns) + 1), Subject: subject, Body: body, Status: model.CampaignStatusPending}
	s.Campaigns = append(s.Campaigns, campaign)
	return &campaign, nil
}

// SelectCampaignsForDispatch returns the configured campaigns.
func (s *MarketingRepositoryStub) SelectCampaignsForDispatch(ctx context.Context, limit int) ([]model.Campaign, error) {
	if s.SelectCampaignsForDispatchFn != nil {
		return s.SelectCampaignsForDispatchFn(ctx, limit)
	}
	if limit > len(s.Campaigns) {
		limit = len(s.Campaigns)
	}
	return s.Campaigns[:limit], nil
}

// MarkCampaignSent records the campaign identifier.
func (s *MarketingRepositoryStub) MarkCampaignSent(ctx context.Context, campaignID int64) error {
	if s.MarkCampaignSentFn != nil {
		return s.MarkCampaignSentFn(ctx, campaignID)
	}
	s.SentCampaigns = append(s.SentCampaigns, campaignID)
	return nil
}

// CreateContact echoes the message back with an identifier.
func (s *MarketingRepositoryStub) CreateContact(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	if s.CreateContactFn != nil {
		return s.CreateContactFn(ctx, msg)
	}
	stored := *msg
	stored.ID = 1
	stored.Status = "new"
	return &stored, nil
}

// ListContacts returns the override result or nothing.
func (s *MarketingRepositoryStub) ListContacts(ctx context.Context, status string, page, limit int) ([]model.ContactMessage, int64, error) {
	if s.ListContactsFn != nil {
		return s.ListContactsFn(ctx, status, page, limit)
	}
	return nil, 0, nil
}

// CreateSellRequest echoes the request back with an identifier.
func (s *MarketingRepositoryStub) CreateSellRequest(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error) {
	if s.CreateSellRequestFn != nil {
		return s.CreateSellRequestFn(ctx, req)
	}
	stored := *req
	stored.ID = 1
	stored.Status = "pending"
	return &stored, nil
}

// ListSellRequests returns the override result or nothing.
func (s *MarketingRepositoryStub) ListSellRequests(ctx context.Context, page, limit int) ([]model.SellRequest, int64, error) {
	if s.ListSellRequestsFn != nil {
		return s.ListSellRequestsFn(ctx, page, limit)
	}
	return nil, 0, nil
}
