package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	testhelpers "github.com/tradewind/storefront/internal/test"
	"github.com/tradewind/storefront/internal/usecase"
)

type facadeStubs struct {
	users     *testhelpers.UserRepositoryStub
	orders    *testhelpers.OrderRepositoryStub
	products  *testhelpers.ProductRepositoryStub
	reviews   *testhelpers.ReviewRepositoryStub
	wishlist  *testhelpers.WishlistRepositoryStub
	cart      *testhelpers.CartRepositoryStub
	marketing *testhelpers.MarketingRepositoryStub
	provider  *testhelpers.PaymentProviderStub
	mail      *testhelpers.MailPublisherStub
}

func newFacade() (*CommerceFacade, *facadeStubs) {
	stubs := &facadeStubs{
		users:     testhelpers.NewUserRepositoryStub(),
		orders:    testhelpers.NewOrderRepositoryStub(),
		products:  testhelpers.NewProductRepositoryStub(),
		reviews:   &testhelpers.ReviewRepositoryStub{},
		wishlist:  testhelpers.NewWishlistRepositoryStub(),
		cart:      &testhelpers.CartRepositoryStub{},
		marketing: &testhelpers.MarketingRepositoryStub{},
		provider:  &testhelpers.PaymentProviderStub{},
		mail:      &testhelpers.MailPublisherStub{},
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}

	facade := NewCommerceFacade(
		usecase.NewAuthUseCase(stubs.users, testhelpers.HasherStub{}, strategy),
		usecase.NewCheckoutUseCase(stubs.orders, stubs.products, stubs.provider, "USD"),
		usecase.NewOrderUseCase(stubs.orders),
		usecase.NewCatalogUseCase(stubs.products),
		usecase.NewCartUseCase(stubs.cart),
		usecase.NewWishlistUseCase(stubs.wishlist),
		usecase.NewReviewUseCase(stubs.reviews),
		usecase.NewMarketingUseCase(stubs.marketing, stubs.mail, logger, "admin@shop.test"),
	)
	return facade, stubs
}

func TestCommerceFacadeAuth(t *testing.T) {
	facade, stubs := newFacade()

	user, token, err := facade.Register(context.Background(), "a@b.c", "Ada", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" || user.Email != "a@b.c" {
		t.Fatalf("unexpected register result: user=%+v token=%q", user, token)
	}

	stored, err := stubs.users.GetByEmail(context.Background(), "a@b.c")
	if err != nil || stored.FullName != "Ada" {
		t.Fatalf("user not stored: %+v err=%v", stored, err)
	}

	user, token, err = facade.Authenticate(context.Background(), "a@b.c", "pass")
	if err != nil || token != "token" || user.ID != stored.ID {
		t.Fatalf("unexpected authenticate result: user=%+v token=%q err=%v", user, token, err)
	}

	id, err := facade.ParseToken("anything")
	if err != nil || id != 99 {
		t.Fatalf("unexpected parse result: id=%d err=%v", id, err)
	}

	profile, err := facade.Profile(context.Background(), stored.ID)
	if err != nil || profile.Email != "a@b.c" {
		t.Fatalf("unexpected profile: %+v err=%v", profile, err)
	}
}

func TestCommerceFacadeCheckout(t *testing.T) {
	facade, stubs := newFacade()
	stubs.products.Products[1] = &model.Product{ID: 1, Name: "desk lamp", Price: 10}

	order, err := facade.CreateOrder(context.Background(), 7, []model.LineItem{{ProductID: 1, Quantity: 2, UnitPrice: 10}})
	if err != nil {
		t.Fatalf("create order returned error: %v", err)
	}
	if order.ExternalID != "EXT-1" || order.Status != model.OrderStatusCreated || order.TotalAmount != 20 {
		t.Fatalf("unexpected order: %+v", order)
	}

	providerOrder, err := facade.ValidateOrder(context.Background(), "EXT-1")
	if err != nil || providerOrder.Status != model.ProviderOrderApproved {
		t.Fatalf("unexpected validation result: %+v err=%v", providerOrder, err)
	}

	captured, err := facade.CaptureOrder(context.Background(), "EXT-1")
	if err != nil {
		t.Fatalf("capture returned error: %v", err)
	}
	if captured.Status != model.OrderStatusCompleted || captured.CaptureID() != "CAP-1" {
		t.Fatalf("unexpected captured order: %+v", captured)
	}

	refunded, err := facade.RefundOrder(context.Background(), "EXT-1", 5, "damaged")
	if err != nil {
		t.Fatalf("refund returned error: %v", err)
	}
	if refunded.Status != model.OrderStatusRefunded || len(stubs.provider.RefundCalls) != 1 {
		t.Fatalf("unexpected refunded order: %+v", refunded)
	}
	if stubs.provider.RefundCalls[0].CaptureID != "CAP-1" {
		t.Fatalf("unexpected refund call: %+v", stubs.provider.RefundCalls[0])
	}

	if _, err := facade.CancelPayment(context.Background(), "EXT-1"); !errors.Is(err, domainErrors.ErrNotCancellable) {
		t.Fatalf("expected not cancellable after refund, got %v", err)
	}
}

func TestCommerceFacadeOrders(t *testing.T) {
	facade, stubs := newFacade()
	stubs.orders.Orders["EXT-1"] = &model.Order{ID: 1, ExternalID: "EXT-1", UserID: 7, Status: model.OrderStatusCompleted}
	stubs.orders.Orders["EXT-2"] = &model.Order{ID: 2, ExternalID: "EXT-2", UserID: 7, Status: model.OrderStatusCreated}
	stubs.orders.Stats = []model.OrderStat{{Status: model.OrderStatusCompleted, Count: 1, TotalAmount: 20}}

	listed, err := facade.Orders(context.Background(), 7)
	if err != nil || len(listed) != 2 {
		t.Fatalf("expected two orders, got %v err=%v", listed, err)
	}

	order, err := facade.Order(context.Background(), 7, "EXT-1")
	if err != nil || order.ExternalID != "EXT-1" {
		t.Fatalf("unexpected order: %+v err=%v", order, err)
	}
	if _, err := facade.Order(context.Background(), 8, "EXT-1"); !errors.Is(err, domainErrors.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}

	cancelled, err := facade.CancelOrder(context.Background(), 7, "EXT-2")
	if err != nil || cancelled.Status != model.OrderStatusCancelled {
		t.Fatalf("unexpected cancel result: %+v err=%v", cancelled, err)
	}

	shipped, err := facade.UpdateFulfilment(context.Background(), "EXT-1", model.OrderStatusShipped, "TRK-1")
	if err != nil || shipped.Status != model.OrderStatusShipped || shipped.TrackingNumber != "TRK-1" {
		t.Fatalf("unexpected fulfilment result: %+v err=%v", shipped, err)
	}

	stats, err := facade.OrderStats(context.Background())
	if err != nil || len(stats) != 1 || stats[0].Count != 1 {
		t.Fatalf("unexpected stats: %v err=%v", stats, err)
	}
}

func TestCommerceFacadeCatalog(t *testing.T) {
	facade, _ := newFacade()

	created, err := facade.CreateProduct(context.Background(), &model.Product{Name: "desk lamp", Price: 10, Stock: 3}, "lighting")
	if err != nil || created.ID == 0 || created.CategoryName != "lighting" {
		t.Fatalf("unexpected product: %+v err=%v", created, err)
	}

	fetched, err := facade.Product(context.Background(), created.ID)
	if err != nil || fetched.Name != "desk lamp" {
		t.Fatalf("unexpected product: %+v err=%v", fetched, err)
	}

	products, total, err := facade.Products(context.Background(), model.ProductFilter{})
	if err != nil || total != 1 || len(products) != 1 {
		t.Fatalf("unexpected list: total=%d products=%v err=%v", total, products, err)
	}
}

func TestCommerceFacadeCart(t *testing.T) {
	facade, stubs := newFacade()

	cart, err := facade.AddCartItems(context.Background(), 7, []model.CartItem{{ProductID: 1, Quantity: 2}})
	if err != nil || len(cart.Items) != 1 || len(stubs.cart.AddedItems) != 1 {
		t.Fatalf("unexpected cart: %+v err=%v", cart, err)
	}

	if _, err := facade.UpdateCartItem(context.Background(), 7, 1, 3); err != nil {
		t.Fatalf("update item returned error: %v", err)
	}
	if _, err := facade.RemoveCartItem(context.Background(), 7, 1); err != nil {
		t.Fatalf("remove item returned error: %v", err)
	}
	if _, err := facade.Cart(context.Background(), 7); err != nil {
		t.Fatalf("cart returned error: %v", err)
	}
	if err := facade.ClearCart(context.Background(), 7); err != nil {
		t.Fatalf("clear returned error: %v", err)
	}
}

func TestCommerceFacadeWishlist(t *testing.T) {
	facade, _ := newFacade()

	if err := facade.AddToWishlist(context.Background(), 7, 5); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if err := facade.AddToWishlist(context.Background(), 7, 5); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}

	entries, err := facade.Wishlist(context.Background(), 7)
	if err != nil || len(entries) != 1 || entries[0].ProductID != 5 {
		t.Fatalf("unexpected wishlist: %v err=%v", entries, err)
	}

	if err := facade.RemoveFromWishlist(context.Background(), 7, 5); err != nil {
		t.Fatalf("remove returned error: %v", err)
	}
	if err := facade.ClearWishlist(context.Background(), 7); err != nil {
		t.Fatalf("clear returned error: %v", err)
	}
}

func TestCommerceFacadeReviews(t *testing.T) {
	facade, stubs := newFacade()
	stubs.reviews.Items = []model.Review{{ID: 1, ProductID: 5, Rating: 4}}

	review, err := facade.CreateReview(context.Background(), 5, 7, 4, "solid")
	if err != nil || review.ID == 0 {
		t.Fatalf("unexpected review: %+v err=%v", review, err)
	}

	if _, err := facade.UpdateReview(context.Background(), 5, review.ID, 7, 2, "changed"); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if err := facade.DeleteReview(context.Background(), 5, review.ID, 7); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	reviews, total, err := facade.ProductReviews(context.Background(), 5, 1, 10)
	if err != nil || total != 1 || len(reviews) != 1 {
		t.Fatalf("unexpected reviews: total=%d reviews=%v err=%v", total, reviews, err)
	}
}

func TestCommerceFacadeMarketing(t *testing.T) {
	facade, stubs := newFacade()

	sub, err := facade.Subscribe(context.Background(), "a@b.c")
	if err != nil || sub.Email != "a@b.c" {
		t.Fatalf("unexpected subscriber: %+v err=%v", sub, err)
	}
	if len(stubs.mail.Published) != 1 || stubs.mail.Published[0].Kind != model.EmailKindNewsletterWelcome {
		t.Fatalf("expected welcome mail, got %v", stubs.mail.Published)
	}

	if err := facade.Unsubscribe(context.Background(), "a@b.c"); err != nil {
		t.Fatalf("unsubscribe returned error: %v", err)
	}

	campaign, err := facade.CreateCampaign(context.Background(), "Spring sale", "body")
	if err != nil || campaign.Status != model.CampaignStatusPending {
		t.Fatalf("unexpected campaign: %+v err=%v", campaign, err)
	}

	claimed, err := facade.CampaignsForDispatch(context.Background(), 5)
	if err != nil || len(claimed) != 1 {
		t.Fatalf("unexpected claimed campaigns: %v err=%v", claimed, err)
	}

	msg, err := facade.SubmitContact(context.Background(), &model.ContactMessage{Name: "Ada", Email: "a@b.c", Subject: "Help", Message: "broken"})
	if err != nil || msg.ID != 1 {
		t.Fatalf("unexpected contact: %+v err=%v", msg, err)
	}
	// welcome + confirmation + admin notice
	if len(stubs.mail.Published) != 3 {
		t.Fatalf("expected three mails, got %d", len(stubs.mail.Published))
	}

	if _, _, err := facade.Contacts(context.Background(), "new", 1, 10); err != nil {
		t.Fatalf("contacts returned error: %v", err)
	}

	req, err := facade.SubmitSellRequest(context.Background(), &model.SellRequest{UserID: 7, Name: "Ada", Email: "a@b.c", ProductName: "old radio", Price: 30})
	if err != nil || req.Status != "pending" {
		t.Fatalf("unexpected sell request: %+v err=%v", req, err)
	}
	if _, _, err := facade.SellRequests(context.Background(), 1, 10); err != nil {
		t.Fatalf("sell requests returned error: %v", err)
	}

	stubs.marketing.SubscriberList = []model.Subscriber{{ID: 1, Email: "a@b.c"}}
	subs, err := facade.Subscribers(context.Background(), 0, 10)
	if err != nil || len(subs) != 1 {
		t.Fatalf("unexpected subscribers: %v err=%v", subs, err)
	}

	if err := facade.MarkEmailed(context.Background(), []string{"a@b.c"}); err != nil {
		t.Fatalf("mark emailed returned error: %v", err)
	}
	if len(stubs.marketing.EmailedCalls) != 1 {
		t.Fatalf("expected emailed call, got %d", len(stubs.marketing.EmailedCalls))
	}

	if err := facade.MarkCampaignSent(context.Background(), campaign.ID); err != nil {
		t.Fatalf("mark sent returned error: %v", err)
	}

	if err := facade.PublishMail(context.Background(), model.EmailMessage{Kind: model.EmailKindNewsletterIssue}); err != nil {
		t.Fatalf("publish mail returned error: %v", err)
	}
}
