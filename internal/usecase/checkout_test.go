package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	testhelpers "github.com/tradewind/storefront/internal/test"
)

func newCheckout(orders *testhelpers.OrderRepositoryStub, products *testhelpers.ProductRepositoryStub, provider *testhelpers.PaymentProviderStub) *CheckoutUseCase {
	return NewCheckoutUseCase(orders, products, provider, "USD")
}

func seedProducts(products *testhelpers.ProductRepositoryStub) {
	products.Products[1] = &model.Product{ID: 1, Name: "widget", Price: 10}
	products.Products[2] = &model.Product{ID: 2, Name: "gadget", Price: 5}
}

func TestCheckoutCreateOrderComputesSnapshotTotal(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	seedProducts(products)
	provider := &testhelpers.PaymentProviderStub{
		CreateOrderFn: func(ctx context.Context, total float64, currency string, items []model.LineItem) (*model.ProviderOrder, error) {
			if total != 25 {
				t.Fatalf("expected total 25, got %v", total)
			}
			if currency != "USD" {
				t.Fatalf("unexpected currency %q", currency)
			}
			return &model.ProviderOrder{ExternalID: "EXT-42", Status: model.ProviderOrderCreated}, nil
		},
	}

	uc := newCheckout(orders, products, provider)
	order, err := uc.CreateOrder(context.Background(), 7, []model.LineItem{
		{ProductID: 1, Quantity: 2, UnitPrice: 10},
		{ProductID: 2, Quantity: 1, UnitPrice: 5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ExternalID != "EXT-42" {
		t.Fatalf("unexpected external id %q", order.ExternalID)
	}
	if order.Status != model.OrderStatusCreated {
		t.Fatalf("expected CREATED, got %s", order.Status)
	}
	if order.TotalAmount != 25 {
		t.Fatalf("expected stored total 25, got %v", order.TotalAmount)
	}
	if order.Items[0].Name != "widget" {
		t.Fatalf("expected catalogue name on line item, got %q", order.Items[0].Name)
	}
}

func TestCheckoutCreateOrderValidation(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	seedProducts(products)
	provider := &testhelpers.PaymentProviderStub{}
	uc := newCheckout(orders, products, provider)

	if _, err := uc.CreateOrder(context.Background(), 1, nil); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity for empty items, got %v", err)
	}
	if _, err := uc.CreateOrder(context.Background(), 1, []model.LineItem{{ProductID: 1, Quantity: 0, UnitPrice: 1}}); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if _, err := uc.CreateOrder(context.Background(), 1, []model.LineItem{{ProductID: 1, Quantity: 1, UnitPrice: -1}}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if _, err := uc.CreateOrder(context.Background(), 1, []model.LineItem{{ProductID: 99, Quantity: 1, UnitPrice: 1}}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown product, got %v", err)
	}
	if provider.CreateCalls != 0 {
		t.Fatalf("provider should not be called on validation errors, got %d calls", provider.CreateCalls)
	}
	if len(orders.Created) != 0 {
		t.Fatalf("no order should be persisted on validation errors")
	}
}

func TestCheckoutCreateOrderProviderFailureWritesNothing(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	seedProducts(products)
	provider := &testhelpers.PaymentProviderStub{
		CreateOrderFn: func(context.Context, float64, string, []model.LineItem) (*model.ProviderOrder, error) {
			return nil, errors.New("gateway timeout")
		},
	}

	uc := newCheckout(orders, products, provider)
	_, err := uc.CreateOrder(context.Background(), 1, []model.LineItem{{ProductID: 1, Quantity: 1, UnitPrice: 10}})
	if !errors.Is(err, domainErrors.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable, got %v", err)
	}
	if len(orders.Created) != 0 {
		t.Fatalf("ledger entry must not be written when the provider call fails")
	}
}

func TestCheckoutValidateForCapture(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	provider := &testhelpers.PaymentProviderStub{
		GetOrderFn: func(ctx context.Context, externalID string) (*model.ProviderOrder, error) {
			return &model.ProviderOrder{ExternalID: externalID, Status: model.ProviderOrderCreated}, nil
		},
	}

	uc := newCheckout(orders, products, provider)
	if _, err := uc.ValidateForCapture(context.Background(), "EXT-1"); !errors.Is(err, domainErrors.ErrNotApproved) {
		t.Fatalf("expected not approved, got %v", err)
	}

	provider.GetOrderFn = nil
	providerOrder, err := uc.ValidateForCapture(context.Background(), "EXT-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if providerOrder.Status != model.ProviderOrderApproved {
		t.Fatalf("expected APPROVED, got %s", providerOrder.Status)
	}
}

func TestCheckoutCaptureSuccess(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders["EXT-1"] = &model.Order{ID: 1, ExternalID: "EXT-1", UserID: 3, Status: model.OrderStatusCreated}
	products := testhelpers.NewProductRepositoryStub()
	provider := &testhelpers.PaymentProviderStub{}

	uc := newCheckout(orders, products, provider)
	order, err := uc.CaptureOrder(context.Background(), "EXT-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", order.Status)
	}
	if order.CaptureID() != "CAP-1" {
		t.Fatalf("expected capture id CAP-1, got %q", order.CaptureID())
	}
}

func TestCheckoutCaptureNotApprovedLeavesLedgerUntouched(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders["EXT-1"] = &model.Order{ID: 1, ExternalID: "EXT-1", Status: model.OrderStatusCreated}
	products := testhelpers.NewProductRepositoryStub()
	provider := &testhelpers.PaymentProviderStub{
		GetOrderFn: func(ctx context.Context, externalID string) (*model.ProviderOrder, error) {
			return &model.ProviderOrder{ExternalID: externalID, Status: model.ProviderOrderCreated}, nil
		},
	}

	uc := newCheckout(orders, products, provider)
	if _, err := uc.CaptureOrder(context.Background(), "EXT-1"); !errors.Is(err, domainErrors.ErrNotApproved) {
		t.Fatalf("expected not approved, got %v", err)
	}
	if len(provider.CaptureCalls) != 0 {
		t.Fatal("capture must not be issued when the provider has not approved")
	}
	if got := orders.Orders["EXT-1"].Status; got != model.OrderStatusCreated {
		t.Fatalf("ledger must stay CREATED on precondition failure, got %s", got)
	}
}

func TestCheckoutCaptureWrongLocalState(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders["EXT-1"] = &model.Order{ID: 1, ExternalID: "EXT-1", Status: model.OrderStatusCompleted}
	products := testhelpers.NewProductRepositoryStub()
	provider := &testhelpers.PaymentProviderStub{}

	uc := newCheckout(orders, products, provider)
	if _, err := uc.CaptureOrder(context.Background(), "EXT-1"); !errors.Is(err, domainErrors.ErrNotApproved) {
		t.Fatalf("expected not approved for non-CREATED ledger entry, got %v", err)
	}
	if len(provider.CaptureCalls) != 0 {
		t.Fatal("capture must not be issued twice")
	}
}

func TestCheckoutCaptureProviderFailureMarksFailed(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders["EXT-1"] = &model.Order{ID: 1, ExternalID: "EXT-1", Status: model.OrderStatusCreated}
	products := testhelpers.NewProductRepositoryStub()
	provider := &testhelpers.PaymentProviderStub{
		CaptureOrderFn: func(context.Context, string) (*model.CaptureOutcome, error) {
			return nil, errors.New("connection reset")
		},
	}

	uc := newCheckout(orders, products, provider)
	if _, err := uc.CaptureOrder(context.Background(), "EXT-1"); !errors.Is(err, domainErrors.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable, got %v", err)
	}
	// Once the capture call was issued the entry never stays CREATED.
	if got := orders.Orders["EXT-1"].Status; got != model.OrderStatusFailed {
		t.Fatalf("expected FAILED after capture attempt, got %s", got)
	}
}

func TestCheckoutRefundRequiresCompleted(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders["EXT-1"] = &model.Order{ID: 1, ExternalID: "EXT-1", Status: model.OrderStatusCreated}
	products := testhelpers.NewProductRepositoryStub()
	provider := &testhelpers.PaymentProviderStub{}

	uc := newCheckout(orders, products, provider)
	if _, err := uc.RefundOrder(context.Background(), "EXT-1", 5, "damaged"); !errors.Is(err, domainErrors.ErrNotRefundable) {
		t.Fatalf("expected not refundable for CREATED order, got %v", err)
	}
	if _, err := uc.RefundOrder(context.Background(), "EXT-1", 0, ""); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if len(provider.RefundCalls) != 0 {
		t.Fatal("provider refund must not be issued on precondition failure")
	}
}

func TestCheckoutRefundRequiresStoredCapture(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders["EXT-1"] = &model.Order{ID: 1, ExternalID: "EXT-1", Status: model.OrderStatusCompleted}
	products := testhelpers.NewProductRepositoryStub()
	provider := &testhelpers.PaymentProviderStub{}

	uc := newCheckout(orders, products, provider)
	if _, err := uc.RefundOrder(context.Background(), "EXT-1", 5, ""); !errors.Is(err, domainErrors.ErrNoCaptureFound) {
		t.Fatalf("expected no capture found, got %v", err)
	}
}

func TestCheckoutRefundSuccess(t *testing.T) {
	details := []byte(`{"purchase_units":[{"payments":{"captures":[{"id":"CAP-9"}]}}]}`)
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders["EXT-1"] = &model.Order{ID: 1, ExternalID: "EXT-1", Status: model.OrderStatusCompleted, PaymentDetails: details}
	products := testhelpers.NewProductRepositoryStub()
	provider := &testhelpers.PaymentProviderStub{}

	uc := newCheckout(orders, products, provider)
	order, err := uc.RefundOrder(context.Background(), "EXT-1", 5, "damaged")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusRefunded {
		t.Fatalf("expected REFUNDED, got %s", order.Status)
	}
	if len(provider.RefundCalls) != 1 || provider.RefundCalls[0].CaptureID != "CAP-9" {
		t.Fatalf("expected refund against CAP-9, got %+v", provider.RefundCalls)
	}
	if len(order.Refunds) != 1 || order.Refunds[0].Amount != 5 {
		t.Fatalf("expected one refund of 5, got %+v", order.Refunds)
	}
}

func TestCheckoutCancelOnlyFromCreated(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders["EXT-1"] = &model.Order{ID: 1, ExternalID: "EXT-1", Status: model.OrderStatusCreated}
	orders.Orders["EXT-2"] = &model.Order{ID: 2, ExternalID: "EXT-2", Status: model.OrderStatusCompleted}
	products := testhelpers.NewProductRepositoryStub()
	provider := &testhelpers.PaymentProviderStub{}

	uc := newCheckout(orders, products, provider)
	order, err := uc.CancelOrder(context.Background(), "EXT-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", order.Status)
	}

	if _, err := uc.CancelOrder(context.Background(), "EXT-2"); !errors.Is(err, domainErrors.ErrNotCancellable) {
		t.Fatalf("expected not cancellable for COMPLETED order, got %v", err)
	}
}
