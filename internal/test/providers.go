package test

import (
	"context"
	"encoding/json"

	"github.com/tradewind/storefront/internal/domain/model"
)

// RefundCall records one provider refund invocation.
type RefundCall struct {
	CaptureID string
	Amount    float64
	Currency  string
	Note      string
}

// PaymentProviderStub simulates the payment provider for tests.
type PaymentProviderStub struct {
	CreateOrderFn   func(context.Context, float64, string, []model.LineItem) (*model.ProviderOrder, error)
	GetOrderFn      func(context.Context, string) (*model.ProviderOrder, error)
	CaptureOrderFn  func(context.Context, string) (*model.CaptureOutcome, error)
	RefundCaptureFn func(context.Context, string, float64, string, string) (*model.ProviderRefund, error)

	CreateCalls  int
	CaptureCalls []string
	RefundCalls  []RefundCall
}

// CreateOrder registers a provider order with a deterministic identifier.
func (s *PaymentProviderStub) CreateOrder(ctx context.Context, total float64, currency string, items []model.LineItem) (*model.ProviderOrder, error) {
	s.CreateCalls++
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, total, currency, items)
	}
	return &model.ProviderOrder{ExternalID: "EXT-1", Status: model.ProviderOrderCreated}, nil
}

// GetOrder returns the provider-side view of an order.
func (s *PaymentProviderStub) GetOrder(ctx context.Context, externalID string) (*model.ProviderOrder, error) {
	if s.GetOrderFn != nil {
		return s.GetOrderFn(ctx, externalID)
	}
	return &model.ProviderOrder{ExternalID: externalID, Status: model.ProviderOrderApproved}, nil
}

// CaptureOrder simulates a successful capture with a capture id payload.
func (s *PaymentProviderStub) CaptureOrder(ctx context.Context, externalID string) (*model.CaptureOutcome, error) {
	s.CaptureCalls = append(s.CaptureCalls, externalID)
	if s.CaptureOrderFn != nil {
		return s.CaptureOrderFn(ctx, externalID)
	}
	details := json.RawMessage(`{"id":"` + externalID + `","status":"COMPLETED","purchase_units":[{"payments":{"captures":[{"id":"CAP-1","status":"COMPLETED"}]}}]}`)
	return &model.CaptureOutcome{ExternalID: externalID, CaptureID: "CAP-1", Status: "COMPLETED", Details: details}, nil
}

// RefundCapture records the refund invocation.
func (s *PaymentProviderStub) RefundCapture(ctx context.Context, captureID string, amount float64, currency, note string) (*model.ProviderRefund, error) {
	s.RefundCalls = append(s.RefundCalls, RefundCall{CaptureID: captureID, Amount: amount, Currency: currency, Note: note})
	if s.RefundCaptureFn != nil {
		return s.RefundCaptureFn(ctx, captureID, amount, currency, note)
	}
	return &model.ProviderRefund{RefundID: "REF-1", Status: "COMPLETED"}, nil
}

// MailPublisherStub collects published mail messages.
type MailPublisherStub struct {
	PublishFn func(context.Context, model.EmailMessage) error
	Published []model.EmailMessage
}

// Publish records the message or delegates to the override.
func (s *MailPublisherStub) Publish(ctx context.Context, msg model.EmailMessage) error {
	if s.PublishFn != nil {
		return s.PublishFn(ctx, msg)
	}
	s.Published = append(s.Published, msg)
	return nil
}
