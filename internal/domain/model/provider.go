package model

import "encoding/json"

// Provider-side order statuses the lifecycle manager cares about.
const (
	ProviderOrderCreated  = "CREATED"
	ProviderOrderApproved = "APPROVED"
	ProviderOrderVoided   = "VOIDED"
)

// ProviderOrder is the payment provider's view of an order.
type ProviderOrder struct {
	ExternalID string
	Status     string
}

// CaptureOutcome is the result of a provider capture call. Details keeps the
// raw response so the ledger can snapshot it verbatim.
type CaptureOutcome struct {
	ExternalID string
	CaptureID  string
	Status     string
	Details    json.RawMessage
}

// ProviderRefund is the result of a provider refund call.
type ProviderRefund struct {
	RefundID string
	Status   string
}
