package model

import "time"

// Subscriber is a newsletter recipient.
type Subscriber struct {
	ID            int64
	Email         string
	Subscribed    bool
	SubscribedAt  time.Time
	LastEmailSent *time.Time
}

// CampaignStatus describes newsletter campaign dispatch state.
type CampaignStatus string

const (
	CampaignStatusPending CampaignStatus = "PENDING"
	CampaignStatusSending CampaignStatus = "SENDING"
	CampaignStatusSent    CampaignStatus = "SENT"
)

// Campaign is a newsletter issue dispatched in subscriber batches by the
// background worker.
type Campaign struct {
	ID        int64
	Subject   string
	Body      string
	Status    CampaignStatus
	CreatedAt time.Time
	SentAt    *time.Time
}

// ContactMessage is a stored contact-form submission.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    string
	CreatedAt time.Time
}

// SellRequest is an intake record for a customer offering an item for sale.
type SellRequest struct {
	ID          int64
	UserID      int64
	Name        string
	Email       string
	Phone       string
	ProductName string
	Price       float64
	Description string
	Images      []string
	Status      string
	CreatedAt   time.Time
}

// EmailKind tags outgoing mail messages for the delivery worker.
type EmailKind string

const (
	EmailKindContactConfirmation EmailKind = "contact_confirmation"
	EmailKindContactAdminNotice  EmailKind = "contact_admin_notice"
	EmailKindNewsletterWelcome   EmailKind = "newsletter_welcome"
	EmailKindNewsletterIssue     EmailKind = "newsletter_issue"
	EmailKindSellRequestReceipt  EmailKind = "sell_request_receipt"
	EmailKindSellRequestNotice   EmailKind = "sell_request_notice"
)

// EmailMessage is the payload published to the mail dispatch queue. Rendering
// and SMTP delivery happen outside this service.
type EmailMessage struct {
	Kind       EmailKind `json:"kind"`
	Recipients []string  `json:"recipients"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
}
