package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/domain/repository"
)

// MailPublisher enqueues outgoing mail for asynchronous delivery.
type MailPublisher interface {
	Publish(ctx context.Context, msg model.EmailMessage) error
}

// MarketingUseCase covers newsletter subscriptions, campaigns, contact-form
// submissions and sell requests. Mail is enqueued best effort: a broker
// failure is logged and never fails the stored operation.
type MarketingUseCase struct {
	marketing  repository.MarketingRepository
	mail       MailPublisher
	logger     *slog.Logger
	adminEmail string
}

// NewMarketingUseCase constructs MarketingUseCase.
func NewMarketingUseCase(marketing repository.MarketingRepository, mail MailPublisher, logger *slog.Logger, adminEmail string) *MarketingUseCase {
	return &MarketingUseCase{marketing: marketing, mail: mail, logger: logger, adminEmail: adminEmail}
}

func (u *MarketingUseCase) enqueue(ctx context.Context, msg model.EmailMessage) {
	if err := u.mail.Publish(ctx, msg); err != nil {
		u.logger.Warn("mail enqueue failed", "kind", string(msg.Kind), "error", err)
	}
}

// Subscribe registers a newsletter subscriber and enqueues a welcome mail.
func (u *MarketingUseCase) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	sub, err := u.marketing.Subscribe(ctx, email)
	if err != nil {
		return nil, err
	}
	u.enqueue(ctx, model.EmailMessage{
		Kind:       model.EmailKindNewsletterWelcome,
		Recipients: []string{sub.Email},
		Subject:    "Welcome to the newsletter",
	})
	return sub, nil
}

// Unsubscribe removes a subscriber.
func (u *MarketingUseCase) Unsubscribe(ctx context.Context, email string) error {
	return u.marketing.Unsubscribe(ctx, email)
}

// CreateCampaign stores a newsletter issue for the dispatch worker.
func (u *MarketingUseCase) CreateCampaign(ctx context.Context, subject, body string) (*model.Campaign, error) {
	return u.marketing.CreateCampaign(ctx, subject, body)
}

// CampaignsForDispatch claims up to limit pending campaigns for the worker.
func (u *MarketingUseCase) CampaignsForDispatch(ctx context.Context, limit int) ([]model.Campaign, error) {
	return u.marketing.SelectCampaignsForDispatch(ctx, limit)
}

// Subscribers pages through active subscribers.
func (u *MarketingUseCase) Subscribers(ctx context.Context, offset, limit int) ([]model.Subscriber, error) {
	return u.marketing.Subscribers(ctx, offset, limit)
}

// MarkEmailed records the send time for a batch of subscriber addresses.
func (u *MarketingUseCase) MarkEmailed(ctx context.Context, emails []string) error {
	return u.marketing.MarkEmailed(ctx, emails)
}

// MarkCampaignSent finalises a dispatched campaign.
func (u *MarketingUseCase) MarkCampaignSent(ctx context.Context, campaignID int64) error {
	return u.marketing.MarkCampaignSent(ctx, campaignID)
}

// PublishMail enqueues one mail message, propagating broker errors. The
// newsletter worker relies on the error to avoid marking unsent batches.
func (u *MarketingUseCase) PublishMail(ctx context.Context, msg model.EmailMessage) error {
	return u.mail.Publish(ctx, msg)
}

// SubmitContact stores a contact-form message and enqueues the confirmation
// and admin notification mails.
func (u *MarketingUseCase) SubmitContact(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	stored, err := u.marketing.CreateContact(ctx, msg)
	if err != nil {
		return nil, err
	}
	u.enqueue(ctx, model.EmailMessage{
		Kind:       model.EmailKindContactConfirmation,
		Recipients: []string{stored.Email},
		Subject:    "We received your message",
		Body:       stored.Message,
	})
	u.enqueue(ctx, model.EmailMessage{
		Kind:       model.EmailKindContactAdminNotice,
		Recipients: []string{u.adminEmail},
		Subject:    fmt.Sprintf("Contact form: %s", stored.Subject),
		Body:       stored.Message,
	})
	return stored, nil
}

// ListContacts returns stored contact messages, newest first, optionally
// filtered by status.
func (u *MarketingUseCase) ListContacts(ctx context.Context, status string, page, limit int) ([]model.ContactMessage, int64, error) {
	return u.marketing.ListContacts(ctx, status, page, limit)
}

// SubmitSellRequest stores a sell request and enqueues receipt and admin
// notification mails.
func (u *MarketingUseCase) SubmitSellRequest(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error) {
	if req.Price < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	stored, err := u.marketing.CreateSellRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	u.enqueue(ctx, model.EmailMessage{
		Kind:       model.EmailKindSellRequestReceipt,
		Recipients: []string{stored.Email},
		Subject:    "We received your sell request",
	})
	u.enqueue(ctx, model.EmailMessage{
		Kind:       model.EmailKindSellRequestNotice,
		Recipients: []string{u.adminEmail},
		Subject:    fmt.Sprintf("Sell request: %s", stored.ProductName),
	})
	return stored, nil
}

// ListSellRequests returns stored sell requests, newest first.
func (u *MarketingUseCase) ListSellRequests(ctx context.Context, page, limit int) ([]model.SellRequest, int64, error) {
	return u.marketing.ListSellRequests(ctx, page, limit)
}
