package repository

import (
	"context"

	"github.com/tradewind/storefront/internal/domain/model"
)

// MarketingRepository covers newsletter, contact form, and sell-request
// intake collections.
type MarketingRepository interface {
	Subscribe(ctx context.Context, email string) (*model.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	Subscribers(ctx context.Context, offset, limit int) ([]model.Subscriber, error)
	MarkEmailed(ctx context.Context, emails []string) error

	CreateCampaign(ctx context.Context, subject, body string) (*model.Campaign, error)
	SelectCampaignsForDispatch(ctx context.Context, limit int) ([]model.Campaign, error)
	MarkCampaignSent(ctx context.Context, campaignID int64) error

	CreateContact(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error)
	ListContacts(ctx context.Context, status string, page, limit int) ([]model.ContactMessage, int64, error)

	CreateSellRequest(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error)
	ListSellRequests(ctx context.Context, page, limit int) ([]model.SellRequest, int64, error)
}
