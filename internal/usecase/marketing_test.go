package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	testhelpers "github.com/tradewind/storefront/internal/test"
)

func newMarketing(repo *testhelpers.MarketingRepositoryStub, mail *testhelpers.MailPublisherStub) *MarketingUseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMarketingUseCase(repo, mail, logger, "admin@example.com")
}

func TestMarketingSubscribeSendsWelcome(t *testing.T) {
	repo := &testhelpers.MarketingRepositoryStub{}
	mail := &testhelpers.MailPublisherStub{}
	uc := newMarketing(repo, mail)

	sub, err := uc.Subscribe(context.Background(), "a@b.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sub.Subscribed {
		t.Fatal("expected active subscription")
	}
	if len(mail.Published) != 1 || mail.Published[0].Kind != model.EmailKindNewsletterWelcome {
		t.Fatalf("expected welcome mail, got %+v", mail.Published)
	}
}

func TestMarketingSubscribeMailFailureIsBestEffort(t *testing.T) {
	repo := &testhelpers.MarketingRepositoryStub{}
	mail := &testhelpers.MailPublisherStub{
		PublishFn: func(context.Context, model.EmailMessage) error {
			return errors.New("broker down")
		},
	}
	uc := newMarketing(repo, mail)

	if _, err := uc.Subscribe(context.Background(), "a@b.c"); err != nil {
		t.Fatalf("broker failure must not fail subscription, got %v", err)
	}
}

func TestMarketingSubmitContactNotifiesBothParties(t *testing.T) {
	repo := &testhelpers.MarketingRepositoryStub{}
	mail := &testhelpers.MailPublisherStub{}
	uc := newMarketing(repo, mail)

	msg, err := uc.SubmitContact(context.Background(), &model.ContactMessage{
		Name: "Jamie", Email: "a@b.c", Subject: "Hello", Message: "Hi there",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.ID == 0 {
		t.Fatal("expected stored message id")
	}
	if len(mail.Published) != 2 {
		t.Fatalf("expected confirmation and admin notice, got %d messages", len(mail.Published))
	}
	if mail.Published[0].Kind != model.EmailKindContactConfirmation {
		t.Fatalf("unexpected first mail %+v", mail.Published[0])
	}
	if mail.Published[1].Recipients[0] != "admin@example.com" {
		t.Fatalf("admin notice must go to the configured address, got %+v", mail.Published[1].Recipients)
	}
}

func TestMarketingSubmitSellRequestValidation(t *testing.T) {
	repo := &testhelpers.MarketingRepositoryStub{}
	mail := &testhelpers.MailPublisherStub{}
	uc := newMarketing(repo, mail)

	if _, err := uc.SubmitSellRequest(context.Background(), &model.SellRequest{Price: -1}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}

	stored, err := uc.SubmitSellRequest(context.Background(), &model.SellRequest{
		Email: "a@b.c", ProductName: "old amp", Price: 120,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != "pending" {
		t.Fatalf("unexpected status %q", stored.Status)
	}
	if len(mail.Published) != 2 {
		t.Fatalf("expected receipt and admin notice, got %d messages", len(mail.Published))
	}
}

func TestMarketingCampaignPassthroughs(t *testing.T) {
	repo := &testhelpers.MarketingRepositoryStub{
		SubscriberList: []model.Subscriber{{Email: "a@b.c"}, {Email: "d@e.f"}},
	}
	mail := &testhelpers.MailPublisherStub{}
	uc := newMarketing(repo, mail)

	campaign, err := uc.CreateCampaign(context.Background(), "Issue 1", "body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if campaign.Status != model.CampaignStatusPending {
		t.Fatalf("expected PENDING, got %s", campaign.Status)
	}

	claimed, err := uc.CampaignsForDispatch(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(claimed) != 1 {
		t.Fatalf("expected one claimed campaign, got %d", len(claimed))
	}

	subs, err := uc.Subscribers(context.Background(), 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != 1 || subs[0].Email != "a@b.c" {
		t.Fatalf("unexpected page %+v", subs)
	}

	if err := uc.MarkEmailed(context.Background(), []string{"a@b.c"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.MarkCampaignSent(context.Background(), campaign.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.SentCampaigns) != 1 {
		t.Fatalf("expected campaign marked sent, got %+v", repo.SentCampaigns)
	}
}
