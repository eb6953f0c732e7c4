package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tradewind/storefront/internal/domain/model"
)

// CommerceFacade exposes the subset of application functionality required by the worker.
type CommerceFacade interface {
	CampaignsForDispatch(ctx context.Context, limit int) ([]model.Campaign, error)
	Subscribers(ctx context.Context, offset, limit int) ([]model.Subscriber, error)
	MarkEmailed(ctx context.Context, emails []string) error
	MarkCampaignSent(ctx context.Context, campaignID int64) error
	PublishMail(ctx context.Context, msg model.EmailMessage) error
}

// NewsletterDispatcher polls for pending campaigns and fans each one out to
// the mail queue in subscriber batches.
type NewsletterDispatcher struct {
	facade       CommerceFacade
	pollInterval time.Duration
	batchSize    int
	pageSize     int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Campaign
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNewsletterDispatcher constructs the campaign dispatch worker pool.
func NewNewsletterDispatcher(facade CommerceFacade, pollInterval time.Duration, batchSize, pageSize, workers int, logger *slog.Logger) *NewsletterDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return &NewsletterDispatcher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		pageSize:     pageSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Campaign, batchSize*workers),
	}
}

// Start launches background processing.
func (d *NewsletterDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}

	d.wg.Add(1)
	go d.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (d *NewsletterDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *NewsletterDispatcher) dispatch(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.jobs)
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.fetchAndDispatch(ctx)
		}
	}
}

func (d *NewsletterDispatcher) fetchAndDispatch(ctx context.Context) {
	campaigns, err := d.facade.CampaignsForDispatch(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("fetch campaigns for dispatch failed", slog.String("error", err.Error()))
		return
	}
	for _, campaign := range campaigns {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- campaign:
		}
	}
}

func (d *NewsletterDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case campaign, ok := <-d.jobs:
			if !ok {
				return
			}
			d.handleCampaign(ctx, campaign)
		}
	}
}

// handleCampaign pages through subscribers and publishes one mail message per
// page. A publish failure stops the campaign mid-way; it stays in SENDING
// until an operator resets it to PENDING.
func (d *NewsletterDispatcher) handleCampaign(ctx context.Context, campaign model.Campaign) {
	offset := 0
	for {
		subscribers, err := d.facade.Subscribers(ctx, offset, d.pageSize)
		if err != nil {
			d.logger.Error("fetch subscribers failed",
				slog.Int64("campaign", campaign.ID),
				slog.String("error", err.Error()),
			)
			return
		}
		if len(subscribers) == 0 {
			break
		}

		emails := make([]string, 0, len(subscribers))
		for _, sub := range subscribers {
			emails = append(emails, sub.Email)
		}

		msg := model.EmailMessage{
			Kind:       model.EmailKindNewsletterIssue,
			Recipients: emails,
			Subject:    campaign.Subject,
			Body:       campaign.Body,
		}
		if err := d.facade.PublishMail(ctx, msg); err != nil {
			d.logger.Error("publish newsletter batch failed",
				slog.Int64("campaign", campaign.ID),
				slog.String("error", err.Error()),
			)
			return
		}

		if err := d.facade.MarkEmailed(ctx, emails); err != nil {
			d.logger.Error("mark subscribers emailed failed",
				slog.Int64("campaign", campaign.ID),
				slog.String("error", err.Error()),
			)
		}

		if len(subscribers) < d.pageSize {
			break
		}
		offset += d.pageSize
	}

	if err := d.facade.MarkCampaignSent(ctx, campaign.ID); err != nil {
		d.logger.Error("mark campaign sent failed",
			slog.Int64("campaign", campaign.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	d.logger.Info("campaign dispatched", slog.Int64("campaign", campaign.ID))
}
