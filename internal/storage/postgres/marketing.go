package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
)

// --- MarketingRepository implementation ---

// Subscribe inserts a new subscriber or reactivates an unsubscribed one.
// An address that is already actively subscribed is a conflict.
func (r *marketingRepository) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	const query = `INSERT INTO newsletter_subscribers (email) VALUES ($1)
                   ON CONFLICT (email) DO UPDATE SET subscribed = TRUE
                   WHERE newsletter_subscribers.subscribed = FALSE
                   RETURNING id, subscribed_at, last_email_sent`
	var sub model.Subscriber
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&sub.ID, &sub.SubscribedAt, &sub.LastEmailSent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	sub.Email = email
	sub.Subscribed = true
	return &sub, nil
}

func (r *marketingRepository) Unsubscribe(ctx context.Context, email string) error {
	const query = `UPDATE newsletter_subscribers SET subscribed = FALSE WHERE email=$1`
	tag, err := r.storage.pool.Exec(ctx, query, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *marketingRepository) Subscribers(ctx context.Context, offset, limit int) ([]model.Subscriber, error) {
	const query = `SELECT id, email, subscribed, subscribed_at, last_email_sent
                   FROM newsletter_subscribers WHERE subscribed ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []model.Subscriber
	for rows.Next() {
		var sub model.Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.Subscribed, &sub.SubscribedAt, &sub.LastEmailSent); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *marketingRepository) MarkEmailed(ctx context.Context, emails []string) error {
	const query = `UPDATE newsletter_subscribers SET last_email_sent = NOW() WHERE email = ANY($1)`
	_, err := r.storage.pool.Exec(ctx, query, emails)
	return err
}

func (r *marketingRepository) CreateCampaign(ctx context.Context, subject, body string) (*model.Campaign, error) {
	const query = `INSERT INTO newsletter_campaigns (subject, body) VALUES ($1, $2)
                   RETURNING id, status, created_at`
	campaign := &model.Campaign{Subject: subject, Body: body}
	if err := r.storage.pool.QueryRow(ctx, query, subject, body).Scan(&campaign.ID, &campaign.Status, &campaign.CreatedAt); err != nil {
		return nil, err
	}
	return campaign, nil
}

// SelectCampaignsForDispatch claims pending campaigns for the background
// dispatcher. Claimed rows flip to SENDING inside the same transaction so
// concurrent dispatchers never pick the same campaign.
func (r *marketingRepository) SelectCampaignsForDispatch(ctx context.Context, limit int) ([]model.Campaign, error) {
	const selectQuery = `SELECT id, subject, body, status, created_at, sent_at
                         FROM newsletter_campaigns
                         WHERE status = 'PENDING'
                         ORDER BY created_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var campaigns []model.Campaign
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var c model.Campaign
			if err := rows.Scan(&c.ID, &c.Subject, &c.Body, &c.Status, &c.CreatedAt, &c.SentAt); err != nil {
				return err
			}
			campaigns = append(campaigns, c)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		for i := range campaigns {
			if _, err := tx.Exec(ctx, `UPDATE newsletter_campaigns SET status='SENDING' WHERE id=$1`, campaigns[i].ID); err != nil {
				return err
			}
			campaigns[i].Status = model.CampaignStatusSending
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *marketingRepository) MarkCampaignSent(ctx context.Context, campaignID int64) error {
	const query = `UPDATE newsletter_campaigns SET status='SENT', sent_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, campaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *marketingRepository) CreateContact(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	const query = `INSERT INTO contact_messages (name, email, subject, message)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, status, created_at`
	if err := r.storage.pool.QueryRow(ctx, query, msg.Name, msg.Email, msg.Subject, msg.Message).
		Scan(&msg.ID, &msg.Status, &msg.CreatedAt); err != nil {
		return nil, err
	}
	return msg, nil
}

func (r *marketingRepository) ListContacts(ctx context.Context, status string, page, limit int) ([]model.ContactMessage, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	where := ""
	args := []any{}
	if status != "" {
		where = " WHERE status=$1"
		args = append(args, status)
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT id, name, email, subject, message, status, created_at FROM contact_messages%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []model.ContactMessage
	for rows.Next() {
		var msg model.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.Status, &msg.CreatedAt); err != nil {
			return nil, 0, err
		}
		messages = append(messages, msg)
	}
	return messages, total, rows.Err()
}

func (r *marketingRepository) CreateSellRequest(ctx context.Context, req *model.SellRequest) (*model.SellRequest, error) {
	const query = `INSERT INTO sell_requests (user_id, name, email, phone, product_name, price, description, images)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, status, created_at`
	if err := r.storage.pool.QueryRow(ctx, query,
		req.UserID, req.Name, req.Email, req.Phone, req.ProductName, req.Price, req.Description, req.Images).
		Scan(&req.ID, &req.Status, &req.CreatedAt); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *marketingRepository) ListSellRequests(ctx context.Context, page, limit int) ([]model.SellRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sell_requests`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT id, user_id, name, email, phone, product_name, price, description, images, status, created_at
                   FROM sell_requests ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []model.SellRequest
	for rows.Next() {
		var req model.SellRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.Name, &req.Email, &req.Phone, &req.ProductName,
			&req.Price, &req.Description, &req.Images, &req.Status, &req.CreatedAt); err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	return requests, total, rows.Err()
}
