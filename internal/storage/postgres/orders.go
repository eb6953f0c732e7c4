package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
)

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (external_id, user_id, total_amount, status)
                             VALUES ($1, $2, $3, $4)
                             RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, order.ExternalID, order.UserID, order.TotalAmount, order.Status).
			Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, name, quantity, unit_price)
                            VALUES ($1, $2, $3, $4, $5)`
		for _, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem, order.ID, item.ProductID, item.Name, item.Quantity, item.UnitPrice); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByExternalID(ctx context.Context, externalID string) (*model.Order, error) {
	const query = `SELECT id, external_id, user_id, total_amount, status, payment_details, tracking_number, created_at, updated_at
                   FROM orders WHERE external_id=$1`
	var o model.Order
	var details []byte
	err := r.storage.pool.QueryRow(ctx, query, externalID).
		Scan(&o.ID, &o.ExternalID, &o.UserID, &o.TotalAmount, &o.Status, &details, &o.TrackingNumber, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if len(details) > 0 {
		o.PaymentDetails = json.RawMessage(details)
	}

	if o.Items, err = r.loadItems(ctx, o.ID); err != nil {
		return nil, err
	}
	if o.Refunds, err = r.loadRefunds(ctx, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID int64) ([]model.LineItem, error) {
	const query = `SELECT product_id, name, quantity, unit_price FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.LineItem
	for rows.Next() {
		var item model.LineItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *orderRepository) loadRefunds(ctx context.Context, orderID int64) ([]model.Refund, error) {
	const query = `SELECT refund_id, amount, reason, status, created_at FROM order_refunds WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refunds []model.Refund
	for rows.Next() {
		var refund model.Refund
		if err := rows.Scan(&refund.RefundID, &refund.Amount, &refund.Reason, &refund.Status, &refund.CreatedAt); err != nil {
			return nil, err
		}
		refunds = append(refunds, refund)
	}
	return refunds, rows.Err()
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT id, external_id, user_id, total_amount, status, tracking_number, created_at, updated_at
                   FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.ExternalID, &o.UserID, &o.TotalAmount, &o.Status, &o.TrackingNumber, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		if result[i].Items, err = r.loadItems(ctx, result[i].ID); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, externalID string, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE external_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, externalID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) SetCaptured(ctx context.Context, externalID string, details json.RawMessage) error {
	const query = `UPDATE orders SET status=$1, payment_details=$2, updated_at=NOW() WHERE external_id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, model.OrderStatusCompleted, []byte(details), externalID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// AppendRefund records the refund and flips status to REFUNDED in one scope.
func (r *orderRepository) AppendRefund(ctx context.Context, externalID string, refund model.Refund) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectOrder = `SELECT id FROM orders WHERE external_id=$1 FOR UPDATE`
		var orderID int64
		if err := tx.QueryRow(ctx, selectOrder, externalID).Scan(&orderID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const insertRefund = `INSERT INTO order_refunds (order_id, refund_id, amount, reason, status)
                              VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.Exec(ctx, insertRefund, orderID, refund.RefundID, refund.Amount, refund.Reason, refund.Status); err != nil {
			return err
		}

		const updateOrder = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
		if _, err := tx.Exec(ctx, updateOrder, model.OrderStatusRefunded, orderID); err != nil {
			return err
		}
		return nil
	})
}

func (r *orderRepository) SetFulfilment(ctx context.Context, externalID string, status model.OrderStatus, trackingNumber string) error {
	const query = `UPDATE orders SET status=$1, tracking_number=$2, updated_at=NOW() WHERE external_id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, status, trackingNumber, externalID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) StatsByStatus(ctx context.Context) ([]model.OrderStat, error) {
	const query = `SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0) FROM orders GROUP BY status ORDER BY status`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []model.OrderStat
	for rows.Next() {
		var stat model.OrderStat
		if err := rows.Scan(&stat.Status, &stat.Count, &stat.TotalAmount); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}
