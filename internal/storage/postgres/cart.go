package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
)

// --- CartRepository implementation ---
//
// Cart totals are always recomputed from current catalogue prices inside the
// mutation transaction; cart items store quantities only.

// refreshCartTotal recomputes the derived total from cart items joined with
// live product prices.
func refreshCartTotal(ctx context.Context, tx pgx.Tx, userID int64) error {
	const query = `UPDATE carts
                   SET total_price = COALESCE((
                       SELECT SUM(ci.quantity * p.price)
                       FROM cart_items ci JOIN products p ON p.id = ci.product_id
                       WHERE ci.user_id=$1
                   ), 0),
                   updated_at = NOW()
                   WHERE user_id=$1`
	_, err := tx.Exec(ctx, query, userID)
	return err
}

func loadCart(ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}, userID int64) (*model.Cart, error) {
	const selectCart = `SELECT user_id, total_price, updated_at FROM carts WHERE user_id=$1`
	var cart model.Cart
	if err := q.QueryRow(ctx, selectCart, userID).Scan(&cart.UserID, &cart.TotalPrice, &cart.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	const selectItems = `SELECT product_id, quantity FROM cart_items WHERE user_id=$1 ORDER BY product_id`
	rows, err := q.Query(ctx, selectItems, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	return &cart, rows.Err()
}

func (r *cartRepository) AddItems(ctx context.Context, userID int64, items []model.CartItem) (*model.Cart, error) {
	var cart *model.Cart
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		ids := make([]int64, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ProductID)
		}

		const countProducts = `SELECT COUNT(*) FROM products WHERE id = ANY($1)`
		var known int64
		if err := tx.QueryRow(ctx, countProducts, ids).Scan(&known); err != nil {
			return err
		}
		if known != int64(len(ids)) {
			return domainErrors.ErrNotFound
		}

		const upsertCart = `INSERT INTO carts (user_id) VALUES ($1)
                            ON CONFLICT (user_id) DO UPDATE SET updated_at=NOW()`
		if _, err := tx.Exec(ctx, upsertCart, userID); err != nil {
			return err
		}

		const upsertItem = `INSERT INTO cart_items (user_id, product_id, quantity)
                            VALUES ($1, $2, $3)
                            ON CONFLICT (user_id, product_id)
                            DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`
		for _, item := range items {
			if _, err := tx.Exec(ctx, upsertItem, userID, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		if err := refreshCartTotal(ctx, tx, userID); err != nil {
			return err
		}

		var err error
		cart, err = loadCart(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *cartRepository) UpdateItem(ctx context.Context, userID, productID int64, quantity int) (*model.Cart, error) {
	var cart *model.Cart
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE cart_items SET quantity=$1 WHERE user_id=$2 AND product_id=$3`
		tag, err := tx.Exec(ctx, update, quantity, userID, productID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		if err := refreshCartTotal(ctx, tx, userID); err != nil {
			return err
		}

		cart, err = loadCart(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, userID, productID int64) (*model.Cart, error) {
	var cart *model.Cart
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const remove = `DELETE FROM cart_items WHERE user_id=$1 AND product_id=$2`
		tag, err := tx.Exec(ctx, remove, userID, productID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		if err := refreshCartTotal(ctx, tx, userID); err != nil {
			return err
		}

		cart, err = loadCart(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *cartRepository) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	return loadCart(ctx, r.storage.pool, userID)
}

// Clear drops the cart entirely, used after successful checkout.
func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, userID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM carts WHERE user_id=$1`, userID); err != nil {
			return err
		}
		return nil
	})
}
