package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
)

// --- WishlistRepository implementation ---
//
// Membership lives in wishlist_items and is mirrored by the users.wishlist
// array. Every mutation touches both inside one transaction so the two views
// can never disagree.

func (r *wishlistRepository) Add(ctx context.Context, userID, productID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockUser = `SELECT id FROM users WHERE id=$1 FOR UPDATE`
		var id int64
		if err := tx.QueryRow(ctx, lockUser, userID).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const checkProduct = `SELECT EXISTS (SELECT 1 FROM products WHERE id=$1)`
		var exists bool
		if err := tx.QueryRow(ctx, checkProduct, productID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domainErrors.ErrNotFound
		}

		const insert = `INSERT INTO wishlist_items (user_id, product_id) VALUES ($1, $2)
                        ON CONFLICT (user_id, product_id) DO NOTHING`
		tag, err := tx.Exec(ctx, insert, userID, productID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrAlreadyExists
		}

		const mirror = `UPDATE users SET wishlist = array_append(wishlist, $2)
                        WHERE id=$1 AND NOT ($2 = ANY(wishlist))`
		if _, err := tx.Exec(ctx, mirror, userID, productID); err != nil {
			return err
		}
		return nil
	})
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, productID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const remove = `DELETE FROM wishlist_items WHERE user_id=$1 AND product_id=$2`
		tag, err := tx.Exec(ctx, remove, userID, productID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		const mirror = `UPDATE users SET wishlist = array_remove(wishlist, $2) WHERE id=$1`
		if _, err := tx.Exec(ctx, mirror, userID, productID); err != nil {
			return err
		}
		return nil
	})
}

func (r *wishlistRepository) Clear(ctx context.Context, userID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM wishlist_items WHERE user_id=$1`, userID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE users SET wishlist='{}' WHERE id=$1`, userID); err != nil {
			return err
		}
		return nil
	})
}

func (r *wishlistRepository) List(ctx context.Context, userID int64) ([]model.WishlistEntry, error) {
	const query = `SELECT product_id, added_at FROM wishlist_items WHERE user_id=$1 ORDER BY added_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.WishlistEntry
	for rows.Next() {
		var entry model.WishlistEntry
		if err := rows.Scan(&entry.ProductID, &entry.AddedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *wishlistRepository) Contains(ctx context.Context, userID, productID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM wishlist_items WHERE user_id=$1 AND product_id=$2)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, userID, productID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
