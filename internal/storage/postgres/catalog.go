package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
)

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.Product, categoryName string) (*model.Product, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// Resolve category by name, creating it on first use.
		const upsertCategory = `INSERT INTO categories (name) VALUES ($1)
                                ON CONFLICT (name) DO UPDATE SET name=EXCLUDED.name
                                RETURNING id`
		if err := tx.QueryRow(ctx, upsertCategory, categoryName).Scan(&product.CategoryID); err != nil {
			return err
		}
		product.CategoryName = categoryName

		const insertProduct = `INSERT INTO products (name, description, images, price, stock, category_id, sold)
                               VALUES ($1, $2, $3, $4, $5, $6, $7)
                               RETURNING id, average_rating, created_at, updated_at`
		err := tx.QueryRow(ctx, insertProduct,
			product.Name, product.Description, product.Images, product.Price, product.Stock, product.CategoryID, product.Sold).
			Scan(&product.ID, &product.AverageRating, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

const productColumns = `p.id, p.name, p.description, p.images, p.price, p.stock, p.category_id, c.name,
                        p.average_rating, p.sold, p.created_at, p.updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Images, &p.Price, &p.Stock, &p.CategoryID, &p.CategoryName,
		&p.AverageRating, &p.Sold, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p JOIN categories c ON c.id=p.category_id WHERE p.id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) GetMany(ctx context.Context, ids []int64) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p JOIN categories c ON c.id=p.category_id WHERE p.id = ANY($1) ORDER BY p.id`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Images, &p.Price, &p.Stock, &p.CategoryID, &p.CategoryName,
			&p.AverageRating, &p.Sold, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

var productSortColumns = map[string]string{
	"price":      "p.price",
	"name":       "p.name",
	"created_at": "p.created_at",
	"updated_at": "p.updated_at",
	"rating":     "p.average_rating",
}

func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CategoryName != "" {
		conditions = append(conditions, "c.name = "+arg(filter.CategoryName))
	}
	if filter.PriceMin != nil {
		conditions = append(conditions, "p.price >= "+arg(*filter.PriceMin))
	}
	if filter.PriceMax != nil {
		conditions = append(conditions, "p.price <= "+arg(*filter.PriceMax))
	}
	if filter.StockMin != nil {
		conditions = append(conditions, "p.stock >= "+arg(*filter.StockMin))
	}
	if filter.Sold != nil {
		conditions = append(conditions, "p.sold = "+arg(*filter.Sold))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	const from = ` FROM products p JOIN categories c ON c.id=p.category_id`

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*)`+from+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortColumn, ok := productSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "p.price"
	}
	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	query := `SELECT ` + productColumns + from + where +
		fmt.Sprintf(" ORDER BY %s %s LIMIT %s OFFSET %s", sortColumn, direction, arg(limit), arg((page-1)*limit))

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Images, &p.Price, &p.Stock, &p.CategoryID, &p.CategoryName,
			&p.AverageRating, &p.Sold, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

// --- ReviewRepository implementation ---
//
// Every mutation runs inside one transaction that also recomputes the
// product's denormalized average rating, so no intermediate aggregate state
// is ever observable.

// refreshProductRating recomputes average_rating for the product: mean of all
// current ratings rounded to one decimal, or 0 when no reviews remain.
func refreshProductRating(ctx context.Context, tx pgx.Tx, productID int64) error {
	const query = `UPDATE products
                   SET average_rating = COALESCE((
                       SELECT ROUND(AVG(rating)::numeric, 1)::double precision
                       FROM reviews WHERE product_id=$1
                   ), 0),
                   updated_at = NOW()
                   WHERE id=$1`
	_, err := tx.Exec(ctx, query, productID)
	return err
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// Lock the product row so the duplicate check and aggregate update
		// are serialized against concurrent review writes.
		const lockProduct = `SELECT id FROM products WHERE id=$1 FOR UPDATE`
		var productID int64
		if err := tx.QueryRow(ctx, lockProduct, review.ProductID).Scan(&productID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const checkDuplicate = `SELECT EXISTS (SELECT 1 FROM reviews WHERE product_id=$1 AND user_id=$2)`
		var exists bool
		if err := tx.QueryRow(ctx, checkDuplicate, review.ProductID, review.UserID).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return domainErrors.ErrDuplicateReview
		}

		const insert = `INSERT INTO reviews (product_id, user_id, rating, comment)
                        VALUES ($1, $2, $3, $4)
                        RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, insert, review.ProductID, review.UserID, review.Rating, review.Comment).
			Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrDuplicateReview
			}
			return err
		}

		return refreshProductRating(ctx, tx, review.ProductID)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *model.Review) (*model.Review, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectReview = `SELECT user_id FROM reviews WHERE id=$1 AND product_id=$2 FOR UPDATE`
		var ownerID int64
		if err := tx.QueryRow(ctx, selectReview, review.ID, review.ProductID).Scan(&ownerID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if ownerID != review.UserID {
			return domainErrors.ErrAuthorMismatch
		}

		const update = `UPDATE reviews SET rating=$1, comment=$2, updated_at=NOW()
                        WHERE id=$3
                        RETURNING created_at, updated_at`
		if err := tx.QueryRow(ctx, update, review.Rating, review.Comment, review.ID).
			Scan(&review.CreatedAt, &review.UpdatedAt); err != nil {
			return err
		}

		return refreshProductRating(ctx, tx, review.ProductID)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (r *reviewRepository) Delete(ctx context.Context, productID, reviewID, userID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectReview = `SELECT user_id FROM reviews WHERE id=$1 AND product_id=$2 FOR UPDATE`
		var ownerID int64
		if err := tx.QueryRow(ctx, selectReview, reviewID, productID).Scan(&ownerID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if ownerID != userID {
			return domainErrors.ErrAuthorMismatch
		}

		if _, err := tx.Exec(ctx, `DELETE FROM reviews WHERE id=$1`, reviewID); err != nil {
			return err
		}

		return refreshProductRating(ctx, tx, productID)
	})
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID int64, page, limit int) ([]model.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE product_id=$1`, productID).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT id, product_id, user_id, rating, comment, created_at, updated_at
                   FROM reviews WHERE product_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.storage.pool.Query(ctx, query, productID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var review model.Review
		if err := rows.Scan(&review.ID, &review.ProductID, &review.UserID, &review.Rating, &review.Comment,
			&review.CreatedAt, &review.UpdatedAt); err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, review)
	}
	return reviews, total, rows.Err()
}
