package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gadgetpasal/backend/internal/model"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (id, name, description, brand, badge, price, original_price, discount, category,
			image_url, colors, storage, rating, review_count, featured, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING created_at, updated_at`

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return r.db.QueryRowxContext(ctx, query,
		product.ID, product.Name, product.Description, product.Brand, product.Badge, product.Price,
		product.OriginalPrice, product.Discount, product.Category, product.ImageURL,
		textArray(product.Colors), textArray(product.Storage), product.Rating, product.ReviewCount,
		product.Featured, product.Stock,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1`
	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns products matching filter, newest first. A zero Limit means no limit.
func (r *ProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	products := []model.Product{}
	query := `
		SELECT * FROM products
		WHERE ($1 = '' OR category = $1)
		AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		AND (cardinality($3::text[]) = 0 OR brand = ANY($3::text[]))
		AND ($4::numeric IS NULL OR price >= $4)
		AND ($5::numeric IS NULL OR price <= $5)
		AND (NOT $6 OR stock > 0)
		AND (NOT $7 OR featured)
		ORDER BY created_at DESC, name
		LIMIT NULLIF($8, 0) OFFSET $9`

	err := r.db.SelectContext(ctx, &products, query,
		filter.Category, filter.Search, textArray(filter.Brands), filter.MinPrice, filter.MaxPrice,
		filter.InStock, filter.Featured, filter.Limit, filter.Offset,
	)
	return products, err
}

func (r *ProductRepository) Update(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, brand = $4, badge = $5, price = $6, original_price = $7,
			discount = $8, category = $9, image_url = $10, colors = $11, storage = $12, rating = $13,
			review_count = $14, featured = $15, stock = $16, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`
	err := r.db.QueryRowxContext(ctx, query,
		product.ID, product.Name, product.Description, product.Brand, product.Badge, product.Price,
		product.OriginalPrice, product.Discount, product.Category, product.ImageURL,
		textArray(product.Colors), textArray(product.Storage), product.Rating, product.ReviewCount,
		product.Featured, product.Stock,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProductNotFound
	}
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`)
	return count, err
}

// textArray binds a possibly nil slice as a non-null text[].
func textArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}
