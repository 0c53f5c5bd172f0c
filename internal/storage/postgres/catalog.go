package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
)

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, name, slug string) (*model.Category, error) {
	const query = `INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, name, slug).Scan(&c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	c.Name = name
	c.Slug = slug
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, slug FROM categories ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (category_id, name, slug, description, active)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		product.CategoryID, product.Name, product.Slug, product.Description, product.Active,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	const query = `UPDATE products
                   SET category_id=$1, name=$2, slug=$3, description=$4, active=$5, updated_at=NOW()
                   WHERE id=$6`
	tag, err := r.storage.pool.Exec(ctx, query,
		product.CategoryID, product.Name, product.Slug, product.Description, product.Active, product.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	const query = `SELECT id, category_id, name, slug, description, active, created_at, updated_at
                   FROM products WHERE slug=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, slug).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, categoryID int64, activeOnly bool) ([]model.Product, error) {
	const query = `SELECT id, category_id, name, slug, description, active, created_at, updated_at
                   FROM products
                   WHERE ($1 = 0 OR category_id = $1) AND (NOT $2 OR active)
                   ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query, categoryID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- VariantRepository implementation ---

func (r *variantRepository) Create(ctx context.Context, variant *model.Variant) (*model.Variant, error) {
	const query = `INSERT INTO variants (product_id, sku, price, cost, inventory, properties)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		variant.ProductID, variant.SKU, variant.Price, variant.Cost, variant.Inventory, variant.Properties,
	).Scan(&variant.ID, &variant.CreatedAt, &variant.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return variant, nil
}

func (r *variantRepository) Update(ctx context.Context, variant *model.Variant) error {
	const query = `UPDATE variants
                   SET sku=$1, price=$2, cost=$3, inventory=$4, properties=$5, updated_at=NOW()
                   WHERE id=$6`
	tag, err := r.storage.pool.Exec(ctx, query,
		variant.SKU, variant.Price, variant.Cost, variant.Inventory, variant.Properties, variant.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *variantRepository) GetBySKU(ctx context.Context, sku string) (*model.Variant, error) {
	const query = `SELECT id, product_id, sku, price, cost, inventory, properties, created_at, updated_at
                   FROM variants WHERE sku=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, sku))
}

func (r *variantRepository) GetByID(ctx context.Context, id int64) (*model.Variant, error) {
	const query = `SELECT id, product_id, sku, price, cost, inventory, properties, created_at, updated_at
                   FROM variants WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *variantRepository) scanOne(row pgx.Row) (*model.Variant, error) {
	var v model.Variant
	err := row.Scan(&v.ID, &v.ProductID, &v.SKU, &v.Price, &v.Cost, &v.Inventory, &v.Properties, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *variantRepository) ListByProduct(ctx context.Context, productID int64) ([]model.Variant, error) {
	const query = `SELECT id, product_id, sku, price, cost, inventory, properties, created_at, updated_at
                   FROM variants WHERE product_id=$1 ORDER BY sku`
	rows, err := r.storage.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Variant
	for rows.Next() {
		var v model.Variant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.SKU, &v.Price, &v.Cost, &v.Inventory, &v.Properties, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// AdjustInventory applies a manual stock correction. Negative deltas
// that would take inventory below zero are rejected as insufficient
// stock rather than violating the check constraint.
func (r *variantRepository) AdjustInventory(ctx context.Context, id int64, delta int) error {
	const query = `UPDATE variants SET inventory = inventory + $2, updated_at = NOW()
                   WHERE id = $1 AND inventory + $2 >= 0`
	tag, err := r.storage.pool.Exec(ctx, query, id, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domainErrors.ErrInsufficientStock
	}
	return nil
}

func (r *variantRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM variants WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
