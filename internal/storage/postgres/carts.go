package postgres

import (
	"context"
	"time"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
)

func (r *cartRepository) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	const query = `SELECT variant_id, quantity, updated_at FROM carts WHERE user_id=$1 ORDER BY variant_id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart := &model.Cart{UserID: userID}
	for rows.Next() {
		var item model.CartItem
		var updated time.Time
		if err := rows.Scan(&item.VariantID, &item.Quantity, &updated); err != nil {
			return nil, err
		}
		if updated.After(cart.UpdatedAt) {
			cart.UpdatedAt = updated
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cart, nil
}

// Merge adds the quantity onto an existing line for the variant or
// creates a new line, mirroring Cart.Merge semantics in SQL.
func (r *cartRepository) Merge(ctx context.Context, userID int64, item model.CartItem) error {
	const query = `INSERT INTO carts (user_id, variant_id, quantity)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (user_id, variant_id)
                   DO UPDATE SET quantity = carts.quantity + EXCLUDED.quantity, updated_at = NOW()`
	_, err := r.storage.pool.Exec(ctx, query, userID, item.VariantID, item.Quantity)
	return err
}

func (r *cartRepository) SetQuantity(ctx context.Context, userID, variantID int64, quantity int) error {
	const query = `INSERT INTO carts (user_id, variant_id, quantity)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (user_id, variant_id)
                   DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = NOW()`
	_, err := r.storage.pool.Exec(ctx, query, userID, variantID, quantity)
	return err
}

func (r *cartRepository) Remove(ctx context.Context, userID, variantID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM carts WHERE user_id=$1 AND variant_id=$2`, userID, variantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM carts WHERE user_id=$1`, userID)
	return err
}
