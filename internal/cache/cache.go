package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sellaro/storefront/internal/domain/model"
)

const (
	// keyNotification dedups provider callbacks by request id.
	keyNotification = "ipn:seen:%s"
	// keyOrderStatus caches the latest known order state by code.
	keyOrderStatus = "order:status:%s"
	// keyProduct caches storefront product reads by slug.
	keyProduct = "product:detail:%s"
)

var (
	ttlNotification = 48 * time.Hour
	ttlOrderStatus  = 5 * time.Minute
	ttlProduct      = 5 * time.Minute
)

// Cache is the shared short-lived state the service keeps outside the
// database. Implementations must be safe for concurrent use.
type Cache interface {
	// MarkNotification records a provider request id; it reports true
	// when the id was already seen.
	MarkNotification(ctx context.Context, requestID string) (bool, error)
	SetOrderStatus(ctx context.Context, code string, status model.OrderStatus, payment model.PaymentStatus) error
	// GetProduct returns the cached snapshot for a slug, or nil on a miss.
	GetProduct(ctx context.Context, slug string) (*model.ProductSnapshot, error)
	SetProduct(ctx context.Context, slug string, snapshot *model.ProductSnapshot) error
	InvalidateProduct(ctx context.Context, slug string) error
	Close() error
}

// RedisCache implements Cache on top of go-redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedis connects a cache client to the given address.
func NewRedis(addr string) *RedisCache {
	return &RedisCache{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *RedisCache) MarkNotification(ctx context.Context, requestID string) (bool, error) {
	key := fmt.Sprintf(keyNotification, requestID)
	created, err := c.client.SetNX(ctx, key, "1", ttlNotification).Result()
	if err != nil {
		return false, err
	}
	return !created, nil
}

func (c *RedisCache) SetOrderStatus(ctx context.Context, code string, status model.OrderStatus, payment model.PaymentStatus) error {
	key := fmt.Sprintf(keyOrderStatus, code)
	value := fmt.Sprintf("%d:%d", status, payment)
	return c.client.Set(ctx, key, value, ttlOrderStatus).Err()
}

func (c *RedisCache) GetProduct(ctx context.Context, slug string) (*model.ProductSnapshot, error) {
	key := fmt.Sprintf(keyProduct, slug)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var snapshot model.ProductSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *RedisCache) SetProduct(ctx context.Context, slug string, snapshot *model.ProductSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(keyProduct, slug)
	return c.client.Set(ctx, key, raw, ttlProduct).Err()
}

func (c *RedisCache) InvalidateProduct(ctx context.Context, slug string) error {
	return c.client.Del(ctx, fmt.Sprintf(keyProduct, slug)).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Noop is used when no redis address is configured; every notification
// appears unseen, leaving deduplication to the database guard.
type Noop struct{}

func (Noop) MarkNotification(context.Context, string) (bool, error) { return false, nil }

func (Noop) SetOrderStatus(context.Context, string, model.OrderStatus, model.PaymentStatus) error {
	return nil
}

func (Noop) GetProduct(context.Context, string) (*model.ProductSnapshot, error) { return nil, nil }

func (Noop) SetProduct(context.Context, string, *model.ProductSnapshot) error { return nil }

func (Noop) InvalidateProduct(context.Context, string) error { return nil }

func (Noop) Close() error { return nil }
