package test

import (
	"context"

	"github.com/sellaro/storefront/internal/adapter/payment"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/events"
)

// CacheStub records cache interactions for tests.
type CacheStub struct {
	MarkFn       func(context.Context, string) (bool, error)
	SetStatusFn  func(context.Context, string, model.OrderStatus, model.PaymentStatus) error
	GetProductFn func(context.Context, string) (*model.ProductSnapshot, error)
	Seen         map[string]bool
	Marked       []string
	Statuses     map[string]model.OrderStatus
	Products     map[string]*model.ProductSnapshot
	Invalidated  []string
	Err          error
}

// NewCacheStub constructs stub with initialized maps.
func NewCacheStub() *CacheStub {
	return &CacheStub{
		Seen:     make(map[string]bool),
		Statuses: make(map[string]model.OrderStatus),
		Products: make(map[string]*model.ProductSnapshot),
	}
}

// MarkNotification reports whether id was seen and remembers it.
func (s *CacheStub) MarkNotification(ctx context.Context, requestID string) (bool, error) {
	s.Marked = append(s.Marked, requestID)
	if s.MarkFn != nil {
		return s.MarkFn(ctx, requestID)
	}
	if s.Err != nil {
		return false, s.Err
	}
	if s.Seen == nil {
		s.Seen = make(map[string]bool)
	}
	seen := s.Seen[requestID]
	s.Seen[requestID] = true
	return seen, nil
}

// SetOrderStatus records the cached status.
func (s *CacheStub) SetOrderStatus(ctx context.Context, code string, status model.OrderStatus, paymentStatus model.PaymentStatus) error {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, code, status, paymentStatus)
	}
	if s.Statuses == nil {
		s.Statuses = make(map[string]model.OrderStatus)
	}
	s.Statuses[code] = status
	return nil
}

// GetProduct returns the stored snapshot or nil on a miss.
func (s *CacheStub) GetProduct(ctx context.Context, slug string) (*model.ProductSnapshot, error) {
	if s.GetProductFn != nil {
		return s.GetProductFn(ctx, slug)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Products[slug], nil
}

// SetProduct stores the snapshot under slug.
func (s *CacheStub) SetProduct(ctx context.Context, slug string, snapshot *model.ProductSnapshot) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Products == nil {
		s.Products = make(map[string]*model.ProductSnapshot)
	}
	s.Products[slug] = snapshot
	return nil
}

// InvalidateProduct drops the cached snapshot and records the slug.
func (s *CacheStub) InvalidateProduct(ctx context.Context, slug string) error {
	s.Invalidated = append(s.Invalidated, slug)
	if s.Err != nil {
		return s.Err
	}
	delete(s.Products, slug)
	return nil
}

// Close is a no-op.
func (s *CacheStub) Close() error { return nil }

// PublishedEvent stores one Publish invocation.
type PublishedEvent struct {
	Type    string
	Payload events.OrderEvent
}

// PublisherStub records published events.
type PublisherStub struct {
	PublishFn func(context.Context, string, events.OrderEvent) error
	Events    []PublishedEvent
}

// Publish records the event and applies override when provided.
func (s *PublisherStub) Publish(ctx context.Context, eventType string, payload events.OrderEvent) error {
	s.Events = append(s.Events, PublishedEvent{Type: eventType, Payload: payload})
	if s.PublishFn != nil {
		return s.PublishFn(ctx, eventType, payload)
	}
	return nil
}

// Close is a no-op.
func (s *PublisherStub) Close() error { return nil }

// VerifierStub controls signature verification outcomes.
type VerifierStub struct {
	VerifyFn func(model.PaymentNotification) bool
	Valid    bool
}

// VerifyNotification returns the configured verdict.
func (s VerifierStub) VerifyNotification(n model.PaymentNotification) bool {
	if s.VerifyFn != nil {
		return s.VerifyFn(n)
	}
	return s.Valid
}

// PaymentClientStub simulates the provider client.
type PaymentClientStub struct {
	CreateFn func(context.Context, *model.Order) (*payment.PaymentIntent, error)
	Intent   *payment.PaymentIntent
	Err      error
}

// CreatePayment returns the configured intent or error.
func (s PaymentClientStub) CreatePayment(ctx context.Context, order *model.Order) (*payment.PaymentIntent, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Intent != nil {
		return s.Intent, nil
	}
	return &payment.PaymentIntent{PayURL: "https://pay.example/" + order.Code, RequestID: "req-1"}, nil
}
