package payment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sellaro/storefront/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testOrder() *model.Order {
	return &model.Order{Code: "ORD-1", Amount: decimal.NewFromInt(30)}
}

func TestNewHTTPClient(t *testing.T) {
	signer := NewSigner("PARTNER", "ACCESS", "secret")

	if _, err := NewHTTPClient("http://provider.local", "PARTNER", signer, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewHTTPClient(":://bad", "PARTNER", signer, testLogger()); err == nil {
		t.Fatal("expected error for malformed url")
	}
	if _, err := NewHTTPClient("/relative", "PARTNER", signer, testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestCreatePayment(t *testing.T) {
	signer := NewSigner("PARTNER", "ACCESS", "secret")

	t.Run("success", func(t *testing.T) {
		var received createRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v2/create" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
				t.Errorf("decode request: %v", err)
			}
			_ = json.NewEncoder(w).Encode(createResponse{ResultCode: 0, PayURL: "https://pay.example/x"})
		}))
		defer server.Close()

		client, err := NewHTTPClient(server.URL, "PARTNER", signer, testLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		intent, err := client.CreatePayment(context.Background(), testOrder())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.PayURL != "https://pay.example/x" || intent.RequestID == "" {
			t.Fatalf("unexpected intent: %+v", intent)
		}
		if received.OrderID != "ORD-1" || received.PartnerCode != "PARTNER" || received.Signature == "" {
			t.Fatalf("unexpected request: %+v", received)
		}

		payload := "amount=30&orderId=ORD-1&partnerCode=PARTNER&requestId=" + received.RequestID
		if received.Signature != signer.Sign(payload) {
			t.Fatal("request signature does not match canonical payload")
		}
	})

	t.Run("declined", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(createResponse{ResultCode: 11, Message: "insufficient funds"})
		}))
		defer server.Close()

		client, _ := NewHTTPClient(server.URL, "PARTNER", signer, testLogger())
		if _, err := client.CreatePayment(context.Background(), testOrder()); !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected declined, got %v", err)
		}
	})

	t.Run("provider error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer server.Close()

		client, _ := NewHTTPClient(server.URL, "PARTNER", signer, testLogger())
		if _, err := client.CreatePayment(context.Background(), testOrder()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("unreachable provider", func(t *testing.T) {
		client, _ := NewHTTPClient("http://127.0.0.1:1", "PARTNER", signer, testLogger())
		if _, err := client.CreatePayment(context.Background(), testOrder()); err == nil {
			t.Fatal("expected error")
		}
	})
}
