package payment

import (
	"io"
	"log/slog"
	"testing"

	"github.com/sellaro/storefront/internal/config"
)

func TestNewSignerUsesConfig(t *testing.T) {
	cfg := &config.Config{
		PaymentPartner:   "PARTNER",
		PaymentAccessKey: "access",
		PaymentSecretKey: "secret",
	}
	signer := newSigner(signerParams{Config: cfg})
	if signer == nil {
		t.Fatal("expected signer instance")
	}
}

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{
		PaymentAddress:   "http://example.com",
		PaymentPartner:   "PARTNER",
		PaymentAccessKey: "access",
		PaymentSecretKey: "secret",
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	signer := newSigner(signerParams{Config: cfg})

	client, err := newClient(clientParams{Config: cfg, Signer: signer, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}
