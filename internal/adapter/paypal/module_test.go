package paypal

import (
	"io"
	"log/slog"
	"testing"

	"github.com/tradewind/storefront/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{
		PayPalAPIURL:       "http://example.com",
		PayPalClientID:     "id",
		PayPalClientSecret: "secret",
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}
