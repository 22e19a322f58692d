// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"

	checkoutadapters "shop_backend/internal/feature/checkout/adapters"
	"shop_backend/internal/platform/config"
	infrahttp "shop_backend/internal/platform/http"
)

// NewPaymentGateway creates a fully configured Stripe gateway with its own HTTP client.
func NewPaymentGateway(cfg config.StripeConfig, logger *slog.Logger) *checkoutadapters.StripeGateway {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return checkoutadapters.NewStripeGateway(cfg, httpClient, logger)
}
