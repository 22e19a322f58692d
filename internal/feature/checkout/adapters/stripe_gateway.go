// Package adapters はcheckoutフィーチャーの外部決済プロバイダー実装を提供します。
package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"shop_backend/internal/feature/checkout/domain/entity"
	"shop_backend/internal/feature/checkout/usecase"
	"shop_backend/internal/platform/config"
)

// StripeGateway は Stripe Checkout を使って決済セッションを作成します。
type StripeGateway struct {
	api *client.API
}

var _ usecase.PaymentGateway = (*StripeGateway)(nil)

// NewStripeGateway は Stripe クライアントを初期化します。
//
// 注意:
//   - cfg.APIURL が空でなければ API の接続先を差し替える（stripe-mock やテスト用サーバー向け）
//   - リクエスト経路では再試行しないため MaxNetworkRetries は 0
//   - SDK のログは slog に流す
func NewStripeGateway(cfg config.StripeConfig, httpClient *http.Client, logger *slog.Logger) *StripeGateway {
	if logger == nil {
		logger = slog.Default()
	}
	backendCfg := func() *stripe.BackendConfig {
		bc := &stripe.BackendConfig{
			HTTPClient:        httpClient,
			MaxNetworkRetries: stripe.Int64(0),
			LeveledLogger:     &leveledLogger{l: logger.With("component", "stripe")},
		}
		if cfg.APIURL != "" {
			bc.URL = stripe.String(cfg.APIURL)
		}
		return bc
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg()),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendCfg()),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendCfg()),
	}
	return &StripeGateway{api: client.New(cfg.SecretKey, backends)}
}

// CreateCheckoutSession はカード払いの決済セッションを作成します。
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req entity.SessionRequest) (entity.Session, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
		LineItems:          make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems)),
	}
	params.Context = ctx

	for _, it := range req.LineItems {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(it.Name),
		}
		// Stripe は空の画像URLを拒否する
		if it.ImageURL != "" {
			product.Images = stripe.StringSlice([]string{it.ImageURL})
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(req.Currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(it.UnitAmount),
			},
			Quantity: stripe.Int64(it.Quantity),
		})
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return entity.Session{}, fmt.Errorf("stripe: create checkout session: %w", err)
	}
	return entity.Session{ID: s.ID, URL: s.URL}, nil
}

// leveledLogger は stripe.LeveledLoggerInterface を slog で実装します。
type leveledLogger struct {
	l *slog.Logger
}

func (s *leveledLogger) Debugf(format string, v ...interface{}) {
	s.l.Debug(fmt.Sprintf(format, v...))
}

func (s *leveledLogger) Infof(format string, v ...interface{}) {
	s.l.Debug(fmt.Sprintf(format, v...))
}

func (s *leveledLogger) Warnf(format string, v ...interface{}) {
	s.l.Warn(fmt.Sprintf(format, v...))
}

func (s *leveledLogger) Errorf(format string, v ...interface{}) {
	s.l.Error(fmt.Sprintf(format, v...))
}
