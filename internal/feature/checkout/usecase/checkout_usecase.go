package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	cartentity "shop_backend/internal/feature/cart/domain/entity"
	"shop_backend/internal/feature/checkout/domain/entity"
	jwtmw "shop_backend/internal/platform/jwt"
)

// checkoutSessionPlaceholder is expanded by the payment provider on redirect.
const checkoutSessionPlaceholder = "{CHECKOUT_SESSION_ID}"

// CartReader loads the caller's current cart.
type CartReader interface {
	GetCart(ctx context.Context, userID uint) (cartentity.Cart, error)
}

// PaymentGateway creates hosted payment sessions at the external provider.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req entity.SessionRequest) (entity.Session, error)
}

// Options configures redirect URLs.
type Options struct {
	// FrontendURL is used when the request has no Origin or an unknown one.
	FrontendURL string
	// AllowedOrigins are the origins a shopper may be redirected back to.
	// An empty list accepts any origin.
	AllowedOrigins []string
}

// CheckoutUsecase turns a cart into a payment session.
type CheckoutUsecase struct {
	carts   CartReader
	gateway PaymentGateway
	opts    Options
}

// NewCheckoutUsecase creates a CheckoutUsecase.
func NewCheckoutUsecase(carts CartReader, gateway PaymentGateway, opts Options) *CheckoutUsecase {
	opts.FrontendURL = strings.TrimRight(opts.FrontendURL, "/")
	return &CheckoutUsecase{carts: carts, gateway: gateway, opts: opts}
}

// CreateSession builds one line item per cart line and returns the provider's redirect URL.
// An empty cart returns ErrCartEmpty without calling the provider. The cart is not modified.
func (u *CheckoutUsecase) CreateSession(ctx context.Context, id jwtmw.Identity, origin string) (string, error) {
	cart, err := u.carts.GetCart(ctx, id.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to load cart: %w", err)
	}
	if cart.IsEmpty() {
		return "", ErrCartEmpty
	}

	items := make([]entity.LineItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, entity.LineItem{
			Name:       it.Name,
			ImageURL:   it.ImageURL,
			UnitAmount: ToMinorUnits(it.Price),
			Quantity:   int64(it.Quantity),
		})
	}

	base := u.redirectBase(origin)
	req := entity.SessionRequest{
		Currency:   entity.Currency,
		LineItems:  items,
		SuccessURL: base + "/success?session_id=" + checkoutSessionPlaceholder,
		CancelURL:  base + "/",
		Metadata:   map[string]string{"userId": strconv.FormatUint(uint64(id.UserID), 10)},
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	if session.URL == "" {
		return "", ErrNoRedirectURL
	}

	slog.Info("checkout session created", "session_id", session.ID, "user_id", id.UserID, "lines", len(items))
	return session.URL, nil
}

// redirectBase picks the origin the provider should send the shopper back to.
func (u *CheckoutUsecase) redirectBase(origin string) string {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		return u.opts.FrontendURL
	}
	if len(u.opts.AllowedOrigins) > 0 && !slices.Contains(u.opts.AllowedOrigins, origin) {
		slog.Warn("checkout origin not allowed, using frontend url", "origin", origin)
		return u.opts.FrontendURL
	}
	return origin
}

// ToMinorUnits converts a price to cents, rounding half away from zero.
func ToMinorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Shift(2).Round(0).IntPart()
}
