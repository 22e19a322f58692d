package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartentity "shop_backend/internal/feature/cart/domain/entity"
	"shop_backend/internal/feature/checkout/domain/entity"
	jwtmw "shop_backend/internal/platform/jwt"
)

// mockCartReader はテスト用のCartReaderモック実装です。
type mockCartReader struct {
	getCartFunc func(ctx context.Context, userID uint) (cartentity.Cart, error)
}

func (m *mockCartReader) GetCart(ctx context.Context, userID uint) (cartentity.Cart, error) {
	return m.getCartFunc(ctx, userID)
}

// mockGateway はテスト用のPaymentGatewayモック実装です。
type mockGateway struct {
	createFunc func(ctx context.Context, req entity.SessionRequest) (entity.Session, error)
	calls      int
	last       entity.SessionRequest
}

func (m *mockGateway) CreateCheckoutSession(ctx context.Context, req entity.SessionRequest) (entity.Session, error) {
	m.calls++
	m.last = req
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return entity.Session{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil
}

func cartOf(items ...cartentity.CartItem) *mockCartReader {
	return &mockCartReader{getCartFunc: func(ctx context.Context, userID uint) (cartentity.Cart, error) {
		return cartentity.Cart{Items: items, Count: len(items)}, nil
	}}
}

var identity = jwtmw.Identity{UserID: 7, Email: "user@example.com"}

func TestCheckoutUsecase_CreateSession(t *testing.T) {
	t.Parallel()

	carts := cartOf(
		cartentity.CartItem{ProductID: 1, Name: "Laptop", Price: 999.99, Quantity: 3, ImageURL: "https://example.com/laptop.png"},
		cartentity.CartItem{ProductID: 3, Name: "Mouse", Price: 49.99, Quantity: 1},
	)
	gw := &mockGateway{}
	uc := NewCheckoutUsecase(carts, gw, Options{FrontendURL: "http://localhost:3000"})

	url, err := uc.CreateSession(context.Background(), identity, "https://shop.example.com")

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_1", url)
	require.Equal(t, 1, gw.calls)

	req := gw.last
	assert.Equal(t, "usd", req.Currency)
	assert.Equal(t, "https://shop.example.com/success?session_id={CHECKOUT_SESSION_ID}", req.SuccessURL)
	assert.Equal(t, "https://shop.example.com/", req.CancelURL)
	assert.Equal(t, map[string]string{"userId": "7"}, req.Metadata)
	assert.Equal(t, []entity.LineItem{
		{Name: "Laptop", ImageURL: "https://example.com/laptop.png", UnitAmount: 99999, Quantity: 3},
		{Name: "Mouse", UnitAmount: 4999, Quantity: 1},
	}, req.LineItems)
}

func TestCheckoutUsecase_CreateSession_Origin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		allowed     []string
		origin      string
		wantCancel  string
		wantSuccess string
	}{
		{
			name:        "missing origin falls back to frontend url",
			origin:      "",
			wantCancel:  "http://localhost:3000/",
			wantSuccess: "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}",
		},
		{
			name:        "any origin accepted without allow list",
			origin:      "http://other.example.com",
			wantCancel:  "http://other.example.com/",
			wantSuccess: "http://other.example.com/success?session_id={CHECKOUT_SESSION_ID}",
		},
		{
			name:        "allowed origin is used",
			allowed:     []string{"http://localhost:3000", "https://shop.example.com"},
			origin:      "https://shop.example.com",
			wantCancel:  "https://shop.example.com/",
			wantSuccess: "https://shop.example.com/success?session_id={CHECKOUT_SESSION_ID}",
		},
		{
			name:        "unknown origin replaced by frontend url",
			allowed:     []string{"http://localhost:3000"},
			origin:      "https://evil.example.com",
			wantCancel:  "http://localhost:3000/",
			wantSuccess: "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}",
		},
		{
			name:        "trailing slash is trimmed",
			origin:      "https://shop.example.com/",
			wantCancel:  "https://shop.example.com/",
			wantSuccess: "https://shop.example.com/success?session_id={CHECKOUT_SESSION_ID}",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw := &mockGateway{}
			uc := NewCheckoutUsecase(
				cartOf(cartentity.CartItem{ProductID: 1, Name: "Laptop", Price: 999.99, Quantity: 1}),
				gw,
				Options{FrontendURL: "http://localhost:3000/", AllowedOrigins: tt.allowed},
			)

			_, err := uc.CreateSession(context.Background(), identity, tt.origin)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, gw.last.SuccessURL)
			assert.Equal(t, tt.wantCancel, gw.last.CancelURL)
		})
	}
}

func TestCheckoutUsecase_CreateSession_Errors(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("database error")
	gwErr := errors.New("provider unavailable")

	failingCarts := &mockCartReader{getCartFunc: func(ctx context.Context, userID uint) (cartentity.Cart, error) {
		return cartentity.Cart{}, dbErr
	}}
	providerFails := func(ctx context.Context, req entity.SessionRequest) (entity.Session, error) {
		return entity.Session{}, gwErr
	}
	providerNoURL := func(ctx context.Context, req entity.SessionRequest) (entity.Session, error) {
		return entity.Session{ID: "cs_1"}, nil
	}
	oneLine := cartOf(cartentity.CartItem{ProductID: 1, Price: 1, Quantity: 1})

	tests := []struct {
		name      string
		carts     CartReader
		create    func(ctx context.Context, req entity.SessionRequest) (entity.Session, error)
		wantErr   error
		wantCalls int
	}{
		{
			name:    "empty cart never reaches the provider",
			carts:   cartOf(),
			wantErr: ErrCartEmpty,
		},
		{
			name:    "cart load failure",
			carts:   failingCarts,
			wantErr: dbErr,
		},
		{
			name:      "provider failure",
			carts:     oneLine,
			create:    providerFails,
			wantErr:   gwErr,
			wantCalls: 1,
		},
		{
			name:      "provider returns no url",
			carts:     oneLine,
			create:    providerNoURL,
			wantErr:   ErrNoRedirectURL,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw := &mockGateway{createFunc: tt.create}
			url, err := NewCheckoutUsecase(tt.carts, gw, Options{FrontendURL: "http://localhost:3000"}).
				CreateSession(context.Background(), identity, "")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, url)
			assert.Equal(t, tt.wantCalls, gw.calls)
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price float64
		want  int64
	}{
		{999.99, 99999},
		{199.99, 19999},
		{49.99, 4999},
		{0.1, 10},
		{19.995, 2000},
		{0, 0},
		{12, 1200},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToMinorUnits(tt.price), "price %v", tt.price)
	}
}
