package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/cart/domain/entity"
)

// mockCartRepository はテスト用のCartRepositoryモック実装です。
type mockCartRepository struct {
	listItemsFunc   func(ctx context.Context, userID uint) ([]entity.CartItem, error)
	addQuantityFunc func(ctx context.Context, userID, productID uint, quantity int) error
	setQuantityFunc func(ctx context.Context, userID, productID uint, quantity int) (int64, error)
	deleteFunc      func(ctx context.Context, userID, productID uint) error
	deleteAllFunc   func(ctx context.Context, userID uint) error

	addCalls int
}

func (m *mockCartRepository) ListItems(ctx context.Context, userID uint) ([]entity.CartItem, error) {
	if m.listItemsFunc != nil {
		return m.listItemsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockCartRepository) AddQuantity(ctx context.Context, userID, productID uint, quantity int) error {
	m.addCalls++
	if m.addQuantityFunc != nil {
		return m.addQuantityFunc(ctx, userID, productID, quantity)
	}
	return nil
}

func (m *mockCartRepository) SetQuantity(ctx context.Context, userID, productID uint, quantity int) (int64, error) {
	if m.setQuantityFunc != nil {
		return m.setQuantityFunc(ctx, userID, productID, quantity)
	}
	return 1, nil
}

func (m *mockCartRepository) Delete(ctx context.Context, userID, productID uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, productID)
	}
	return nil
}

func (m *mockCartRepository) DeleteAll(ctx context.Context, userID uint) error {
	if m.deleteAllFunc != nil {
		return m.deleteAllFunc(ctx, userID)
	}
	return nil
}

// mockProductChecker はテスト用のProductCheckerモック実装です。
type mockProductChecker struct {
	existsFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockProductChecker) Exists(ctx context.Context, id uint) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return true, nil
}

func intPtr(v int) *int { return &v }

func TestCartUsecase_GetCart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		items         []entity.CartItem
		expectedTotal string
		expectedCount int
	}{
		{
			name:          "empty cart",
			items:         nil,
			expectedTotal: "0.00",
			expectedCount: 0,
		},
		{
			name:          "single line with quantity",
			items:         []entity.CartItem{{ProductID: 1, Name: "Laptop", Price: 999.99, Quantity: 3}},
			expectedTotal: "2999.97",
			expectedCount: 1,
		},
		{
			name: "count is distinct lines not summed quantity",
			items: []entity.CartItem{
				{ProductID: 1, Price: 999.99, Quantity: 1},
				{ProductID: 2, Price: 199.99, Quantity: 2},
				{ProductID: 3, Price: 49.99, Quantity: 5},
			},
			expectedTotal: "1649.92",
			expectedCount: 3,
		},
		{
			name: "float prices sum without binary drift",
			items: []entity.CartItem{
				{ProductID: 1, Price: 0.1, Quantity: 1},
				{ProductID: 2, Price: 0.2, Quantity: 1},
			},
			expectedTotal: "0.30",
			expectedCount: 2,
		},
		{
			name:          "half cent is rounded",
			items:         []entity.CartItem{{ProductID: 1, Price: 0.125, Quantity: 1}},
			expectedTotal: "0.13",
			expectedCount: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockCartRepository{listItemsFunc: func(ctx context.Context, userID uint) ([]entity.CartItem, error) {
				assert.Equal(t, uint(7), userID)
				return tt.items, nil
			}}
			uc := NewCartUsecase(repo, &mockProductChecker{}, Options{})

			cart, err := uc.GetCart(context.Background(), 7)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, cart.Total)
			assert.Equal(t, tt.expectedCount, cart.Count)
			assert.NotNil(t, cart.Items)
			assert.Len(t, cart.Items, tt.expectedCount)
		})
	}
}

func TestCartUsecase_GetCart_Error(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("database error")
	repo := &mockCartRepository{listItemsFunc: func(ctx context.Context, userID uint) ([]entity.CartItem, error) {
		return nil, dbErr
	}}

	_, err := NewCartUsecase(repo, &mockProductChecker{}, Options{}).GetCart(context.Background(), 1)

	assert.ErrorIs(t, err, dbErr)
}

func TestCartUsecase_AddItem(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("database error")

	tests := []struct {
		name        string
		productID   uint
		quantity    *int
		exists      func(ctx context.Context, id uint) (bool, error)
		addErr      error
		wantErr     error
		wantAdded   bool
		expectedQty int
	}{
		{name: "nil quantity defaults to one", productID: 1, quantity: nil, wantAdded: true, expectedQty: 1},
		{name: "explicit quantity", productID: 1, quantity: intPtr(3), wantAdded: true, expectedQty: 3},
		{name: "large quantity has no upper bound", productID: 1, quantity: intPtr(100000), wantAdded: true, expectedQty: 100000},
		{name: "missing product id", productID: 0, quantity: intPtr(1), wantErr: ErrProductIDRequired},
		{name: "zero quantity", productID: 1, quantity: intPtr(0), wantErr: ErrInvalidQuantity},
		{name: "negative quantity", productID: 1, quantity: intPtr(-2), wantErr: ErrInvalidQuantity},
		{
			name:      "product not found",
			productID: 42,
			exists:    func(ctx context.Context, id uint) (bool, error) { return false, nil },
			wantErr:   ErrProductNotFound,
		},
		{
			name:      "product lookup error",
			productID: 1,
			exists:    func(ctx context.Context, id uint) (bool, error) { return false, dbErr },
			wantErr:   dbErr,
		},
		{name: "upsert error", productID: 1, addErr: dbErr, wantErr: dbErr, wantAdded: true, expectedQty: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockCartRepository{addQuantityFunc: func(ctx context.Context, userID, productID uint, quantity int) error {
				assert.Equal(t, uint(5), userID)
				assert.Equal(t, tt.productID, productID)
				assert.Equal(t, tt.expectedQty, quantity)
				return tt.addErr
			}}
			uc := NewCartUsecase(repo, &mockProductChecker{existsFunc: tt.exists}, Options{})

			err := uc.AddItem(context.Background(), 5, tt.productID, tt.quantity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantAdded {
				assert.Equal(t, 1, repo.addCalls)
			} else {
				assert.Zero(t, repo.addCalls)
			}
		})
	}
}

func TestCartUsecase_UpdateItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		strict    bool
		productID uint
		quantity  int
		affected  int64
		wantErr   error
	}{
		{name: "existing line is updated", productID: 1, quantity: 4, affected: 1},
		{name: "missing line is silent success by default", productID: 1, quantity: 4, affected: 0},
		{name: "missing line is not found in strict mode", strict: true, productID: 1, quantity: 4, affected: 0, wantErr: ErrCartLineNotFound},
		{name: "existing line in strict mode", strict: true, productID: 1, quantity: 4, affected: 1},
		{name: "zero quantity rejected even when line exists", productID: 1, quantity: 0, affected: 1, wantErr: ErrInvalidQuantity},
		{name: "negative quantity rejected even when line is missing", productID: 1, quantity: -1, affected: 0, wantErr: ErrInvalidQuantity},
		{name: "missing product id", productID: 0, quantity: 1, wantErr: ErrProductIDRequired},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			repo := &mockCartRepository{setQuantityFunc: func(ctx context.Context, userID, productID uint, quantity int) (int64, error) {
				called = true
				assert.Equal(t, uint(9), userID)
				assert.Equal(t, tt.quantity, quantity)
				return tt.affected, nil
			}}
			uc := NewCartUsecase(repo, &mockProductChecker{}, Options{StrictUpdate: tt.strict})

			err := uc.UpdateItem(context.Background(), 9, tt.productID, tt.quantity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if errors.Is(tt.wantErr, ErrInvalidQuantity) || errors.Is(tt.wantErr, ErrProductIDRequired) {
				assert.False(t, called, "storage must not be touched on validation errors")
			}
		})
	}
}

func TestCartUsecase_UpdateItem_RepositoryError(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("database error")
	repo := &mockCartRepository{setQuantityFunc: func(ctx context.Context, userID, productID uint, quantity int) (int64, error) {
		return 0, dbErr
	}}

	err := NewCartUsecase(repo, &mockProductChecker{}, Options{}).UpdateItem(context.Background(), 1, 1, 1)

	assert.ErrorIs(t, err, dbErr)
}

func TestCartUsecase_RemoveItem(t *testing.T) {
	t.Parallel()

	t.Run("delete is scoped by user", func(t *testing.T) {
		t.Parallel()

		repo := &mockCartRepository{deleteFunc: func(ctx context.Context, userID, productID uint) error {
			assert.Equal(t, uint(3), userID)
			assert.Equal(t, uint(8), productID)
			return nil
		}}
		assert.NoError(t, NewCartUsecase(repo, &mockProductChecker{}, Options{}).RemoveItem(context.Background(), 3, 8))
	})

	t.Run("missing product id", func(t *testing.T) {
		t.Parallel()

		repo := &mockCartRepository{deleteFunc: func(ctx context.Context, userID, productID uint) error {
			t.Error("Delete must not be called")
			return nil
		}}
		err := NewCartUsecase(repo, &mockProductChecker{}, Options{}).RemoveItem(context.Background(), 3, 0)
		assert.ErrorIs(t, err, ErrProductIDRequired)
	})

	t.Run("repository error", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database error")
		repo := &mockCartRepository{deleteFunc: func(ctx context.Context, userID, productID uint) error { return dbErr }}
		err := NewCartUsecase(repo, &mockProductChecker{}, Options{}).RemoveItem(context.Background(), 3, 8)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCartUsecase_ClearCart(t *testing.T) {
	t.Parallel()

	var cleared uint
	repo := &mockCartRepository{deleteAllFunc: func(ctx context.Context, userID uint) error {
		cleared = userID
		return nil
	}}

	require.NoError(t, NewCartUsecase(repo, &mockProductChecker{}, Options{}).ClearCart(context.Background(), 11))
	assert.Equal(t, uint(11), cleared)

	dbErr := errors.New("database error")
	repo.deleteAllFunc = func(ctx context.Context, userID uint) error { return dbErr }
	assert.ErrorIs(t, NewCartUsecase(repo, &mockProductChecker{}, Options{}).ClearCart(context.Background(), 11), dbErr)
}
