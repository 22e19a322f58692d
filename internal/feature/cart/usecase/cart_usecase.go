package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/cart/domain/entity"
)

// defaultAddQuantity は数量が省略された場合に追加される個数です。
const defaultAddQuantity = 1

// CartRepository はカート行の永続化層を抽象化します。
// すべての操作はユーザーIDで絞り込まれ、他ユーザーの行には触れません。
type CartRepository interface {
	// ListItems はユーザーのカート行を商品情報と結合して返します。
	ListItems(ctx context.Context, userID uint) ([]entity.CartItem, error)
	// AddQuantity は行がなければ作成し、あれば数量を加算します。1文のupsertで実行されます。
	AddQuantity(ctx context.Context, userID, productID uint, quantity int) error
	// SetQuantity は数量を上書きし、更新された行数を返します。
	SetQuantity(ctx context.Context, userID, productID uint, quantity int) (int64, error)
	Delete(ctx context.Context, userID, productID uint) error
	DeleteAll(ctx context.Context, userID uint) error
}

// ProductChecker は商品の存在確認を行います。
type ProductChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// Options はCartUsecaseの挙動を切り替えます。
type Options struct {
	// StrictUpdate が true の場合、存在しない行への UpdateItem は ErrCartLineNotFound になります。
	// false の場合は何も更新せずに成功します。
	StrictUpdate bool
}

// CartUsecase はカートのビジネスロジックを提供します。
type CartUsecase struct {
	carts    CartRepository
	products ProductChecker
	opts     Options
}

// NewCartUsecase は新しいCartUsecaseを生成します。
func NewCartUsecase(carts CartRepository, products ProductChecker, opts Options) *CartUsecase {
	return &CartUsecase{carts: carts, products: products, opts: opts}
}

// GetCart はユーザーのカートと合計金額を返します。
// 合計は Σ price×quantity を小数点以下2桁に整形した文字列、Count は行数です。
func (u *CartUsecase) GetCart(ctx context.Context, userID uint) (entity.Cart, error) {
	items, err := u.carts.ListItems(ctx, userID)
	if err != nil {
		return entity.Cart{}, fmt.Errorf("failed to list cart items: %w", err)
	}
	if items == nil {
		items = []entity.CartItem{}
	}
	return entity.Cart{
		Items: items,
		Total: Total(items).StringFixed(2),
		Count: len(items),
	}, nil
}

// Total は行ごとの price×quantity の合計を返します。
func Total(items []entity.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// AddItem は商品をカートに追加します。既に行がある場合は数量を加算します。
// quantity が nil の場合は1個として扱います。
func (u *CartUsecase) AddItem(ctx context.Context, userID, productID uint, quantity *int) error {
	if productID == 0 {
		return ErrProductIDRequired
	}
	qty := defaultAddQuantity
	if quantity != nil {
		qty = *quantity
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}

	ok, err := u.products.Exists(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if !ok {
		return ErrProductNotFound
	}

	if err := u.carts.AddQuantity(ctx, userID, productID, qty); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// UpdateItem はカート行の数量を上書きします。
// 数量が0以下の場合は行の有無にかかわらず ErrInvalidQuantity を返します。
func (u *CartUsecase) UpdateItem(ctx context.Context, userID, productID uint, quantity int) error {
	if productID == 0 {
		return ErrProductIDRequired
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	n, err := u.carts.SetQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if n == 0 && u.opts.StrictUpdate {
		return ErrCartLineNotFound
	}
	return nil
}

// RemoveItem はカート行を削除します。行が存在しなくてもエラーにはなりません。
func (u *CartUsecase) RemoveItem(ctx context.Context, userID, productID uint) error {
	if productID == 0 {
		return ErrProductIDRequired
	}
	if err := u.carts.Delete(ctx, userID, productID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// ClearCart はユーザーのカート行をすべて削除します。
func (u *CartUsecase) ClearCart(ctx context.Context, userID uint) error {
	if err := u.carts.DeleteAll(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
