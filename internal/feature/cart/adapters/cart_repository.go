// Package adapters はcartフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop_backend/internal/feature/cart/domain/entity"
	"shop_backend/internal/feature/cart/usecase"
)

// cartRepository はCartRepositoryインターフェースのGORM実装です。
type cartRepository struct {
	db *gorm.DB
}

var _ usecase.CartRepository = (*cartRepository)(nil)

// NewCartRepository は指定されたDB接続でcartRepositoryの新しいインスタンスを生成します。
func NewCartRepository(db *gorm.DB) *cartRepository {
	return &cartRepository{db: db}
}

// cartItemColumns は ListItems が結合結果から取り出す列です。
const cartItemColumns = "cart_items.id, cart_items.product_id, cart_items.quantity, " +
	"products.name, products.price, COALESCE(products.image_url, '') AS image_url"

// cartRow はcart_itemsとproductsの結合結果です。
type cartRow struct {
	ID        uint    `gorm:"column:id"`
	ProductID uint    `gorm:"column:product_id"`
	Quantity  int     `gorm:"column:quantity"`
	Name      string  `gorm:"column:name"`
	Price     float64 `gorm:"column:price"`
	ImageURL  string  `gorm:"column:image_url"`
}

// ListItems はユーザーのカート行を商品情報と結合し、追加順に返します。
// 商品が削除された行は結合で除外されます。
func (r *cartRepository) ListItems(ctx context.Context, userID uint) ([]entity.CartItem, error) {
	var rows []cartRow
	if err := r.db.WithContext(ctx).
		Table("cart_items").
		Select(cartItemColumns).
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entity.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.CartItem{
			ID:        row.ID,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			Name:      row.Name,
			Price:     row.Price,
			ImageURL:  row.ImageURL,
		})
	}
	return items, nil
}

// AddQuantity は (user_id, product_id) の一意インデックスを使って挿入または加算を1文で行います。
// 同時に追加されても加算が失われることはありません。
func (r *cartRepository) AddQuantity(ctx context.Context, userID, productID uint, quantity int) error {
	line := entity.CartLine{UserID: userID, ProductID: productID, Quantity: quantity}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).
		Create(&line).Error
}

// SetQuantity は数量を上書きし、更新された行数を返します。
func (r *cartRepository) SetQuantity(ctx context.Context, userID, productID uint, quantity int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.CartLine{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	return res.RowsAffected, res.Error
}

// Delete はユーザーの指定商品の行を削除します。
func (r *cartRepository) Delete(ctx context.Context, userID, productID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&entity.CartLine{}).Error
}

// DeleteAll はユーザーのすべての行を削除します。
func (r *cartRepository) DeleteAll(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entity.CartLine{}).Error
}
