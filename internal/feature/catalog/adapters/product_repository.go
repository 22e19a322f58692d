// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

// productRepository はProductRepositoryインターフェースのGORM実装です。
type productRepository struct {
	db *gorm.DB
}

var _ usecase.ProductRepository = (*productRepository)(nil)

// NewProductRepository は指定されたDB接続でproductRepositoryの新しいインスタンスを生成します。
func NewProductRepository(db *gorm.DB) *productRepository {
	return &productRepository{db: db}
}

// ListAll はid順にすべての商品を返します。
func (r *productRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Exists は指定IDの商品が存在するかを返します。
func (r *productRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
