package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	authentity "shop_backend/internal/feature/auth/domain/entity"
	cartentity "shop_backend/internal/feature/cart/domain/entity"
	catalogentity "shop_backend/internal/feature/catalog/domain/entity"
)

// Migrate はusers、products、cart_itemsの各テーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&catalogentity.Product{},
		&cartentity.CartLine{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// 開発用のテストユーザー
const (
	SeedUserEmail    = "test@example.com"
	SeedUserPassword = "password123"
)

// SeedProducts は商品テーブルが空のときに投入されるサンプル商品です。
var SeedProducts = []catalogentity.Product{
	{
		Name:     "Laptop",
		Price:    999.99,
		ImageURL: "https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2?q=80&w=1664&auto=format&fit=crop",
	},
	{
		Name:     "Headphones",
		Price:    199.99,
		ImageURL: "https://images.unsplash.com/photo-1484704849700-f032a568e944?q=80&w=1470&auto=format&fit=crop",
	},
	{
		Name:     "Mouse",
		Price:    49.99,
		ImageURL: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?q=80&w=1467&auto=format&fit=crop",
	},
}

// PasswordHasher はシードユーザーのパスワードをハッシュ化します。
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// SeedResult は Seed が実際に作成したものを表します。
type SeedResult struct {
	UserCreated     bool
	ProductsCreated int
}

// Seed はテストユーザーとサンプル商品を投入します。
// 既に存在するデータには触れないため、何度実行しても結果は同じです。
func Seed(ctx context.Context, db *gorm.DB, hasher PasswordHasher) (SeedResult, error) {
	var res SeedResult
	tx := db.WithContext(ctx)

	var existing authentity.User
	err := tx.Where("email = ?", SeedUserEmail).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := hasher.Hash(SeedUserPassword)
		if err != nil {
			return res, fmt.Errorf("failed to hash seed password: %w", err)
		}
		if err := tx.Create(&authentity.User{Email: SeedUserEmail, PasswordHash: hash}).Error; err != nil {
			return res, fmt.Errorf("failed to create seed user: %w", err)
		}
		res.UserCreated = true
		slog.Info("seed user created", "email", SeedUserEmail)
	case err != nil:
		return res, fmt.Errorf("failed to look up seed user: %w", err)
	}

	var count int64
	if err := tx.Model(&catalogentity.Product{}).Count(&count).Error; err != nil {
		return res, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		slog.Info("products already exist, skipping seed", "count", count)
		return res, nil
	}

	products := make([]catalogentity.Product, len(SeedProducts))
	copy(products, SeedProducts)
	if err := tx.Create(&products).Error; err != nil {
		return res, fmt.Errorf("failed to create seed products: %w", err)
	}
	res.ProductsCreated = len(products)
	slog.Info("sample products created", "count", res.ProductsCreated)

	return res, nil
}
