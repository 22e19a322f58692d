// Package usecase implements the business logic for the product catalog.
package usecase

import (
	"context"

	"shop_backend/internal/feature/catalog/domain/entity"
)

// ProductRepository abstracts the persistence layer for products.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProductRepository interface {
	ListAll(ctx context.Context) ([]entity.Product, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// ProductUsecase provides business logic for product operations.
type ProductUsecase struct {
	repo ProductRepository
}

// NewProductUsecase creates a new ProductUsecase with the given repository.
func NewProductUsecase(r ProductRepository) *ProductUsecase {
	return &ProductUsecase{repo: r}
}

// ListProducts returns every product ordered by id.
func (u *ProductUsecase) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return u.repo.ListAll(ctx)
}
