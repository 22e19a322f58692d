// Package usecase はcartフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrProductIDRequired is returned when a request names no product.
	ErrProductIDRequired = errors.New("product id is required")

	// ErrProductNotFound is returned by AddItem when the product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidQuantity is returned for a quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")

	// ErrCartLineNotFound is returned by UpdateItem in strict mode when the user has no line for the product.
	ErrCartLineNotFound = errors.New("cart item not found")
)
