// Package usecase implements the business logic for checkout.
package usecase

import "errors"

var (
	// ErrCartEmpty is returned when checkout is attempted with no cart lines.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrNoRedirectURL is returned when the provider answers without a redirect URL.
	ErrNoRedirectURL = errors.New("payment provider returned no redirect url")
)
