// Package entity defines the domain models for the checkout feature.
package entity

// Currency is the only currency the storefront charges in.
const Currency = "usd"

// LineItem is one product line sent to the payment provider.
// UnitAmount is in the currency's minor unit (cents).
type LineItem struct {
	Name       string
	ImageURL   string
	UnitAmount int64
	Quantity   int64
}

// SessionRequest describes a hosted payment session to create.
type SessionRequest struct {
	Currency   string
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// Session is the provider's answer. URL is where the shopper is redirected.
type Session struct {
	ID  string
	URL string
}
