// Package dto defines data transfer objects for the catalog HTTP API.
package dto

// ProductItem is one product in the list response.
type ProductItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

// ProductListResponse is the body of GET /api/products.
type ProductListResponse struct {
	Products []ProductItem `json:"products"`
}
