// Package dto defines data transfer objects for the cart HTTP API.
package dto

// AddItemReq is the body of POST /api/cart/add.
// Pointer fields distinguish an omitted value from zero.
type AddItemReq struct {
	ProductID *uint `json:"productId"`
	Quantity  *int  `json:"quantity"`
}

// UpdateItemReq is the body of PATCH /api/cart/update.
type UpdateItemReq struct {
	ProductID *uint `json:"productId"`
	Quantity  *int  `json:"quantity"`
}

// RemoveItemReq is the body of DELETE /api/cart/remove.
type RemoveItemReq struct {
	ProductID *uint `json:"productId"`
}

// CartItemRes is one cart line in the GET /api/cart response.
type CartItemRes struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
}

// CartRes is the body of GET /api/cart.
type CartRes struct {
	Cart      []CartItemRes `json:"cart"`
	Total     string        `json:"total"`
	ItemCount int           `json:"itemCount"`
}
