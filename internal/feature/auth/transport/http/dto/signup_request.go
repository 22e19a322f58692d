package dto

// SignupReq represents the request body for the /api/signup endpoint.
// It uses Gin's binding tags for validation (required, email format).
// Password length is checked by the usecase.
type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
