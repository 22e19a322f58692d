// Package handler はcartフィーチャーのHTTPハンドラーを提供します。
// すべてのハンドラーは認証ゲートを通過した後に呼ばれ、呼び出し元のIdentityを引数で受け取ります。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/cart/domain/entity"
	"shop_backend/internal/feature/cart/transport/http/dto"
	"shop_backend/internal/feature/cart/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

// CartUsecase はカート操作のユースケースです。
type CartUsecase interface {
	GetCart(ctx context.Context, userID uint) (entity.Cart, error)
	AddItem(ctx context.Context, userID, productID uint, quantity *int) error
	UpdateItem(ctx context.Context, userID, productID uint, quantity int) error
	RemoveItem(ctx context.Context, userID, productID uint) error
	ClearCart(ctx context.Context, userID uint) error
}

// CartHandler はカート操作のHTTPリクエストを処理します。
type CartHandler struct {
	uc CartUsecase
}

// NewCartHandler は新しい CartHandler を作成します。
func NewCartHandler(uc CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get はユーザーのカートを返します。
func (h *CartHandler) Get(c *gin.Context, id jwtmw.Identity) {
	cart, err := h.uc.GetCart(c.Request.Context(), id.UserID)
	if err != nil {
		h.fail(c, id, "get cart", err)
		return
	}

	out := make([]dto.CartItemRes, 0, len(cart.Items))
	for _, it := range cart.Items {
		out = append(out, dto.CartItemRes{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Name:      it.Name,
			Price:     it.Price,
			ImageURL:  it.ImageURL,
		})
	}
	slog.Debug("cart fetched", "user_id", id.UserID, "lines", cart.Count, "total", cart.Total)
	c.JSON(http.StatusOK, dto.CartRes{Cart: out, Total: cart.Total, ItemCount: cart.Count})
}

// Add は商品をカートに追加します。quantity を省略した場合は1個です。
func (h *CartHandler) Add(c *gin.Context, id jwtmw.Identity) {
	var req dto.AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, id, err)
		return
	}
	if req.ProductID == nil {
		h.fail(c, id, "add item", usecase.ErrProductIDRequired)
		return
	}

	if err := h.uc.AddItem(c.Request.Context(), id.UserID, *req.ProductID, req.Quantity); err != nil {
		h.fail(c, id, "add item", err)
		return
	}
	slog.Info("cart item added", "user_id", id.UserID, "product_id", *req.ProductID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Item added to cart successfully"})
}

// Update はカート行の数量を上書きします。productId と quantity はどちらも必須です。
func (h *CartHandler) Update(c *gin.Context, id jwtmw.Identity) {
	var req dto.UpdateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, id, err)
		return
	}
	if req.ProductID == nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "product ID and quantity are required"})
		return
	}

	if err := h.uc.UpdateItem(c.Request.Context(), id.UserID, *req.ProductID, *req.Quantity); err != nil {
		h.fail(c, id, "update item", err)
		return
	}
	slog.Info("cart item updated", "user_id", id.UserID, "product_id", *req.ProductID, "quantity", *req.Quantity)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Cart updated successfully"})
}

// Remove はカート行を削除します。
func (h *CartHandler) Remove(c *gin.Context, id jwtmw.Identity) {
	var req dto.RemoveItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, id, err)
		return
	}
	if req.ProductID == nil {
		h.fail(c, id, "remove item", usecase.ErrProductIDRequired)
		return
	}

	if err := h.uc.RemoveItem(c.Request.Context(), id.UserID, *req.ProductID); err != nil {
		h.fail(c, id, "remove item", err)
		return
	}
	slog.Info("cart item removed", "user_id", id.UserID, "product_id", *req.ProductID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Item removed from cart successfully"})
}

// Clear はユーザーのカートを空にします。決済完了後にクライアントから呼ばれます。
func (h *CartHandler) Clear(c *gin.Context, id jwtmw.Identity) {
	if err := h.uc.ClearCart(c.Request.Context(), id.UserID); err != nil {
		h.fail(c, id, "clear cart", err)
		return
	}
	slog.Info("cart cleared", "user_id", id.UserID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Cart cleared successfully"})
}

func (h *CartHandler) badRequest(c *gin.Context, id jwtmw.Identity, err error) {
	slog.Warn("cart request validation failed", "error", err, "user_id", id.UserID)
	c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
}

// fail はユースケースのエラーをHTTPステータスに変換します。
func (h *CartHandler) fail(c *gin.Context, id jwtmw.Identity, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrProductIDRequired):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "product ID is required"})
	case errors.Is(err, usecase.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "quantity must be greater than 0"})
	case errors.Is(err, usecase.ErrProductNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "product not found"})
	case errors.Is(err, usecase.ErrCartLineNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "cart item not found"})
	default:
		slog.Error("cart operation failed", "op", op, "error", err, "user_id", id.UserID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to " + op})
	}
}
