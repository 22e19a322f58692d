// Package handler はcheckoutフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/checkout/transport/http/dto"
	"shop_backend/internal/feature/checkout/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

// CheckoutUsecase は決済セッション作成のユースケースです。
type CheckoutUsecase interface {
	CreateSession(ctx context.Context, id jwtmw.Identity, origin string) (string, error)
}

// CheckoutHandler は決済に関するHTTPリクエストを処理します。
type CheckoutHandler struct {
	uc CheckoutUsecase
}

// NewCheckoutHandler は新しい CheckoutHandler を作成します。
func NewCheckoutHandler(uc CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// CreateSession はカートの内容で決済セッションを作成し、リダイレクト先URLを返します。
// リダイレクト先は Origin ヘッダーから決まります。
func (h *CheckoutHandler) CreateSession(c *gin.Context, id jwtmw.Identity) {
	url, err := h.uc.CreateSession(c.Request.Context(), id, c.GetHeader("Origin"))
	if err != nil {
		if errors.Is(err, usecase.ErrCartEmpty) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "cart is empty"})
			return
		}
		slog.Error("checkout session creation failed", "error", err, "user_id", id.UserID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create checkout session"})
		return
	}
	c.JSON(http.StatusOK, dto.CreateSessionRes{URL: url})
}
