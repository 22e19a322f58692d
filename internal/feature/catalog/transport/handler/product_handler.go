package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/transport/http/dto"
)

// ProductUsecase は商品情報に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
}

// ProductHandler は商品情報に関するHTTPリクエストを処理します。
type ProductHandler struct {
	uc ProductUsecase
}

// NewProductHandler は新しい ProductHandler を作成します。
func NewProductHandler(uc ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List は商品一覧を取得するAPIです。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.uc.ListProducts(c.Request.Context())
	if err != nil {
		slog.Error("failed to list products", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch products"})
		return
	}
	out := make([]dto.ProductItem, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductItem{ID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.ImageURL})
	}
	c.JSON(http.StatusOK, dto.ProductListResponse{Products: out})
}
