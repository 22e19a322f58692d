// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
)

// rootMessage は GET / で返す稼働確認メッセージです。
const rootMessage = "eCommerce API is running!"

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Root はフロントエンドの疎通確認用に GET / を処理します。
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, api.MessageResponse{Message: rootMessage})
}
