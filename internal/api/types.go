// Package api はフィーチャー間で共有するHTTPレスポンス型を定義します。
package api

// ErrorResponse はすべての非2xxレスポンスのボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は処理結果のみを返すエンドポイントのボディです。
type MessageResponse struct {
	Message string `json:"message"`
}
