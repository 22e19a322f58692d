// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/api/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserRes はレスポンスに含める公開ユーザー情報です。
type UserRes struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// LoginRes はログイン成功時のレスポンスボディです。
type LoginRes struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserRes `json:"user"`
}
