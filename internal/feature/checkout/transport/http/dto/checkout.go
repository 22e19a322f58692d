package dto

// CreateSessionRes は決済セッション作成のレスポンスです。
// URL にクライアントをリダイレクトします。
type CreateSessionRes struct {
	URL string `json:"url"`
}
