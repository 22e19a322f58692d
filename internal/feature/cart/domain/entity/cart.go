// Package entity はcartフィーチャーのドメインモデルを定義します。
package entity

// CartLine はユーザーと商品と数量を結びつける1行です。
// (user_id, product_id) の組ごとに高々1行しか存在しません。
type CartLine struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int  `gorm:"not null;default:1"`
}

// TableName はCartLineのテーブル名を返します。
func (CartLine) TableName() string {
	return "cart_items"
}

// CartItem はカート行に商品情報を結合した読み取り用ビューです。
type CartItem struct {
	ID        uint
	ProductID uint
	Quantity  int
	Name      string
	Price     float64
	ImageURL  string
}

// Cart はユーザーのカート全体です。
// Total は小数点以下2桁に整形済みの合計金額、Count は行数（数量の合計ではない）です。
type Cart struct {
	Items []CartItem
	Total string
	Count int
}

// IsEmpty はカートに行が1つもないかを返します。
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
