// Package entity defines the domain models for the catalog feature.
package entity

// Product is a purchasable item. The cart only reads products; it never mutates them.
type Product struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"size:255;not null"`
	Price    float64 `gorm:"not null"`
	ImageURL string  `gorm:"column:image_url;size:1024"`
}
