// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User is a registered shopper. Users are created at signup or seed time and
// are not edited afterwards.
type User struct {
	ID    uint   `gorm:"primaryKey"`
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is a bcrypt digest. Plaintext passwords are never stored.
	PasswordHash string `gorm:"column:password;size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
