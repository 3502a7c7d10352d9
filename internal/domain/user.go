// Package domain defines the application's core entities and the pure
// business rules that operate on them.
package domain

import "time"

// User is a registered account. Password always holds the bcrypt hash,
// never the plaintext; services clear it before returning a user to a
// handler. Users are never hard-deleted.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(191);not null"`
	Email     string `gorm:"type:varchar(191);uniqueIndex:idx_users_email;not null"`
	Password  string `gorm:"type:text;not null"`
	Avatar    string `gorm:"type:varchar(512)"`
	IsOnline  bool   `gorm:"not null;default:false"`
	LastSeen  time.Time
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
