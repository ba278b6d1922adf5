// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// AccountModel mirrors the 'accounts' table. Username and the email lookup
// hash are both unique; the plaintext email is never stored.
type AccountModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Firstname    string `gorm:"type:varchar(100);not null"`
	Lastname     string `gorm:"type:varchar(100);not null"`
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	EmailHash    string `gorm:"column:email_hash;type:char(32);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(50);not null;default:USER"`
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
