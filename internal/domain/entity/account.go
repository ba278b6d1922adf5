// Package entity contains the core business objects of the application.
// Entities are pure data structures with no dependency on persistence or transport.
package entity

import "time"

// DefaultRole is assigned to accounts that register without an explicit role.
const DefaultRole = "USER"

// Account represents a registered user of the inventory system.
// EmailHash is a deterministic lookup hash of the email address; the plaintext
// email is never persisted. PasswordHash is a bcrypt hash and must never leave
// the service layer.
type Account struct {
	ID           int64
	Firstname    string
	Lastname     string
	Username     string
	EmailHash    string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	LastLogin    *time.Time
}
