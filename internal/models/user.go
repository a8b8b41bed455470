package models

import "time"

// User is an authenticated account. PasswordHash is a salted SHA-256 digest.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Salt         string    `bson:"salt" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	LastLogin    time.Time `bson:"last_login" json:"last_login"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
}
