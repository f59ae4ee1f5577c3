package models

import "time"

// User is a stored account record. PasswordHash is internal to the auth
// service and must never be returned to clients.
type User struct {
	ID           string
	UserName     string
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
