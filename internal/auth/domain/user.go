package domain

import "time"

type User struct {
	ID           string
	Email        string // unique, doubles as the login name
	UserName     string
	FullName     string
	PhoneNumber  string
	PasswordHash string // argon2id encoded
	IsActive     bool
	IsDeleted    bool // soft delete only, rows are never removed
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
