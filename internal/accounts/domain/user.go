package domain

import "time"

type User struct {
	ID           int64
	Name         string
	Document     string // CPF, unique across all users
	Email        string // unique across all users
	PasswordHash string // argon2id encoded, never serialized
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
