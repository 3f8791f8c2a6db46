package entity

import "time"

// User usuário do back-office, vinculado a uma empresa.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
