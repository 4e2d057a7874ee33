package entity

import "time"

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Name         string
	RoleID       string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
