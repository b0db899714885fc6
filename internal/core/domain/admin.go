package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

var ErrInvalidCredentials = errors.New("wrong email or password")
var ErrEmailTaken = errors.New("email already registered")
var ErrAdminNotFound = errors.New("admin not found")
var ErrValidation = errors.New("missing or invalid fields")

// Admin models an administrator credential. Only email and password are
// stored; admins have no profile beyond their identity.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
