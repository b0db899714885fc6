package domain

import (
	"errors"
	"time"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// Employee is the core record managed by the system. Category is a weak
// reference: it holds the category id, and CategoryName is resolved at read
// time from the categories collection.
type Employee struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salary       float64   `json:"salary"`
	Address      string    `json:"address"`
	Image        string    `json:"image,omitempty"`
	CategoryID   string    `json:"category,omitempty"`
	CategoryName string    `json:"category_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
