package entity

import "time"

// Supplier representa un proveedor de mercancía.
type Supplier struct {
	ID             string
	Name           string
	DocumentNumber string // NIT o cédula
	Phone          string
	Email          string
	Address        string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
