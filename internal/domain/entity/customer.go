package entity

import "time"

// Customer representa un cliente de la tienda.
type Customer struct {
	ID        string
	Name      string
	Document  string // cédula o NIT
	Phone     string
	Email     string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
