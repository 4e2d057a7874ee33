package entity

import "time"

// Size representa una talla de un producto ("M", "42", ...).
// Quantity es EL contador de stock real del sistema: todas las operaciones
// de compra/venta/devolución lo mutan dentro de una transacción. Nunca
// debe quedar negativo.
type Size struct {
	ID        string
	ProductID string
	Label     string
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
