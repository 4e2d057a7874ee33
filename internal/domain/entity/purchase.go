package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa la cabecera de una compra a proveedor.
// Las compras nunca se editan después de creadas: solo se anulan
// (Active=false), lo que revierte exactamente el stock que ingresaron.
type Purchase struct {
	ID            string
	SupplierID    string
	Date          time.Time
	Total         decimal.Decimal // derivado: Σ Subtotal de sus detalles
	PaymentMethod string
	Active        bool
	VoidReason    string
	VoidedAt      *time.Time
	CreatedAt     time.Time
}

// PurchaseDetail es una línea de compra. Congela el precio de compra y el
// precio de venta sugerido al momento de la operación.
type PurchaseDetail struct {
	ID            string
	PurchaseID    string
	ProductID     string
	SizeID        string
	Quantity      int64
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Subtotal      decimal.Decimal // Quantity × PurchasePrice
}
