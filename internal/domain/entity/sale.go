package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. PENDING existe en los datos de referencia pero
// ningún flujo del motor transiciona hacia o desde él.
const (
	SaleStatusCompleted = "COMPLETED"
	SaleStatusPending   = "PENDING"
	SaleStatusVoided    = "VOIDED" // terminal
)

// Sale representa la cabecera de una venta a cliente.
// Igual que las compras, es inmutable tras crearse: solo admite anulación,
// que devuelve al inventario exactamente lo vendido.
type Sale struct {
	ID            string
	CustomerID    string
	Date          time.Time
	Total         decimal.Decimal // derivado: Σ Subtotal de sus detalles
	Status        string
	PaymentMethod string
	CreatedAt     time.Time
}

// SaleDetail es una línea de venta. UnitPrice es el precio efectivo al
// momento de la venta (oferta si aplicaba); cambios de precio posteriores
// no afectan ventas pasadas.
type SaleDetail struct {
	ID        string
	SaleID    string
	ProductID string
	SizeID    string
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal // Quantity × UnitPrice
}
