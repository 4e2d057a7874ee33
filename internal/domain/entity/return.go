package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Return representa una devolución sobre una venta pasada.
// SizeID es la talla de la línea de venta original: el stock devuelto
// regresa al mismo contador del que salió. Active indica si la devolución
// está vigente; cada cambio de estado aplica un delta de stock simétrico
// (activa suma Quantity al inventario, anulada lo resta).
type Return struct {
	ID        string
	SaleID    string
	ProductID string
	SizeID    string
	Quantity  int64
	Amount    decimal.Decimal // Quantity × precio congelado de la línea de venta
	Reason    string
	Date      time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
