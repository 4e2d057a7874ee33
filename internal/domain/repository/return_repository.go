package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
)

// ReturnFilter filtros para el listado de devoluciones.
type ReturnFilter struct {
	SaleID    string
	ProductID string
	Active    *bool
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// ReturnStats agregados para estadísticas de devoluciones.
type ReturnStats struct {
	Total    int
	Active   int
	Voided   int
	Refunded decimal.Decimal // Σ Amount de devoluciones activas
}

// ReturnRepository define el puerto de persistencia para Return.
type ReturnRepository interface {
	Create(ret *entity.Return) error
	GetByID(id string) (*entity.Return, error)
	// SetActive cambia el estado vigente/anulada; el delta de stock asociado
	// lo aplica el motor de inventario en la misma transacción.
	SetActive(id string, active bool, at time.Time) error
	List(filter ReturnFilter) ([]*entity.Return, int, error)
	ListBySale(saleID string) ([]*entity.Return, error)
	Stats() (*ReturnStats, error)
}
