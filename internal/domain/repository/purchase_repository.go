package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
)

// PurchaseFilter filtros para el listado de compras.
type PurchaseFilter struct {
	SupplierID string
	Active     *bool
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// PurchaseStats agregados para estadísticas de compras.
type PurchaseStats struct {
	Total    int
	Active   int
	Voided   int
	Invested decimal.Decimal // Σ Total de compras activas
}

// PurchaseRepository define el puerto de persistencia para Purchase y sus detalles.
// Create/CreateDetail se usan dentro de la transacción del motor de inventario.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateDetail(detail *entity.PurchaseDetail) error
	GetByID(id string) (*entity.Purchase, error)
	GetDetails(purchaseID string) ([]*entity.PurchaseDetail, error)
	// SetVoided marca la compra como anulada con motivo y fecha (nunca borra).
	SetVoided(id, reason string, at time.Time) error
	List(filter PurchaseFilter) ([]*entity.Purchase, int, error)
	Stats() (*PurchaseStats, error)
}
