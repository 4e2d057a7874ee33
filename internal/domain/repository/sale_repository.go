package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
)

// SaleFilter filtros para el listado de ventas.
type SaleFilter struct {
	CustomerID string
	Status     string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// SaleStats agregados para estadísticas de ventas.
type SaleStats struct {
	Total     int
	Completed int
	Voided    int
	Income    decimal.Decimal // Σ Total de ventas completadas
}

// SaleRepository define el puerto de persistencia para Sale y sus detalles.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateDetail(detail *entity.SaleDetail) error
	GetByID(id string) (*entity.Sale, error)
	GetDetails(saleID string) ([]*entity.SaleDetail, error)
	// GetDetailByProduct devuelve la línea de la venta para ese producto
	// (nil si el producto no hizo parte de la venta). Si la venta registra
	// el producto en más de una talla devuelve ReturnError: la línea a
	// devolver sería ambigua.
	GetDetailByProduct(saleID, productID string) (*entity.SaleDetail, error)
	UpdateStatus(id, status string) error
	List(filter SaleFilter) ([]*entity.Sale, int, error)
	ListByCustomer(customerID string, limit int) ([]*entity.Sale, error)
	Stats() (*SaleStats, error)
}
