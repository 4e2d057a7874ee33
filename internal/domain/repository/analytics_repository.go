package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntityCounts conteos globales para el dashboard.
type EntityCounts struct {
	Categories int
	Products   int
	Suppliers  int
	Purchases  int
	Customers  int
	Sales      int
	Returns    int
	Users      int
}

// LowStockProduct producto con stock agregado bajo (suma de tallas).
type LowStockProduct struct {
	ProductID string
	Name      string
	Stock     int64
}

// RecentSale venta reciente con el nombre del cliente ya resuelto.
type RecentSale struct {
	SaleID       string
	CustomerName string
	Date         time.Time
	Total        decimal.Decimal
	Status       string
}

// MonthTotal agregado mensual (ventas o devoluciones).
type MonthTotal struct {
	Month string // formato YYYY-MM
	Count int
	Total decimal.Decimal
}

// AnalyticsRepository consultas agregadas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	CountEntities() (*EntityCounts, error)
	// SalesTotalSince suma el total de ventas completadas desde la fecha.
	SalesTotalSince(since time.Time) (decimal.Decimal, error)
	// PurchasesTotalSince suma el total de compras activas desde la fecha.
	PurchasesTotalSince(since time.Time) (decimal.Decimal, error)
	LowStockProducts(threshold int64, limit int) ([]LowStockProduct, error)
	RecentSales(limit int) ([]RecentSale, error)
	SalesByMonth(months int) ([]MonthTotal, error)
	ReturnsByMonth(months int) ([]MonthTotal, error)
}
