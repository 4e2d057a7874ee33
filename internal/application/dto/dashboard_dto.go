package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse resumen general para el panel.
type DashboardResponse struct {
	Categories     int                    `json:"categories"`
	Products       int                    `json:"products"`
	Customers      int                    `json:"customers"`
	Suppliers      int                    `json:"suppliers"`
	Purchases      int                    `json:"purchases"`
	Sales          int                    `json:"sales"`
	Returns        int                    `json:"returns"`
	Users          int                    `json:"users"`
	SalesToday     decimal.Decimal        `json:"sales_today"`
	SalesMonth     decimal.Decimal        `json:"sales_month"`
	PurchasesMonth decimal.Decimal        `json:"purchases_month"`
	LowStock       []LowStockItemResponse `json:"low_stock"`
	RecentSales    []RecentSaleResponse   `json:"recent_sales"`
}

// LowStockItemResponse producto con stock bajo.
type LowStockItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Stock     int64  `json:"stock"`
}

// RecentSaleResponse venta reciente en el panel.
type RecentSaleResponse struct {
	SaleID       string          `json:"sale_id"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	Date         time.Time       `json:"date"`
}

// MonthTotalResponse total agregado por mes.
type MonthTotalResponse struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}
