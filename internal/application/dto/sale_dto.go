package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea de venta en el request. Sin precio: el motor
// resuelve el precio efectivo (oferta o regular) y lo congela.
type SaleLineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	SizeID    string `json:"size_id" validate:"required,uuid4"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// CreateSaleRequest registro de venta.
type CreateSaleRequest struct {
	CustomerID    string            `json:"customer_id" validate:"required,uuid4"`
	PaymentMethod string            `json:"payment_method"`
	Lines         []SaleLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// SaleCreatedResponse resultado de registrar una venta.
type SaleCreatedResponse struct {
	SaleID string          `json:"sale_id"`
	Total  decimal.Decimal `json:"total"`
}

// SaleDetailResponse línea de venta en respuestas.
type SaleDetailResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	SizeID    string          `json:"size_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta con detalles.
type SaleResponse struct {
	ID            string               `json:"id"`
	CustomerID    string               `json:"customer_id"`
	Date          time.Time            `json:"date"`
	Total         decimal.Decimal      `json:"total"`
	Status        string               `json:"status"`
	PaymentMethod string               `json:"payment_method,omitempty"`
	Details       []SaleDetailResponse `json:"details,omitempty"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// SaleStatsResponse estadísticas de ventas.
type SaleStatsResponse struct {
	Total     int             `json:"total"`
	Completed int             `json:"completed"`
	Voided    int             `json:"voided"`
	Income    decimal.Decimal `json:"income"`
}
