package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReturnRequest registro de devolución sobre una venta.
type CreateReturnRequest struct {
	SaleID    string `json:"sale_id" validate:"required,uuid4"`
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required,min=5"`
}

// ReturnCreatedResponse resultado de registrar una devolución.
type ReturnCreatedResponse struct {
	ReturnID string          `json:"return_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// ReturnResponse devolución en respuestas.
type ReturnResponse struct {
	ID        string          `json:"id"`
	SaleID    string          `json:"sale_id"`
	ProductID string          `json:"product_id"`
	SizeID    string          `json:"size_id"`
	Quantity  int64           `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	Date      time.Time       `json:"date"`
	Active    bool            `json:"active"`
}

// ReturnListResponse listado paginado de devoluciones.
type ReturnListResponse struct {
	Items []ReturnResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ReturnToggleResponse resultado de alternar el estado de una devolución.
type ReturnToggleResponse struct {
	ReturnID string `json:"return_id"`
	Active   bool   `json:"active"`
}

// ReturnStatsResponse estadísticas de devoluciones.
type ReturnStatsResponse struct {
	Total    int             `json:"total"`
	Active   int             `json:"active"`
	Voided   int             `json:"voided"`
	Refunded decimal.Decimal `json:"refunded"`
}
