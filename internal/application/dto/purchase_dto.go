package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLineRequest línea de compra en el request.
type PurchaseLineRequest struct {
	ProductID     string           `json:"product_id" validate:"required,uuid4"`
	SizeID        string           `json:"size_id" validate:"required,uuid4"`
	Quantity      int64            `json:"quantity" validate:"required,gt=0"`
	PurchasePrice decimal.Decimal  `json:"purchase_price" validate:"required"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
}

// CreatePurchaseRequest registro de compra.
type CreatePurchaseRequest struct {
	SupplierID    string                `json:"supplier_id" validate:"required,uuid4"`
	PaymentMethod string                `json:"payment_method"`
	Lines         []PurchaseLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// VoidPurchaseRequest anulación de compra.
type VoidPurchaseRequest struct {
	Reason string `json:"reason" validate:"required,min=5"`
}

// PurchaseCreatedResponse resultado de registrar una compra.
type PurchaseCreatedResponse struct {
	PurchaseID string          `json:"purchase_id"`
	Total      decimal.Decimal `json:"total"`
}

// PurchaseDetailResponse línea de compra en respuestas.
type PurchaseDetailResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	SizeID        string          `json:"size_id"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse compra con detalles.
type PurchaseResponse struct {
	ID            string                   `json:"id"`
	SupplierID    string                   `json:"supplier_id"`
	Date          time.Time                `json:"date"`
	Total         decimal.Decimal          `json:"total"`
	PaymentMethod string                   `json:"payment_method,omitempty"`
	Active        bool                     `json:"active"`
	VoidReason    string                   `json:"void_reason,omitempty"`
	VoidedAt      *time.Time               `json:"voided_at,omitempty"`
	Details       []PurchaseDetailResponse `json:"details,omitempty"`
}

// PurchaseListResponse listado paginado de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// PurchaseStatsResponse estadísticas de compras.
type PurchaseStatsResponse struct {
	Total    int             `json:"total"`
	Active   int             `json:"active"`
	Voided   int             `json:"voided"`
	Invested decimal.Decimal `json:"invested"`
}
