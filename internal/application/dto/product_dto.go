package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=3,max=200"`
	Description   string           `json:"description"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	SalePrice     decimal.Decimal  `json:"sale_price" validate:"required"`
	OnSale        bool             `json:"on_sale"`
	PromoPrice    *decimal.Decimal `json:"promo_price"`
	PromoPercent  *int             `json:"promo_percent" validate:"omitempty,min=0,max=100"`
	ImageURL      string           `json:"image_url" validate:"omitempty,url"`
	CategoryID    string           `json:"category_id" validate:"required,uuid4"`
}

// UpdateProductRequest actualización de producto (campos completos).
type UpdateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=3,max=200"`
	Description   string           `json:"description"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	SalePrice     decimal.Decimal  `json:"sale_price" validate:"required"`
	OnSale        bool             `json:"on_sale"`
	PromoPrice    *decimal.Decimal `json:"promo_price"`
	PromoPercent  *int             `json:"promo_percent" validate:"omitempty,min=0,max=100"`
	ImageURL      string           `json:"image_url" validate:"omitempty,url"`
	CategoryID    string           `json:"category_id" validate:"required,uuid4"`
	Active        bool             `json:"active"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	PurchasePrice  decimal.Decimal  `json:"purchase_price"`
	SalePrice      decimal.Decimal  `json:"sale_price"`
	OnSale         bool             `json:"on_sale"`
	PromoPrice     *decimal.Decimal `json:"promo_price,omitempty"`
	PromoPercent   *int             `json:"promo_percent,omitempty"`
	EffectivePrice decimal.Decimal  `json:"effective_price"`
	ImageURL       string           `json:"image_url,omitempty"`
	CategoryID     string           `json:"category_id"`
	Active         bool             `json:"active"`
	Stock          int64            `json:"stock"` // agregado: suma de tallas
	Sizes          []SizeResponse   `json:"sizes,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
