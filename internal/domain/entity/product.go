package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (ropa/calzado).
// El stock NO vive aquí: se maneja por talla en Size; el stock agregado
// es la suma de las cantidades de sus tallas.
type Product struct {
	ID            string
	Name          string
	Description   string
	PurchasePrice decimal.Decimal // precio de compra de referencia
	SalePrice     decimal.Decimal // precio regular de venta al público
	OnSale        bool
	PromoPrice    *decimal.Decimal // precio con descuento, solo si OnSale
	PromoPercent  *int             // porcentaje de descuento, derivable de PromoPrice
	ImageURL      string
	CategoryID    string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectivePrice devuelve el precio unitario vigente: el de oferta si el
// producto está en promoción, si no el precio regular. Las ventas congelan
// este valor en su detalle al momento de crearse.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.OnSale && p.PromoPrice != nil && p.PromoPrice.GreaterThan(decimal.Zero) {
		return *p.PromoPrice
	}
	return p.SalePrice
}

// NormalizePromo completa el campo de oferta faltante: si hay precio de
// oferta calcula el porcentaje y viceversa. Si el producto no está en
// oferta limpia ambos.
func (p *Product) NormalizePromo() {
	if !p.OnSale {
		p.PromoPrice = nil
		p.PromoPercent = nil
		return
	}
	if p.PromoPrice != nil && p.PromoPercent == nil && p.SalePrice.GreaterThan(decimal.Zero) {
		pct := p.SalePrice.Sub(*p.PromoPrice).
			Div(p.SalePrice).
			Mul(decimal.NewFromInt(100)).
			Round(0).IntPart()
		n := int(pct)
		p.PromoPercent = &n
	}
	if p.PromoPercent != nil && p.PromoPrice == nil {
		discount := p.SalePrice.Mul(decimal.NewFromInt(int64(*p.PromoPercent))).Div(decimal.NewFromInt(100))
		price := p.SalePrice.Sub(discount)
		p.PromoPrice = &price
	}
}
