package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestEffectivePrice_SinOferta(t *testing.T) {
	p := &entity.Product{SalePrice: dec(50000)}
	assert.True(t, dec(50000).Equal(p.EffectivePrice()))
}

func TestEffectivePrice_ConOferta(t *testing.T) {
	promo := dec(40000)
	p := &entity.Product{SalePrice: dec(50000), OnSale: true, PromoPrice: &promo}
	assert.True(t, dec(40000).Equal(p.EffectivePrice()))
}

// OnSale sin precio de oferta válido cae al precio regular.
func TestEffectivePrice_OfertaSinPrecio(t *testing.T) {
	p := &entity.Product{SalePrice: dec(50000), OnSale: true}
	assert.True(t, dec(50000).Equal(p.EffectivePrice()))

	zero := decimal.Zero
	p.PromoPrice = &zero
	assert.True(t, dec(50000).Equal(p.EffectivePrice()))
}

func TestNormalizePromo_CalculaPorcentajeDesdeElPrecio(t *testing.T) {
	promo := dec(40000)
	p := &entity.Product{SalePrice: dec(50000), OnSale: true, PromoPrice: &promo}
	p.NormalizePromo()

	// 40000 sobre 50000 es un 20% de descuento.
	if assert.NotNil(t, p.PromoPercent) {
		assert.Equal(t, 20, *p.PromoPercent)
	}
}

func TestNormalizePromo_CalculaPrecioDesdeElPorcentaje(t *testing.T) {
	pct := 30
	p := &entity.Product{SalePrice: dec(50000), OnSale: true, PromoPercent: &pct}
	p.NormalizePromo()

	if assert.NotNil(t, p.PromoPrice) {
		assert.True(t, dec(35000).Equal(*p.PromoPrice), "50000 menos 30%% debe ser 35000, fue %s", p.PromoPrice)
	}
}

func TestNormalizePromo_LimpiaCamposSiNoHayOferta(t *testing.T) {
	promo := dec(40000)
	pct := 20
	p := &entity.Product{SalePrice: dec(50000), OnSale: false, PromoPrice: &promo, PromoPercent: &pct}
	p.NormalizePromo()

	assert.Nil(t, p.PromoPrice)
	assert.Nil(t, p.PromoPercent)
}
