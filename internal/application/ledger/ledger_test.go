package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-ropa/internal/application/ledger"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// Los repositorios fake comparten un *store y el runner simula la
// transacción con snapshot/restore: si fn devuelve error, el estado vuelve
// al punto de partida, igual que un ROLLBACK real.
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	products        map[string]*entity.Product
	sizes           map[string]*entity.Size
	suppliers       map[string]*entity.Supplier
	customers       map[string]*entity.Customer
	purchases       map[string]*entity.Purchase
	purchaseDetails []*entity.PurchaseDetail
	sales           map[string]*entity.Sale
	saleDetails     []*entity.SaleDetail
	returns         map[string]*entity.Return
}

func newStore() *store {
	return &store{
		products:  map[string]*entity.Product{},
		sizes:     map[string]*entity.Size{},
		suppliers: map[string]*entity.Supplier{},
		customers: map[string]*entity.Customer{},
		purchases: map[string]*entity.Purchase{},
		sales:     map[string]*entity.Sale{},
		returns:   map[string]*entity.Return{},
	}
}

func (s *store) snapshot() *store {
	cp := newStore()
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	for k, v := range s.sizes {
		sz := *v
		cp.sizes[k] = &sz
	}
	for k, v := range s.suppliers {
		sp := *v
		cp.suppliers[k] = &sp
	}
	for k, v := range s.customers {
		c := *v
		cp.customers[k] = &c
	}
	for k, v := range s.purchases {
		p := *v
		cp.purchases[k] = &p
	}
	cp.purchaseDetails = append(cp.purchaseDetails, s.purchaseDetails...)
	for k, v := range s.sales {
		sl := *v
		cp.sales[k] = &sl
	}
	cp.saleDetails = append(cp.saleDetails, s.saleDetails...)
	for k, v := range s.returns {
		r := *v
		cp.returns[k] = &r
	}
	return cp
}

func (s *store) restore(from *store) { *s = *from }

type fakeSizeRepo struct{ s *store }

func (r *fakeSizeRepo) Create(size *entity.Size) error {
	r.s.sizes[size.ID] = size
	return nil
}

func (r *fakeSizeRepo) GetByID(id string) (*entity.Size, error) {
	return r.s.sizes[id], nil
}

func (r *fakeSizeRepo) GetByIDAndProduct(id, productID string) (*entity.Size, error) {
	size := r.s.sizes[id]
	if size == nil || size.ProductID != productID {
		return nil, nil
	}
	return size, nil
}

func (r *fakeSizeRepo) ListByProduct(productID string) ([]*entity.Size, error) {
	var out []*entity.Size
	for _, size := range r.s.sizes {
		if size.ProductID == productID {
			out = append(out, size)
		}
	}
	return out, nil
}

func (r *fakeSizeRepo) Update(size *entity.Size) error {
	r.s.sizes[size.ID] = size
	return nil
}

func (r *fakeSizeRepo) Delete(id string) error {
	delete(r.s.sizes, id)
	return nil
}

func (r *fakeSizeRepo) Increment(id string, qty int64) error {
	size := r.s.sizes[id]
	if size == nil {
		return domain.ErrNotFound
	}
	size.Quantity += qty
	return nil
}

func (r *fakeSizeRepo) DecrementIfAvailable(id string, qty int64) (bool, error) {
	size := r.s.sizes[id]
	if size == nil || size.Quantity < qty {
		return false, nil
	}
	size.Quantity -= qty
	return true, nil
}

type fakeProductRepo struct{ s *store }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) List(limit, offset int, search string) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.s.products, id); return nil }

type fakeSupplierRepo struct{ s *store }

func (r *fakeSupplierRepo) Create(sp *entity.Supplier) error { r.s.suppliers[sp.ID] = sp; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.s.suppliers[id], nil
}
func (r *fakeSupplierRepo) Update(sp *entity.Supplier) error { r.s.suppliers[sp.ID] = sp; return nil }
func (r *fakeSupplierRepo) List(limit, offset int, search string) ([]*entity.Supplier, int, error) {
	return nil, 0, nil
}

type fakeCustomerRepo struct{ s *store }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.s.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.s.customers[id], nil
}
func (r *fakeCustomerRepo) GetByDocument(document string) (*entity.Customer, error) {
	for _, c := range r.s.customers {
		if c.Document == document {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) Update(c *entity.Customer) error { r.s.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) List(limit, offset int, search string) ([]*entity.Customer, int, error) {
	return nil, 0, nil
}

type fakePurchaseRepo struct{ s *store }

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error { r.s.purchases[p.ID] = p; return nil }
func (r *fakePurchaseRepo) CreateDetail(d *entity.PurchaseDetail) error {
	r.s.purchaseDetails = append(r.s.purchaseDetails, d)
	return nil
}
func (r *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	return r.s.purchases[id], nil
}
func (r *fakePurchaseRepo) GetDetails(purchaseID string) ([]*entity.PurchaseDetail, error) {
	var out []*entity.PurchaseDetail
	for _, d := range r.s.purchaseDetails {
		if d.PurchaseID == purchaseID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *fakePurchaseRepo) SetVoided(id, reason string, at time.Time) error {
	p := r.s.purchases[id]
	if p == nil {
		return domain.ErrNotFound
	}
	p.Active = false
	p.VoidReason = reason
	p.VoidedAt = &at
	return nil
}
func (r *fakePurchaseRepo) List(filter repository.PurchaseFilter) ([]*entity.Purchase, int, error) {
	return nil, 0, nil
}
func (r *fakePurchaseRepo) Stats() (*repository.PurchaseStats, error) {
	return &repository.PurchaseStats{}, nil
}

type fakeSaleRepo struct{ s *store }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error { r.s.sales[sale.ID] = sale; return nil }
func (r *fakeSaleRepo) CreateDetail(d *entity.SaleDetail) error {
	r.s.saleDetails = append(r.s.saleDetails, d)
	return nil
}
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.s.sales[id], nil
}
func (r *fakeSaleRepo) GetDetails(saleID string) ([]*entity.SaleDetail, error) {
	var out []*entity.SaleDetail
	for _, d := range r.s.saleDetails {
		if d.SaleID == saleID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) GetDetailByProduct(saleID, productID string) (*entity.SaleDetail, error) {
	var found *entity.SaleDetail
	for _, d := range r.s.saleDetails {
		if d.SaleID == saleID && d.ProductID == productID {
			if found != nil {
				return nil, &domain.ReturnError{Reason: "la venta registra el producto en más de una talla; la línea a devolver es ambigua"}
			}
			found = d
		}
	}
	return found, nil
}
func (r *fakeSaleRepo) UpdateStatus(id, status string) error {
	sale := r.s.sales[id]
	if sale == nil {
		return domain.ErrNotFound
	}
	sale.Status = status
	return nil
}
func (r *fakeSaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, int, error) {
	return nil, 0, nil
}
func (r *fakeSaleRepo) ListByCustomer(customerID string, limit int) ([]*entity.Sale, error) {
	return nil, nil
}
func (r *fakeSaleRepo) Stats() (*repository.SaleStats, error) {
	return &repository.SaleStats{}, nil
}

type fakeReturnRepo struct{ s *store }

func (r *fakeReturnRepo) Create(ret *entity.Return) error { r.s.returns[ret.ID] = ret; return nil }
func (r *fakeReturnRepo) GetByID(id string) (*entity.Return, error) {
	return r.s.returns[id], nil
}
func (r *fakeReturnRepo) SetActive(id string, active bool, at time.Time) error {
	ret := r.s.returns[id]
	if ret == nil {
		return domain.ErrNotFound
	}
	ret.Active = active
	ret.UpdatedAt = at
	return nil
}
func (r *fakeReturnRepo) List(filter repository.ReturnFilter) ([]*entity.Return, int, error) {
	return nil, 0, nil
}
func (r *fakeReturnRepo) ListBySale(saleID string) ([]*entity.Return, error) { return nil, nil }
func (r *fakeReturnRepo) Stats() (*repository.ReturnStats, error) {
	return &repository.ReturnStats{}, nil
}

// fakeTxRunner ejecuta fn sobre el mismo store; si fn falla restaura el
// snapshot previo, emulando el rollback de la transacción real.
type fakeTxRunner struct{ s *store }

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	sizeRepo repository.SizeRepository,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	returnRepo repository.ReturnRepository,
) error) error {
	before := t.s.snapshot()
	err := fn(
		&fakeSizeRepo{s: t.s},
		&fakeProductRepo{s: t.s},
		&fakePurchaseRepo{s: t.s},
		&fakeSaleRepo{s: t.s},
		&fakeReturnRepo{s: t.s},
	)
	if err != nil {
		t.s.restore(before)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	supplierID = "sup-1"
	customerID = "cus-1"
	productID  = "prod-1"
	sizeM      = "size-m"
	sizeL      = "size-l"
)

func newLedger(t *testing.T) (*ledger.StockLedger, *store) {
	t.Helper()
	s := newStore()
	s.suppliers[supplierID] = &entity.Supplier{ID: supplierID, Name: "Textiles SAS", Active: true}
	s.customers[customerID] = &entity.Customer{ID: customerID, Name: "Ana Pérez", Document: "1020304050", Active: true}
	s.products[productID] = &entity.Product{
		ID:        productID,
		Name:      "Camiseta básica",
		SalePrice: decimal.NewFromInt(50000),
		Active:    true,
	}
	s.sizes[sizeM] = &entity.Size{ID: sizeM, ProductID: productID, Label: "M", Quantity: 10}
	s.sizes[sizeL] = &entity.Size{ID: sizeL, ProductID: productID, Label: "L", Quantity: 3}

	l := ledger.NewStockLedger(
		&fakeTxRunner{s: s},
		&fakeProductRepo{s: s},
		&fakeSizeRepo{s: s},
		&fakeSupplierRepo{s: s},
		&fakeCustomerRepo{s: s},
		&fakeSaleRepo{s: s},
		&fakePurchaseRepo{s: s},
		&fakeReturnRepo{s: s},
	)
	return l, s
}

func money(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordPurchase_IncrementaStockYCalculaTotal(t *testing.T) {
	l, s := newLedger(t)

	result, err := l.RecordPurchase(context.Background(), ledger.RecordPurchaseInput{
		SupplierID:    supplierID,
		PaymentMethod: "efectivo",
		Lines: []ledger.PurchaseLineInput{
			{ProductID: productID, SizeID: sizeM, Quantity: 5, PurchasePrice: money(20000)},
			{ProductID: productID, SizeID: sizeL, Quantity: 2, PurchasePrice: money(21000)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// Total = 5×20000 + 2×21000
	assert.True(t, money(142000).Equal(result.Total), "total esperado 142000, fue %s", result.Total)
	assert.Equal(t, int64(15), s.sizes[sizeM].Quantity, "la talla M debe subir de 10 a 15")
	assert.Equal(t, int64(5), s.sizes[sizeL].Quantity, "la talla L debe subir de 3 a 5")

	purchase := s.purchases[result.PurchaseID]
	require.NotNil(t, purchase)
	assert.True(t, purchase.Active)
	assert.True(t, purchase.Total.Equal(result.Total))

	// El total de la cabecera debe reconciliar con la suma de subtotales.
	sum := decimal.Zero
	for _, d := range s.purchaseDetails {
		sum = sum.Add(d.Subtotal)
	}
	assert.True(t, purchase.Total.Equal(sum), "Σ subtotales debe igualar el total")
}

func TestRecordPurchase_ProveedorInvalido(t *testing.T) {
	l, s := newLedger(t)

	lines := []ledger.PurchaseLineInput{
		{ProductID: productID, SizeID: sizeM, Quantity: 1, PurchasePrice: money(20000)},
	}

	_, err := l.RecordPurchase(context.Background(), ledger.RecordPurchaseInput{
		SupplierID: "no-existe",
		Lines:      lines,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	// Proveedor inactivo cuenta igual que inexistente.
	s.suppliers[supplierID].Active = false
	_, err = l.RecordPurchase(context.Background(), ledger.RecordPurchaseInput{
		SupplierID: supplierID,
		Lines:      lines,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestRecordPurchase_SinLineas(t *testing.T) {
	l, _ := newLedger(t)

	_, err := l.RecordPurchase(context.Background(), ledger.RecordPurchaseInput{
		SupplierID: supplierID,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestRecordPurchase_LineaInvalida(t *testing.T) {
	l, s := newLedger(t)

	cases := []struct {
		name string
		line ledger.PurchaseLineInput
	}{
		{"cantidad cero", ledger.PurchaseLineInput{ProductID: productID, SizeID: sizeM, Quantity: 0, PurchasePrice: money(20000)}},
		{"precio cero", ledger.PurchaseLineInput{ProductID: productID, SizeID: sizeM, Quantity: 1, PurchasePrice: decimal.Zero}},
		{"producto inexistente", ledger.PurchaseLineInput{ProductID: "no-existe", SizeID: sizeM, Quantity: 1, PurchasePrice: money(20000)}},
		{"talla de otro producto", ledger.PurchaseLineInput{ProductID: productID, SizeID: "no-existe", Quantity: 1, PurchasePrice: money(20000)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.RecordPurchase(context.Background(), ledger.RecordPurchaseInput{
				SupplierID: supplierID,
				Lines:      []ledger.PurchaseLineInput{tc.line},
			})
			assert.ErrorIs(t, err, domain.ErrInvalidLineItem)
		})
	}

	// Nada debió persistirse ni moverse.
	assert.Empty(t, s.purchases)
	assert.Equal(t, int64(10), s.sizes[sizeM].Quantity)
}

func TestVoidPurchase_RevierteStockExacto(t *testing.T) {
	l, s := newLedger(t)

	result, err := l.RecordPurchase(context.Background(), ledger.RecordPurchaseInput{
		SupplierID: supplierID,
		Lines: []ledger.PurchaseLineInput{
			{ProductID: productID, SizeID: sizeM, Quantity: 5, PurchasePrice: money(20000)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(15), s.sizes[sizeM].Quantity)

	err = l.VoidPurchase(context.Background(), result.PurchaseID, "pedido duplicado")
	require.NoError(t, err)

	assert.Equal(t, int64(10), s.sizes[sizeM].Quantity, "el stock debe volver al valor previo")
	purchase := s.purchases[result.PurchaseID]
	assert.False(t, purchase.Active)
	assert.Equal(t, "pedido duplicado", purchase.VoidReason)
	require.NotNil(t, purchase.VoidedAt)

	// Anular dos veces falla la segunda sin tocar stock.
	err = l.VoidPurchase(context.Background(), result.PurchaseID, "otra vez")
	assert.ErrorIs(t, err, domain.ErrNotVoidable)
	assert.Equal(t, int64(10), s.sizes[sizeM].Quantity)
}

func TestVoidPurchase_StockYaVendido(t *testing.T) {
	l, s := newLedger(t)

	result, err := l.RecordPurchase(context.Background(), ledger.RecordPurchaseInput{
		SupplierID: supplierID,
		Lines: []ledger.PurchaseLineInput{
			{ProductID: productID, SizeID: sizeM, Quantity: 5, PurchasePrice: money(20000)},
		},
	})
	require.NoError(t, err)

	// Se venden 12 de las 15 unidades: revertir 5 dejaría la talla en -2.
	s.sizes[sizeM].Quantity = 3

	err = l.VoidPurchase(context.Background(), result.PurchaseID, "proveedor equivocado")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Camiseta básica", stockErr.ProductName)
	assert.Equal(t, int64(3), stockErr.Available)

	// La compra sigue activa y el stock intacto.
	assert.True(t, s.purchases[result.PurchaseID].Active)
	assert.Equal(t, int64(3), s.sizes[sizeM].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_DescuentaStockYCongelaPrecioEfectivo(t *testing.T) {
	l, s := newLedger(t)

	// Producto en oferta: el detalle debe congelar el precio de promoción.
	promo := money(40000)
	s.products[productID].OnSale = true
	s.products[productID].PromoPrice = &promo

	result, err := l.RecordSale(context.Background(), ledger.RecordSaleInput{
		CustomerID:    customerID,
		PaymentMethod: "tarjeta",
		Lines: []ledger.SaleLineInput{
			{ProductID: productID, SizeID: sizeM, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.True(t, money(80000).Equal(result.Total), "total 2×40000, fue %s", result.Total)
	assert.Equal(t, int64(8), s.sizes[sizeM].Quantity)

	sale := s.sales[result.SaleID]
	require.NotNil(t, sale)
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)

	require.Len(t, s.saleDetails, 1)
	assert.True(t, promo.Equal(s.saleDetails[0].UnitPrice), "el precio congelado debe ser el de oferta")

	// Quitar la oferta no afecta la venta pasada.
	s.products[productID].OnSale = false
	assert.True(t, promo.Equal(s.saleDetails[0].UnitPrice))
}

func TestRecordSale_StockInsuficiente(t *testing.T) {
	l, s := newLedger(t)

	// Exactamente el stock disponible: debe pasar y dejar la talla en cero.
	result, err := l.RecordSale(context.Background(), ledger.RecordSaleInput{
		CustomerID: customerID,
		Lines:      []ledger.SaleLineInput{{ProductID: productID, SizeID: sizeL, Quantity: 3}},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(0), s.sizes[sizeL].Quantity)

	// Una unidad más de las que hay: se rechaza completa y nada cambia.
	salesBefore := len(s.sales)
	_, err = l.RecordSale(context.Background(), ledger.RecordSaleInput{
		CustomerID: customerID,
		Lines:      []ledger.SaleLineInput{{ProductID: productID, SizeID: sizeM, Quantity: 11}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), s.sizes[sizeM].Quantity)
	assert.Len(t, s.sales, salesBefore, "la venta fallida no debe persistir cabecera")
}

func TestRecordSale_FallaUnaLineaRevierteTodas(t *testing.T) {
	l, s := newLedger(t)

	// La primera línea alcanzaría a descontar, la segunda no: la
	// transacción debe revertir ambas.
	_, err := l.RecordSale(context.Background(), ledger.RecordSaleInput{
		CustomerID: customerID,
		Lines: []ledger.SaleLineInput{
			{ProductID: productID, SizeID: sizeM, Quantity: 2},
			{ProductID: productID, SizeID: sizeL, Quantity: 99},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), s.sizes[sizeM].Quantity, "la línea buena también debe revertirse")
	assert.Equal(t, int64(3), s.sizes[sizeL].Quantity)
	assert.Empty(t, s.sales)
}

func TestRecordSale_ErrorReportaStockConfirmado(t *testing.T) {
	l, s := newLedger(t)

	// Dos líneas sobre la misma talla: la primera descuenta 6 de 10, la
	// segunda ya no alcanza. El error debe reportar las 10 unidades reales,
	// no las 4 intermedias que el rollback revierte.
	_, err := l.RecordSale(context.Background(), ledger.RecordSaleInput{
		CustomerID: customerID,
		Lines: []ledger.SaleLineInput{
			{ProductID: productID, SizeID: sizeM, Quantity: 6},
			{ProductID: productID, SizeID: sizeM, Quantity: 7},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(10), stockErr.Available, "la disponibilidad reportada es la confirmada")
	assert.Equal(t, int64(10), s.sizes[sizeM].Quantity)
	assert.Empty(t, s.sales)
}

func TestRecordSale_ClienteInvalidoYSinLineas(t *testing.T) {
	l, s := newLedger(t)

	_, err := l.RecordSale(context.Background(), ledger.RecordSaleInput{
		CustomerID: "no-existe",
		Lines:      []ledger.SaleLineInput{{ProductID: productID, SizeID: sizeM, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	s.customers[customerID].Active = false
	_, err = l.RecordSale(context.Background(), ledger.RecordSaleInput{
		CustomerID: customerID,
		Lines:      []ledger.SaleLineInput{{ProductID: productID, SizeID: sizeM, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	s.customers[customerID].Active = true
	_, err = l.RecordSale(context.Background(), ledger.RecordSaleInput{CustomerID: customerID})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestVoidSale_ReingresaStockYEsTerminal(t *testing.T) {
	l, s := newLedger(t)

	result, err := l.RecordSale(context.Background(), ledger.RecordSaleInput{
		CustomerID: customerID,
		Lines:      []ledger.SaleLineInput{{ProductID: productID, SizeID: sizeM, Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(6), s.sizes[sizeM].Quantity)

	err = l.VoidSale(context.Background(), result.SaleID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), s.sizes[sizeM].Quantity, "anular reingresa exactamente lo vendido")
	assert.Equal(t, entity.SaleStatusVoided, s.sales[result.SaleID].Status)

	// VOIDED es terminal: la segunda anulación falla sin duplicar stock.
	err = l.VoidSale(context.Background(), result.SaleID)
	assert.ErrorIs(t, err, domain.ErrNotVoidable)
	assert.Equal(t, int64(10), s.sizes[sizeM].Quantity)
}

func TestVoidSale_NoExiste(t *testing.T) {
	l, _ := newLedger(t)
	err := l.VoidSale(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotVoidable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Devoluciones
// ──────────────────────────────────────────────────────────────────────────────

// vende 4 unidades de la talla M y devuelve la venta creada.
func sellFour(t *testing.T, l *ledger.StockLedger) *ledger.SaleResult {
	t.Helper()
	result, err := l.RecordSale(context.Background(), ledger.RecordSaleInput{
		CustomerID: customerID,
		Lines:      []ledger.SaleLineInput{{ProductID: productID, SizeID: sizeM, Quantity: 4}},
	})
	require.NoError(t, err)
	return result
}

func TestRecordReturn_ReingresaStockALaTallaOriginal(t *testing.T) {
	l, s := newLedger(t)
	sale := sellFour(t, l)
	require.Equal(t, int64(6), s.sizes[sizeM].Quantity)

	result, err := l.RecordReturn(context.Background(), ledger.RecordReturnInput{
		SaleID:    sale.SaleID,
		ProductID: productID,
		Quantity:  2,
		Reason:    "talla equivocada",
	})
	require.NoError(t, err)

	// Monto = cantidad × precio congelado de la línea original.
	assert.True(t, money(100000).Equal(result.Amount), "2×50000, fue %s", result.Amount)
	assert.Equal(t, int64(8), s.sizes[sizeM].Quantity, "el stock vuelve a la misma talla")

	ret := s.returns[result.ReturnID]
	require.NotNil(t, ret)
	assert.True(t, ret.Active)
	assert.Equal(t, sizeM, ret.SizeID)
}

func TestRecordReturn_Validaciones(t *testing.T) {
	l, s := newLedger(t)
	sale := sellFour(t, l)

	cases := []struct {
		name    string
		in      ledger.RecordReturnInput
		wantErr error
	}{
		{
			"venta inexistente",
			ledger.RecordReturnInput{SaleID: "no-existe", ProductID: productID, Quantity: 1, Reason: "defecto de fábrica"},
			domain.ErrNotFound,
		},
		{
			"producto fuera de la venta",
			ledger.RecordReturnInput{SaleID: sale.SaleID, ProductID: "no-existe", Quantity: 1, Reason: "defecto de fábrica"},
			domain.ErrNotFound,
		},
		{
			"cantidad cero",
			ledger.RecordReturnInput{SaleID: sale.SaleID, ProductID: productID, Quantity: 0, Reason: "defecto de fábrica"},
			domain.ErrInvalidReturn,
		},
		{
			"cantidad mayor a la vendida",
			ledger.RecordReturnInput{SaleID: sale.SaleID, ProductID: productID, Quantity: 5, Reason: "defecto de fábrica"},
			domain.ErrInvalidReturn,
		},
		{
			"motivo muy corto",
			ledger.RecordReturnInput{SaleID: sale.SaleID, ProductID: productID, Quantity: 1, Reason: "mal"},
			domain.ErrInvalidReturn,
		},
		{
			"motivo corto tras recortar espacios",
			ledger.RecordReturnInput{SaleID: sale.SaleID, ProductID: productID, Quantity: 1, Reason: "  ab  "},
			domain.ErrInvalidReturn,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.RecordReturn(context.Background(), tc.in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	assert.Empty(t, s.returns, "ninguna devolución inválida debe persistirse")
	assert.Equal(t, int64(6), s.sizes[sizeM].Quantity, "el stock no debe moverse")
}

func TestRecordReturn_ProductoEnVariasTallasEsAmbiguo(t *testing.T) {
	l, s := newLedger(t)

	// El mismo producto vendido en dos tallas: la devolución indica solo
	// venta + producto, así que no hay forma de saber qué línea devolver.
	sale, err := l.RecordSale(context.Background(), ledger.RecordSaleInput{
		CustomerID: customerID,
		Lines: []ledger.SaleLineInput{
			{ProductID: productID, SizeID: sizeM, Quantity: 2},
			{ProductID: productID, SizeID: sizeL, Quantity: 1},
		},
	})
	require.NoError(t, err)

	_, err = l.RecordReturn(context.Background(), ledger.RecordReturnInput{
		SaleID:    sale.SaleID,
		ProductID: productID,
		Quantity:  1,
		Reason:    "talla equivocada",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReturn)
	assert.Empty(t, s.returns)
	assert.Equal(t, int64(8), s.sizes[sizeM].Quantity, "el stock de la venta previa no debe moverse")
}

func TestToggleReturnStatus_EsSimetrico(t *testing.T) {
	l, s := newLedger(t)
	sale := sellFour(t, l)

	ret, err := l.RecordReturn(context.Background(), ledger.RecordReturnInput{
		SaleID:    sale.SaleID,
		ProductID: productID,
		Quantity:  2,
		Reason:    "cambio de opinión",
	})
	require.NoError(t, err)
	require.Equal(t, int64(8), s.sizes[sizeM].Quantity)

	// Anular: la mercancía sale del inventario.
	active, err := l.ToggleReturnStatus(context.Background(), ret.ReturnID)
	require.NoError(t, err)
	assert.False(t, active)
	assert.Equal(t, int64(6), s.sizes[sizeM].Quantity)

	// Reactivar: vuelve a entrar. El ciclo completo deja todo como estaba.
	active, err = l.ToggleReturnStatus(context.Background(), ret.ReturnID)
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, int64(8), s.sizes[sizeM].Quantity)
}

func TestToggleReturnStatus_SinStockParaAnular(t *testing.T) {
	l, s := newLedger(t)
	sale := sellFour(t, l)

	ret, err := l.RecordReturn(context.Background(), ledger.RecordReturnInput{
		SaleID:    sale.SaleID,
		ProductID: productID,
		Quantity:  2,
		Reason:    "cambio de opinión",
	})
	require.NoError(t, err)

	// La mercancía devuelta ya volvió a venderse: no hay qué retirar.
	s.sizes[sizeM].Quantity = 1

	_, err = l.ToggleReturnStatus(context.Background(), ret.ReturnID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, s.returns[ret.ReturnID].Active, "la devolución debe seguir vigente")
	assert.Equal(t, int64(1), s.sizes[sizeM].Quantity)
}

func TestToggleReturnStatus_NoExiste(t *testing.T) {
	l, _ := newLedger(t)
	_, err := l.ToggleReturnStatus(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
