// Package ledger implementa el motor transaccional de inventario: toda
// operación que afecta stock (compras, ventas, anulaciones, devoluciones)
// valida sus referencias, calcula totales y aplica el delta de inventario
// junto con la cabecera y los detalles en una sola transacción.
package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// StockLedger orquesta las operaciones que mutan stock. Las validaciones de
// referencias se hacen fuera de la transacción (solo lectura); las
// mutaciones corren dentro de TxRunner.Run con Commit/Rollback.
type StockLedger struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	sizeRepo     repository.SizeRepository
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
	returnRepo   repository.ReturnRepository
}

// NewStockLedger construye el motor con los repositorios de solo lectura
// (atados al pool) y el runner transaccional.
func NewStockLedger(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	sizeRepo repository.SizeRepository,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	returnRepo repository.ReturnRepository,
) *StockLedger {
	return &StockLedger{
		txRunner:     txRunner,
		productRepo:  productRepo,
		sizeRepo:     sizeRepo,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		returnRepo:   returnRepo,
	}
}

// PurchaseLineInput línea de una compra a registrar.
type PurchaseLineInput struct {
	ProductID     string
	SizeID        string
	Quantity      int64
	PurchasePrice decimal.Decimal
	SalePrice     *decimal.Decimal // opcional: si es nil se usa el precio de venta del producto
}

// RecordPurchaseInput entrada de RecordPurchase.
type RecordPurchaseInput struct {
	SupplierID    string
	PaymentMethod string
	Lines         []PurchaseLineInput
}

// PurchaseResult resultado de una compra registrada.
type PurchaseResult struct {
	PurchaseID string
	Total      decimal.Decimal
}

// SaleLineInput línea de una venta a registrar. El precio unitario no se
// recibe: lo resuelve el motor (oferta vigente o precio regular).
type SaleLineInput struct {
	ProductID string
	SizeID    string
	Quantity  int64
}

// RecordSaleInput entrada de RecordSale.
type RecordSaleInput struct {
	CustomerID    string
	PaymentMethod string
	Lines         []SaleLineInput
}

// SaleResult resultado de una venta registrada.
type SaleResult struct {
	SaleID string
	Total  decimal.Decimal
}

// RecordReturnInput entrada de RecordReturn.
type RecordReturnInput struct {
	SaleID    string
	ProductID string
	Quantity  int64
	Reason    string
}

// ReturnResult resultado de una devolución registrada.
type ReturnResult struct {
	ReturnID string
	Amount   decimal.Decimal
}
