package ledger

import (
	"context"

	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// inventario: o se aplican todos los pasos (stock + cabecera + detalles)
// o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sizeRepo repository.SizeRepository,
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
		returnRepo repository.ReturnRepository,
	) error) error
}
