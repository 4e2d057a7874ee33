package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// RecordPurchase registra una compra a proveedor: valida referencias,
// calcula subtotales y total, y dentro de una transacción AUMENTA el stock
// por talla y persiste cabecera y detalles.
func (l *StockLedger) RecordPurchase(ctx context.Context, in RecordPurchaseInput) (*PurchaseResult, error) {
	supplier, err := l.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || !supplier.Active {
		return nil, domain.ErrInvalidReference
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	now := time.Now()
	purchaseID := uuid.New().String()
	total := decimal.Zero
	details := make([]*entity.PurchaseDetail, 0, len(in.Lines))

	// Validación línea por línea, abortando en la primera violación.
	for i, line := range in.Lines {
		product, err := l.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, &domain.LineItemError{Index: i, ProductID: line.ProductID, Reason: "el producto no existe"}
		}
		size, err := l.sizeRepo.GetByIDAndProduct(line.SizeID, line.ProductID)
		if err != nil {
			return nil, err
		}
		if size == nil {
			return nil, &domain.LineItemError{Index: i, ProductID: line.ProductID, Reason: "talla no válida para el producto"}
		}
		if line.Quantity <= 0 {
			return nil, &domain.LineItemError{Index: i, ProductID: line.ProductID, Reason: "la cantidad debe ser mayor a 0"}
		}
		if !line.PurchasePrice.GreaterThan(decimal.Zero) {
			return nil, &domain.LineItemError{Index: i, ProductID: line.ProductID, Reason: "precio de compra inválido"}
		}

		salePrice := product.SalePrice
		if line.SalePrice != nil && line.SalePrice.GreaterThan(decimal.Zero) {
			salePrice = *line.SalePrice
		}
		subtotal := line.PurchasePrice.Mul(decimal.NewFromInt(line.Quantity))
		total = total.Add(subtotal)

		details = append(details, &entity.PurchaseDetail{
			ID:            uuid.New().String(),
			PurchaseID:    purchaseID,
			ProductID:     line.ProductID,
			SizeID:        line.SizeID,
			Quantity:      line.Quantity,
			PurchasePrice: line.PurchasePrice,
			SalePrice:     salePrice,
			Subtotal:      subtotal,
		})
	}

	purchase := &entity.Purchase{
		ID:            purchaseID,
		SupplierID:    in.SupplierID,
		Date:          now,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		Active:        true,
		CreatedAt:     now,
	}

	err = l.txRunner.Run(ctx, func(
		sizeRepo repository.SizeRepository,
		_ repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
		_ repository.ReturnRepository,
	) error {
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, detail := range details {
			if err := purchaseRepo.CreateDetail(detail); err != nil {
				return err
			}
			if err := sizeRepo.Increment(detail.SizeID, detail.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PurchaseResult{PurchaseID: purchaseID, Total: total}, nil
}

// VoidPurchase anula una compra activa: revierte exactamente el stock que
// la compra ingresó y marca la cabecera como anulada con motivo y fecha.
// Nunca borra filas. Si revertir dejaría alguna talla en negativo (el stock
// ya salió por ventas) la operación se rechaza completa con stock
// insuficiente, en lugar de permitir un contador negativo.
func (l *StockLedger) VoidPurchase(ctx context.Context, purchaseID, reason string) error {
	purchase, err := l.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return err
	}
	if purchase == nil || !purchase.Active {
		return domain.ErrNotVoidable
	}
	details, err := l.purchaseRepo.GetDetails(purchaseID)
	if err != nil {
		return err
	}

	// Disponibilidad confirmada por talla, para el mensaje de error.
	committed := make(map[string]int64, len(details))
	for _, detail := range details {
		size, err := l.sizeRepo.GetByID(detail.SizeID)
		if err != nil {
			return err
		}
		if size != nil {
			committed[detail.SizeID] = size.Quantity
		}
	}

	now := time.Now()
	return l.txRunner.Run(ctx, func(
		sizeRepo repository.SizeRepository,
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
		_ repository.ReturnRepository,
	) error {
		for _, detail := range details {
			ok, err := sizeRepo.DecrementIfAvailable(detail.SizeID, detail.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return insufficientStock(productRepo, detail.ProductID, committed[detail.SizeID])
			}
		}
		return purchaseRepo.SetVoided(purchaseID, reason, now)
	})
}

// insufficientStock arma el error de stock con nombre de producto y la
// disponibilidad confirmada. La cantidad se lee ANTES de abrir la
// transacción: dentro de ella el contador ya refleja descuentos de líneas
// previas que el rollback va a revertir, y el usuario vería menos stock
// del que realmente tiene.
func insufficientStock(productRepo repository.ProductRepository, productID string, available int64) error {
	name := productID
	if product, err := productRepo.GetByID(productID); err == nil && product != nil {
		name = product.Name
	}
	return &domain.StockError{ProductName: name, Available: available}
}
