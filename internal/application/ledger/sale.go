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

// RecordSale registra una venta: valida cliente y líneas, resuelve el
// precio efectivo por producto (oferta vigente o precio regular) y lo
// congela en el detalle, y dentro de una transacción DESCUENTA stock por
// talla con decremento condicional y persiste cabecera y detalles.
//
// El chequeo de disponibilidad no es leer-verificar-escribir: el descuento
// es un UPDATE condicional atómico, así dos ventas concurrentes sobre la
// última unidad no pueden dejar stock negativo.
func (l *StockLedger) RecordSale(ctx context.Context, in RecordSaleInput) (*SaleResult, error) {
	customer, err := l.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || !customer.Active {
		return nil, domain.ErrInvalidReference
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	now := time.Now()
	saleID := uuid.New().String()
	total := decimal.Zero
	details := make([]*entity.SaleDetail, 0, len(in.Lines))
	// Disponibilidad confirmada por talla, para el mensaje de error.
	committed := make(map[string]int64, len(in.Lines))

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
		committed[line.SizeID] = size.Quantity
		if line.Quantity <= 0 {
			return nil, &domain.LineItemError{Index: i, ProductID: line.ProductID, Reason: "la cantidad debe ser mayor a 0"}
		}

		unitPrice := product.EffectivePrice()
		subtotal := unitPrice.Mul(decimal.NewFromInt(line.Quantity))
		total = total.Add(subtotal)

		details = append(details, &entity.SaleDetail{
			ID:        uuid.New().String(),
			SaleID:    saleID,
			ProductID: line.ProductID,
			SizeID:    line.SizeID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
		})
	}

	sale := &entity.Sale{
		ID:            saleID,
		CustomerID:    in.CustomerID,
		Date:          now,
		Total:         total,
		Status:        entity.SaleStatusCompleted,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
	}

	err = l.txRunner.Run(ctx, func(
		sizeRepo repository.SizeRepository,
		productRepo repository.ProductRepository,
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
		_ repository.ReturnRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, detail := range details {
			if err := saleRepo.CreateDetail(detail); err != nil {
				return err
			}
			ok, err := sizeRepo.DecrementIfAvailable(detail.SizeID, detail.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return insufficientStock(productRepo, detail.ProductID, committed[detail.SizeID])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SaleResult{SaleID: saleID, Total: total}, nil
}

// VoidSale anula una venta que no esté ya anulada: devuelve al inventario
// exactamente las cantidades de cada línea y marca la venta como VOIDED.
// VOIDED es terminal: anular dos veces falla la segunda vez sin volver a
// incrementar stock.
func (l *StockLedger) VoidSale(ctx context.Context, saleID string) error {
	sale, err := l.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil || sale.Status == entity.SaleStatusVoided {
		return domain.ErrNotVoidable
	}
	details, err := l.saleRepo.GetDetails(saleID)
	if err != nil {
		return err
	}

	return l.txRunner.Run(ctx, func(
		sizeRepo repository.SizeRepository,
		_ repository.ProductRepository,
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
		_ repository.ReturnRepository,
	) error {
		for _, detail := range details {
			if err := sizeRepo.Increment(detail.SizeID, detail.Quantity); err != nil {
				return err
			}
		}
		return saleRepo.UpdateStatus(saleID, entity.SaleStatusVoided)
	})
}
