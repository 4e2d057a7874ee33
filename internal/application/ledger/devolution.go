package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// Longitud mínima del motivo de devolución.
const minReasonLen = 5

// RecordReturn registra una devolución sobre una venta pasada: la cantidad
// no puede exceder lo vendido del producto en esa venta, el monto se
// calcula con el precio congelado de la línea original, y el stock regresa
// a la MISMA talla de la que salió (la línea de venta la registra).
func (l *StockLedger) RecordReturn(ctx context.Context, in RecordReturnInput) (*ReturnResult, error) {
	sale, err := l.saleRepo.GetByID(in.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	product, err := l.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	detail, err := l.saleRepo.GetDetailByProduct(in.SaleID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, &domain.ReturnError{Reason: "el producto no está incluido en la venta especificada"}
	}
	if in.Quantity <= 0 {
		return nil, &domain.ReturnError{Reason: "la cantidad debe ser mayor a 0"}
	}
	if in.Quantity > detail.Quantity {
		return nil, &domain.ReturnError{Reason: fmt.Sprintf(
			"la cantidad a devolver (%d) no puede ser mayor a la cantidad vendida (%d)",
			in.Quantity, detail.Quantity,
		)}
	}
	if len(strings.TrimSpace(in.Reason)) < minReasonLen {
		return nil, &domain.ReturnError{Reason: fmt.Sprintf("el motivo debe tener al menos %d caracteres", minReasonLen)}
	}

	now := time.Now()
	ret := &entity.Return{
		ID:        uuid.New().String(),
		SaleID:    in.SaleID,
		ProductID: in.ProductID,
		SizeID:    detail.SizeID,
		Quantity:  in.Quantity,
		Amount:    detail.UnitPrice.Mul(decimal.NewFromInt(in.Quantity)),
		Reason:    strings.TrimSpace(in.Reason),
		Date:      now,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = l.txRunner.Run(ctx, func(
		sizeRepo repository.SizeRepository,
		_ repository.ProductRepository,
		_ repository.PurchaseRepository,
		_ repository.SaleRepository,
		returnRepo repository.ReturnRepository,
	) error {
		if err := returnRepo.Create(ret); err != nil {
			return err
		}
		// La mercancía vuelve físicamente al inventario.
		return sizeRepo.Increment(ret.SizeID, ret.Quantity)
	})
	if err != nil {
		return nil, err
	}

	return &ReturnResult{ReturnID: ret.ID, Amount: ret.Amount}, nil
}

// ToggleReturnStatus alterna el estado vigente/anulada de una devolución y
// aplica el delta de stock correspondiente: anularla saca del inventario
// la cantidad devuelta, reactivarla la vuelve a ingresar. El toggle es
// simétrico y repetible; cada transición mueve stock.
func (l *StockLedger) ToggleReturnStatus(ctx context.Context, returnID string) (bool, error) {
	ret, err := l.returnRepo.GetByID(returnID)
	if err != nil {
		return false, err
	}
	if ret == nil {
		return false, domain.ErrNotFound
	}

	// Disponibilidad confirmada de la talla, para el mensaje de error.
	var committed int64
	if size, err := l.sizeRepo.GetByID(ret.SizeID); err != nil {
		return false, err
	} else if size != nil {
		committed = size.Quantity
	}

	newActive := !ret.Active
	now := time.Now()
	err = l.txRunner.Run(ctx, func(
		sizeRepo repository.SizeRepository,
		productRepo repository.ProductRepository,
		_ repository.PurchaseRepository,
		_ repository.SaleRepository,
		returnRepo repository.ReturnRepository,
	) error {
		if ret.Active {
			// Anulando: la devolución deja de estar vigente, la mercancía
			// sale del inventario.
			ok, err := sizeRepo.DecrementIfAvailable(ret.SizeID, ret.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return insufficientStock(productRepo, ret.ProductID, committed)
			}
		} else {
			// Reactivando: la mercancía vuelve al inventario.
			if err := sizeRepo.Increment(ret.SizeID, ret.Quantity); err != nil {
				return err
			}
		}
		return returnRepo.SetActive(returnID, newActive, now)
	})
	if err != nil {
		return false, err
	}
	return newActive, nil
}
