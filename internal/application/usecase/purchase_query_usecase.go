package usecase

import (
	"time"

	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// PurchaseQueryUseCase lado de lectura de compras: listados, detalle y
// estadísticas. Las mutaciones (registrar/anular) van por el motor de
// inventario.
type PurchaseQueryUseCase struct {
	repo repository.PurchaseRepository
}

// NewPurchaseQueryUseCase construye el caso de uso.
func NewPurchaseQueryUseCase(repo repository.PurchaseRepository) *PurchaseQueryUseCase {
	return &PurchaseQueryUseCase{repo: repo}
}

// PurchaseListFilter filtros aceptados por el listado.
type PurchaseListFilter struct {
	SupplierID string
	Active     *bool
	From       *time.Time
	To         *time.Time
}

// GetByID obtiene una compra con sus detalles.
func (uc *PurchaseQueryUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, nil
	}
	details, err := uc.repo.GetDetails(id)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase, details), nil
}

// List lista compras con filtros y paginación. Las cabeceras del listado
// no cargan detalles.
func (uc *PurchaseQueryUseCase) List(filter PurchaseListFilter, page dto.PageRequest) (*dto.PurchaseListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(repository.PurchaseFilter{
		SupplierID: filter.SupplierID,
		Active:     filter.Active,
		From:       filter.From,
		To:         filter.To,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p, nil))
	}
	return &dto.PurchaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Stats estadísticas agregadas de compras.
func (uc *PurchaseQueryUseCase) Stats() (*dto.PurchaseStatsResponse, error) {
	stats, err := uc.repo.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.PurchaseStatsResponse{
		Total:    stats.Total,
		Active:   stats.Active,
		Voided:   stats.Voided,
		Invested: stats.Invested,
	}, nil
}

func toPurchaseResponse(p *entity.Purchase, details []*entity.PurchaseDetail) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	var detailItems []dto.PurchaseDetailResponse
	for _, d := range details {
		detailItems = append(detailItems, dto.PurchaseDetailResponse{
			ID:            d.ID,
			ProductID:     d.ProductID,
			SizeID:        d.SizeID,
			Quantity:      d.Quantity,
			PurchasePrice: d.PurchasePrice,
			SalePrice:     d.SalePrice,
			Subtotal:      d.Subtotal,
		})
	}
	return &dto.PurchaseResponse{
		ID:            p.ID,
		SupplierID:    p.SupplierID,
		Date:          p.Date,
		Total:         p.Total,
		PaymentMethod: p.PaymentMethod,
		Active:        p.Active,
		VoidReason:    p.VoidReason,
		VoidedAt:      p.VoidedAt,
		Details:       detailItems,
	}
}
