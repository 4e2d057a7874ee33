package usecase

import (
	"time"

	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// ReturnQueryUseCase lado de lectura de devoluciones.
type ReturnQueryUseCase struct {
	repo repository.ReturnRepository
}

// NewReturnQueryUseCase construye el caso de uso.
func NewReturnQueryUseCase(repo repository.ReturnRepository) *ReturnQueryUseCase {
	return &ReturnQueryUseCase{repo: repo}
}

// ReturnListFilter filtros aceptados por el listado.
type ReturnListFilter struct {
	SaleID    string
	ProductID string
	Active    *bool
	From      *time.Time
	To        *time.Time
}

// GetByID obtiene una devolución.
func (uc *ReturnQueryUseCase) GetByID(id string) (*dto.ReturnResponse, error) {
	ret, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, nil
	}
	return toReturnResponse(ret), nil
}

// List lista devoluciones con filtros y paginación.
func (uc *ReturnQueryUseCase) List(filter ReturnListFilter, page dto.PageRequest) (*dto.ReturnListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(repository.ReturnFilter{
		SaleID:    filter.SaleID,
		ProductID: filter.ProductID,
		Active:    filter.Active,
		From:      filter.From,
		To:        filter.To,
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReturnResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReturnResponse(r))
	}
	return &dto.ReturnListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// ListBySale devoluciones de una venta.
func (uc *ReturnQueryUseCase) ListBySale(saleID string) ([]dto.ReturnResponse, error) {
	list, err := uc.repo.ListBySale(saleID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReturnResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReturnResponse(r))
	}
	return items, nil
}

// Stats estadísticas agregadas de devoluciones.
func (uc *ReturnQueryUseCase) Stats() (*dto.ReturnStatsResponse, error) {
	stats, err := uc.repo.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.ReturnStatsResponse{
		Total:    stats.Total,
		Active:   stats.Active,
		Voided:   stats.Voided,
		Refunded: stats.Refunded,
	}, nil
}

func toReturnResponse(r *entity.Return) *dto.ReturnResponse {
	if r == nil {
		return nil
	}
	return &dto.ReturnResponse{
		ID:        r.ID,
		SaleID:    r.SaleID,
		ProductID: r.ProductID,
		SizeID:    r.SizeID,
		Quantity:  r.Quantity,
		Amount:    r.Amount,
		Reason:    r.Reason,
		Date:      r.Date,
		Active:    r.Active,
	}
}
