package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// SizeUseCase administra las tallas de un producto. Solo la creación admite
// una cantidad inicial; después el contador lo mueven compras, ventas y
// devoluciones dentro de sus transacciones.
type SizeUseCase struct {
	repo        repository.SizeRepository
	productRepo repository.ProductRepository
}

// NewSizeUseCase construye el caso de uso.
func NewSizeUseCase(repo repository.SizeRepository, productRepo repository.ProductRepository) *SizeUseCase {
	return &SizeUseCase{repo: repo, productRepo: productRepo}
}

// Create agrega una talla a un producto existente.
func (uc *SizeUseCase) Create(in dto.CreateSizeRequest) (*dto.SizeResponse, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrInvalidReference
	}
	existing, err := uc.repo.ListByProduct(in.ProductID)
	if err != nil {
		return nil, err
	}
	for _, s := range existing {
		if s.Label == in.Label {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	size := &entity.Size{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Label:     in.Label,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(size); err != nil {
		return nil, err
	}
	return toSizeResponse(size), nil
}

// ListByProduct lista las tallas de un producto.
func (uc *SizeUseCase) ListByProduct(productID string) ([]dto.SizeResponse, error) {
	sizes, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SizeResponse, 0, len(sizes))
	for _, s := range sizes {
		items = append(items, *toSizeResponse(s))
	}
	return items, nil
}

// Update cambia la etiqueta de una talla. La cantidad no se edita por aquí.
func (uc *SizeUseCase) Update(id string, in dto.UpdateSizeRequest) (*dto.SizeResponse, error) {
	size, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if size == nil {
		return nil, nil
	}
	size.Label = in.Label
	size.UpdatedAt = time.Now()
	if err := uc.repo.Update(size); err != nil {
		return nil, err
	}
	return toSizeResponse(size), nil
}

// Delete elimina una talla solo si su contador está en cero: borrar una
// talla con stock perdería unidades del inventario.
func (uc *SizeUseCase) Delete(id string) error {
	size, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if size == nil {
		return domain.ErrNotFound
	}
	if size.Quantity > 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(id)
}

func toSizeResponse(s *entity.Size) *dto.SizeResponse {
	if s == nil {
		return nil
	}
	return &dto.SizeResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Label:     s.Label,
		Quantity:  s.Quantity,
		CreatedAt: s.CreatedAt,
	}
}
