package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock no se toca aquí:
// se mueve por tallas vía el motor de inventario.
type ProductUseCase struct {
	repo         repository.ProductRepository
	sizeRepo     repository.SizeRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, sizeRepo repository.SizeRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, sizeRepo: sizeRepo, categoryRepo: categoryRepo}
}

// Create crea un producto nuevo, validando la categoría y la coherencia de la oferta.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrInvalidReference
	}
	if in.SalePrice.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		OnSale:        in.OnSale,
		PromoPrice:    in.PromoPrice,
		PromoPercent:  in.PromoPercent,
		ImageURL:      in.ImageURL,
		CategoryID:    in.CategoryID,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	product.NormalizePromo()
	if product.OnSale && product.PromoPrice != nil && product.PromoPrice.GreaterThanOrEqual(product.SalePrice) {
		return nil, domain.ErrInvalidInput // la oferta debe ser menor al precio regular
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, nil), nil
}

// GetByID obtiene un producto con sus tallas y stock agregado.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	sizes, err := uc.sizeRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, sizes), nil
}

// Update actualiza un producto completo. El stock de sus tallas no se modifica.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrInvalidReference
	}
	if in.SalePrice.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product.Name = in.Name
	product.Description = in.Description
	product.PurchasePrice = in.PurchasePrice
	product.SalePrice = in.SalePrice
	product.OnSale = in.OnSale
	product.PromoPrice = in.PromoPrice
	product.PromoPercent = in.PromoPercent
	product.ImageURL = in.ImageURL
	product.CategoryID = in.CategoryID
	product.Active = in.Active
	product.UpdatedAt = time.Now()
	product.NormalizePromo()
	if product.OnSale && product.PromoPrice != nil && product.PromoPrice.GreaterThanOrEqual(product.SalePrice) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	sizes, err := uc.sizeRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, sizes), nil
}

// List lista productos con paginación y búsqueda por nombre.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(page.Limit, page.Offset, page.Search)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		sizes, err := uc.sizeRepo.ListByProduct(p.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toProductResponse(p, sizes))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete desactiva un producto (borrado lógico).
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product, sizes []*entity.Size) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	var stock int64
	sizeItems := make([]dto.SizeResponse, 0, len(sizes))
	for _, s := range sizes {
		stock += s.Quantity
		sizeItems = append(sizeItems, *toSizeResponse(s))
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		PurchasePrice:  p.PurchasePrice,
		SalePrice:      p.SalePrice,
		OnSale:         p.OnSale,
		PromoPrice:     p.PromoPrice,
		PromoPercent:   p.PromoPercent,
		EffectivePrice: p.EffectivePrice(),
		ImageURL:       p.ImageURL,
		CategoryID:     p.CategoryID,
		Active:         p.Active,
		Stock:          stock,
		Sizes:          sizeItems,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
