package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// ImageUseCase administra la galería de imágenes de los productos.
type ImageUseCase struct {
	repo        repository.ImageRepository
	productRepo repository.ProductRepository
}

// NewImageUseCase construye el caso de uso.
func NewImageUseCase(repo repository.ImageRepository, productRepo repository.ProductRepository) *ImageUseCase {
	return &ImageUseCase{repo: repo, productRepo: productRepo}
}

// Create agrega una imagen a un producto existente.
func (uc *ImageUseCase) Create(in dto.CreateImageRequest) (*dto.ImageResponse, error) {
	if err := uc.checkProduct(in.ProductID); err != nil {
		return nil, err
	}
	img, err := uc.create(in.ProductID, in.URL)
	if err != nil {
		return nil, err
	}
	return toImageResponse(img), nil
}

// CreateBatch agrega varias imágenes al mismo producto.
func (uc *ImageUseCase) CreateBatch(in dto.CreateImageBatchRequest) ([]dto.ImageResponse, error) {
	if err := uc.checkProduct(in.ProductID); err != nil {
		return nil, err
	}
	items := make([]dto.ImageResponse, 0, len(in.URLs))
	for _, url := range in.URLs {
		img, err := uc.create(in.ProductID, url)
		if err != nil {
			return nil, err
		}
		items = append(items, *toImageResponse(img))
	}
	return items, nil
}

// GetByID obtiene una imagen por ID.
func (uc *ImageUseCase) GetByID(id string) (*dto.ImageResponse, error) {
	img, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, nil
	}
	return toImageResponse(img), nil
}

// ListByProduct lista la galería de un producto.
func (uc *ImageUseCase) ListByProduct(productID string) (*dto.ImageListResponse, error) {
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ImageResponse, 0, len(list))
	for _, img := range list {
		items = append(items, *toImageResponse(img))
	}
	return &dto.ImageListResponse{Items: items}, nil
}

// Update reemplaza la URL de una imagen.
func (uc *ImageUseCase) Update(id string, in dto.UpdateImageRequest) (*dto.ImageResponse, error) {
	img, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, nil
	}
	img.URL = in.URL
	img.UpdatedAt = time.Now()
	if err := uc.repo.Update(img); err != nil {
		return nil, err
	}
	return toImageResponse(img), nil
}

// Delete elimina una imagen por ID.
func (uc *ImageUseCase) Delete(id string) error {
	img, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if img == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *ImageUseCase) checkProduct(productID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrInvalidReference
	}
	return nil
}

func (uc *ImageUseCase) create(productID, url string) (*entity.ProductImage, error) {
	now := time.Now()
	img := &entity.ProductImage{
		ID:        uuid.New().String(),
		ProductID: productID,
		URL:       url,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(img); err != nil {
		return nil, err
	}
	return img, nil
}

func toImageResponse(img *entity.ProductImage) *dto.ImageResponse {
	if img == nil {
		return nil
	}
	return &dto.ImageResponse{
		ID:        img.ID,
		ProductID: img.ProductID,
		URL:       img.URL,
		CreatedAt: img.CreatedAt,
	}
}
