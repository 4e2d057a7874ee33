package repository

import "github.com/tu-usuario/tienda-ropa/internal/domain/entity"

// ImageRepository define el puerto de persistencia para la galería de
// imágenes de productos.
type ImageRepository interface {
	Create(img *entity.ProductImage) error
	GetByID(id string) (*entity.ProductImage, error)
	ListByProduct(productID string) ([]*entity.ProductImage, error)
	Update(img *entity.ProductImage) error
	Delete(id string) error
}
