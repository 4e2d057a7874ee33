package repository

import "github.com/tu-usuario/tienda-ropa/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int, search string) ([]*entity.Product, int, error)
	Delete(id string) error
}
