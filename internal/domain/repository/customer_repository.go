package repository

import "github.com/tu-usuario/tienda-ropa/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByDocument(document string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(limit, offset int, search string) ([]*entity.Customer, int, error)
}
