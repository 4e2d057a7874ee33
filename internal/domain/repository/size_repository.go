package repository

import "github.com/tu-usuario/tienda-ropa/internal/domain/entity"

// SizeRepository define el puerto de persistencia para las tallas y su
// contador de stock. Los métodos Increment/DecrementIfAvailable son el
// contrato explícito de actualización atómica: toda mutación de stock
// ocurre por aquí, dentro de la transacción de la operación de negocio.
type SizeRepository interface {
	Create(size *entity.Size) error
	GetByID(id string) (*entity.Size, error)
	// GetByIDAndProduct verifica además que la talla pertenezca al producto.
	GetByIDAndProduct(id, productID string) (*entity.Size, error)
	ListByProduct(productID string) ([]*entity.Size, error)
	Update(size *entity.Size) error
	Delete(id string) error

	// Increment suma qty al contador en un solo UPDATE atómico.
	Increment(id string, qty int64) error
	// DecrementIfAvailable resta qty solo si el contador alcanza
	// (UPDATE ... SET quantity = quantity - $n WHERE quantity >= $n).
	// Devuelve false sin modificar nada si no hay stock suficiente:
	// cierra la carrera de dos ventas concurrentes sobre la última unidad.
	DecrementIfAvailable(id string, qty int64) (bool, error)
}
