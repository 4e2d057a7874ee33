package repository

import "github.com/tu-usuario/tienda-ropa/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role y sus permisos.
// GetByID y GetByName devuelven el rol con sus permisos cargados.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	Update(role *entity.Role) error
	// SetPermissions reemplaza los permisos del rol por la lista dada.
	SetPermissions(roleID string, modules []string) error
	List() ([]*entity.Role, error)
}
