package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// validModules módulos reconocidos para asignar permisos.
var validModules = map[string]bool{
	entity.ModuleProducts:  true,
	entity.ModulePurchases: true,
	entity.ModuleSales:     true,
	entity.ModuleReturns:   true,
	entity.ModuleCustomers: true,
	entity.ModuleSuppliers: true,
	entity.ModuleUsers:     true,
	entity.ModuleRoles:     true,
	entity.ModuleDashboard: true,
}

// RoleUseCase administración de roles y sus permisos por módulo.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create crea un rol con la lista de módulos dada.
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if err := checkModules(in.Modules); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	role := &entity.Role{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	if err := uc.repo.SetPermissions(role.ID, in.Modules); err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(role.ID)
	if err != nil {
		return nil, err
	}
	return toRoleResponse(created), nil
}

// GetByID obtiene un rol con sus permisos.
func (uc *RoleUseCase) GetByID(id string) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	return toRoleResponse(role), nil
}

// UpdatePermissions reemplaza los módulos permitidos del rol.
func (uc *RoleUseCase) UpdatePermissions(id string, in dto.UpdateRolePermissionsRequest) (*dto.RoleResponse, error) {
	if err := checkModules(in.Modules); err != nil {
		return nil, err
	}
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	if err := uc.repo.SetPermissions(id, in.Modules); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toRoleResponse(updated), nil
}

// List lista todos los roles con sus permisos.
func (uc *RoleUseCase) List() (*dto.RoleListResponse, error) {
	roles, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		items = append(items, *toRoleResponse(r))
	}
	return &dto.RoleListResponse{Items: items}, nil
}

func checkModules(modules []string) error {
	for _, m := range modules {
		if !validModules[m] {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	modules := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		modules = append(modules, p.Module)
	}
	return &dto.RoleResponse{
		ID:      r.ID,
		Name:    r.Name,
		Modules: modules,
	}
}
