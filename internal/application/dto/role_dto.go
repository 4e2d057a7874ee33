package dto

// CreateRoleRequest alta de rol con sus módulos permitidos.
type CreateRoleRequest struct {
	Name    string   `json:"name" validate:"required,min=3,max=100"`
	Modules []string `json:"modules" validate:"required,min=1,dive,required"`
}

// UpdateRolePermissionsRequest reemplaza los módulos del rol.
type UpdateRolePermissionsRequest struct {
	Modules []string `json:"modules" validate:"required,min=1,dive,required"`
}

// RoleResponse rol en respuestas.
type RoleResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Modules []string `json:"modules"`
}

// RoleListResponse listado de roles.
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
}
