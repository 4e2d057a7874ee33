package entity

import "time"

// Módulos sobre los que se otorgan permisos.
const (
	ModuleProducts  = "productos"
	ModulePurchases = "compras"
	ModuleSales     = "ventas"
	ModuleReturns   = "devoluciones"
	ModuleCustomers = "clientes"
	ModuleSuppliers = "proveedores"
	ModuleUsers     = "usuarios"
	ModuleRoles     = "roles"
	ModuleDashboard = "dashboard"
)

// RoleAdmin es el rol semilla con acceso a todos los módulos.
const RoleAdmin = "Administrador"

// Role agrupa permisos por módulo.
type Role struct {
	ID          string
	Name        string
	Description string
	Active      bool
	Permissions []Permission
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Permission otorga acceso a un módulo de la aplicación.
type Permission struct {
	ID     string
	Module string
}

// HasModule indica si el rol tiene permiso sobre el módulo.
func (r *Role) HasModule(module string) bool {
	for _, p := range r.Permissions {
		if p.Module == module {
			return true
		}
	}
	return false
}
