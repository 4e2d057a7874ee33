package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

// permissionChecker contrato mínimo para verificar permisos por módulo.
// El uso de interfaz permite un fake en tests sin tocar la DB.
type permissionChecker interface {
	RoleHasModule(roleName, module string) (bool, error)
}

// RolePermissionChecker resuelve permisos consultando el repositorio de roles.
type RolePermissionChecker struct {
	repo repository.RoleRepository
}

// NewRolePermissionChecker construye el verificador.
func NewRolePermissionChecker(repo repository.RoleRepository) *RolePermissionChecker {
	return &RolePermissionChecker{repo: repo}
}

// RoleHasModule indica si el rol (por nombre) tiene permiso sobre el módulo.
// El rol Administrador siempre pasa.
func (p *RolePermissionChecker) RoleHasModule(roleName, module string) (bool, error) {
	if roleName == entity.RoleAdmin {
		return true, nil
	}
	role, err := p.repo.GetByName(roleName)
	if err != nil {
		return false, err
	}
	if role == nil || !role.Active {
		return false, nil
	}
	return role.HasModule(module), nil
}

// RequireRole devuelve un middleware Fiber que exige que el rol del token
// sea uno de los indicados. Debe usarse DESPUÉS de AuthMiddleware.
// A diferencia de RequirePermission no consulta la DB: compara nombres.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol no encontrado en el token",
			})
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol '" + role + "' no puede realizar esta operación",
		})
	}
}

// RequirePermission devuelve un middleware Fiber que verifica si el rol del
// token tiene acceso al módulo. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalRole).
//
// Comportamiento:
//   - 401 si no hay rol en el contexto.
//   - 403 si el rol no tiene el módulo.
//   - 503 si falló la consulta de permisos.
func RequirePermission(module string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol no encontrado en el token",
			})
		}

		allowed, err := checker.RoleHasModule(role, module)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no tiene acceso al módulo '" + module + "'",
			})
		}

		return c.Next()
	}
}
