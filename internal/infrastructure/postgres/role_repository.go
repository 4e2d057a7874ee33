package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// Los permisos viven en la tabla permissions (role_id, module).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un rol (sin permisos; usar SetPermissions).
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Description, role.Active, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol con sus permisos cargados.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.getOne(`SELECT id, name, description, active, created_at, updated_at FROM roles WHERE id = $1`, id)
}

// GetByName obtiene un rol por nombre con sus permisos cargados.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.getOne(`SELECT id, name, description, active, created_at, updated_at FROM roles WHERE name = $1`, name)
}

func (r *RoleRepo) getOne(query string, arg any) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&role.ID, &role.Name, &role.Description, &role.Active, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	perms, err := r.loadPermissions(role.ID)
	if err != nil {
		return nil, err
	}
	role.Permissions = perms
	return &role, nil
}

// Update actualiza nombre, descripción y estado del rol.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, description = $3, active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, role.Description, role.Active, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// SetPermissions reemplaza los permisos del rol por la lista dada.
func (r *RoleRepo) SetPermissions(roleID string, modules []string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM permissions WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("clear permissions: %w", err)
	}
	for _, m := range modules {
		if _, err := r.q.Exec(context.Background(),
			`INSERT INTO permissions (id, role_id, module) VALUES ($1, $2, $3)`,
			uuid.New().String(), roleID, m); err != nil {
			return fmt.Errorf("insert permission: %w", err)
		}
	}
	return nil
}

// List lista todos los roles con sus permisos.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description, active, created_at, updated_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.Active,
			&role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, role := range list {
		perms, err := r.loadPermissions(role.ID)
		if err != nil {
			return nil, err
		}
		role.Permissions = perms
	}
	return list, nil
}

func (r *RoleRepo) loadPermissions(roleID string) ([]entity.Permission, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, module FROM permissions WHERE role_id = $1 ORDER BY module`, roleID)
	if err != nil {
		return nil, fmt.Errorf("load permissions: %w", err)
	}
	defer rows.Close()
	var perms []entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Module); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}
