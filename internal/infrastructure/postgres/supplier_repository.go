package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, name, document_number, phone, email, address, active, created_at, updated_at`

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.DocumentNumber, supplier.Phone, supplier.Email,
		supplier.Address, supplier.Active, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.DocumentNumber, &s.Phone, &s.Email, &s.Address,
		&s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, document_number = $3, phone = $4, email = $5, address = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.DocumentNumber, supplier.Phone, supplier.Email,
		supplier.Address, supplier.Active, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List lista proveedores con paginación y búsqueda por nombre.
func (r *SupplierRepo) List(limit, offset int, search string) ([]*entity.Supplier, int, error) {
	var total int
	var rows pgx.Rows
	var err error
	if search != "" {
		pattern := "%" + search + "%"
		if err := r.q.QueryRow(context.Background(),
			`SELECT count(*) FROM suppliers WHERE name ILIKE $1`, pattern).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count suppliers: %w", err)
		}
		rows, err = r.q.Query(context.Background(),
			`SELECT `+supplierColumns+` FROM suppliers WHERE name ILIKE $3 ORDER BY name LIMIT $1 OFFSET $2`,
			limit, offset, pattern)
	} else {
		if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM suppliers`).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count suppliers: %w", err)
		}
		rows, err = r.q.Query(context.Background(),
			`SELECT `+supplierColumns+` FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.DocumentNumber, &s.Phone, &s.Email, &s.Address,
			&s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, total, rows.Err()
}
