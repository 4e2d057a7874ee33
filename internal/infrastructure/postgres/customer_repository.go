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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, name, document, phone, email, address, active, created_at, updated_at`

// Create persiste un nuevo cliente. El documento es único.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Document, customer.Phone, customer.Email,
		customer.Address, customer.Active, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.getOne(query, id)
}

// GetByDocument obtiene un cliente por documento (cédula/NIT).
func (r *CustomerRepo) GetByDocument(document string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE document = $1`
	return r.getOne(query, document)
}

func (r *CustomerRepo) getOne(query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Document, &c.Phone, &c.Email, &c.Address,
		&c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, document = $3, phone = $4, email = $5, address = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Document, customer.Phone, customer.Email,
		customer.Address, customer.Active, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// List lista clientes con paginación y búsqueda por nombre o documento.
func (r *CustomerRepo) List(limit, offset int, search string) ([]*entity.Customer, int, error) {
	var total int
	var rows pgx.Rows
	var err error
	if search != "" {
		pattern := "%" + search + "%"
		if err := r.q.QueryRow(context.Background(),
			`SELECT count(*) FROM customers WHERE name ILIKE $1 OR document ILIKE $1`, pattern).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count customers: %w", err)
		}
		rows, err = r.q.Query(context.Background(),
			`SELECT `+customerColumns+` FROM customers WHERE name ILIKE $3 OR document ILIKE $3 ORDER BY name LIMIT $1 OFFSET $2`,
			limit, offset, pattern)
	} else {
		if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM customers`).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count customers: %w", err)
		}
		rows, err = r.q.Query(context.Background(),
			`SELECT `+customerColumns+` FROM customers ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Document, &c.Phone, &c.Email, &c.Address,
			&c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}
