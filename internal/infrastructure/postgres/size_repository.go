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

var _ repository.SizeRepository = (*SizeRepo)(nil)

// SizeRepo implementación del puerto SizeRepository sobre PostgreSQL (usable con pool o tx).
// La tabla sizes tiene un CHECK (quantity >= 0) como última línea de defensa.
type SizeRepo struct {
	q Querier
}

// NewSizeRepository construye el adaptador de persistencia para tallas. Pasar pool o tx (Querier).
func NewSizeRepository(q Querier) *SizeRepo {
	return &SizeRepo{q: q}
}

// Create persiste una nueva talla.
func (r *SizeRepo) Create(size *entity.Size) error {
	query := `
		INSERT INTO sizes (id, product_id, label, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		size.ID, size.ProductID, size.Label, size.Quantity, size.CreatedAt, size.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert size: %w", err)
	}
	return nil
}

// GetByID obtiene una talla por ID.
func (r *SizeRepo) GetByID(id string) (*entity.Size, error) {
	query := `
		SELECT id, product_id, label, quantity, created_at, updated_at
		FROM sizes WHERE id = $1`
	var s entity.Size
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.Label, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get size: %w", err)
	}
	return &s, nil
}

// GetByIDAndProduct obtiene una talla verificando que pertenezca al producto.
func (r *SizeRepo) GetByIDAndProduct(id, productID string) (*entity.Size, error) {
	query := `
		SELECT id, product_id, label, quantity, created_at, updated_at
		FROM sizes WHERE id = $1 AND product_id = $2`
	var s entity.Size
	err := r.q.QueryRow(context.Background(), query, id, productID).Scan(
		&s.ID, &s.ProductID, &s.Label, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get size by product: %w", err)
	}
	return &s, nil
}

// ListByProduct lista las tallas de un producto ordenadas por etiqueta.
func (r *SizeRepo) ListByProduct(productID string) ([]*entity.Size, error) {
	query := `
		SELECT id, product_id, label, quantity, created_at, updated_at
		FROM sizes WHERE product_id = $1 ORDER BY label`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Size
	for rows.Next() {
		var s entity.Size
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Label, &s.Quantity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan size: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza la etiqueta de la talla. La cantidad solo se mueve
// con Increment/DecrementIfAvailable.
func (r *SizeRepo) Update(size *entity.Size) error {
	query := `UPDATE sizes SET label = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, size.ID, size.Label, size.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update size: %w", err)
	}
	return nil
}

// Delete elimina una talla por ID.
func (r *SizeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sizes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete size: %w", err)
	}
	return nil
}

// Increment suma qty al contador en un solo UPDATE atómico.
func (r *SizeRepo) Increment(id string, qty int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sizes SET quantity = quantity + $2, updated_at = now() WHERE id = $1`,
		id, qty,
	)
	if err != nil {
		return fmt.Errorf("increment size: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementIfAvailable resta qty solo si el contador alcanza. El WHERE
// quantity >= qty hace la verificación y la resta en el mismo UPDATE:
// dos operaciones concurrentes sobre la última unidad no pueden pasar ambas.
func (r *SizeRepo) DecrementIfAvailable(id string, qty int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sizes SET quantity = quantity - $2, updated_at = now() WHERE id = $1 AND quantity >= $2`,
		id, qty,
	)
	if err != nil {
		return false, fmt.Errorf("decrement size: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
