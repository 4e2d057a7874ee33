package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-ropa/internal/domain"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

// ReturnRepo implementación del puerto ReturnRepository sobre PostgreSQL (usable con pool o tx).
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador de persistencia para devoluciones.
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

const returnColumns = `id, sale_id, product_id, size_id, quantity, amount, reason, date, active, created_at, updated_at`

// Create persiste una devolución.
func (r *ReturnRepo) Create(ret *entity.Return) error {
	query := `
		INSERT INTO returns (` + returnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.SaleID, ret.ProductID, ret.SizeID, ret.Quantity, ret.Amount,
		ret.Reason, ret.Date, ret.Active, ret.CreatedAt, ret.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert return: %w", err)
	}
	return nil
}

// GetByID obtiene una devolución por ID.
func (r *ReturnRepo) GetByID(id string) (*entity.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE id = $1`
	ret, err := scanReturn(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return: %w", err)
	}
	return ret, nil
}

// SetActive cambia el estado vigente/anulada de la devolución.
func (r *ReturnRepo) SetActive(id string, active bool, at time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE returns SET active = $2, updated_at = $3 WHERE id = $1`,
		id, active, at,
	)
	if err != nil {
		return fmt.Errorf("set return active: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista devoluciones con filtros y paginación.
func (r *ReturnRepo) List(filter repository.ReturnFilter) ([]*entity.Return, int, error) {
	where, args := returnWhere(filter)

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM returns`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count returns: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT `+returnColumns+` FROM returns%s ORDER BY date DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list returns: %w", err)
	}
	defer rows.Close()
	list, err := collectReturns(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListBySale devoluciones de una venta.
func (r *ReturnRepo) ListBySale(saleID string) ([]*entity.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE sale_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list returns by sale: %w", err)
	}
	defer rows.Close()
	return collectReturns(rows)
}

// Stats agrega conteos y monto reembolsado (solo devoluciones vigentes).
func (r *ReturnRepo) Stats() (*repository.ReturnStats, error) {
	query := `
		SELECT count(*),
		       count(*) FILTER (WHERE active),
		       count(*) FILTER (WHERE NOT active),
		       COALESCE(sum(amount) FILTER (WHERE active), 0)
		FROM returns`
	var s repository.ReturnStats
	if err := r.q.QueryRow(context.Background(), query).Scan(&s.Total, &s.Active, &s.Voided, &s.Refunded); err != nil {
		return nil, fmt.Errorf("return stats: %w", err)
	}
	return &s, nil
}

func returnWhere(filter repository.ReturnFilter) (string, []any) {
	where := ""
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}
	if filter.SaleID != "" {
		add("sale_id = $%d", filter.SaleID)
	}
	if filter.ProductID != "" {
		add("product_id = $%d", filter.ProductID)
	}
	if filter.Active != nil {
		add("active = $%d", *filter.Active)
	}
	if filter.From != nil {
		add("date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("date <= $%d", *filter.To)
	}
	return where, args
}

func collectReturns(rows pgx.Rows) ([]*entity.Return, error) {
	var list []*entity.Return
	for rows.Next() {
		ret, err := scanReturn(rows)
		if err != nil {
			return nil, fmt.Errorf("scan return: %w", err)
		}
		list = append(list, ret)
	}
	return list, rows.Err()
}

func scanReturn(row pgx.Row) (*entity.Return, error) {
	var ret entity.Return
	err := row.Scan(
		&ret.ID, &ret.SaleID, &ret.ProductID, &ret.SizeID, &ret.Quantity, &ret.Amount,
		&ret.Reason, &ret.Date, &ret.Active, &ret.CreatedAt, &ret.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ret, nil
}
