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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, customer_id, date, total, status, payment_method, created_at`

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.Date, sale.Total, sale.Status, sale.PaymentMethod, sale.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de venta.
func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	query := `
		INSERT INTO sale_details (id, sale_id, product_id, size_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.SaleID, detail.ProductID, detail.SizeID, detail.Quantity,
		detail.UnitPrice, detail.Subtotal,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert sale detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetDetails obtiene las líneas de una venta.
func (r *SaleRepo) GetDetails(saleID string) ([]*entity.SaleDetail, error) {
	query := `
		SELECT id, sale_id, product_id, size_id, quantity, unit_price, subtotal
		FROM sale_details WHERE sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("get sale details: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.ProductID, &d.SizeID, &d.Quantity,
			&d.UnitPrice, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// GetDetailByProduct devuelve la línea de la venta para ese producto
// (nil si el producto no hizo parte de la venta). Con LIMIT 2 basta para
// detectar el caso ambiguo: el mismo producto vendido en varias tallas.
func (r *SaleRepo) GetDetailByProduct(saleID, productID string) (*entity.SaleDetail, error) {
	query := `
		SELECT id, sale_id, product_id, size_id, quantity, unit_price, subtotal
		FROM sale_details WHERE sale_id = $1 AND product_id = $2 LIMIT 2`
	rows, err := r.q.Query(context.Background(), query, saleID, productID)
	if err != nil {
		return nil, fmt.Errorf("get sale detail by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.ProductID, &d.SizeID, &d.Quantity,
			&d.UnitPrice, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(list) {
	case 0:
		return nil, nil
	case 1:
		return list[0], nil
	default:
		return nil, &domain.ReturnError{Reason: "la venta registra el producto en más de una talla; la línea a devolver es ambigua"}
	}
}

// UpdateStatus cambia el estado de la venta.
func (r *SaleRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista cabeceras de ventas con filtros y paginación.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, int, error) {
	where, args := saleWhere(filter)

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM sales`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT `+saleColumns+` FROM sales%s ORDER BY date DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

// ListByCustomer ventas recientes de un cliente.
func (r *SaleRepo) ListByCustomer(customerID string, limit int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE customer_id = $1 ORDER BY date DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sales by customer: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Stats agrega conteos e ingresos (solo ventas completadas).
func (r *SaleRepo) Stats() (*repository.SaleStats, error) {
	query := `
		SELECT count(*),
		       count(*) FILTER (WHERE status = $1),
		       count(*) FILTER (WHERE status = $2),
		       COALESCE(sum(total) FILTER (WHERE status = $1), 0)
		FROM sales`
	var s repository.SaleStats
	if err := r.q.QueryRow(context.Background(), query,
		entity.SaleStatusCompleted, entity.SaleStatusVoided).Scan(&s.Total, &s.Completed, &s.Voided, &s.Income); err != nil {
		return nil, fmt.Errorf("sale stats: %w", err)
	}
	return &s, nil
}

func saleWhere(filter repository.SaleFilter) (string, []any) {
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
	if filter.CustomerID != "" {
		add("customer_id = $%d", filter.CustomerID)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.From != nil {
		add("date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("date <= $%d", *filter.To)
	}
	return where, args
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.CustomerID, &s.Date, &s.Total, &s.Status, &s.PaymentMethod, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
