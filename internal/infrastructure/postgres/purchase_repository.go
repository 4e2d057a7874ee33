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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para compras.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, supplier_id, date, total, payment_method, active, void_reason, voided_at, created_at`

// Create persiste la cabecera de una compra.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.SupplierID, purchase.Date, purchase.Total, purchase.PaymentMethod,
		purchase.Active, purchase.VoidReason, purchase.VoidedAt, purchase.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de compra.
func (r *PurchaseRepo) CreateDetail(detail *entity.PurchaseDetail) error {
	query := `
		INSERT INTO purchase_details (id, purchase_id, product_id, size_id, quantity, purchase_price, sale_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.PurchaseID, detail.ProductID, detail.SizeID, detail.Quantity,
		detail.PurchasePrice, detail.SalePrice, detail.Subtotal,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert purchase detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una compra.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	p, err := scanPurchase(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return p, nil
}

// GetDetails obtiene las líneas de una compra.
func (r *PurchaseRepo) GetDetails(purchaseID string) ([]*entity.PurchaseDetail, error) {
	query := `
		SELECT id, purchase_id, product_id, size_id, quantity, purchase_price, sale_price, subtotal
		FROM purchase_details WHERE purchase_id = $1`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("get purchase details: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseDetail
	for rows.Next() {
		var d entity.PurchaseDetail
		if err := rows.Scan(&d.ID, &d.PurchaseID, &d.ProductID, &d.SizeID, &d.Quantity,
			&d.PurchasePrice, &d.SalePrice, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan purchase detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// SetVoided marca la compra como anulada con motivo y fecha. Nunca borra filas.
func (r *PurchaseRepo) SetVoided(id, reason string, at time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE purchases SET active = false, void_reason = $2, voided_at = $3 WHERE id = $1`,
		id, reason, at,
	)
	if err != nil {
		return fmt.Errorf("void purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista cabeceras de compras con filtros y paginación.
func (r *PurchaseRepo) List(filter repository.PurchaseFilter) ([]*entity.Purchase, int, error) {
	where, args := purchaseWhere(filter)

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM purchases`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count purchases: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT `+purchaseColumns+` FROM purchases%s ORDER BY date DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Stats agrega conteos y total invertido (solo compras activas).
func (r *PurchaseRepo) Stats() (*repository.PurchaseStats, error) {
	query := `
		SELECT count(*),
		       count(*) FILTER (WHERE active),
		       count(*) FILTER (WHERE NOT active),
		       COALESCE(sum(total) FILTER (WHERE active), 0)
		FROM purchases`
	var s repository.PurchaseStats
	if err := r.q.QueryRow(context.Background(), query).Scan(&s.Total, &s.Active, &s.Voided, &s.Invested); err != nil {
		return nil, fmt.Errorf("purchase stats: %w", err)
	}
	return &s, nil
}

func purchaseWhere(filter repository.PurchaseFilter) (string, []any) {
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
	if filter.SupplierID != "" {
		add("supplier_id = $%d", filter.SupplierID)
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

func scanPurchase(row pgx.Row) (*entity.Purchase, error) {
	var p entity.Purchase
	err := row.Scan(
		&p.ID, &p.SupplierID, &p.Date, &p.Total, &p.PaymentMethod,
		&p.Active, &p.VoidReason, &p.VoidedAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
