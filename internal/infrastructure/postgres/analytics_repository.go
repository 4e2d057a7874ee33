package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
	"github.com/tu-usuario/tienda-ropa/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard.
// Siempre va contra el pool, nunca dentro de una transacción.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountEntities conteos globales en una sola consulta.
func (r *AnalyticsRepo) CountEntities() (*repository.EntityCounts, error) {
	query := `
		SELECT
			(SELECT count(*) FROM categories),
			(SELECT count(*) FROM products),
			(SELECT count(*) FROM suppliers),
			(SELECT count(*) FROM purchases),
			(SELECT count(*) FROM customers),
			(SELECT count(*) FROM sales),
			(SELECT count(*) FROM returns),
			(SELECT count(*) FROM users)`
	var c repository.EntityCounts
	err := r.q.QueryRow(context.Background(), query).Scan(
		&c.Categories, &c.Products, &c.Suppliers, &c.Purchases,
		&c.Customers, &c.Sales, &c.Returns, &c.Users,
	)
	if err != nil {
		return nil, fmt.Errorf("count entities: %w", err)
	}
	return &c, nil
}

// SalesTotalSince suma el total de ventas completadas desde la fecha.
func (r *AnalyticsRepo) SalesTotalSince(since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(sum(total), 0) FROM sales WHERE status = $1 AND date >= $2`,
		entity.SaleStatusCompleted, since,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sales total: %w", err)
	}
	return total, nil
}

// PurchasesTotalSince suma el total de compras activas desde la fecha.
func (r *AnalyticsRepo) PurchasesTotalSince(since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(sum(total), 0) FROM purchases WHERE active AND date >= $1`,
		since,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("purchases total: %w", err)
	}
	return total, nil
}

// LowStockProducts productos activos cuyo stock agregado (suma de tallas)
// está por debajo del umbral.
func (r *AnalyticsRepo) LowStockProducts(threshold int64, limit int) ([]repository.LowStockProduct, error) {
	query := `
		SELECT p.id, p.name, COALESCE(sum(s.quantity), 0) AS stock
		FROM products p
		LEFT JOIN sizes s ON s.product_id = p.id
		WHERE p.active
		GROUP BY p.id, p.name
		HAVING COALESCE(sum(s.quantity), 0) < $1
		ORDER BY stock, p.name
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("low stock products: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockProduct
	for rows.Next() {
		var p repository.LowStockProduct
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// RecentSales últimas ventas con el nombre del cliente resuelto.
func (r *AnalyticsRepo) RecentSales(limit int) ([]repository.RecentSale, error) {
	query := `
		SELECT s.id, c.name, s.date, s.total, s.status
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		ORDER BY s.date DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()
	var list []repository.RecentSale
	for rows.Next() {
		var s repository.RecentSale
		if err := rows.Scan(&s.SaleID, &s.CustomerName, &s.Date, &s.Total, &s.Status); err != nil {
			return nil, fmt.Errorf("scan recent sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// SalesByMonth serie mensual de ventas completadas de los últimos N meses.
func (r *AnalyticsRepo) SalesByMonth(months int) ([]repository.MonthTotal, error) {
	query := `
		SELECT to_char(date_trunc('month', date), 'YYYY-MM') AS month, count(*), COALESCE(sum(total), 0)
		FROM sales
		WHERE status = $1 AND date >= date_trunc('month', now()) - ($2 || ' months')::interval
		GROUP BY 1
		ORDER BY 1`
	return r.monthSeries(query, entity.SaleStatusCompleted, months)
}

// ReturnsByMonth serie mensual de devoluciones vigentes de los últimos N meses.
func (r *AnalyticsRepo) ReturnsByMonth(months int) ([]repository.MonthTotal, error) {
	query := `
		SELECT to_char(date_trunc('month', date), 'YYYY-MM') AS month, count(*), COALESCE(sum(amount), 0)
		FROM returns
		WHERE active AND date >= date_trunc('month', now()) - ($1 || ' months')::interval
		GROUP BY 1
		ORDER BY 1`
	return r.monthSeries(query, months)
}

func (r *AnalyticsRepo) monthSeries(query string, args ...any) ([]repository.MonthTotal, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("month series: %w", err)
	}
	defer rows.Close()
	var list []repository.MonthTotal
	for rows.Next() {
		var m repository.MonthTotal
		if err := rows.Scan(&m.Month, &m.Count, &m.Total); err != nil {
			return nil, fmt.Errorf("scan month total: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
