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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, purchase_price, sale_price, on_sale, promo_price, promo_percent, image_url, category_id, active, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.PurchasePrice, product.SalePrice,
		product.OnSale, product.PromoPrice, product.PromoPercent, product.ImageURL,
		product.CategoryID, product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, purchase_price = $4, sale_price = $5, on_sale = $6,
		    promo_price = $7, promo_percent = $8, image_url = $9, category_id = $10, active = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.PurchasePrice, product.SalePrice,
		product.OnSale, product.PromoPrice, product.PromoPercent, product.ImageURL,
		product.CategoryID, product.Active, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con paginación y búsqueda por nombre (ILIKE).
func (r *ProductRepo) List(limit, offset int, search string) ([]*entity.Product, int, error) {
	where := ``
	args := []any{limit, offset}
	if search != "" {
		where = ` WHERE name ILIKE $3`
		args = append(args, "%"+search+"%")
	}
	var total int
	countQuery := `SELECT count(*) FROM products`
	if search != "" {
		if err := r.q.QueryRow(context.Background(), countQuery+` WHERE name ILIKE $1`, "%"+search+"%").Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count products: %w", err)
		}
	} else {
		if err := r.q.QueryRow(context.Background(), countQuery).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count products: %w", err)
		}
	}

	query := `SELECT ` + productColumns + ` FROM products` + where + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Delete desactiva el producto (borrado lógico): las compras y ventas
// pasadas lo siguen referenciando.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.PurchasePrice, &p.SalePrice, &p.OnSale,
		&p.PromoPrice, &p.PromoPercent, &p.ImageURL, &p.CategoryID, &p.Active,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
