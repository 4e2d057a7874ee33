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

var _ repository.ImageRepository = (*ImageRepo)(nil)

// ImageRepo implementación del puerto ImageRepository sobre PostgreSQL.
type ImageRepo struct {
	q Querier
}

// NewImageRepository construye el adaptador de persistencia para imágenes.
func NewImageRepository(q Querier) *ImageRepo {
	return &ImageRepo{q: q}
}

// Create persiste una imagen de la galería.
func (r *ImageRepo) Create(img *entity.ProductImage) error {
	query := `
		INSERT INTO product_images (id, product_id, url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		img.ID, img.ProductID, img.URL, img.CreatedAt, img.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert product image: %w", err)
	}
	return nil
}

// GetByID obtiene una imagen por ID.
func (r *ImageRepo) GetByID(id string) (*entity.ProductImage, error) {
	query := `
		SELECT id, product_id, url, created_at, updated_at
		FROM product_images WHERE id = $1`
	var img entity.ProductImage
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&img.ID, &img.ProductID, &img.URL, &img.CreatedAt, &img.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product image: %w", err)
	}
	return &img, nil
}

// ListByProduct lista la galería de un producto en orden de creación.
func (r *ImageRepo) ListByProduct(productID string) ([]*entity.ProductImage, error) {
	query := `
		SELECT id, product_id, url, created_at, updated_at
		FROM product_images WHERE product_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductImage
	for rows.Next() {
		var img entity.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		list = append(list, &img)
	}
	return list, rows.Err()
}

// Update reemplaza la URL de la imagen.
func (r *ImageRepo) Update(img *entity.ProductImage) error {
	query := `UPDATE product_images SET url = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, img.ID, img.URL, img.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product image: %w", err)
	}
	return nil
}

// Delete elimina una imagen por ID.
func (r *ImageRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product image: %w", err)
	}
	return nil
}
