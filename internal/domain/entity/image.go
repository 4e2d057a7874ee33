package entity

import "time"

// ProductImage imagen de la galería de un producto. El producto conserva
// además su imagen principal (Product.ImageURL).
type ProductImage struct {
	ID        string
	ProductID string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
