package dto

import "time"

// CreateImageRequest agrega una imagen a la galería de un producto.
type CreateImageRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	URL       string `json:"url" validate:"required,url"`
}

// CreateImageBatchRequest agrega varias imágenes de una sola vez.
type CreateImageBatchRequest struct {
	ProductID string   `json:"product_id" validate:"required,uuid4"`
	URLs      []string `json:"urls" validate:"required,min=1,dive,url"`
}

// UpdateImageRequest reemplaza la URL de la imagen.
type UpdateImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ImageResponse imagen en respuestas.
type ImageResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// ImageListResponse galería de un producto.
type ImageListResponse struct {
	Items []ImageResponse `json:"items"`
}
