package dto

import "time"

// CreateSizeRequest alta de talla para un producto. La cantidad inicial es
// opcional; el stock posterior solo se mueve vía compras/ventas/devoluciones.
type CreateSizeRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Label     string `json:"label" validate:"required,min=1,max=10"`
	Quantity  int64  `json:"quantity" validate:"min=0"`
}

// UpdateSizeRequest cambia la etiqueta de la talla.
type UpdateSizeRequest struct {
	Label string `json:"label" validate:"required,min=1,max=10"`
}

// SizeResponse talla en respuestas.
type SizeResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Label     string    `json:"label"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
