package dto

import "time"

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Name           string `json:"name" validate:"required,min=3,max=200"`
	DocumentNumber string `json:"document_number" validate:"omitempty,min=5,max=20"`
	Phone          string `json:"phone" validate:"omitempty,min=7,max=20"`
	Email          string `json:"email" validate:"omitempty,email"`
	Address        string `json:"address" validate:"omitempty,max=300"`
}

// UpdateSupplierRequest actualización de proveedor.
type UpdateSupplierRequest struct {
	Name           string `json:"name" validate:"required,min=3,max=200"`
	DocumentNumber string `json:"document_number" validate:"omitempty,min=5,max=20"`
	Phone          string `json:"phone" validate:"omitempty,min=7,max=20"`
	Email          string `json:"email" validate:"omitempty,email"`
	Address        string `json:"address" validate:"omitempty,max=300"`
	Active         bool   `json:"active"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DocumentNumber string    `json:"document_number,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	Address        string    `json:"address,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// SupplierListResponse listado paginado de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
