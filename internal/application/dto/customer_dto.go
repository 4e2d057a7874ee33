package dto

import "time"

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=200"`
	Document string `json:"document" validate:"required,min=5,max=20"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
	Email    string `json:"email" validate:"omitempty,email"`
	Address  string `json:"address" validate:"omitempty,max=300"`
}

// UpdateCustomerRequest actualización de cliente.
type UpdateCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=200"`
	Document string `json:"document" validate:"required,min=5,max=20"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
	Email    string `json:"email" validate:"omitempty,email"`
	Address  string `json:"address" validate:"omitempty,max=300"`
	Active   bool   `json:"active"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
