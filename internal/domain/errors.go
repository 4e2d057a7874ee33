package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Errores del motor de inventario.
	ErrInvalidReference  = errors.New("referencia inválida o inactiva")
	ErrEmptyOrder        = errors.New("debe incluir al menos un producto")
	ErrInvalidLineItem   = errors.New("línea de detalle inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNotVoidable       = errors.New("no válida para anular")
	ErrInvalidReturn     = errors.New("devolución inválida")
)

// LineItemError identifica qué línea de una compra/venta falló y por qué.
// Envuelve ErrInvalidLineItem (usable con errors.Is).
type LineItemError struct {
	Index     int    // posición de la línea (base 0)
	ProductID string // producto referenciado, si se conoce
	Reason    string // causa legible: cantidad, precio, talla, etc.
}

func (e *LineItemError) Error() string {
	if e.ProductID != "" {
		return fmt.Sprintf("línea %d (producto %s): %s", e.Index, e.ProductID, e.Reason)
	}
	return fmt.Sprintf("línea %d: %s", e.Index, e.Reason)
}

func (e *LineItemError) Unwrap() error { return ErrInvalidLineItem }

// StockError indica stock insuficiente para un producto, con la cantidad disponible.
// Envuelve ErrInsufficientStock.
type StockError struct {
	ProductName string
	Available   int64
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s. Disponible: %d", e.ProductName, e.Available)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }

// ReturnError detalla por qué una devolución no es válida. Envuelve ErrInvalidReturn.
type ReturnError struct {
	Reason string
}

func (e *ReturnError) Error() string { return "devolución inválida: " + e.Reason }

func (e *ReturnError) Unwrap() error { return ErrInvalidReturn }
