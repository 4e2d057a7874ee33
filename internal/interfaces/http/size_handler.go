package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/application/usecase"
)

// SizeHandler maneja las tallas de los productos (protegido).
type SizeHandler struct {
	uc *usecase.SizeUseCase
}

// NewSizeHandler construye el handler.
func NewSizeHandler(uc *usecase.SizeUseCase) *SizeHandler {
	return &SizeHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar talla a un producto
// @Tags         sizes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSizeRequest  true  "Datos de la talla"
// @Success      201   {object}  dto.SizeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sizes [post]
func (h *SizeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSizeRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProduct godoc
// @Summary      Listar tallas de un producto
// @Tags         sizes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}  dto.SizeResponse
// @Router       /api/products/{id}/sizes [get]
func (h *SizeHandler) ListByProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	out, err := h.uc.ListByProduct(productID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Cambiar etiqueta de una talla
// @Tags         sizes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la talla"
// @Param        body  body  dto.UpdateSizeRequest  true  "Nueva etiqueta"
// @Success      200   {object}  dto.SizeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sizes/{id} [put]
func (h *SizeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateSizeRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "talla no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una talla (solo con stock en cero)
// @Tags         sizes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la talla"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sizes/{id} [delete]
func (h *SizeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "talla eliminada"})
}
