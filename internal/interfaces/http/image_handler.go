package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/application/usecase"
)

// ImageHandler maneja la galería de imágenes de productos (protegido).
type ImageHandler struct {
	uc *usecase.ImageUseCase
}

// NewImageHandler construye el handler.
func NewImageHandler(uc *usecase.ImageUseCase) *ImageHandler {
	return &ImageHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar imagen a un producto
// @Tags         images
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateImageRequest  true  "Datos de la imagen"
// @Success      201   {object}  dto.ImageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/images [post]
func (h *ImageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateImageRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateBatch godoc
// @Summary      Agregar varias imágenes a un producto
// @Tags         images
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateImageBatchRequest  true  "Producto y URLs"
// @Success      201   {array}   dto.ImageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/images/batch [post]
func (h *ImageHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.CreateImageBatchRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateBatch(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener imagen por ID
// @Tags         images
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la imagen"
// @Success      200  {object}  dto.ImageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/images/{id} [get]
func (h *ImageHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "imagen no encontrada"})
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Listar imágenes de un producto
// @Tags         images
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ImageListResponse
// @Router       /api/products/{id}/images [get]
func (h *ImageHandler) ListByProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	out, err := h.uc.ListByProduct(productID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar URL de una imagen
// @Tags         images
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la imagen"
// @Param        body  body  dto.UpdateImageRequest  true  "Nueva URL"
// @Success      200   {object}  dto.ImageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/images/{id} [put]
func (h *ImageHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateImageRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "imagen no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una imagen
// @Tags         images
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la imagen"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/images/{id} [delete]
func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "imagen eliminada"})
}
