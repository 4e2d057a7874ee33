package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/application/ledger"
	"github.com/tu-usuario/tienda-ropa/internal/application/usecase"
)

// SaleHandler maneja ventas: registro y anulación van al motor de
// inventario; listados, estadísticas y comprobante al lado de lectura.
type SaleHandler struct {
	ledger *ledger.StockLedger
	query  *usecase.SaleQueryUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(l *ledger.StockLedger, query *usecase.SaleQueryUseCase) *SaleHandler {
	return &SaleHandler{ledger: l, query: query}
}

// Create godoc
// @Summary      Registrar venta (descuenta stock)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta con sus líneas"
// @Success      201   {object}  dto.SaleCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	lines := make([]ledger.SaleLineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, ledger.SaleLineInput{
			ProductID: l.ProductID,
			SizeID:    l.SizeID,
			Quantity:  l.Quantity,
		})
	}
	result, err := h.ledger.RecordSale(c.Context(), ledger.RecordSaleInput{
		CustomerID:    in.CustomerID,
		PaymentMethod: in.PaymentMethod,
		Lines:         lines,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SaleCreatedResponse{
		SaleID: result.SaleID,
		Total:  result.Total,
	})
}

// Void godoc
// @Summary      Anular venta (devuelve lo vendido al inventario)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/void [post]
func (h *SaleHandler) Void(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.ledger.VoidSale(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "venta anulada"})
}

// GetByID godoc
// @Summary      Obtener venta con sus detalles
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.query.GetByID(id)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Param        customer_id  query  string  false  "Filtrar por cliente"
// @Param        status       query  string  false  "Filtrar por estado"
// @Param        from         query  string  false  "Desde (RFC 3339)"
// @Param        to           query  string  false  "Hasta (RFC 3339)"
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	filter := usecase.SaleListFilter{
		CustomerID: c.Query("customer_id"),
		Status:     c.Query("status"),
		From:       queryTime(c, "from"),
		To:         queryTime(c, "to"),
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.query.List(filter, page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ByCustomer godoc
// @Summary      Últimas ventas de un cliente
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del cliente"
// @Param        limit  query  int     false  "Máximo de ventas"  default(10)
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/customers/{id}/sales [get]
func (h *SaleHandler) ByCustomer(c *fiber.Ctx) error {
	out, err := h.query.RecentByCustomer(c.Params("id"), c.QueryInt("limit", 10))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SaleStatsResponse
// @Router       /api/sales/stats [get]
func (h *SaleHandler) Stats(c *fiber.Ctx) error {
	out, err := h.query.Stats()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante de venta en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.query.Receipt(id)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="venta-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
