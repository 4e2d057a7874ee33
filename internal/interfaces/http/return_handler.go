package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/application/ledger"
	"github.com/tu-usuario/tienda-ropa/internal/application/usecase"
)

// ReturnHandler maneja devoluciones: registro y cambio de estado van al
// motor de inventario; listados y estadísticas al lado de lectura.
type ReturnHandler struct {
	ledger *ledger.StockLedger
	query  *usecase.ReturnQueryUseCase
}

// NewReturnHandler construye el handler.
func NewReturnHandler(l *ledger.StockLedger, query *usecase.ReturnQueryUseCase) *ReturnHandler {
	return &ReturnHandler{ledger: l, query: query}
}

// Create godoc
// @Summary      Registrar devolución (reingresa stock a la talla original)
// @Tags         returns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReturnRequest  true  "Datos de la devolución"
// @Success      201   {object}  dto.ReturnCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/returns [post]
func (h *ReturnHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReturnRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	result, err := h.ledger.RecordReturn(c.Context(), ledger.RecordReturnInput{
		SaleID:    in.SaleID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReturnCreatedResponse{
		ReturnID: result.ReturnID,
		Amount:   result.Amount,
	})
}

// Toggle godoc
// @Summary      Alternar estado de una devolución (aplica el delta de stock simétrico)
// @Tags         returns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la devolución"
// @Success      200  {object}  dto.ReturnToggleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/returns/{id}/toggle [post]
func (h *ReturnHandler) Toggle(c *fiber.Ctx) error {
	id := c.Params("id")
	active, err := h.ledger.ToggleReturnStatus(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ReturnToggleResponse{ReturnID: id, Active: active})
}

// GetByID godoc
// @Summary      Obtener devolución por ID
// @Tags         returns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la devolución"
// @Success      200  {object}  dto.ReturnResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/returns/{id} [get]
func (h *ReturnHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.query.GetByID(id)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "devolución no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar devoluciones
// @Tags         returns
// @Security     Bearer
// @Produce      json
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Param        sale_id     query  string  false  "Filtrar por venta"
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        active      query  bool    false  "Filtrar por estado"
// @Success      200  {object}  dto.ReturnListResponse
// @Router       /api/returns [get]
func (h *ReturnHandler) List(c *fiber.Ctx) error {
	filter := usecase.ReturnListFilter{
		SaleID:    c.Query("sale_id"),
		ProductID: c.Query("product_id"),
		Active:    queryBool(c, "active"),
		From:      queryTime(c, "from"),
		To:        queryTime(c, "to"),
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

// ListBySale godoc
// @Summary      Devoluciones de una venta
// @Tags         returns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {array}  dto.ReturnResponse
// @Router       /api/sales/{id}/returns [get]
func (h *ReturnHandler) ListBySale(c *fiber.Ctx) error {
	out, err := h.query.ListBySale(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de devoluciones
// @Tags         returns
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReturnStatsResponse
// @Router       /api/returns/stats [get]
func (h *ReturnHandler) Stats(c *fiber.Ctx) error {
	out, err := h.query.Stats()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
