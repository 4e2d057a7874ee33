package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-ropa/internal/application/dto"
	"github.com/tu-usuario/tienda-ropa/internal/application/ledger"
	"github.com/tu-usuario/tienda-ropa/internal/application/usecase"
)

// PurchaseHandler maneja compras: registro y anulación van al motor de
// inventario; listados y estadísticas al lado de lectura.
type PurchaseHandler struct {
	ledger *ledger.StockLedger
	query  *usecase.PurchaseQueryUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(l *ledger.StockLedger, query *usecase.PurchaseQueryUseCase) *PurchaseHandler {
	return &PurchaseHandler{ledger: l, query: query}
}

// Create godoc
// @Summary      Registrar compra (ingresa stock)
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Compra con sus líneas"
// @Success      201   {object}  dto.PurchaseCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	lines := make([]ledger.PurchaseLineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, ledger.PurchaseLineInput{
			ProductID:     l.ProductID,
			SizeID:        l.SizeID,
			Quantity:      l.Quantity,
			PurchasePrice: l.PurchasePrice,
			SalePrice:     l.SalePrice,
		})
	}
	result, err := h.ledger.RecordPurchase(c.Context(), ledger.RecordPurchaseInput{
		SupplierID:    in.SupplierID,
		PaymentMethod: in.PaymentMethod,
		Lines:         lines,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PurchaseCreatedResponse{
		PurchaseID: result.PurchaseID,
		Total:      result.Total,
	})
}

// Void godoc
// @Summary      Anular compra (revierte el stock que ingresó)
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la compra"
// @Param        body  body  dto.VoidPurchaseRequest  true  "Motivo de anulación"
// @Success      200   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/void [post]
func (h *PurchaseHandler) Void(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.VoidPurchaseRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	if err := h.ledger.VoidPurchase(c.Context(), id, in.Reason); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "compra anulada"})
}

// GetByID godoc
// @Summary      Obtener compra con sus detalles
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.query.GetByID(id)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Param        supplier_id  query  string  false  "Filtrar por proveedor"
// @Param        active       query  bool    false  "Filtrar por estado"
// @Param        from         query  string  false  "Desde (RFC 3339)"
// @Param        to           query  string  false  "Hasta (RFC 3339)"
// @Success      200  {object}  dto.PurchaseListResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	filter := usecase.PurchaseListFilter{
		SupplierID: c.Query("supplier_id"),
		Active:     queryBool(c, "active"),
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

// Stats godoc
// @Summary      Estadísticas de compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PurchaseStatsResponse
// @Router       /api/purchases/stats [get]
func (h *PurchaseHandler) Stats(c *fiber.Ctx) error {
	out, err := h.query.Stats()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// queryBool parsea un query param booleano opcional (nil si no viene).
func queryBool(c *fiber.Ctx, key string) *bool {
	v := c.Query(key)
	switch v {
	case "true", "1":
		b := true
		return &b
	case "false", "0":
		b := false
		return &b
	}
	return nil
}

// queryTime parsea un query param RFC 3339 opcional (nil si no viene o es inválido).
func queryTime(c *fiber.Ctx, key string) *time.Time {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil
	}
	return &t
}
