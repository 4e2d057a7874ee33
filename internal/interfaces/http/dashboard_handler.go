package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-ropa/internal/application/usecase"
)

// DashboardHandler resumen y series del panel (protegido, módulo dashboard).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen general del panel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SalesByMonth godoc
// @Summary      Serie mensual de ventas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        months  query  int  false  "Meses hacia atrás"  default(12)
// @Success      200     {array}  dto.MonthTotalResponse
// @Router       /api/dashboard/sales-by-month [get]
func (h *DashboardHandler) SalesByMonth(c *fiber.Ctx) error {
	out, err := h.uc.SalesByMonth(c.QueryInt("months", 12))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ReturnsByMonth godoc
// @Summary      Serie mensual de devoluciones
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        months  query  int  false  "Meses hacia atrás"  default(12)
// @Success      200     {array}  dto.MonthTotalResponse
// @Router       /api/dashboard/returns-by-month [get]
func (h *DashboardHandler) ReturnsByMonth(c *fiber.Ctx) error {
	out, err := h.uc.ReturnsByMonth(c.QueryInt("months", 12))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
