package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lubcarv/gestor-estoque/internal/application/analytics"
)

// DashboardHandler expõe os indicadores do painel.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func period(c *fiber.Ctx) (int, int) {
	return c.QueryInt("mes"), c.QueryInt("ano")
}

// KPIs GET /api/dashboard/kpis.
func (h *DashboardHandler) KPIs(c *fiber.Ctx) error {
	month, year := period(c)
	out, err := h.uc.KPIs(c.Context(), month, year)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TopSellers GET /api/dashboard/top-vendidos.
func (h *DashboardHandler) TopSellers(c *fiber.Ctx) error {
	month, year := period(c)
	out, err := h.uc.TopSellers(c.Context(), month, year, c.QueryInt("limite", 5))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// BottomSellers GET /api/dashboard/menos-vendidos.
func (h *DashboardHandler) BottomSellers(c *fiber.Ctx) error {
	month, year := period(c)
	out, err := h.uc.BottomSellers(c.Context(), month, year, c.QueryInt("limite", 5))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CategoriesSold GET /api/dashboard/categorias-vendidas.
func (h *DashboardHandler) CategoriesSold(c *fiber.Ctx) error {
	month, year := period(c)
	out, err := h.uc.CategoriesSold(c.Context(), month, year)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MovementsInPeriod GET /api/dashboard/movimentacoes-periodo.
func (h *DashboardHandler) MovementsInPeriod(c *fiber.Ctx) error {
	month, year := period(c)
	out, err := h.uc.MovementsInPeriod(c.Context(), month, year)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RecentMovements GET /api/dashboard/ultimas-movimentacoes.
func (h *DashboardHandler) RecentMovements(c *fiber.Ctx) error {
	out, err := h.uc.RecentMovements(c.Context(), c.QueryInt("limite", 10))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
