package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lubcarv/gestor-estoque/internal/application/dto"
	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
)

func monthYearQuery(month, year int) url.Values {
	q := url.Values{}
	if month > 0 {
		q.Set("mes", strconv.Itoa(month))
	}
	if year > 0 {
		q.Set("ano", strconv.Itoa(year))
	}
	return q
}

// DashboardKPIs GET /api/dashboard/kpis?mes=&ano=.
func (c *Client) DashboardKPIs(ctx context.Context, month, year int) (*dto.KPIs, error) {
	var out dto.KPIs
	if err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/kpis", monthYearQuery(month, year), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TopSellers GET /api/dashboard/top-vendidos?mes=&ano=&limite=.
func (c *Client) TopSellers(ctx context.Context, month, year, limit int) ([]dto.ProductSales, error) {
	q := monthYearQuery(month, year)
	q.Set("limite", strconv.Itoa(limit))
	var out []dto.ProductSales
	err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/top-vendidos", q, nil, &out)
	return out, err
}

// BottomSellers GET /api/dashboard/menos-vendidos?mes=&ano=&limite=.
func (c *Client) BottomSellers(ctx context.Context, month, year, limit int) ([]dto.ProductSales, error) {
	q := monthYearQuery(month, year)
	q.Set("limite", strconv.Itoa(limit))
	var out []dto.ProductSales
	err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/menos-vendidos", q, nil, &out)
	return out, err
}

// CategoriesSold GET /api/dashboard/categorias-vendidas?mes=&ano=.
func (c *Client) CategoriesSold(ctx context.Context, month, year int) ([]dto.CategorySales, error) {
	var out []dto.CategorySales
	err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/categorias-vendidas", monthYearQuery(month, year), nil, &out)
	return out, err
}

// MovementsInPeriod GET /api/dashboard/movimentacoes-periodo?mes=&ano=.
func (c *Client) MovementsInPeriod(ctx context.Context, month, year int) ([]dto.DailyMovements, error) {
	var out []dto.DailyMovements
	err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/movimentacoes-periodo", monthYearQuery(month, year), nil, &out)
	return out, err
}

// RecentMovements GET /api/dashboard/ultimas-movimentacoes?limite=.
func (c *Client) RecentMovements(ctx context.Context, limit int) ([]entity.StockMovement, error) {
	q := url.Values{}
	q.Set("limite", strconv.Itoa(limit))
	var out []entity.StockMovement
	err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/ultimas-movimentacoes", q, nil, &out)
	return out, err
}
