// Package analytics implementa o painel: indicadores e agregações de
// movimentação. Remote-first; com a API fora do ar os números são calculados
// a partir do espelho local (eventual-consistente com o backend).
package analytics

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/lubcarv/gestor-estoque/internal/application/dto"
	"github.com/lubcarv/gestor-estoque/internal/application/offline"
	"github.com/lubcarv/gestor-estoque/internal/domain"
	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
)

// DashboardUseCase indicadores e séries do painel.
type DashboardUseCase struct {
	coord *offline.Coordinator
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(coord *offline.Coordinator) *DashboardUseCase {
	return &DashboardUseCase{coord: coord}
}

func (uc *DashboardUseCase) products() ([]entity.Product, error) {
	items, err := uc.coord.Cache().GetAll(localcache.EntityProducts)
	if err != nil {
		return nil, err
	}
	var out []entity.Product
	err = localcache.DecodeAll(items, &out)
	return out, err
}

func (uc *DashboardUseCase) movements() ([]entity.StockMovement, error) {
	items, err := uc.coord.Cache().GetAll(localcache.EntityMovements)
	if err != nil {
		return nil, err
	}
	var out []entity.StockMovement
	err = localcache.DecodeAll(items, &out)
	return out, err
}

// inPeriod aceita a movimentação quando mês/ano não foram informados ou
// quando o timestamp cai no período.
func inPeriod(m entity.StockMovement, month, year int) bool {
	if month == 0 && year == 0 {
		return true
	}
	if m.Timestamp == nil {
		return false
	}
	t := *m.Timestamp
	if year != 0 && t.Year() != year {
		return false
	}
	if month != 0 && int(t.Month()) != month {
		return false
	}
	return true
}

// KPIs devolve os indicadores do painel.
func (uc *DashboardUseCase) KPIs(ctx context.Context, month, year int) (*dto.KPIs, error) {
	remote, err := uc.coord.API().DashboardKPIs(ctx, month, year)
	if err == nil {
		return remote, nil
	}
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		return nil, err
	}

	products, err := uc.products()
	if err != nil {
		return nil, err
	}
	var catItems []entity.Category
	if items, err := uc.coord.Cache().GetAll(localcache.EntityCategories); err == nil {
		_ = localcache.DecodeAll(items, &catItems)
	}
	var supItems []entity.Supplier
	if items, err := uc.coord.Cache().GetAll(localcache.EntitySuppliers); err == nil {
		_ = localcache.DecodeAll(items, &supItems)
	}

	kpis := &dto.KPIs{TotalProducts: len(products)}
	for _, c := range catItems {
		if c.Active {
			kpis.TotalCategories++
		}
	}
	for _, s := range supItems {
		if s.Active {
			kpis.TotalSuppliers++
		}
	}
	for _, p := range products {
		if p.MinQuantity != nil && p.CurrentStock <= *p.MinQuantity {
			kpis.LowStockProducts++
		}
	}
	return kpis, nil
}

// salesByProduct soma as saídas aceitas por produto no período.
func (uc *DashboardUseCase) salesByProduct(month, year int) ([]dto.ProductSales, error) {
	movements, err := uc.movements()
	if err != nil {
		return nil, err
	}
	products, err := uc.products()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	totals := map[int64]int{}
	for _, m := range movements {
		if m.Type == entity.MovementTypeOut && inPeriod(m, month, year) {
			totals[m.ProductID] += m.Quantity
		}
	}

	out := make([]dto.ProductSales, 0, len(totals))
	for id, qty := range totals {
		name, ok := names[id]
		if !ok {
			name = "Produto não encontrado"
		}
		out = append(out, dto.ProductSales{ProductID: id, Name: name, Quantity: qty})
	}
	return out, nil
}

// TopSellers devolve os produtos com maior saída no período.
func (uc *DashboardUseCase) TopSellers(ctx context.Context, month, year, limit int) ([]dto.ProductSales, error) {
	remote, err := uc.coord.API().TopSellers(ctx, month, year, limit)
	if err == nil {
		return remote, nil
	}
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		return nil, err
	}

	sales, err := uc.salesByProduct(month, year)
	if err != nil {
		return nil, err
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].Quantity > sales[j].Quantity })
	if len(sales) > limit {
		sales = sales[:limit]
	}
	return sales, nil
}

// BottomSellers devolve os produtos com menor saída no período.
func (uc *DashboardUseCase) BottomSellers(ctx context.Context, month, year, limit int) ([]dto.ProductSales, error) {
	remote, err := uc.coord.API().BottomSellers(ctx, month, year, limit)
	if err == nil {
		return remote, nil
	}
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		return nil, err
	}

	sales, err := uc.salesByProduct(month, year)
	if err != nil {
		return nil, err
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].Quantity < sales[j].Quantity })
	if len(sales) > limit {
		sales = sales[:limit]
	}
	return sales, nil
}

// CategoriesSold devolve a quantidade vendida por categoria no período.
func (uc *DashboardUseCase) CategoriesSold(ctx context.Context, month, year int) ([]dto.CategorySales, error) {
	remote, err := uc.coord.API().CategoriesSold(ctx, month, year)
	if err == nil {
		return remote, nil
	}
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		return nil, err
	}

	movements, err := uc.movements()
	if err != nil {
		return nil, err
	}
	products, err := uc.products()
	if err != nil {
		return nil, err
	}
	var categories []entity.Category
	if items, err := uc.coord.Cache().GetAll(localcache.EntityCategories); err == nil {
		_ = localcache.DecodeAll(items, &categories)
	}

	categoryOf := make(map[int64]int64, len(products))
	for _, p := range products {
		categoryOf[p.ID] = p.CategoryID
	}
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	totals := map[int64]int{}
	for _, m := range movements {
		if m.Type == entity.MovementTypeOut && inPeriod(m, month, year) {
			totals[categoryOf[m.ProductID]] += m.Quantity
		}
	}

	out := make([]dto.CategorySales, 0, len(totals))
	for id, qty := range totals {
		name, ok := names[id]
		if !ok {
			name = "Sem categoria"
		}
		out = append(out, dto.CategorySales{Category: name, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	return out, nil
}

// MovementsInPeriod agrega entradas e saídas por dia do período.
func (uc *DashboardUseCase) MovementsInPeriod(ctx context.Context, month, year int) ([]dto.DailyMovements, error) {
	remote, err := uc.coord.API().MovementsInPeriod(ctx, month, year)
	if err == nil {
		return remote, nil
	}
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		return nil, err
	}

	movements, err := uc.movements()
	if err != nil {
		return nil, err
	}
	byDay := map[string]*dto.DailyMovements{}
	for _, m := range movements {
		if m.Timestamp == nil || !inPeriod(m, month, year) {
			continue
		}
		day := m.Timestamp.Format(time.DateOnly)
		agg, ok := byDay[day]
		if !ok {
			agg = &dto.DailyMovements{Date: day}
			byDay[day] = agg
		}
		if m.Type == entity.MovementTypeIn {
			agg.Inbound += m.Quantity
		} else {
			agg.Outbound += m.Quantity
		}
	}

	out := make([]dto.DailyMovements, 0, len(byDay))
	for _, agg := range byDay {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// RecentMovements devolve as últimas movimentações (mais recentes primeiro).
func (uc *DashboardUseCase) RecentMovements(ctx context.Context, limit int) ([]entity.StockMovement, error) {
	remote, err := uc.coord.API().RecentMovements(ctx, limit)
	if err == nil {
		return remote, nil
	}
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		return nil, err
	}

	movements, err := uc.movements()
	if err != nil {
		return nil, err
	}
	sort.Slice(movements, func(i, j int) bool {
		ti, tj := movements[i].Timestamp, movements[j].Timestamp
		if ti == nil || tj == nil {
			return tj == nil && ti != nil
		}
		return ti.After(*tj)
	})
	if len(movements) > limit {
		movements = movements[:limit]
	}
	return movements, nil
}
