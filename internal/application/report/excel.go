// Package report gera os relatórios exportados (planilha e PDF) a partir do
// snapshot local de produtos e movimentações.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lubcarv/gestor-estoque/internal/application/offline"
	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
)

// Exporter gera relatórios do inventário.
type Exporter struct {
	coord *offline.Coordinator
}

// NewExporter constrói o exportador.
func NewExporter(coord *offline.Coordinator) *Exporter {
	return &Exporter{coord: coord}
}

func (e *Exporter) snapshot() ([]entity.Product, []entity.Category, []entity.Supplier, []entity.StockMovement, error) {
	cache := e.coord.Cache()

	var products []entity.Product
	items, err := cache.GetAll(localcache.EntityProducts)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if err := localcache.DecodeAll(items, &products); err != nil {
		return nil, nil, nil, nil, err
	}

	var categories []entity.Category
	if items, err := cache.GetAll(localcache.EntityCategories); err == nil {
		_ = localcache.DecodeAll(items, &categories)
	}
	var suppliers []entity.Supplier
	if items, err := cache.GetAll(localcache.EntitySuppliers); err == nil {
		_ = localcache.DecodeAll(items, &suppliers)
	}
	var movements []entity.StockMovement
	if items, err := cache.GetAll(localcache.EntityMovements); err == nil {
		_ = localcache.DecodeAll(items, &movements)
	}

	return products, categories, suppliers, movements, nil
}

// InventoryExcel gera a planilha com as abas Produtos e Movimentações.
func (e *Exporter) InventoryExcel() ([]byte, error) {
	products, categories, suppliers, movements, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	catNames := make(map[int64]string, len(categories))
	for _, c := range categories {
		catNames[c.ID] = c.Name
	}
	supNames := make(map[int64]string, len(suppliers))
	for _, s := range suppliers {
		supNames[s.ID] = s.Name
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, "Produtos"); err != nil {
		return nil, fmt.Errorf("report: renomear aba: %w", err)
	}
	sheet = "Produtos"

	header := []interface{}{
		"id", "codigo", "nome", "categoria", "fornecedor",
		"preco", "unidade", "estoque_atual", "quantidade_minima", "situacao", "ativo",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("report: cabeçalho de produtos: %w", err)
	}

	row := 2
	for _, p := range products {
		min := ""
		if p.MinQuantity != nil {
			min = fmt.Sprintf("%d", *p.MinQuantity)
		}
		values := []interface{}{
			p.ID, p.Code, p.Name, catNames[p.CategoryID], supNames[p.SupplierID],
			p.Price.StringFixed(2), p.UnitMeasure, p.CurrentStock, min, p.StockStatus(), p.Active,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("report: célula de produtos: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("report: linha de produtos: %w", err)
		}
		row++
	}

	prodNames := make(map[int64]string, len(products))
	for _, p := range products {
		prodNames[p.ID] = p.Name
	}

	movSheet := "Movimentações"
	if _, err := f.NewSheet(movSheet); err != nil {
		return nil, fmt.Errorf("report: aba de movimentações: %w", err)
	}
	movHeader := []interface{}{
		"id", "produto", "tipo", "quantidade",
		"quantidade_anterior", "quantidade_atual", "usuario", "observacao", "data_hora",
	}
	if err := f.SetSheetRow(movSheet, "A1", &movHeader); err != nil {
		return nil, fmt.Errorf("report: cabeçalho de movimentações: %w", err)
	}
	row = 2
	for _, m := range movements {
		when := ""
		if m.Timestamp != nil {
			when = m.Timestamp.Format("02/01/2006 15:04")
		}
		values := []interface{}{
			m.ID, prodNames[m.ProductID], m.Type, m.Quantity,
			m.QuantityBefore, m.QuantityAfter, m.User, m.Note, when,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("report: célula de movimentações: %w", err)
		}
		if err := f.SetSheetRow(movSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("report: linha de movimentações: %w", err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("report: gravar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
