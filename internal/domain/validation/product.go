package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
)

// Product valida os campos de um produto.
func Product(p entity.Product) []string {
	var errs []string

	if strings.TrimSpace(p.Code) == "" {
		errs = append(errs, "Código é obrigatório")
	}
	if len(p.Code) > 50 {
		errs = append(errs, "Código deve ter no máximo 50 caracteres")
	}
	if len(strings.TrimSpace(p.Name)) < 2 {
		errs = append(errs, "Nome é obrigatório e deve ter pelo menos 2 caracteres")
	}
	if len(p.Name) > 100 {
		errs = append(errs, "Nome deve ter no máximo 100 caracteres")
	}
	if len(p.Description) > 500 {
		errs = append(errs, "Descrição deve ter no máximo 500 caracteres")
	}
	if !p.Price.GreaterThan(decimal.Zero) {
		errs = append(errs, "Preço é obrigatório e deve ser positivo")
	}
	if strings.TrimSpace(p.UnitMeasure) == "" {
		errs = append(errs, "Unidade de medida é obrigatória")
	}
	if len(p.UnitMeasure) > 10 {
		errs = append(errs, "Unidade de medida deve ter no máximo 10 caracteres")
	}
	if len(p.Dimensions) > 100 {
		errs = append(errs, "Dimensões deve ter no máximo 100 caracteres")
	}
	if len(p.Color) > 30 {
		errs = append(errs, "Cor deve ter no máximo 30 caracteres")
	}
	if p.MinQuantity != nil && *p.MinQuantity <= 0 {
		errs = append(errs, "Quantidade mínima deve ser maior que zero")
	}
	if p.IdealQuantity != nil && *p.IdealQuantity < 0 {
		errs = append(errs, "Quantidade ideal deve ser zero ou positiva")
	}
	if p.MaxQuantity != nil && *p.MaxQuantity < 0 {
		errs = append(errs, "Quantidade máxima deve ser zero ou positiva")
	}
	if p.CategoryID == 0 {
		errs = append(errs, "Categoria é obrigatória")
	}
	if p.SupplierID == 0 {
		errs = append(errs, "Fornecedor é obrigatório")
	}

	return errs
}

// ProductCodeTaken verifica duplicidade de código entre ativos e inativos.
func ProductCodeTaken(snapshot []entity.Product, code string, excludeID int64) bool {
	for _, p := range snapshot {
		if p.ID != excludeID && strings.EqualFold(p.Code, code) {
			return true
		}
	}
	return false
}

// ProductNameInCategoryTaken verifica duplicidade do par (nome, categoria).
func ProductNameInCategoryTaken(snapshot []entity.Product, name string, categoryID, excludeID int64) bool {
	for _, p := range snapshot {
		if p.ID != excludeID && p.CategoryID == categoryID && strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}
