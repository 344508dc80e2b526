package validation

import (
	"strings"

	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
)

// Movement valida os campos de uma movimentação antes de qualquer mutação.
func Movement(m entity.StockMovement) []string {
	var errs []string

	if m.ProductID == 0 {
		errs = append(errs, "Produto é obrigatório")
	}
	if m.Type != entity.MovementTypeIn && m.Type != entity.MovementTypeOut {
		errs = append(errs, "Tipo de movimentação inválido")
	}
	if m.Quantity <= 0 {
		errs = append(errs, "Quantidade deve ser maior que zero")
	}
	if strings.TrimSpace(m.User) == "" {
		errs = append(errs, "Usuário responsável é obrigatório")
	}

	return errs
}
