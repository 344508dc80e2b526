// Package validation contém os validadores puros de domínio: recebem o
// candidato (e, para checagens de duplicidade, um snapshot do cache local) e
// devolvem a lista ordenada de violações legíveis. Lista vazia = válido.
// As checagens de unicidade comparam strings sem diferenciar maiúsculas e são
// eventualmente consistentes com o backend.
package validation

import (
	"strings"

	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
)

// Category valida os campos de uma categoria.
func Category(c entity.Category) []string {
	var errs []string

	if len(strings.TrimSpace(c.Name)) < 2 {
		errs = append(errs, "Nome é obrigatório e deve ter pelo menos 2 caracteres")
	}
	if len(c.Name) > 50 {
		errs = append(errs, "Nome deve ter no máximo 50 caracteres")
	}
	if len(c.Description) > 200 {
		errs = append(errs, "Descrição deve ter no máximo 200 caracteres")
	}

	return errs
}

// CategoryNameTaken verifica duplicidade de nome no snapshot, ignorando o
// próprio registro em edição (excludeID).
func CategoryNameTaken(snapshot []entity.Category, name string, excludeID int64) bool {
	for _, c := range snapshot {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
