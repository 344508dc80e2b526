package validation

import (
	"regexp"
	"strings"

	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Supplier valida os campos de um fornecedor.
func Supplier(f entity.Supplier) []string {
	var errs []string

	if len(strings.TrimSpace(f.Name)) < 2 {
		errs = append(errs, "Nome é obrigatório e deve ter pelo menos 2 caracteres")
	}
	if len(f.Name) > 100 {
		errs = append(errs, "Nome deve ter no máximo 100 caracteres")
	}
	if f.Email != "" && !emailRe.MatchString(f.Email) {
		errs = append(errs, "Email deve ter formato válido")
	}
	if len(f.Email) > 100 {
		errs = append(errs, "Email deve ter no máximo 100 caracteres")
	}
	if len(f.Phone) > 20 {
		errs = append(errs, "Telefone deve ter no máximo 20 caracteres")
	}
	if len(f.CNPJ) > 14 {
		errs = append(errs, "CNPJ deve ter no máximo 14 caracteres")
	}
	if len(f.Address) > 200 {
		errs = append(errs, "Endereço deve ter no máximo 200 caracteres")
	}

	return errs
}

// SupplierEmailTaken verifica duplicidade de email (vazio nunca duplica).
func SupplierEmailTaken(snapshot []entity.Supplier, email string, excludeID int64) bool {
	if email == "" {
		return false
	}
	for _, f := range snapshot {
		if f.ID != excludeID && f.Email != "" && strings.EqualFold(f.Email, email) {
			return true
		}
	}
	return false
}

// SupplierCNPJTaken verifica duplicidade de CNPJ (vazio nunca duplica).
func SupplierCNPJTaken(snapshot []entity.Supplier, cnpj string, excludeID int64) bool {
	if cnpj == "" {
		return false
	}
	for _, f := range snapshot {
		if f.ID != excludeID && f.CNPJ != "" && strings.EqualFold(f.CNPJ, cnpj) {
			return true
		}
	}
	return false
}
