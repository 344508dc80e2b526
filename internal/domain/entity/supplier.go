package entity

import "time"

// Supplier representa um fornecedor. Email e CNPJ são únicos quando
// preenchidos. Não pode ser excluído enquanto houver produto referenciando-o.
type Supplier struct {
	ID        int64      `json:"id"`
	Name      string     `json:"nome"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"fone,omitempty"`
	CNPJ      string     `json:"cnpj,omitempty"`
	Address   string     `json:"endereco,omitempty"`
	Active    bool       `json:"ativo"`
	CreatedAt *time.Time `json:"dataCriacao,omitempty"`
	UpdatedAt *time.Time `json:"dataAtualizacao,omitempty"`
}
