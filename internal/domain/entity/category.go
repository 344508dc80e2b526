package entity

import "time"

// Category representa uma categoria de produtos. Nome é único
// (case-insensitive). Não pode ser excluída enquanto houver produto
// referenciando-a.
type Category struct {
	ID          int64      `json:"id"`
	Name        string     `json:"nome"`
	Description string     `json:"descricao,omitempty"`
	Active      bool       `json:"ativa"`
	CreatedAt   *time.Time `json:"dataCriacao,omitempty"`
	UpdatedAt   *time.Time `json:"dataAtualizacao,omitempty"`
}
