package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Situação de estoque derivada do saldo atual e da quantidade mínima.
const (
	StockStatusOK    = "OK"
	StockStatusLow   = "BAIXO"
	StockStatusEmpty = "SEM_ESTOQUE"
)

// Product representa um produto do inventário. As tags JSON seguem o contrato
// do backend (campos em português). CurrentStock é mantido pelo ledger de
// movimentações e nunca fica negativo.
type Product struct {
	ID            int64           `json:"id"`
	Code          string          `json:"codigo"` // único entre ativos e inativos
	Name          string          `json:"nome"`
	Description   string          `json:"descricao,omitempty"`
	Price         decimal.Decimal `json:"preco"`
	UnitMeasure   string          `json:"unidadeMedida"`
	Dimensions    string          `json:"dimensoes,omitempty"`
	Color         string          `json:"cor,omitempty"`
	MinQuantity   *int            `json:"quantidadeMinima,omitempty"`
	IdealQuantity *int            `json:"quantidadeIdeal,omitempty"`
	MaxQuantity   *int            `json:"quantidadeMaxima,omitempty"`
	Active        bool            `json:"ativo"`
	CategoryID    int64           `json:"categoriaId"`
	SupplierID    int64           `json:"fornecedorId"`
	CurrentStock  int             `json:"estoqueAtual"`
	CreatedAt     *time.Time      `json:"dataCriacao,omitempty"`
	UpdatedAt     *time.Time      `json:"dataAtualizacao,omitempty"`
}

// StockStatus devolve a situação do estoque: SEM_ESTOQUE com saldo zero
// (independente da mínima), BAIXO com saldo até a quantidade mínima, OK caso
// contrário.
func (p *Product) StockStatus() string {
	if p.CurrentStock == 0 {
		return StockStatusEmpty
	}
	if p.MinQuantity != nil && p.CurrentStock <= *p.MinQuantity {
		return StockStatusLow
	}
	return StockStatusOK
}
