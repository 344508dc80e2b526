package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovementTypeIn  = "ENTRADA"
	MovementTypeOut = "SAIDA"
)

// StockMovement representa uma movimentação de estoque. Imutável após
// criada: o histórico é append-only, nunca atualizado ou excluído.
// QuantityAfter = QuantityBefore ± Quantity conforme o tipo.
type StockMovement struct {
	ID             int64      `json:"id"`
	TransactionID  string     `json:"transacaoId,omitempty"` // UUID da ação que originou o registro
	ProductID      int64      `json:"produtoId"`
	Type           string     `json:"tipo"` // ENTRADA ou SAIDA
	Quantity       int        `json:"quantidade"`
	QuantityBefore int        `json:"quantidadeAnterior"`
	QuantityAfter  int        `json:"quantidadeAtual"`
	User           string     `json:"usuario"`
	Note           string     `json:"observacao,omitempty"`
	Timestamp      *time.Time `json:"dataHora,omitempty"`
}
