package dto

// RegisterMovementRequest entrada para registrar entrada ou saída de estoque.
type RegisterMovementRequest struct {
	ProductID int64  `json:"produtoId"`
	Quantity  int    `json:"quantidade"`
	User      string `json:"usuario"`
	Note      string `json:"observacao"`
}
