package dto

// KPIs indicadores do painel.
type KPIs struct {
	TotalProducts    int `json:"totalProdutos"`
	TotalCategories  int `json:"totalCategorias"`
	TotalSuppliers   int `json:"totalFornecedores"`
	LowStockProducts int `json:"produtosEstoqueBaixo"`
}

// ProductSales quantidade movimentada por produto (top/menos vendidos).
type ProductSales struct {
	ProductID int64  `json:"produtoId"`
	Name      string `json:"nome"`
	Quantity  int    `json:"quantidade"`
}

// CategorySales quantidade vendida por categoria.
type CategorySales struct {
	Category string `json:"categoria"`
	Quantity int    `json:"quantidade"`
}

// DailyMovements entradas e saídas agregadas por dia do período.
type DailyMovements struct {
	Date     string `json:"data"` // AAAA-MM-DD
	Inbound  int    `json:"entradas"`
	Outbound int    `json:"saidas"`
}
