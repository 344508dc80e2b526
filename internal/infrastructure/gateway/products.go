package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
)

// RemoteProduct é o produto como o backend o devolve. O saldo vem em
// quantidadeEstoque e as referências podem chegar só pelo nome
// (categoriaNome/fornecedorNome); o coordenador de sincronização resolve os
// ids contra o cache local.
type RemoteProduct struct {
	ID            int64           `json:"id"`
	Code          string          `json:"codigo"`
	Name          string          `json:"nome"`
	Description   string          `json:"descricao"`
	Price         decimal.Decimal `json:"preco"`
	UnitMeasure   string          `json:"unidadeMedida"`
	Dimensions    string          `json:"dimensoes"`
	Color         string          `json:"cor"`
	MinQuantity   *int            `json:"quantidadeMinima"`
	IdealQuantity *int            `json:"quantidadeIdeal"`
	MaxQuantity   *int            `json:"quantidadeMaxima"`
	Active        bool            `json:"ativo"`
	CategoryID    int64           `json:"categoriaId"`
	SupplierID    int64           `json:"fornecedorId"`
	CategoryName  string          `json:"categoriaNome"`
	SupplierName  string          `json:"fornecedorNome"`
	StockQuantity *int            `json:"quantidadeEstoque"`
}

// ListProducts GET /api/produtos.
func (c *Client) ListProducts(ctx context.Context) ([]RemoteProduct, error) {
	var out []RemoteProduct
	err := c.doJSON(ctx, http.MethodGet, "/api/produtos", nil, nil, &out)
	return out, err
}

// GetProduct GET /api/produtos/{id}.
func (c *Client) GetProduct(ctx context.Context, id int64) (*RemoteProduct, error) {
	var out RemoteProduct
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/produtos/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct POST /api/produtos.
func (c *Client) CreateProduct(ctx context.Context, in entity.Product) (*RemoteProduct, error) {
	var out RemoteProduct
	if err := c.doJSON(ctx, http.MethodPost, "/api/produtos", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct PUT /api/produtos/{id}.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in entity.Product) (*RemoteProduct, error) {
	var out RemoteProduct
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/produtos/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct DELETE /api/produtos/{id}.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/produtos/%d", id), nil, nil, nil)
}

// WithdrawProduct PUT /api/produtos/{id}/retirar?quantidade=&usuario=.
func (c *Client) WithdrawProduct(ctx context.Context, id int64, quantity int, user string) error {
	q := url.Values{}
	q.Set("quantidade", strconv.Itoa(quantity))
	q.Set("usuario", user)
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/produtos/%d/retirar", id), q, nil, nil)
}

// RestockProduct PUT /api/produtos/{id}/repor?quantidade=&usuario=.
func (c *Client) RestockProduct(ctx context.Context, id int64, quantity int, user string) error {
	q := url.Values{}
	q.Set("quantidade", strconv.Itoa(quantity))
	q.Set("usuario", user)
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/produtos/%d/repor", id), q, nil, nil)
}

// DeactivateProduct PUT /api/produtos/{id}/inativar?usuario=.
func (c *Client) DeactivateProduct(ctx context.Context, id int64, user string) error {
	q := url.Values{}
	q.Set("usuario", user)
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/produtos/%d/inativar", id), q, nil, nil)
}

// ActivateProduct PUT /api/produtos/{id}/ativar?usuario=.
func (c *Client) ActivateProduct(ctx context.Context, id int64, user string) error {
	q := url.Values{}
	q.Set("usuario", user)
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/produtos/%d/ativar", id), q, nil, nil)
}

// ProductHistory GET /api/produtos/{id}/historico.
func (c *Client) ProductHistory(ctx context.Context, id int64) ([]entity.StockMovement, error) {
	var out []entity.StockMovement
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/produtos/%d/historico", id), nil, nil, &out)
	return out, err
}

// FilterProducts GET /api/produtos/filtrar com parâmetros opcionais.
// Parâmetros vazios são omitidos, como no front original.
func (c *Client) FilterProducts(ctx context.Context, params map[string]string) ([]RemoteProduct, error) {
	q := url.Values{}
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	var out []RemoteProduct
	err := c.doJSON(ctx, http.MethodGet, "/api/produtos/filtrar", q, nil, &out)
	return out, err
}

// LowStockProducts GET /api/produtos/estoque-baixo.
func (c *Client) LowStockProducts(ctx context.Context) ([]RemoteProduct, error) {
	var out []RemoteProduct
	err := c.doJSON(ctx, http.MethodGet, "/api/produtos/estoque-baixo", nil, nil, &out)
	return out, err
}
