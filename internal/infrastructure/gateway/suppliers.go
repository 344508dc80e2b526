package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
)

// ListSuppliers GET /api/fornecedores.
func (c *Client) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	var out []entity.Supplier
	err := c.doJSON(ctx, http.MethodGet, "/api/fornecedores", nil, nil, &out)
	return out, err
}

// GetSupplier GET /api/fornecedores/{id}.
func (c *Client) GetSupplier(ctx context.Context, id int64) (*entity.Supplier, error) {
	var out entity.Supplier
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/fornecedores/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSupplier POST /api/fornecedores.
func (c *Client) CreateSupplier(ctx context.Context, in entity.Supplier) (*entity.Supplier, error) {
	out := in
	if err := c.doJSON(ctx, http.MethodPost, "/api/fornecedores", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSupplier PUT /api/fornecedores/{id}.
func (c *Client) UpdateSupplier(ctx context.Context, id int64, in entity.Supplier) (*entity.Supplier, error) {
	out := in
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/fornecedores/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSupplier DELETE /api/fornecedores/{id}.
func (c *Client) DeleteSupplier(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/fornecedores/%d", id), nil, nil, nil)
}

// SearchSuppliersByName GET /api/fornecedores/nome/{nome}.
func (c *Client) SearchSuppliersByName(ctx context.Context, name string) ([]entity.Supplier, error) {
	var out []entity.Supplier
	path := "/api/fornecedores/nome/" + url.PathEscape(name)
	err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out)
	return out, err
}
