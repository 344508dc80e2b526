package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
)

// ListCategories GET /api/categorias.
func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	err := c.doJSON(ctx, http.MethodGet, "/api/categorias", nil, nil, &out)
	return out, err
}

// GetCategory GET /api/categorias/{id}.
func (c *Client) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	var out entity.Category
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/categorias/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCategory POST /api/categorias.
func (c *Client) CreateCategory(ctx context.Context, in entity.Category) (*entity.Category, error) {
	out := in
	if err := c.doJSON(ctx, http.MethodPost, "/api/categorias", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory PUT /api/categorias/{id}.
func (c *Client) UpdateCategory(ctx context.Context, id int64, in entity.Category) (*entity.Category, error) {
	out := in
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/categorias/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory DELETE /api/categorias/{id}.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/categorias/%d", id), nil, nil, nil)
}

// SearchCategoriesByDescription GET /api/categorias/descricao/{descricao}.
func (c *Client) SearchCategoriesByDescription(ctx context.Context, description string) ([]entity.Category, error) {
	var out []entity.Category
	path := "/api/categorias/descricao/" + url.PathEscape(description)
	err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out)
	return out, err
}
