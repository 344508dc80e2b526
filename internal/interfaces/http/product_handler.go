package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lubcarv/gestor-estoque/internal/application/dto"
	"github.com/lubcarv/gestor-estoque/internal/application/usecase"
	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
)

// ProductHandler trata as requisições de produtos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List GET /api/produtos.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, fromCache, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	if fromCache {
		c.Set("X-Data-Source", "local-cache")
	}
	return c.JSON(out)
}

// Get GET /api/produtos/:id.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/produtos.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in entity.Product
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	in.ID = 0
	out, result, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{Data: out, Degraded: result.Degraded()})
}

// Update PUT /api/produtos/:id.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in entity.Product
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, result, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.Envelope{Data: out, Degraded: result.Degraded()})
}

// Delete DELETE /api/produtos/:id.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	result, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.Envelope{Degraded: result.Degraded()})
}

// Filter GET /api/produtos/filtrar?nome=&situacao=&categoriaId=...
func (h *ProductHandler) Filter(c *fiber.Ctx) error {
	params := map[string]string{}
	for k, v := range c.Queries() {
		params[k] = v
	}
	out, err := h.uc.Filter(c.Context(), params)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LowStock GET /api/produtos/estoque-baixo.
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
