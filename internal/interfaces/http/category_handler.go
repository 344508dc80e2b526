package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lubcarv/gestor-estoque/internal/application/dto"
	"github.com/lubcarv/gestor-estoque/internal/application/usecase"
	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
)

// CategoryHandler trata as requisições de categorias.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler constrói o handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List GET /api/categorias.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, fromCache, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	if fromCache {
		c.Set("X-Data-Source", "local-cache")
	}
	return c.JSON(out)
}

// Get GET /api/categorias/:id.
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
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

// Create POST /api/categorias.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in entity.Category
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

// Update PUT /api/categorias/:id.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in entity.Category
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, result, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.Envelope{Data: out, Degraded: result.Degraded()})
}

// Delete DELETE /api/categorias/:id.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
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

// SearchByDescription GET /api/categorias/descricao/:descricao.
func (h *CategoryHandler) SearchByDescription(c *fiber.Ctx) error {
	out, err := h.uc.SearchByDescription(c.Context(), c.Params("descricao"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
