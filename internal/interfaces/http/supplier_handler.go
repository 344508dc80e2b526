package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lubcarv/gestor-estoque/internal/application/dto"
	"github.com/lubcarv/gestor-estoque/internal/application/usecase"
	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
)

// SupplierHandler trata as requisições de fornecedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler constrói o handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List GET /api/fornecedores.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, fromCache, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	if fromCache {
		c.Set("X-Data-Source", "local-cache")
	}
	return c.JSON(out)
}

// Get GET /api/fornecedores/:id.
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
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

// Create POST /api/fornecedores.
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in entity.Supplier
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

// Update PUT /api/fornecedores/:id.
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in entity.Supplier
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, result, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.Envelope{Data: out, Degraded: result.Degraded()})
}

// Delete DELETE /api/fornecedores/:id.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
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

// SearchByName GET /api/fornecedores/nome/:nome.
func (h *SupplierHandler) SearchByName(c *fiber.Ctx) error {
	out, err := h.uc.SearchByName(c.Context(), c.Params("nome"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
