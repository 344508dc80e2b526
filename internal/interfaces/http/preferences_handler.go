package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lubcarv/gestor-estoque/internal/application/dto"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
)

// PreferencesHandler persiste preferências do usuário (tema claro/escuro).
type PreferencesHandler struct {
	cache *localcache.Store
}

// NewPreferencesHandler constrói o handler.
func NewPreferencesHandler(cache *localcache.Store) *PreferencesHandler {
	return &PreferencesHandler{cache: cache}
}

type themePayload struct {
	Theme string `json:"tema"`
}

// GetTheme GET /api/preferencias/tema.
func (h *PreferencesHandler) GetTheme(c *fiber.Ctx) error {
	theme, err := h.cache.Theme()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(themePayload{Theme: theme})
}

// SetTheme PUT /api/preferencias/tema.
func (h *PreferencesHandler) SetTheme(c *fiber.Ctx) error {
	var in themePayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Theme != "light" && in.Theme != "dark" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "tema deve ser light ou dark"})
	}
	if err := h.cache.SetTheme(in.Theme); err != nil {
		return writeError(c, err)
	}
	return c.JSON(in)
}
