package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lubcarv/gestor-estoque/internal/application/dto"
	"github.com/lubcarv/gestor-estoque/internal/application/inventory"
	"github.com/lubcarv/gestor-estoque/internal/domain"
)

// InventoryHandler trata as movimentações de estoque e ativação de produto.
type InventoryHandler struct {
	ledger *inventory.Ledger
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(ledger *inventory.Ledger) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// movementInput aceita a quantidade e o usuário tanto na query (contrato do
// backend) quanto no corpo JSON.
func movementInput(c *fiber.Ctx, productID int64) (inventory.MovementInput, error) {
	in := inventory.MovementInput{ProductID: productID}

	var body dto.RegisterMovementRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return in, domain.ErrInvalidInput
		}
	}
	in.Quantity = body.Quantity
	in.User = body.User
	in.Note = body.Note

	if qty := c.QueryInt("quantidade"); qty != 0 {
		in.Quantity = qty
	}
	if user := c.Query("usuario"); user != "" {
		in.User = user
	}
	return in, nil
}

// Restock PUT /api/produtos/:id/repor.
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	in, err := movementInput(c, id)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.ledger.RegisterEntry(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.Envelope{Data: out.Movement, Degraded: out.Degraded})
}

// Withdraw PUT /api/produtos/:id/retirar.
func (h *InventoryHandler) Withdraw(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	in, err := movementInput(c, id)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.ledger.RegisterWithdrawal(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.Envelope{Data: out.Movement, Degraded: out.Degraded})
}

// Activate PUT /api/produtos/:id/ativar.
func (h *InventoryHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true)
}

// Deactivate PUT /api/produtos/:id/inativar.
func (h *InventoryHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *InventoryHandler) setActive(c *fiber.Ctx, active bool) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	result, err := h.ledger.SetProductActive(c.Context(), id, active, c.Query("usuario"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.Envelope{Degraded: result.Degraded()})
}

// History GET /api/produtos/:id/historico.
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.ledger.History(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
