package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carwash-api/internal/application/dto"
	"github.com/jhoicas/carwash-api/internal/application/pass"
)

// PassHandler planes de lavado y compra/venta de pases.
type PassHandler struct {
	uc *pass.PassUseCase
}

// NewPassHandler construye el handler.
func NewPassHandler(uc *pass.PassUseCase) *PassHandler {
	return &PassHandler{uc: uc}
}

// ListPlans planes activos.
// GET /api/passes/plans
func (h *PassHandler) ListPlans(c *fiber.Ctx) error {
	out, err := h.uc.ListPlans(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Purchase godoc
// @Summary      Comprar pase
// @Tags         passes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PurchasePassRequest  true  "plan y medio de pago"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/passes/purchase [post]
func (h *PassHandler) Purchase(c *fiber.Ctx) error {
	var in dto.PurchasePassRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Purchase(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err, "plan no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Mine pases del cliente autenticado.
// GET /api/passes/mine
func (h *PassHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.MyPasses(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Sell godoc
// @Summary      Vender pase a un cliente
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SellPassRequest  true  "cliente, plan y medio de pago"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/passes [post]
func (h *PassHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellPassRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Sell(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err, "cliente o plan no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SoldByMe pases vendidos por el usuario de ventas.
// GET /api/sales/passes
func (h *PassHandler) SoldByMe(c *fiber.Ctx) error {
	out, err := h.uc.SoldBy(c.UserContext(), GetUserID(c), pageFrom(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
