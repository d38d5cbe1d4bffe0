package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carwash-api/internal/application/billing"
	"github.com/jhoicas/carwash-api/internal/application/dto"
	"github.com/jhoicas/carwash-api/pkg/logger"
)

// TransactionHandler pagos y recibos PDF.
type TransactionHandler struct {
	uc  *billing.TransactionUseCase
	log *logger.Logger
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *billing.TransactionUseCase, log *logger.Logger) *TransactionHandler {
	return &TransactionHandler{uc: uc, log: log}
}

// ListMine pagos del usuario autenticado.
// GET /api/transactions/mine
func (h *TransactionHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.UserContext(), GetUserID(c), pageFrom(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// ListAll todos los pagos (admin, sub-admin, hr).
// GET /api/transactions
func (h *TransactionHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext(), pageFrom(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Invoice godoc
// @Summary      Descargar recibo PDF
// @Tags         transactions
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  billing.Result
// @Router       /api/transactions/{id}/invoice [get]
func (h *TransactionHandler) Invoice(c *fiber.Ctx) error {
	return h.export(c, billing.ModeDownload)
}

// InvoiceView godoc
// @Summary      Ver recibo PDF en el navegador
// @Tags         transactions
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  billing.Result
// @Router       /api/transactions/{id}/invoice/view [get]
func (h *TransactionHandler) InvoiceView(c *fiber.Ctx) error {
	return h.export(c, billing.ModeView)
}

func (h *TransactionHandler) export(c *fiber.Ctx, mode string) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	res, err := h.uc.Invoice(c.UserContext(), GetUserID(c), CurrentRole(c), id, mode)
	if err != nil {
		return respondError(c, err, "transacción no encontrada")
	}
	if !res.Success {
		h.log.Warn().Str("transaction_id", id).Str("error", res.Error).Msg("no se pudo generar el recibo")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	if mode == billing.ModeView {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, billing.Filename(dto.TransactionResponse{ID: id})))
	} else {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, res.Filename))
	}
	return c.Send(res.Data)
}
