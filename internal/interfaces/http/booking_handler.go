package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carwash-api/internal/application/booking"
	"github.com/jhoicas/carwash-api/internal/application/dto"
)

// BookingHandler reservas de lavado (protegido).
type BookingHandler struct {
	uc *booking.BookingUseCase
}

// NewBookingHandler construye el handler.
func NewBookingHandler(uc *booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// Create godoc
// @Summary      Crear reserva
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateBookingRequest  true  "vehículo, servicio, dirección y fecha"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err, "pase no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine reservas del cliente autenticado.
// GET /api/bookings/mine
func (h *BookingHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByCustomer(c.UserContext(), GetUserID(c), pageFrom(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// ListAssigned reservas asignadas al employee autenticado.
// GET /api/bookings/assigned
func (h *BookingHandler) ListAssigned(c *fiber.Ctx) error {
	out, err := h.uc.ListAssigned(c.UserContext(), GetUserID(c), pageFrom(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// ListPending reservas sin asignar.
// GET /api/bookings/pending
func (h *BookingHandler) ListPending(c *fiber.Ctx) error {
	out, err := h.uc.ListPending(c.UserContext(), pageFrom(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una reserva
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                          true  "ID de la reserva"
// @Param        body  body  dto.UpdateBookingStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.BookingResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&in); err != nil || in.Status == "" {
		return badBody(c)
	}
	actor := booking.Actor{UserID: GetUserID(c), Role: CurrentRole(c)}
	out, err := h.uc.UpdateStatus(c.UserContext(), actor, c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err, "reserva no encontrada")
	}
	return c.JSON(out)
}

// Assign asigna un washer a la reserva.
// PATCH /api/bookings/:id/assign
func (h *BookingHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignBookingRequest
	if err := c.BodyParser(&in); err != nil || in.WasherID == "" {
		return badBody(c)
	}
	out, err := h.uc.Assign(c.UserContext(), c.Params("id"), in.WasherID)
	if err != nil {
		return respondError(c, err, "reserva o washer no encontrado")
	}
	return c.JSON(out)
}

func pageFrom(c *fiber.Ctx) dto.PageRequest {
	var p dto.PageRequest
	_ = c.QueryParser(&p)
	return p
}
