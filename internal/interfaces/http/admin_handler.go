package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carwash-api/internal/application/auth"
	"github.com/jhoicas/carwash-api/internal/application/dto"
)

// AdminHandler gestión de usuarios por el personal administrativo.
type AdminHandler struct {
	uc *auth.AuthUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *auth.AuthUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers usuarios, filtrables con ?role=.
// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.UserContext(), c.Query("role"), pageFrom(c))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// CreateEmployee godoc
// @Summary      Crear empleado o personal
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEmployeeRequest  true  "datos del empleado"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/employees [post]
func (h *AdminHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateStaff(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
