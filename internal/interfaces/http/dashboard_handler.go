package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carwash-api/internal/application/dashboard"
	"github.com/jhoicas/carwash-api/internal/application/session"
)

// DashboardHandler páginas de dashboard por rol. Van detrás de PageGuard.
type DashboardHandler struct {
	uc *dashboard.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Admin GET /admin/dashboard
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	out, err := h.uc.Admin(c.UserContext())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Customer GET /customer/dashboard
func (h *DashboardHandler) Customer(c *fiber.Ctx) error {
	out, err := h.uc.Customer(c.UserContext(), sessionUserID(c))
	if err != nil {
		return respondError(c, err, "usuario no encontrado")
	}
	return c.JSON(out)
}

// Employee GET /employee/dashboard y /washer/dashboard
func (h *DashboardHandler) Employee(c *fiber.Ctx) error {
	out, err := h.uc.Employee(c.UserContext(), sessionUserID(c))
	if err != nil {
		return respondError(c, err, "usuario no encontrado")
	}
	return c.JSON(out)
}

// Sales GET /sales/dashboard
func (h *DashboardHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.Sales(c.UserContext(), sessionUserID(c))
	if err != nil {
		return respondError(c, err, "usuario no encontrado")
	}
	return c.JSON(out)
}

func sessionUserID(c *fiber.Ctx) string {
	store := GetSession(c)
	if store == nil {
		return ""
	}
	return session.UserID(c.UserContext(), store)
}
