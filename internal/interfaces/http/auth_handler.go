package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carwash-api/internal/application/auth"
	"github.com/jhoicas/carwash-api/internal/application/dto"
	"github.com/jhoicas/carwash-api/internal/application/session"
	"github.com/jhoicas/carwash-api/internal/domain"
	"github.com/jhoicas/carwash-api/internal/domain/role"
	"github.com/jhoicas/carwash-api/pkg/logger"
)

// AuthHandler maneja registro, login por API y el login/logout de páginas.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	sessions session.Provider
	cookie   SessionConfig
	log      *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, sessions session.Provider, cookie SessionConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, cookie: cookie, log: log}
}

// Register godoc
// @Summary      Registrar cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, name"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	user, err := h.uc.RegisterCustomer(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión (API)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return loginError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Profile(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err, "usuario no encontrado")
	}
	return c.JSON(user)
}

// LoginPage describe el formulario de login. Con sesión válida redirige al dashboard del rol.
// GET /login
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if store := GetSession(c); store != nil {
		r := role.Parse(session.Role(c.UserContext(), store), session.EmployeeType(c.UserContext(), store))
		if r.Known() {
			return c.Redirect(auth.Landing(r), fiber.StatusSeeOther)
		}
	}
	return c.JSON(fiber.Map{
		"page":   "login",
		"action": role.PathLogin,
		"method": fiber.MethodPost,
		"fields": []string{"email", "password"},
	})
}

// LoginForm autentica desde el formulario, escribe la sesión y redirige al dashboard del rol.
// POST /login
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil || in.Email == "" || in.Password == "" {
		return c.Redirect(role.PathLogin, fiber.StatusSeeOther)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		h.log.Info().Str("email", in.Email).Err(err).Msg("login de página rechazado")
		return c.Redirect(role.PathLogin, fiber.StatusSeeOther)
	}

	if old := GetSession(c); old != nil {
		if err := h.uc.EndSession(c.UserContext(), old); err != nil {
			h.log.Warn().Err(err).Msg("no se pudo limpiar la sesión anterior")
		}
	}
	store := RotateSession(c, h.sessions, h.cookie)
	if err := h.uc.StartSession(c.UserContext(), store, out.User); err != nil {
		h.log.Request(c.Method(), c.Path(), SessionID(c)).Error().
			Err(err).
			Str(logger.FieldUserID, out.User.ID).
			Msg("no se pudo escribir la sesión")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SESSION_UNAVAILABLE", Message: "no se pudo iniciar la sesión"})
	}
	return c.Redirect(out.Redirect, fiber.StatusSeeOther)
}

// Logout borra la sesión y vuelve al login.
// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if store := GetSession(c); store != nil {
		if err := h.uc.EndSession(c.UserContext(), store); err != nil {
			h.log.Warn().Err(err).Msg("no se pudo borrar la sesión")
		}
	}
	c.ClearCookie(h.cookie.CookieName)
	return c.Redirect(role.PathLogin, fiber.StatusSeeOther)
}

func loginError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o suspendida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
