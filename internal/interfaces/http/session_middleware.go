package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/carwash-api/internal/application/session"
)

// Locals keys de la sesión del navegador.
const (
	LocalSession   = "session_store"
	LocalSessionID = "session_id"
	LocalPageGuard = "page_guard"
)

// SessionConfig cookie que identifica la sesión del navegador.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// SessionMiddleware abre la sesión indicada por la cookie y la deja en c.Locals.
// Sin cookie se emite un ID nuevo.
func SessionMiddleware(provider session.Provider, cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cfg.CookieName)
		if _, err := uuid.Parse(id); err != nil {
			id = newSessionCookie(c, cfg)
		}
		c.Locals(LocalSessionID, id)
		c.Locals(LocalSession, provider.Open(id))
		return c.Next()
	}
}

// RotateSession emite un ID nuevo (tras login) y devuelve el Store correspondiente.
func RotateSession(c *fiber.Ctx, provider session.Provider, cfg SessionConfig) session.Store {
	id := newSessionCookie(c, cfg)
	store := provider.Open(id)
	c.Locals(LocalSessionID, id)
	c.Locals(LocalSession, store)
	return store
}

// GetSession devuelve el Store de la petición; nil si SessionMiddleware no corrió.
func GetSession(c *fiber.Ctx) session.Store {
	s, _ := c.Locals(LocalSession).(session.Store)
	return s
}

// SessionID devuelve el ID de sesión de la petición ("" sin SessionMiddleware).
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalSessionID).(string)
	return id
}

func newSessionCookie(c *fiber.Ctx, cfg SessionConfig) string {
	id := uuid.New().String()
	cookie := &fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if cfg.TTL > 0 {
		cookie.Expires = time.Now().Add(cfg.TTL)
	}
	c.Cookie(cookie)
	return id
}
