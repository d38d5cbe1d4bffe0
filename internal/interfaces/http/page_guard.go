package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carwash-api/internal/application/guard"
	"github.com/jhoicas/carwash-api/internal/domain/role"
	"github.com/jhoicas/carwash-api/pkg/logger"
)

// PageGuard protege una página con los roles indicados.
//
// Cada petición es una activación de página: se crea un guard.Guard por petición
// y se guarda en c.Locals. Solo el primer guard de la petición redirige (303 See Other);
// un guard encadenado con otros roles que no se cumplen responde 403.
func PageGuard(log *logger.Logger, required ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := GetSession(c)
		if store == nil {
			return c.Redirect(role.PathLogin, fiber.StatusSeeOther)
		}

		g, _ := c.Locals(LocalPageGuard).(*guard.Guard)
		var target string
		if g == nil {
			g = guard.New(store, guard.NavigatorFunc(func(path string) { target = path }))
			c.Locals(LocalPageGuard, g)
		}

		d := g.Run(c.UserContext(), required...)
		if d.Allowed() {
			return c.Next()
		}
		reqLog := log.Request(c.Method(), c.Path(), SessionID(c))
		if target == "" {
			// Guard encadenado: la petición ya tuvo su única navegación posible.
			reqLog.Debug().
				Str("outcome", d.Outcome.String()).
				Msg("page guard: denegado sin redirect")
			return c.SendStatus(fiber.StatusForbidden)
		}
		reqLog.Debug().
			Str("outcome", d.Outcome.String()).
			Str("target", target).
			Msg("page guard: redirect")
		return c.Redirect(target, fiber.StatusSeeOther)
	}
}

// PageAllowed informa si el guard de la petición ya permitió el acceso.
func PageAllowed(c *fiber.Ctx) bool {
	g, _ := c.Locals(LocalPageGuard).(*guard.Guard)
	return g != nil && g.Allowed()
}
