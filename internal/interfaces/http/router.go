package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carwash-api/internal/application/auth"
	"github.com/jhoicas/carwash-api/internal/application/billing"
	"github.com/jhoicas/carwash-api/internal/application/booking"
	"github.com/jhoicas/carwash-api/internal/application/dashboard"
	"github.com/jhoicas/carwash-api/internal/application/pass"
	"github.com/jhoicas/carwash-api/internal/application/session"
	"github.com/jhoicas/carwash-api/internal/domain/role"
	"github.com/jhoicas/carwash-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	BookingUC     *booking.BookingUseCase
	PassUC        *pass.PassUseCase
	TransactionUC *billing.TransactionUseCase
	DashboardUC   *dashboard.DashboardUseCase
	Sessions      session.Provider
	Session       SessionConfig
	JWTSecret     string
	Logger        *logger.Logger
}

// Router registra las páginas con sesión y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.Session, log.Named("auth"))

	// ── Páginas (cookie de sesión + guard por rol) ────────────────────────────
	// La sesión se monta por ruta para que /api no emita cookies.
	sess := SessionMiddleware(deps.Sessions, deps.Session)
	app.Get(role.PathLogin, sess, authHandler.LoginPage)
	app.Post(role.PathLogin, sess, authHandler.LoginForm)
	app.Post("/logout", sess, authHandler.Logout)

	guardLog := log.Named("page_guard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	app.Get(role.PathAdminHome, sess, PageGuard(guardLog, role.Admin, role.SubAdmin, role.HR), dashboardHandler.Admin)
	app.Get(role.PathCustomerHome, sess, PageGuard(guardLog, role.Customer), dashboardHandler.Customer)
	app.Get(role.PathEmployeeHome, sess, PageGuard(guardLog, role.Employee), dashboardHandler.Employee)
	app.Get(role.PathWasherHome, sess, PageGuard(guardLog, role.Employee), dashboardHandler.Employee)
	app.Get(role.PathSalesHome, sess, PageGuard(guardLog, role.Sales), dashboardHandler.Sales)

	// ── API ───────────────────────────────────────────────────────────────────
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	passHandler := NewPassHandler(deps.PassUC)
	api.Get("/passes/plans", passHandler.ListPlans)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	passes := protected.Group("/passes")
	passes.Post("/purchase", RequireRole(role.Customer), passHandler.Purchase)
	passes.Get("/mine", RequireRole(role.Customer), passHandler.Mine)

	bookings := protected.Group("/bookings")
	bookingHandler := NewBookingHandler(deps.BookingUC)
	bookings.Post("/", RequireRole(role.Customer), bookingHandler.Create)
	bookings.Get("/mine", RequireRole(role.Customer), bookingHandler.ListMine)
	bookings.Get("/assigned", RequireRole(role.Employee), bookingHandler.ListAssigned)
	bookings.Get("/pending", RequireRole(role.Admin, role.SubAdmin), bookingHandler.ListPending)
	bookings.Patch("/:id/status", RequireRole(role.Employee, role.Admin, role.SubAdmin, role.HR, role.Customer), bookingHandler.UpdateStatus)
	bookings.Patch("/:id/assign", RequireRole(role.Admin, role.SubAdmin), bookingHandler.Assign)

	txs := protected.Group("/transactions")
	txHandler := NewTransactionHandler(deps.TransactionUC, log.Named("invoice"))
	txs.Get("/mine", txHandler.ListMine)
	txs.Get("/", RequireRole(role.Admin, role.SubAdmin, role.HR), txHandler.ListAll)
	txs.Get("/:id/invoice", txHandler.Invoice)
	txs.Get("/:id/invoice/view", txHandler.InvoiceView)

	admin := protected.Group("/admin")
	adminHandler := NewAdminHandler(deps.AuthUC)
	admin.Get("/users", RequireRole(role.Admin, role.SubAdmin, role.HR), adminHandler.ListUsers)
	admin.Post("/employees", RequireRole(role.Admin, role.HR), adminHandler.CreateEmployee)

	sales := protected.Group("/sales", RequireRole(role.Sales))
	sales.Post("/passes", passHandler.Sell)
	sales.Get("/passes", passHandler.SoldByMe)
}
