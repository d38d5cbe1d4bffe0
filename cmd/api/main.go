// @title        Car Wash API
// @version      1.0
// @description  API de reservas, pases y recibos de lavado de autos.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/carwash-api/docs"
	"github.com/jhoicas/carwash-api/internal/application/auth"
	"github.com/jhoicas/carwash-api/internal/application/billing"
	"github.com/jhoicas/carwash-api/internal/application/booking"
	"github.com/jhoicas/carwash-api/internal/application/dashboard"
	"github.com/jhoicas/carwash-api/internal/application/pass"
	"github.com/jhoicas/carwash-api/internal/application/session"
	"github.com/jhoicas/carwash-api/internal/infrastructure/memstore"
	infrapdf "github.com/jhoicas/carwash-api/internal/infrastructure/pdf"
	"github.com/jhoicas/carwash-api/internal/infrastructure/postgres"
	"github.com/jhoicas/carwash-api/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/carwash-api/internal/interfaces/http"
	"github.com/jhoicas/carwash-api/pkg/config"
	"github.com/jhoicas/carwash-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: se usa un secreto de desarrollo")
		cfg.JWT.Secret = "dev-only-secret"
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)
	passRepo := postgres.NewPassRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sesiones: Redis si hay REDIS_URL; si no, en memoria (un solo proceso).
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessions session.Provider
	if cfg.Redis.URL != "" {
		rdb, err := redisstore.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		sessions = redisstore.NewProvider(rdb, sessionTTL)
		log.Info().Msg("sesiones en Redis")
	} else {
		sessions = memstore.NewProvider(sessionTTL)
		log.Warn().Msg("REDIS_URL vacío: sesiones en memoria")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	bookingUC := booking.NewBookingUseCase(bookingRepo, passRepo, userRepo, txRunner)
	passUC := pass.NewPassUseCase(passRepo, userRepo, txRunner, cfg.Billing.GSTRate)
	dashboardUC := dashboard.NewDashboardUseCase(userRepo, bookingRepo, passRepo, txRepo)

	// PDF: recibo de pago
	exporter := billing.NewExporter(infrapdf.NewMarotoReceiptGenerator(), billing.Issuer{
		Name:    cfg.Billing.CompanyName,
		Address: cfg.Billing.CompanyAddress,
		GSTIN:   cfg.Billing.CompanyGSTIN,
	})
	transactionUC := billing.NewTransactionUseCase(txRepo, userRepo, exporter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Car Wash API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		BookingUC:     bookingUC,
		PassUC:        passUC,
		TransactionUC: transactionUC,
		DashboardUC:   dashboardUC,
		Sessions:      sessions,
		Session: httpRouter.SessionConfig{
			CookieName: cfg.Session.CookieName,
			TTL:        sessionTTL,
			Secure:     cfg.Session.Secure,
		},
		JWTSecret: cfg.JWT.Secret,
		Logger:    log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
