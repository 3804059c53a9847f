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

	appanalytics "github.com/kumishop/kumi-api/internal/application/analytics"
	"github.com/kumishop/kumi-api/internal/application/auth"
	"github.com/kumishop/kumi-api/internal/application/sales"
	"github.com/kumishop/kumi-api/internal/application/usecase"
	"github.com/kumishop/kumi-api/internal/infrastructure/export"
	infrapdf "github.com/kumishop/kumi-api/internal/infrastructure/pdf"
	"github.com/kumishop/kumi-api/internal/infrastructure/postgres"
	httpRouter "github.com/kumishop/kumi-api/internal/interfaces/http"
	"github.com/kumishop/kumi-api/pkg/config"
	"github.com/kumishop/kumi-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	channelRepo := postgres.NewChannelRepository(pool)
	statusRepo := postgres.NewOrderStatusRepository(pool)
	methodRepo := postgres.NewPaymentMethodRepository(pool)
	shippingRepo := postgres.NewShippingTypeRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	reportBuilder := export.NewXMLReportBuilder()

	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration, log)
	productUC := usecase.NewProductUseCase(productRepo, log)
	referenceUC := usecase.NewReferenceUseCase(channelRepo, statusRepo, methodRepo, shippingRepo)
	salesUC := sales.NewUseCase(
		orderRepo, productRepo, channelRepo, statusRepo, methodRepo, shippingRepo,
		txRunner, receiptGenerator, reportBuilder, log,
	)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

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
		Title:    "Kumi Shop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		ReferenceUC: referenceUC,
		SalesUC:     salesUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor HTTP")
	}
}
