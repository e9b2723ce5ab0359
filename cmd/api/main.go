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

	"github.com/fixtura/fixtura-api/internal/application/auth"
	"github.com/fixtura/fixtura-api/internal/application/inventory"
	"github.com/fixtura/fixtura-api/internal/application/usecase"
	"github.com/fixtura/fixtura-api/internal/infrastructure/excel"
	infrapdf "github.com/fixtura/fixtura-api/internal/infrastructure/pdf"
	"github.com/fixtura/fixtura-api/internal/infrastructure/postgres"
	httpRouter "github.com/fixtura/fixtura-api/internal/interfaces/http"
	"github.com/fixtura/fixtura-api/pkg/config"
	"github.com/fixtura/fixtura-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	clinicRepo := postgres.NewClinicRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	fixtureRepo := postgres.NewFixtureRepository(pool)
	surgeryRepo := postgres.NewSurgeryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recomputeUC := inventory.NewRecomputeUseCase(txRunner)
	sheetReader := excel.NewSheetReader(cfg.Ingest.MaxRows)
	ingestUC := inventory.NewIngestUseCase(sheetReader, surgeryRepo, recomputeUC)

	clinicUC := usecase.NewClinicUseCase(clinicRepo)
	fixtureUC := usecase.NewFixtureUseCase(fixtureRepo, recomputeUC)
	surgeryUC := usecase.NewSurgeryUseCase(surgeryRepo)
	dashboardUC := usecase.NewDashboardUseCase(fixtureRepo)

	// PDF: hoja de pedido para el fabricante
	pdfGenerator := infrapdf.NewMarotoOrderPDFGenerator()
	orderUC := usecase.NewOrderUseCase(orderRepo, surgeryRepo, clinicRepo, recomputeUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, clinicRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Ingest.MaxFileBytes) + 1024*1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fixtura API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClinicUC:     clinicUC,
		FixtureUC:    fixtureUC,
		SurgeryUC:    surgeryUC,
		OrderUC:      orderUC,
		DashboardUC:  dashboardUC,
		IngestUC:     ingestUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
		MaxFileBytes: cfg.Ingest.MaxFileBytes,
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
