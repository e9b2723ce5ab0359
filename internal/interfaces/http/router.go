package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fixtura/fixtura-api/internal/application/auth"
	"github.com/fixtura/fixtura-api/internal/application/inventory"
	"github.com/fixtura/fixtura-api/internal/application/usecase"
	"github.com/fixtura/fixtura-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClinicUC     *usecase.ClinicUseCase
	FixtureUC    *usecase.FixtureUseCase
	SurgeryUC    *usecase.SurgeryUseCase
	OrderUC      *usecase.OrderUseCase
	DashboardUC  *usecase.DashboardUseCase
	IngestUC     *inventory.IngestUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
	MaxFileBytes int64
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Clinics (público por ahora; el alta de clínica precede al primer usuario)
	clinics := api.Group("/clinics")
	clinicHandler := NewClinicHandler(deps.ClinicUC)
	clinics.Get("/", clinicHandler.List)
	clinics.Post("/", clinicHandler.Create)
	clinics.Get("/:id", clinicHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleStaff)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Fixtures (protegido; delete solo admin)
	fixtures := protected.Group("/fixtures")
	fixtureHandler := NewFixtureHandler(deps.FixtureUC)
	fixtures.Post("/", anyRole, fixtureHandler.Create)
	fixtures.Get("/", anyRole, fixtureHandler.List)
	fixtures.Post("/import", anyRole, fixtureHandler.Import)
	fixtures.Get("/:id", anyRole, fixtureHandler.GetByID)
	fixtures.Put("/:id", anyRole, fixtureHandler.Update)
	fixtures.Delete("/:id", adminOnly, fixtureHandler.Delete)

	// Surgeries (protegido)
	surgeries := protected.Group("/surgeries")
	surgeryHandler := NewSurgeryHandler(deps.IngestUC, deps.SurgeryUC, deps.MaxFileBytes)
	surgeries.Post("/upload", anyRole, surgeryHandler.Upload)
	surgeries.Get("/", anyRole, surgeryHandler.List)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", anyRole, orderHandler.Create)
	orders.Get("/", anyRole, orderHandler.List)
	orders.Get("/:id", anyRole, orderHandler.GetByID)
	orders.Post("/:id/receive", anyRole, orderHandler.Receive)
	orders.Get("/:id/pdf", anyRole, orderHandler.PDF)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", anyRole, dashboardHandler.Summary)
}
