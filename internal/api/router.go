package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"github.com/corvo-marketing/agency-console/internal/api/handler"
	"github.com/corvo-marketing/agency-console/internal/api/middleware"
	"github.com/corvo-marketing/agency-console/internal/clients/gemini"
	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
	"github.com/corvo-marketing/agency-console/internal/core/service"
	"github.com/corvo-marketing/agency-console/internal/infrastructure/db/memory"
	"github.com/corvo-marketing/agency-console/internal/infrastructure/http/handlers"
)

// RouterConfig carries the dependencies the router wires together.
type RouterConfig struct {
	Store *memory.Store
	// Gemini backs both briefing suggestions and the readiness probe.
	Gemini      *gemini.Client
	Suggestions ports.SuggestionProvider
	JWTSecret   string
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))

	// --- Dependencies ---
	authService := service.NewAuthService(cfg.Store.Users, cfg.JWTSecret, 24*time.Hour)
	userService := service.NewUserService(cfg.Store.Users, cfg.Logger)
	teamService := service.NewTeamService(cfg.Store.Teams, cfg.Logger)
	clientService := service.NewClientService(cfg.Store.Clients, cfg.Logger)
	taskService := service.NewTaskService(cfg.Store.Tasks, cfg.Store.Clients, cfg.Store.Users, cfg.Logger)
	reportService := service.NewReportService(cfg.Store.Users, cfg.Store.Clients, cfg.Store.Tasks, cfg.Logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	teamHandler := handler.NewTeamHandler(teamService)
	clientHandler := handler.NewClientHandler(clientService, cfg.Suggestions)
	taskHandler := handler.NewTaskHandler(taskService)
	reportHandler := handler.NewReportHandler(reportService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	// Login is throttled; email-only sign-in makes enumeration cheap
	// otherwise.
	loginLimiter := echomiddleware.RateLimiter(
		echomiddleware.NewRateLimiterMemoryStore(rate.Limit(5)),
	)
	e.POST("/auth/login", authHandler.Login, loginLimiter)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/me", authHandler.Me)
	v1.PUT("/me", authHandler.UpdateProfile)

	v1.GET("/users", userHandler.List)
	v1.GET("/users/:id", userHandler.Get)
	v1.POST("/users", userHandler.Create)
	v1.PUT("/users/:id", userHandler.Update)
	v1.DELETE("/users/:id", userHandler.Delete)

	v1.GET("/teams", teamHandler.List)
	v1.GET("/teams/:id", teamHandler.Get)
	v1.POST("/teams", teamHandler.Create)
	v1.PUT("/teams/:id", teamHandler.Update)
	v1.DELETE("/teams/:id", teamHandler.Delete)

	v1.GET("/clients", clientHandler.List)
	v1.GET("/clients/:id", clientHandler.Get)
	v1.POST("/clients", clientHandler.Create)
	v1.PUT("/clients/:id", clientHandler.Update)
	v1.DELETE("/clients/:id", clientHandler.Delete)
	v1.POST("/clients/:id/contract", clientHandler.UploadContract)
	v1.DELETE("/clients/:id/contract", clientHandler.DeleteContract)
	v1.GET("/clients/:id/files", clientHandler.ListFiles)
	v1.POST("/clients/:id/files", clientHandler.AttachFile)
	v1.POST("/clients/:id/briefing/suggestions", clientHandler.SuggestBriefing)

	v1.GET("/tasks", taskHandler.List)
	v1.GET("/tasks/:id", taskHandler.Get)
	v1.POST("/tasks", taskHandler.Create)
	v1.PUT("/tasks/:id", taskHandler.Update)
	v1.DELETE("/tasks/:id", taskHandler.Delete)
	v1.POST("/tasks/:id/comments", taskHandler.AddComment)

	v1.GET("/reports/dashboard", reportHandler.Dashboard)
	v1.GET("/reports/team-performance", reportHandler.TeamPerformance,
		middleware.RBAC(string(domain.RoleAdmin)))
	v1.GET("/notifications", reportHandler.Notifications)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(cfg.Store, cfg.Gemini)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
