package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/casedesk/casedesk/internal/api/handler"
	"github.com/casedesk/casedesk/internal/api/middleware"
	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/service"
	"github.com/casedesk/casedesk/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("casedesk"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	caseRepo := postgres.NewCaseRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	investigationRepo := postgres.NewInvestigationRepository(db)
	targetRepo := postgres.NewTargetRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	caseService := service.NewCaseService(caseRepo, log)
	customerService := service.NewCustomerService(customerRepo, caseRepo, log)
	investigationService := service.NewInvestigationService(investigationRepo, caseRepo, log)
	targetService := service.NewTargetService(targetRepo, investigationRepo, log)
	searchService := service.NewSearchService(caseRepo, customerRepo, investigationRepo, targetRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	caseHandler := handler.NewCaseHandler(caseService)
	customerHandler := handler.NewCustomerHandler(customerService)
	investigationHandler := handler.NewInvestigationHandler(investigationService)
	targetHandler := handler.NewTargetHandler(targetService)
	searchHandler := handler.NewSearchHandler(searchService)
	healthHandler := handler.NewHealthHandler(db)

	authRequired := middleware.Auth(jwtSecret, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/user", authHandler.CurrentUser, authRequired)
	e.POST("/auth/register", authHandler.Register, authRequired, adminOnly)

	// --- Cases ---
	cases := e.Group("/cases", authRequired)
	cases.GET("", caseHandler.List)
	cases.GET("/:id", caseHandler.Get)
	cases.POST("", caseHandler.Create, adminOnly)
	cases.PUT("/:id", caseHandler.Update, adminOnly)
	cases.DELETE("/:id", caseHandler.Delete, adminOnly)

	// --- Customers ---
	customers := e.Group("/customers", authRequired)
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.GET("/case/:case_id", customerHandler.ListByCase)
	customers.POST("", customerHandler.Create, adminOnly)
	customers.PUT("/:id", customerHandler.Update, adminOnly)
	customers.DELETE("/:id", customerHandler.Delete, adminOnly)

	// --- Investigations ---
	investigations := e.Group("/investigations", authRequired)
	investigations.GET("", investigationHandler.List)
	investigations.GET("/:id", investigationHandler.Get)
	investigations.GET("/case/:case_id", investigationHandler.ListByCase)
	investigations.POST("", investigationHandler.Create, adminOnly)
	investigations.PUT("/:id", investigationHandler.Update, adminOnly)
	investigations.DELETE("/:id", investigationHandler.Delete, adminOnly)

	// --- Targets ---
	targets := e.Group("/targets", authRequired)
	targets.GET("", targetHandler.List)
	targets.GET("/:id", targetHandler.Get)
	targets.GET("/investigation/:investigation_id", targetHandler.ListByInvestigation)
	targets.POST("", targetHandler.Create, adminOnly)
	targets.PUT("/:id", targetHandler.Update, adminOnly)
	targets.DELETE("/:id", targetHandler.Delete, adminOnly)

	// --- Search ---
	e.POST("/search", searchHandler.Search, authRequired)

	return e
}
