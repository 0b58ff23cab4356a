package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/bumdes-sale/backend/internal/api/handler"
	"github.com/bumdes-sale/backend/internal/api/middleware"
	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/service"
	"github.com/bumdes-sale/backend/internal/infrastructure/db/mongo"
	redisinfra "github.com/bumdes-sale/backend/internal/infrastructure/db/redis"
	"github.com/bumdes-sale/backend/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongodriver.Database, rdb *redis.Client, tokens *token.Manager, statsTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("bumdes"))

	// --- Stores ---
	userRepo := mongo.NewUserRepository(db)
	unitStore := mongo.NewCollection[domain.BusinessUnit](db, mongo.CollUnits)
	productStore := mongo.NewCollection[domain.Product](db, mongo.CollProducts)
	applicationStore := mongo.NewCollection[domain.CapitalApplication](db, mongo.CollApplications)
	newsStore := mongo.NewCollection[domain.News](db, mongo.CollNews)
	reportStore := mongo.NewCollection[domain.FinancialReport](db, mongo.CollReports)
	shuStore := mongo.NewCollection[domain.SHUDistribution](db, mongo.CollSHU)
	messageStore := mongo.NewCollection[domain.ContactMessage](db, mongo.CollMessages)
	resourceStore := mongo.NewCollection[domain.EducationalResource](db, mongo.CollResources)
	documentStore := mongo.NewCollection[domain.Document](db, mongo.CollDocuments)
	statsCache := redisinfra.NewStatsCache(rdb, log)

	// --- Services ---
	authService := service.NewAuthService(userRepo, tokens)
	unitService := service.NewUnitService(unitStore)
	productService := service.NewProductService(productStore)
	applicationService := service.NewApplicationService(applicationStore, log)
	newsService := service.NewNewsService(newsStore)
	financeService := service.NewFinanceService(reportStore, shuStore)
	messageService := service.NewMessageService(messageStore, log)
	resourceService := service.NewResourceService(resourceStore)
	documentService := service.NewDocumentService(documentStore)
	dashboardService := service.NewDashboardService(
		unitStore, productStore, applicationStore, newsStore, messageStore, reportStore, statsCache, statsTTL)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	unitHandler := handler.NewUnitHandler(unitService)
	productHandler := handler.NewProductHandler(productService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	newsHandler := handler.NewNewsHandler(newsService)
	financeHandler := handler.NewFinanceHandler(financeService)
	messageHandler := handler.NewMessageHandler(messageService)
	resourceHandler := handler.NewResourceHandler(resourceService)
	documentHandler := handler.NewDocumentHandler(documentService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// --- Service banner, probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", handler.Root)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Public routes ---
	public := e.Group("/api")

	public.POST("/auth/register", authHandler.Register)
	public.POST("/auth/login", authHandler.Login)

	public.GET("/unit-usaha", unitHandler.List)
	public.GET("/unit-usaha/:id", unitHandler.Get)

	public.GET("/produk", productHandler.List)
	public.GET("/produk/:id", productHandler.Get)

	public.POST("/permodalan/apply", applicationHandler.Submit)
	public.GET("/permodalan/status/:id", applicationHandler.Get)

	public.GET("/berita", newsHandler.List)
	public.GET("/berita/:id", newsHandler.Get)

	public.GET("/transparansi/reports", financeHandler.ListReports)
	public.GET("/transparansi/shu", financeHandler.ListSHU)

	public.POST("/kontak/send", messageHandler.Submit)

	public.GET("/edukasi", resourceHandler.List)
	public.GET("/edukasi/:id", resourceHandler.Get)

	public.GET("/regulasi", documentHandler.List)

	// --- Admin routes: authenticated, admin or operator role ---
	admin := e.Group("/api/admin",
		middleware.Auth(tokens, userRepo),
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleOperator),
	)

	admin.GET("/dashboard/stats", dashboardHandler.Stats)

	admin.POST("/unit-usaha", unitHandler.Create)
	admin.PUT("/unit-usaha/:id", unitHandler.Update)
	admin.DELETE("/unit-usaha/:id", unitHandler.Delete)

	admin.POST("/produk", productHandler.Create)
	admin.PUT("/produk/:id", productHandler.Update)
	admin.DELETE("/produk/:id", productHandler.Delete)

	admin.GET("/permodalan", applicationHandler.ListAll)
	admin.GET("/permodalan/:id", applicationHandler.Get)
	admin.PUT("/permodalan/:id/approve", applicationHandler.Review)

	admin.GET("/berita/all", newsHandler.ListAll)
	admin.POST("/berita", newsHandler.Create)
	admin.PUT("/berita/:id", newsHandler.Update)
	admin.DELETE("/berita/:id", newsHandler.Delete)

	admin.POST("/transparansi/reports", financeHandler.CreateReport)
	admin.PUT("/transparansi/reports/:id", financeHandler.UpdateReport)
	admin.POST("/transparansi/shu", financeHandler.CreateSHU)

	admin.GET("/kontak", messageHandler.ListAll)
	admin.PUT("/kontak/:id/reply", messageHandler.Reply)
	admin.PUT("/kontak/:id/archive", messageHandler.Archive)

	admin.GET("/edukasi/all", resourceHandler.ListAll)
	admin.POST("/edukasi", resourceHandler.Create)
	admin.PUT("/edukasi/:id", resourceHandler.Update)
	admin.DELETE("/edukasi/:id", resourceHandler.Delete)

	admin.POST("/regulasi", documentHandler.Create)
	admin.PUT("/regulasi/:id", documentHandler.Update)
	admin.DELETE("/regulasi/:id", documentHandler.Delete)

	return e
}
