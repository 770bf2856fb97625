package routes

import (
	"fmt"
	"net/http"

	"saas-portal-backend/internal/api/handlers"
	"saas-portal-backend/internal/api/middleware"
	"saas-portal-backend/internal/auth"
	"saas-portal-backend/internal/config"
	"saas-portal-backend/internal/metrics"
	"saas-portal-backend/internal/repository"
	"saas-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, m *metrics.Metrics) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(m))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	identityRepo := repository.NewIdentityRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	appModuleRepo := repository.NewAppModuleRepository(db)
	orgModuleRepo := repository.NewOrgModuleRepository(db)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), identityRepo)
	if err != nil {
		return nil, fmt.Errorf("initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize services
	registrationService, err := service.NewRegistrationService(
		authService,
		profileRepo,
		organizationRepo,
		validator,
		service.NewRegistrationConfig(cfg),
		m,
	)
	if err != nil {
		return nil, fmt.Errorf("initialize registration service: %w", err)
	}
	teamService := service.NewTeamService(profileRepo, inviteRepo, validator, m)
	entitlementService := service.NewEntitlementService(
		profileRepo,
		organizationRepo,
		appModuleRepo,
		orgModuleRepo,
		service.NewEntitlementCache(),
		m,
	)
	profileService := service.NewProfileService(profileRepo, organizationRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	teamHandler := handlers.NewTeamHandler(teamService)
	adminHandler := handlers.NewAdminHandler(entitlementService)
	meHandler := handlers.NewMeHandler(profileService, entitlementService)

	// Health check routes
	registerHealthRoutes(router, healthHandler)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Public auth routes are rate limited per client IP
	authLimiter := middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerWindow: cfg.RateLimitAuthRequests,
		Window:            cfg.RateLimitAuthWindow(),
		Burst:             cfg.RateLimitAuthBurst,
	})
	public := router.Group("/api/v1/auth")
	public.Use(authLimiter)
	{
		public.POST("/register", registrationHandler.Register)
		public.POST("/sign-in", authHandler.SignIn)
	}

	// API v1 routes - All other endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.POST("/auth/sign-out", authHandler.SignOut)

		me := v1.Group("/me")
		{
			me.GET("", meHandler.GetMe)
			me.GET("/modules", meHandler.GetMyModules)
		}

		team := v1.Group("/team")
		{
			team.GET("", teamHandler.ListTeam)
			team.POST("/invites", teamHandler.Invite)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/console", adminHandler.GetConsole)
			admin.POST("/organizations/:id/modules/:key/toggle", adminHandler.ToggleModule)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	registerHealthRoutes(router, handlers.NewHealthHandler(db))
	return router
}

func registerHealthRoutes(router *gin.Engine, h *handlers.HealthHandler) {
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)
}
