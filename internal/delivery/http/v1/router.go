package v1

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"recruitment-portal/config"
	"recruitment-portal/internal/delivery/http/middleware"
	"recruitment-portal/internal/domain"
	"recruitment-portal/internal/usecase"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	SessionUC     domain.SessionUsecase
	ProfileUC     domain.ProfileUsecase
	ApplicationUC domain.ApplicationUsecase
	ResetUC       domain.ResetUsecase
	HealthUC      usecase.HealthUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	cfg := deps.Config
	window := cfg.RateLimitWindow()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL, cfg.IsProduction())) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestMeta())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window))

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	NewAuthHandler(v1, deps.AuthUC, deps.SessionUC, cfg.IsProduction(), loginLimiter)
	NewResetHandler(v1, deps.ResetUC, loginLimiter)

	// Session protected routes
	protected := v1.Group("")
	protected.Use(middleware.SessionAuth(deps.SessionUC))
	{
		NewProfileHandler(protected, deps.AuthUC)
		NewApplicationHandler(protected, deps.ApplicationUC, deps.ProfileUC)
	}

	recruiter := protected.Group("")
	recruiter.Use(middleware.RequireRole(domain.RoleRecruiter))
	NewAdminHandler(recruiter, deps.ApplicationUC)

	return r
}
