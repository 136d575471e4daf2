package v1

import (
	"net/http"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC           domain.ContactUsecase
	EmailVerificationUC domain.EmailVerificationUsecase
	HealthUC            usecase.HealthUsecase
	Config              *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.SecurityHeadersMiddleware())

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, deps.HealthUC.Check(c.Request.Context()))
	})

	corsGate := middleware.CORSGate(middleware.CORSConfig{
		AllowedOrigins: deps.Config.CORSOrigins(),
		Development:    deps.Config.IsDevelopment(),
	})

	// Public routes
	NewContactHandler(api, deps.ContactUC, corsGate)
	NewEmailVerificationHandler(api, deps.EmailVerificationUC)

	return r
}
