package v1

import (
	"time"

	"go-jobcrawler-backend/config"
	"go-jobcrawler-backend/internal/delivery/http/middleware"
	"go-jobcrawler-backend/internal/domain"
	"go-jobcrawler-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	HealthUC  usecase.HealthUsecase
	ConfigUC  domain.ConfigUsecase
	ProfileUC domain.ProfileUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.GlobalRateLimitMiddleware(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))

	api := r.Group("/api")

	NewHealthHandler(api, deps.HealthUC)
	NewConfigHandler(api, deps.ConfigUC)
	NewProfileHandler(api, deps.ProfileUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
