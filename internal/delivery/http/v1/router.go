package v1

import (
	"log/slog"
	"net/http"

	"go-jobseeker-backend/config"
	"go-jobseeker-backend/internal/delivery/http/middleware"
	"go-jobseeker-backend/internal/delivery/http/response"
	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	JobseekerUC  domain.JobseekerUsecase
	HealthUC     usecase.HealthUsecase
	Config       *config.Config
	Logger       *slog.Logger
	AccessLogger *zap.Logger
	Redis        *goredis.Client // optional; nil limits in memory
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.AccessLog(deps.AccessLogger))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.ErrorHandler(deps.Logger))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found")
	})

	// Operational endpoints stay outside the rate limit
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	NewHealthHandler(r, deps.HealthUC)

	limited := r.Group("")
	limited.Use(middleware.RateLimitMiddleware(rateLimitConfig(deps)))
	{
		NewJobseekerHandler(limited, deps.JobseekerUC)
	}

	return r
}

func rateLimitConfig(deps RouterDeps) middleware.RateLimitConfig {
	cfg := middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitRequests,
		deps.Config.RateLimitWindow(),
		deps.Redis,
	)
	cfg.Logger = deps.Logger
	return cfg
}
