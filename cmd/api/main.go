package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobseeker-backend/config"
	_ "go-jobseeker-backend/docs" // Important for Swagger
	"go-jobseeker-backend/internal/delivery/http/middleware"
	v1 "go-jobseeker-backend/internal/delivery/http/v1"
	"go-jobseeker-backend/internal/repository/postgres"
	"go-jobseeker-backend/internal/usecase"
	"go-jobseeker-backend/pkg/database"
	"go-jobseeker-backend/pkg/logger"
	"go-jobseeker-backend/pkg/redis"
	"go-jobseeker-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// @title           Jobseeker Backend API
// @version         1.0
// @description     CRUD API over jobseeker profiles.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting jobseeker backend", "port", cfg.Port)
	gin.SetMode(cfg.GinMode)

	accessLog := middleware.NewAccessLogger()
	defer func() { _ = accessLog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, database.PoolConfig{
		URL:            cfg.DBUrl,
		MaxConns:       int32(cfg.DBMaxConns),
		MinConns:       int32(cfg.DBMinConns),
		SimpleProtocol: cfg.DBSimpleProtocol,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	db := database.NewQuerier(dbPool)
	if cfg.DBAutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			logger.Log.Error("Failed to apply schema", "error", err)
			os.Exit(1)
		}
	}

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting in memory", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// 5. Setup Repositories & UseCases
	jobseekerRepo := postgres.NewJobseekerRepository(db)
	jobseekerUC := usecase.NewJobseekerUsecase(jobseekerRepo, validation.New())

	var redisPinger usecase.Pinger
	if redisClient != nil {
		redisPinger = usecase.PingFunc(func(ctx context.Context) error {
			return redis.HealthCheck(ctx, redisClient)
		})
	}
	healthUC := usecase.NewHealthUsecase(db, redisPinger)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobseekerUC:  jobseekerUC,
		HealthUC:     healthUC,
		Config:       cfg,
		Logger:       logger.Log,
		AccessLogger: accessLog,
		Redis:        redisClient,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server stopped with error", "error", err)
	}

	logger.Log.Info("Server exiting")
}
