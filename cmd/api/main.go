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

	"recruitment-portal/config"
	_ "recruitment-portal/docs" // Important for Swagger
	v1 "recruitment-portal/internal/delivery/http/v1"
	"recruitment-portal/internal/repository/postgres"
	"recruitment-portal/internal/usecase"
	"recruitment-portal/pkg/activity"
	"recruitment-portal/pkg/database"
	"recruitment-portal/pkg/logger"
	"recruitment-portal/pkg/password"
	"recruitment-portal/pkg/redis"
	"recruitment-portal/pkg/security"
	"recruitment-portal/pkg/token"
	"recruitment-portal/pkg/validation"
)

// @title           Recruitment Portal API
// @version         1.0
// @description     Applicant profiles, applications and the recruiter board.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting recruitment portal", "port", cfg.Port)

	activityLog := activity.New("recruitment-portal")
	defer activityLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	if cfg.RunMigrations {
		if err := database.Migrate(ctx, cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.Options{
		SimpleProtocol: cfg.DBSimpleProtocol,
		MaxConns:       cfg.DBMaxConns,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional)
	if err := redis.Initialize(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		}
	} else {
		defer redis.Close()
	}

	// 5. Setup Repositories
	repos := postgres.NewRepositories(dbPool)
	tx := postgres.NewTransactor(dbPool)
	activityLog.SetPersistFunc(postgres.PersistActivity(repos.Activity))

	// 6. Setup UseCases
	hasher, err := token.NewHasher(cfg.Session.Secret)
	if err != nil {
		logger.Log.Error("Missing SESSION_SECRET environment variable", "error", err)
		os.Exit(1)
	}
	passwords := password.NewHasher(cfg.BcryptCost)
	validate := validation.New()

	policy, err := usecase.NewStatusPolicy(cfg.StatusPolicy)
	if err != nil {
		logger.Log.Error("Invalid status policy", "error", err)
		os.Exit(1)
	}

	sessionUC := usecase.NewSessionUsecase(repos.Sessions, hasher, cfg.Session.TTL)
	loginTracker := security.NewLoginTracker(security.LoginTrackerConfig{
		MaxAttempts:   cfg.Login.MaxAttempts,
		AttemptWindow: cfg.Login.AttemptWindow,
		BlockDuration: cfg.Login.BlockDuration,
	})
	authUC := usecase.NewAuthUsecase(tx, repos.Users, sessionUC, passwords, validate, activityLog,
		usecase.WithLoginGuard(loginTracker))
	profileUC := usecase.NewProfileUsecase(tx, repos, validate, activityLog)
	applicationUC := usecase.NewApplicationUsecase(tx, repos, policy, validate, activityLog)
	resetUC := usecase.NewResetUsecase(tx, repos, hasher, passwords, validate, activityLog, cfg.ResetTokenTTL)
	healthUC := usecase.NewHealthUsecase(dbPool.Ping, map[string]usecase.Checker{"redis": redis.HealthCheck})

	go runSessionJanitor(ctx, sessionUC, cfg.Session.PurgeInterval)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		SessionUC:     sessionUC,
		ProfileUC:     profileUC,
		ApplicationUC: applicationUC,
		ResetUC:       resetUC,
		HealthUC:      healthUC,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
