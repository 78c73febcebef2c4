package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-api/adapters/http"
	"github.com/khoahotran/portfolio-api/adapters/media_storage"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	blogUC "github.com/khoahotran/portfolio-api/internal/application/usecase/blog"
	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	healthUC "github.com/khoahotran/portfolio-api/internal/application/usecase/health"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/portfolio-api/internal/application/usecase/project"
	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/tracing"
)

const serviceName = "portfolio-api"

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	appLogger.Info("Starting Portfolio API Server...", zap.String("env", cfg.App.Env), zap.String("version", cfg.App.Version))

	if cfg.Auth.JWTSecret == "" {
		appLogger.Fatal("JWT secret is not configured", nil)
	}

	shutdownTracer, err := tracing.NewTracerProvider(cfg, appLogger, serviceName)
	if err != nil {
		appLogger.Fatal("Cannot init tracer", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			appLogger.Error("Failed to shutdown tracer", err)
		}
	}()

	// Infrastructure
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	var sessions service.SessionStore
	var feedCache service.FeedCache
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Redis", err)
		}
		defer redisClient.Close()
		sessions = persistence.NewRedisSessionStore(redisClient)
		feedCache = persistence.NewRedisFeedCache(redisClient)
	} else {
		appLogger.Warn("Redis is not configured: logout revocation and feed caching are disabled")
	}

	events := service.NewNopPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		events = kafkaClient
	} else {
		appLogger.Warn("Kafka is not configured: content events are dropped")
	}

	var uploader service.Uploader
	if cfg.Cloudinary.CloudName != "" {
		uploader, err = media_storage.NewCloudinaryAdapter(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize uploader", err)
		}
	} else {
		appLogger.Warn("Cloudinary is not configured: image uploads are disabled")
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	blogRepo := persistence.NewPostgresBlogRepo(dbPool, appLogger)

	// Use Cases
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	folder := cfg.Cloudinary.Folder
	blogUseCase := blogUC.NewBlogUseCase(blogRepo, events, uploader, folder, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Auth: httpAdapter.NewAuthHandler(
			authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger),
			authUC.NewLogoutUseCase(sessions, appLogger),
			appLogger,
		),
		Profile:    httpAdapter.NewProfileHandler(profileUC.NewProfileUseCase(profileRepo, userRepo, events, uploader, folder, appLogger), appLogger),
		Project:    httpAdapter.NewProjectHandler(projectUC.NewProjectUseCase(projectRepo, events, uploader, folder, appLogger), appLogger),
		Experience: httpAdapter.NewExperienceHandler(experienceUC.NewExperienceUseCase(experienceRepo, events, appLogger), appLogger),
		Education:  httpAdapter.NewEducationHandler(educationUC.NewEducationUseCase(educationRepo, events, appLogger), appLogger),
		Skill:      httpAdapter.NewSkillHandler(skillUC.NewSkillUseCase(skillRepo, events, appLogger), appLogger),
		Blog:       httpAdapter.NewBlogHandler(blogUseCase, appLogger),
		RSS: httpAdapter.NewRSSHandler(
			blogUC.NewRSSUseCase(blogUseCase, feedCache, cfg.Site.Title, cfg.Site.BaseURL, appLogger),
			appLogger,
		),
		Health: httpAdapter.NewHealthHandler(
			healthUC.NewHealthUseCase(persistence.NewDatabaseProbe(dbPool), cfg.App.Version, appLogger),
		),
	}

	router := httpAdapter.NewRouter(
		httpAdapter.RouterConfig{ServiceName: serviceName, Verbose: !cfg.IsProduction()},
		handlers, jwtSvc, sessions, appLogger,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
