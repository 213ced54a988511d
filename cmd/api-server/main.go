package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"awardshub/database"
	"awardshub/internal/cache"
	"awardshub/internal/config"
	"awardshub/internal/events"
	"awardshub/internal/logging"
	"awardshub/internal/media"
	"awardshub/internal/microservices/http-api/handler"
	"awardshub/internal/microservices/http-api/middleware"
	"awardshub/internal/microservices/http-api/repository"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const (
	limiterSweepInterval = time.Minute
	tokenCleanupInterval = time.Hour
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server_error", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.OpenPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.RunMigrations(pool, logger); err != nil {
		return err
	}

	db, err := database.OpenGorm(pool, logger)
	if err != nil {
		return err
	}

	redisCache, err := cache.NewRedisCache(cfg.RedisURL, cfg.RedisPassword, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		// the site still works from the database alone
		logger.Warn("cache_disabled", "error", err.Error())
		redisCache, _ = cache.NewRedisCache("", "", 0)
	}
	defer redisCache.Close()

	var store media.Store = media.DataURLStore{}
	if cfg.MinIOEndpoint != "" {
		minioStore, err := media.NewMinIOStore(ctx, cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL)
		if err != nil {
			return fmt.Errorf("failed to init object storage: %w", err)
		}
		store = minioStore
	}
	uploader := media.NewUploader(store, cfg.UploadMaxBytes)

	var publisher events.Publisher = events.NewLogPublisher(logger)
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	defer publisher.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	nomineeRepo := repository.NewNomineeRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	contentRepo := repository.NewContentRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	eventRepo := repository.NewEventRepository(db)
	votingConfigRepo := repository.NewVotingConfigRepository(db)
	resultsRepo := repository.NewResultsRepository(pool)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg, logger)
	contentService := service.NewContentService(contentRepo, redisCache, cfg.QueryTimeout/2, publisher, logger)
	votingConfigService := service.NewVotingConfigService(votingConfigRepo, redisCache, publisher, logger)

	bootCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	created, err := contentService.EnsureDefaults(bootCtx)
	if err != nil {
		logger.Warn("content_defaults_incomplete", "created", created, "error", err.Error())
	} else if created > 0 {
		logger.Info("content_defaults_created", "created", created)
	}
	if _, err := votingConfigRepo.Ensure(bootCtx); err != nil {
		cancel()
		return fmt.Errorf("failed to ensure voting config: %w", err)
	}
	cancel()

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	router := handler.NewRouter(handler.Deps{
		Logger:       logger,
		DB:           pool,
		Roles:        userRepo,
		Uploader:     uploader,
		Limiter:      limiter,
		CORSOrigins:  cfg.CORSOrigins,
		QueryTimeout: cfg.QueryTimeout,

		Auth:         authService,
		Categories:   service.NewCategoryService(categoryRepo, publisher, logger),
		Nominees:     service.NewNomineeService(nomineeRepo, categoryRepo),
		Votes:        service.NewVoteService(voteRepo, nomineeRepo, votingConfigRepo, publisher, logger),
		Content:      contentService,
		Academy:      service.NewAcademyService(genreRepo, memberRepo),
		Events:       service.NewEventService(eventRepo),
		Users:        service.NewUserAdminService(userRepo, publisher, logger),
		VotingConfig: votingConfigService,
		Results:      service.NewResultsService(resultsRepo, votingConfigRepo),
		Stats:        service.NewStatsService(statsRepo, logger),
	})

	go runEvery(ctx, limiterSweepInterval, func() {
		if n := limiter.Sweep(); n > 0 {
			logger.Debug("rate_limiter_swept", "removed", n)
		}
	})
	go runEvery(ctx, tokenCleanupInterval, func() {
		cleanupCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		defer cancel()
		n, err := refreshTokenRepo.DeleteExpired(cleanupCtx, time.Now())
		if err != nil {
			logger.Warn("refresh_token_cleanup_failed", "error", err.Error())
			return
		}
		if n > 0 {
			logger.Info("refresh_tokens_cleaned", "removed", n)
		}
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting_http_server", "addr", server.Addr, "env", cfg.GoEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("received_shutdown_signal")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server_stopped_gracefully")
	return nil
}

// runEvery calls fn on every tick until ctx is done.
func runEvery(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}
