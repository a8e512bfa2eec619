// Package main - точка входа для API сервера DNA Coaching Hub.
//
// Сервер обслуживает пятиэтапную диагностику «предпринимательской ДНК»:
// проверку права на повторное прохождение, приём полного набора ответов,
// классификацию и выдачу коучингового профиля.
//
// Архитектура следует принципам Clean Architecture и DDD:
// - Domain: чистая логика классификации без внешних зависимостей
// - Application: оркестрация use cases (Commands/Queries)
// - Infrastructure: Postgres, Redis, event bus, identity
// - Interface: HTTP endpoints
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dna-hub/dna-coaching-hub/config"

	// Domain layer
	"github.com/dna-hub/dna-coaching-hub/internal/domain/assessment"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"

	// Application layer
	"github.com/dna-hub/dna-coaching-hub/internal/application/command"
	"github.com/dna-hub/dna-coaching-hub/internal/application/query"

	// Infrastructure layer
	identityinfra "github.com/dna-hub/dna-coaching-hub/internal/infrastructure/identity"
	"github.com/dna-hub/dna-coaching-hub/internal/infrastructure/messaging"
	"github.com/dna-hub/dna-coaching-hub/internal/infrastructure/persistence/postgres"
	"github.com/dna-hub/dna-coaching-hub/internal/infrastructure/persistence/redis"

	// Interface layer
	httpserver "github.com/dna-hub/dna-coaching-hub/internal/interface/http"

	// Packages
	"github.com/dna-hub/dna-coaching-hub/pkg/circuitbreaker"
	"github.com/dna-hub/dna-coaching-hub/pkg/logger"
	"github.com/dna-hub/dna-coaching-hub/pkg/timeutil"
)

func main() {
	// Создаём корневой контекст с возможностью отмены
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запускаем приложение
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. НАСТРОЙКА ЛОГИРОВАНИЯ
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg)
	log.Info("starting DNA Coaching Hub API",
		"env", cfg.App.Environment,
		"version", cfg.App.Version,
		"debug", cfg.App.Debug,
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ПОДКЛЮЧЕНИЕ К БАЗЕ ДАННЫХ (PostgreSQL/Supabase)
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("connecting to database...")
	dbConn, err := postgres.NewConnectionFromURL(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		log.Info("closing database connection...")
		dbConn.Close()
	}()

	if err := dbConn.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	log.Info("database connection established")

	// ─────────────────────────────────────────────────────────────────────────
	// 4. ЗАПУСК МИГРАЦИЙ
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("running database migrations...")
	migrator := postgres.NewMigrator(dbConn)
	if err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. ИНИЦИАЛИЗАЦИЯ REDIS (опционально)
	// ─────────────────────────────────────────────────────────────────────────
	var redisCache *redis.Cache
	if !cfg.Redis.Disabled {
		log.Info("connecting to Redis...")
		redisCfg := redis.DefaultConfig()
		redisCfg.Host = cfg.Redis.Host
		redisCfg.Port = cfg.Redis.Port
		redisCfg.Password = cfg.Redis.Password
		redisCfg.DB = cfg.Redis.DB
		redisCfg.PoolSize = cfg.Redis.PoolSize
		redisCfg.MinIdleConns = cfg.Redis.MinIdleConns
		redisCfg.DialTimeout = cfg.Redis.DialTimeout
		redisCfg.ReadTimeout = cfg.Redis.ReadTimeout
		redisCfg.WriteTimeout = cfg.Redis.WriteTimeout

		redisCache, err = redis.NewCache(redisCfg)
		if err != nil {
			log.Warn("failed to connect to Redis, caching and sessions degraded", "error", err)
			redisCache = nil
		} else {
			defer redisCache.Close()
			log.Info("Redis connection established")
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 6. ЗАГРУЗКА КАТАЛОГА ВОПРОСОВ И ДОМЕННЫХ СЕРВИСОВ
	// ─────────────────────────────────────────────────────────────────────────
	catalog, err := assessment.NewCatalog(assessment.DefaultCatalogData())
	if err != nil {
		return fmt.Errorf("failed to load question catalog: %w", err)
	}
	log.Info("question catalog loaded", "required_answers", catalog.RequiredAnswerCount())

	gate := assessment.NewGate(cfg.Engine.RetakeWindow)
	clock := timeutil.NewSystemClock()

	// ─────────────────────────────────────────────────────────────────────────
	// 7. ИНИЦИАЛИЗАЦИЯ ХРАНИЛИЩА РЕЗУЛЬТАТОВ
	// ─────────────────────────────────────────────────────────────────────────
	resultRepo := postgres.NewResultRepository(dbConn)
	var store assessment.ResultStore = resultRepo
	var resultCache *redis.ResultCache
	if redisCache != nil && cfg.Features.CachingEnabled() {
		log.Info("enabling result cache decorator")
		resultCache = redis.NewResultCache(store, redisCache, gate.Window(),
			func(name string, from, to circuitbreaker.State) {
				log.Warn("circuit breaker state change",
					"breaker", name, "from", from.String(), "to", to.String())
			})
		store = resultCache
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 8. ИНИЦИАЛИЗАЦИЯ EVENT BUS
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("initializing event bus...")
	localBus := messaging.NewInMemoryEventBus(messaging.InMemoryEventBusConfig{
		AsyncMode:  cfg.Features.AsyncEventsEnabled(),
		MaxWorkers: cfg.Engine.MaxEventWorkers,
		Logger:     log,
	})

	var eventBus shared.EventBus = localBus
	closeBus := localBus.Close
	if redisCache != nil && cfg.Features.RedisEventsEnabled() {
		redisBus, err := messaging.NewRedisEventBus(redisCache.Client(), messaging.RedisEventBusConfig{
			ChannelName: cfg.Engine.EventChannel,
			Local:       localBus,
			Logger:      log,
		})
		if err != nil {
			return fmt.Errorf("failed to create redis event bus: %w", err)
		}
		if err := redisBus.Listen(); err != nil {
			return fmt.Errorf("failed to start event listener: %w", err)
		}
		eventBus = redisBus
		closeBus = redisBus.Close
		log.Info("redis event bus enabled", "channel", cfg.Engine.EventChannel)
	}
	defer func() {
		log.Info("closing event bus...")
		_ = closeBus()
	}()

	// Аудит: каждое доменное событие попадает в лог.
	_ = eventBus.SubscribeAll(func(event shared.Event) error {
		log.Info("domain event",
			"type", event.EventType(),
			"aggregate_id", event.AggregateID(),
		)
		return nil
	})

	// ─────────────────────────────────────────────────────────────────────────
	// 9. ИНИЦИАЛИЗАЦИЯ IDENTITY RESOLVER
	// ─────────────────────────────────────────────────────────────────────────
	masterKeyHash := cfg.Auth.MasterKeyHash
	if !cfg.Features.MasterKeyEnabled() {
		masterKeyHash = ""
	}
	resolver := identityinfra.NewResolver(redisCache, masterKeyHash, shared.UserID(cfg.Auth.MasterUserID))

	// ─────────────────────────────────────────────────────────────────────────
	// 10. ИНИЦИАЛИЗАЦИЯ APPLICATION LAYER (Commands, Queries)
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("initializing application layer...")
	submitHandler := command.NewSubmitAssessmentHandler(catalog, store, gate, clock, eventBus)
	eligibilityHandler := query.NewCheckEligibilityHandler(store, gate, clock)
	profileHandler := query.NewGetLatestProfileHandler(store)

	// История всегда читается из Postgres напрямую, минуя кэш.
	var historyHandler *query.GetResultHistoryHandler
	if cfg.Features.ResultHistoryEnabled() {
		log.Info("enabling result history endpoint")
		historyHandler = query.NewGetResultHistoryHandler(resultRepo)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 11. СОЗДАНИЕ HTTP SERVER
	// ─────────────────────────────────────────────────────────────────────────
	log.Info("initializing HTTP server...")

	httpConfig := httpserver.DefaultConfig()
	httpConfig.Host = cfg.Server.Host
	httpConfig.Port = cfg.Server.Port
	httpConfig.ReadTimeout = cfg.Server.ReadTimeout
	httpConfig.WriteTimeout = cfg.Server.WriteTimeout
	httpConfig.IdleTimeout = cfg.Server.IdleTimeout
	httpConfig.EnableCORS = cfg.Server.EnableCORS
	httpConfig.AllowedOrigins = cfg.Server.AllowedOrigins
	httpConfig.RateLimitPerMinute = cfg.Server.RateLimitPerMinute

	httpDeps := httpserver.Dependencies{
		SubmitAssessmentHandler: submitHandler,
		CheckEligibilityHandler: eligibilityHandler,
		GetLatestProfileHandler: profileHandler,
		GetResultHistoryHandler: historyHandler,
		Resolver:                resolver,
		SessionMinter:           resolver,
		Logger:                  logger.Default(),
		HealthChecker: &healthChecker{
			db:    dbConn,
			cache: redisCache,
		},
	}
	if resultCache != nil {
		httpDeps.CacheInvalidator = resultCache
	}

	httpServer := httpserver.NewServer(httpConfig, httpDeps)

	// ─────────────────────────────────────────────────────────────────────────
	// 12. ЗАПУСК И GRACEFUL SHUTDOWN
	// ─────────────────────────────────────────────────────────────────────────
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server", "address", httpServer.Address())
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	log.Info("DNA Coaching Hub API is running", "address", httpServer.Address())

	// Ожидаем сигнал завершения или ошибку
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		log.Error("service error", "error", err)
		return err
	}

	log.Info("starting graceful shutdown...", "timeout", cfg.App.ShutdownTimeout.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop HTTP server gracefully", "error", err)
		return err
	}

	log.Info("shutdown complete")
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// HEALTH CHECKER
// ══════════════════════════════════════════════════════════════════════════════

// healthChecker проверяет доступность зависимостей для /ready.
type healthChecker struct {
	db    *postgres.Connection
	cache *redis.Cache
}

func (h *healthChecker) Check(ctx context.Context) map[string]error {
	checks := make(map[string]error, 2)
	checks["postgres"] = h.db.Ping(ctx)
	if h.cache != nil {
		checks["redis"] = h.cache.Ping(ctx)
	}
	return checks
}

// ══════════════════════════════════════════════════════════════════════════════
// LOGGING
// ══════════════════════════════════════════════════════════════════════════════

// setupLogger настраивает структурированный логгер приложения.
func setupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Observability.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Observability.LogFormat == "text" || cfg.IsDevelopment() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}
