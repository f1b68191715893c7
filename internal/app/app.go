package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/wayfarelabs/wayfare/internal/config"
	"github.com/wayfarelabs/wayfare/internal/httpserver"
	"github.com/wayfarelabs/wayfare/internal/httpserver/deps"
	"github.com/wayfarelabs/wayfare/internal/index"
	"github.com/wayfarelabs/wayfare/internal/logger"
	"github.com/wayfarelabs/wayfare/internal/provider"
	"github.com/wayfarelabs/wayfare/internal/redis"
	"github.com/wayfarelabs/wayfare/internal/scheduler"
	redisstore "github.com/wayfarelabs/wayfare/internal/store/redis"
	"github.com/wayfarelabs/wayfare/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	catalog     *index.CatalogIndex
	reloader    *scheduler.CatalogReloader
	janitor     *scheduler.HistoryJanitor
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// In-memory catalog index and Redis store
	catalogIndex := index.NewCatalogIndex()
	store := redisstore.NewStore(redisClient)

	// Candidate pools come from the index, cached through Redis
	candidateProvider := provider.NewCatalogProvider(catalogIndex, store, loggerClient)

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewCatalogReloader(
		cfg.CatalogFile,
		store,
		catalogIndex,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	janitor := scheduler.NewHistoryJanitor(
		store,
		loggerClient,
		cfg.JanitorInterval,
		cfg.HistoryMaxEntries,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		TrustProxy:    cfg.TrustProxy,
		RedisClient:   redisClient,
		CatalogIndex:  catalogIndex,
		Provider:      candidateProvider,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		catalog:     catalogIndex,
		reloader:    reloader,
		janitor:     janitor,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Wayfare v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Wayfare %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start catalog reloader (loads the catalog and starts periodic refresh)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start catalog reloader: %w", err)
	}
	a.logger.Info("catalog reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	// Start history janitor
	a.janitor.Start(ctx)
	a.logger.Info("history janitor started",
		logger.Duration("interval", a.cfg.JanitorInterval),
		logger.Int("max_entries", a.cfg.HistoryMaxEntries))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reloader.Stop()
	a.janitor.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Wayfare stopped cleanly")
	return nil
}
