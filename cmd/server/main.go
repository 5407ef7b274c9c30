package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/nirmalvora/padosee-server/config"
	"github.com/nirmalvora/padosee-server/internal/auth"
	"github.com/nirmalvora/padosee-server/internal/email"
	"github.com/nirmalvora/padosee-server/internal/health"
	"github.com/nirmalvora/padosee-server/internal/infrastructure/memory"
	"github.com/nirmalvora/padosee-server/internal/infrastructure/postgres"
	ctxlog "github.com/nirmalvora/padosee-server/internal/log"
	"github.com/nirmalvora/padosee-server/internal/metrics"
	"github.com/nirmalvora/padosee-server/internal/repository"
	httptransport "github.com/nirmalvora/padosee-server/internal/transport/http"
	"github.com/nirmalvora/padosee-server/internal/transport/http/handler"
	"github.com/nirmalvora/padosee-server/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
)

type storage struct {
	users    repository.UserRepository
	requests repository.RequestRepository
	deps     []health.Dependency
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		stop()
		log.Fatalf("storage: %v", err)
	}
	defer store.close()

	hasher := auth.NewBcryptHasher(auth.DefaultCost)
	tokens := auth.NewTokenIssuer([]byte(cfg.JWTKey))
	mailer := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	credentialUsecase := usecase.NewCredentialUsecase(store.users, hasher, tokens, mailer, logger)
	userUsecase := usecase.NewUserUsecase(store.users, hasher)
	requestUsecase := usecase.NewRequestUsecase(store.requests)

	router := httptransport.NewRouter(logger,
		handler.NewAuthHandler(credentialUsecase, logger),
		handler.NewUserHandler(userUsecase, logger),
		handler.NewRequestHandler(requestUsecase, logger),
		tokens,
	)

	metrics.Register()
	checker := health.NewChecker(logger, prometheus.DefaultRegisterer, store.deps...)

	srv := http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage, error) {
	if cfg.Storage == "memory" {
		logger.Warn("using in-memory storage; data is lost on exit")
		mem := memory.NewStore()
		return &storage{users: mem.Users(), requests: mem.Requests(), close: func() {}}, nil
	}

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.DatabaseURL, "up"); err != nil {
			return nil, err
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	return &storage{
		users:    postgres.NewUserRepository(pool),
		requests: postgres.NewRequestRepository(pool),
		deps: []health.Dependency{
			health.PingDependency("postgres", pool),
			{Name: "schema", Check: postgres.SchemaReady(pool)},
		},
		close: pool.Close,
	}, nil
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
