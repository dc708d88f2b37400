package main

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/labela/labela-control/config"
	"github.com/labela/labela-control/internal/auth"
	"github.com/labela/labela-control/internal/pkg/cli"
	"github.com/labela/labela-control/internal/pkg/httpclient"
	"github.com/labela/labela-control/internal/pkg/i18n"
	"github.com/labela/labela-control/internal/pkg/logger"
	"github.com/labela/labela-control/internal/sale/composer"

	authH "github.com/labela/labela-control/internal/auth/handler"
	authRepoPkg "github.com/labela/labela-control/internal/auth/repository"
	authUCPkg "github.com/labela/labela-control/internal/auth/usecase"

	custH "github.com/labela/labela-control/internal/customer/handler"
	custRepoPkg "github.com/labela/labela-control/internal/customer/repository"
	custUCPkg "github.com/labela/labela-control/internal/customer/usecase"

	prodH "github.com/labela/labela-control/internal/product/handler"
	prodRepoPkg "github.com/labela/labela-control/internal/product/repository"
	prodUCPkg "github.com/labela/labela-control/internal/product/usecase"

	saleH "github.com/labela/labela-control/internal/sale/handler"
	saleRepoPkg "github.com/labela/labela-control/internal/sale/repository"
	saleUCPkg "github.com/labela/labela-control/internal/sale/usecase"

	suppH "github.com/labela/labela-control/internal/supplier/handler"
	suppRepoPkg "github.com/labela/labela-control/internal/supplier/repository"
	suppUCPkg "github.com/labela/labela-control/internal/supplier/usecase"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer func() {
		_ = appLogger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Initialize i18n
	translator, err := i18n.NewTranslator(cfg.Locale.Language)
	if err != nil {
		appLogger.Error("could not load locales", zap.Error(err))
		return exitFailure
	}
	notifier := cli.NewNotifier(os.Stdout, os.Stderr, translator, appLogger)

	// 4. Restore Session
	sessionRepo, closeSession, err := newSessionRepository(ctx, cfg)
	if err != nil {
		appLogger.Error("could not open session storage",
			zap.String("backend", cfg.Session.Backend),
			zap.Error(err),
		)
		return exitFailure
	}
	defer closeSession()

	store := auth.NewStore(sessionRepo, appLogger)
	if err := store.Restore(ctx); err != nil {
		appLogger.Warn("starting signed out", zap.Error(err))
	}

	// 5. Initialize HTTP Client
	baseURL, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		appLogger.Error("invalid API_BASE_URL", zap.String("url", cfg.API.BaseURL), zap.Error(err))
		return exitFailure
	}
	client := httpclient.NewClient(&http.Client{Timeout: cfg.API.Timeout}, *baseURL, store, appLogger)

	// 6. Initialize Repositories
	authRepo := authRepoPkg.NewRESTRepository(client)
	custRepo := custRepoPkg.NewRESTRepository(client)
	suppRepo := suppRepoPkg.NewRESTRepository(client)
	prodRepo := prodRepoPkg.NewRESTRepository(client)
	saleRepo := saleRepoPkg.NewRESTRepository(client)

	// 7. Initialize UseCases
	authUC := authUCPkg.NewAuthUseCase(authRepo, store, appLogger)
	custUC := custUCPkg.NewCustomerUseCase(custRepo, appLogger)
	suppUC := suppUCPkg.NewSupplierUseCase(suppRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	saleUC := saleUCPkg.NewSaleUseCase(saleRepo, appLogger)

	// 8. Initialize Handlers
	authHandler := authH.NewAuthHandler(authUC, notifier, appLogger)
	custHandler := custH.NewCustomerHandler(custUC, notifier, appLogger)
	suppHandler := suppH.NewSupplierHandler(suppUC, notifier, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, notifier, appLogger)
	saleHandler := saleH.NewSaleHandler(saleUC, prodUC, composer.New(saleUC, appLogger), notifier, appLogger)

	a := &app{
		store: store,
		n:     notifier,
		public: map[string]cli.Action{
			"login":  authHandler.Login,
			"logout": authHandler.Logout,
			"whoami": authHandler.WhoAmI,
		},
		private: map[string]cli.Action{
			"customers":       custHandler.Run,
			"suppliers":       suppHandler.Run,
			"products":        prodHandler.Run,
			"sales":           saleHandler.Run,
			"payment-methods": saleHandler.PaymentMethods,
		},
	}
	return a.run(ctx, args)
}

func newSessionRepository(ctx context.Context, cfg *config.Config) (auth.SessionRepository, func(), error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = redisClient.Close()
			return nil, nil, err
		}
		return authRepoPkg.NewRedisRepository(redisClient, cfg.Session.RedisKey), func() { _ = redisClient.Close() }, nil
	default:
		db, err := authRepoPkg.OpenSQLite(ctx, cfg.Session.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return authRepoPkg.NewSQLiteRepository(db), func() { _ = db.Close() }, nil
	}
}
