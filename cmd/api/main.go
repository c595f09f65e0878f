package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/leavedesk/leave-service/internal/api/http"
	"github.com/leavedesk/leave-service/internal/api/http/handlers"
	"github.com/leavedesk/leave-service/internal/auth"
	"github.com/leavedesk/leave-service/internal/config"
	"github.com/leavedesk/leave-service/internal/events"
	"github.com/leavedesk/leave-service/internal/observability"
	"github.com/leavedesk/leave-service/internal/persistence"
	"github.com/leavedesk/leave-service/internal/repository"
	"github.com/leavedesk/leave-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	balanceRepo := repository.NewBalanceRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notificationService.RegisterHandlers()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:    userRepo,
		BalanceRepo: balanceRepo,
	})
	leaveService := service.NewLeaveService(service.LeaveDependencies{
		LeaveRepo:   leaveRepo,
		BalanceRepo: balanceRepo,
		Dispatcher:  dispatcher,
	})
	dashboardService := service.NewDashboardService(leaveRepo, userRepo, balanceRepo)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo, balanceRepo)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	app.Use(httptransport.RateLimiter(cfg.RateLimit, redis, logger))

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Leaves:         handlers.NewLeaveHandler(leaveService),
		Manager:        handlers.NewManagerHandler(leaveService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
