package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-browser/internal/api/http"
	"github.com/spec-kit/ticket-browser/internal/api/http/handlers"
	"github.com/spec-kit/ticket-browser/internal/config"
	"github.com/spec-kit/ticket-browser/internal/events"
	"github.com/spec-kit/ticket-browser/internal/observability"
	"github.com/spec-kit/ticket-browser/internal/persistence"
	"github.com/spec-kit/ticket-browser/internal/repository"
	"github.com/spec-kit/ticket-browser/internal/service"
	"github.com/spec-kit/ticket-browser/internal/worker"
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

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open ticket store", zap.Error(err), zap.String("driver", cfg.Store.Driver))
	}
	defer store.close()

	if cfg.Store.Seed {
		if err := persistence.SeedSampleTickets(ctx, store.repo, logger); err != nil {
			logger.Fatal("failed to seed tickets", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var cache service.TicketListCache
	if c := persistence.NewTicketCache(redis, cfg.Redis.CacheTTL); c != nil {
		cache = c
	}

	dispatcher := events.NewInMemoryDispatcher()
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: store.repo,
		Cache:      cache,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartEventWorkers(ticketService, notificationService)

	dependencies := map[string]handlers.Pinger{"store": store.pinger}
	if redis != nil {
		dependencies["redis"] = redis
	}

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies, metrics),
		Tickets: handlers.NewTicketsHandler(ticketService),
	})

	go func() {
		logger.Info("ticket api listening", zap.String("addr", cfg.App.Addr()), zap.String("store", cfg.Store.Driver))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

type ticketStore struct {
	repo   repository.TicketRepository
	pinger handlers.Pinger
	close  func()
}

// openStore connects the configured backend and applies its migrations.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ticketStore, error) {
	if cfg.Store.Driver == config.StoreDriverPostgres {
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Store.RunMigrations {
			if err := persistence.RunPostgresMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				pg.Close()
				return nil, err
			}
		}
		return &ticketStore{repo: repository.NewTicketRepository(pg.PoolHandle()), pinger: pg, close: pg.Close}, nil
	}

	db, err := persistence.NewSQLite(ctx, cfg.SQLite, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Store.RunMigrations {
		if err := persistence.RunSQLiteMigrations(ctx, db.Handle(), logger); err != nil {
			db.Close()
			return nil, err
		}
	}
	return &ticketStore{repo: repository.NewSQLiteTicketRepository(db.Handle()), pinger: db, close: db.Close}, nil
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
