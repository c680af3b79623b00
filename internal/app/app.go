package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/rs/cors"
	"github.com/stpnv0/EventBackend/internal/config"
	"github.com/stpnv0/EventBackend/internal/handler"
	"github.com/stpnv0/EventBackend/internal/middleware"
	"github.com/stpnv0/EventBackend/internal/notification"
	"github.com/stpnv0/EventBackend/internal/repository/mongodb"
	"github.com/stpnv0/EventBackend/internal/repository/postgres"
	"github.com/stpnv0/EventBackend/internal/router"
	"github.com/stpnv0/EventBackend/internal/scheduler"
	"github.com/stpnv0/EventBackend/internal/service"
	"github.com/stpnv0/EventBackend/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	mongo      *mongodb.Store
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventBackend",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	eventRepo, bookingRepo, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(eventRepo, bookingRepo); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (ports.EventRepo, ports.BookingRepo, error) {
	if a.cfg.Storage.Driver == config.StorageDriverMongo {
		if err := a.initMongo(); err != nil {
			return nil, nil, err
		}
		return a.mongo.Events(), a.mongo.Bookings(), nil
	}

	if err := a.initDB(); err != nil {
		return nil, nil, fmt.Errorf("init db: %w", err)
	}

	if err := a.runMigrations(); err != nil {
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	strategy := a.cfg.Postgres.RetryStrategy()
	return postgres.NewEventRepo(a.db, strategy), postgres.NewBookingRepo(a.db, strategy), nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) runMigrations() error {
	if err := postgres.Migrate(a.db.Master); err != nil {
		return err
	}

	a.log.Info("migrations applied successfully")
	return nil
}

func (a *App) initMongo() error {
	store, err := mongodb.Connect(
		context.Background(),
		a.cfg.Mongo.URI,
		a.cfg.Mongo.Database,
		a.cfg.Mongo.ConnectTimeout,
	)
	if err != nil {
		return fmt.Errorf("connecting to mongo: %w", err)
	}

	a.mongo = store
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "mongo connected",
		logger.String("database", a.cfg.Mongo.Database),
	)

	return nil
}

func (a *App) initNotifier() (ports.BookingNotifier, error) {
	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return nil, fmt.Errorf("init telegram: %w", err)
	}
	notifiers := notification.Fanout{tg}

	if a.cfg.Redis.URL == "" {
		a.log.Info("redis url is empty, change feed disabled")
		return notifiers, nil
	}

	opts, err := redis.ParseURL(a.cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	a.redis = redis.NewClient(opts)

	if err = a.redis.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "change feed enabled",
		logger.String("channel", a.cfg.Redis.Channel),
	)

	return append(notifiers, notification.NewRedisPublisher(a.redis, a.cfg.Redis.Channel, a.log)), nil
}

func (a *App) initServices(eventRepo ports.EventRepo, bookingRepo ports.BookingRepo) error {
	n, err := a.initNotifier()
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	capacity := service.NewCapacityEngine(eventRepo, bookingRepo, n, a.log)
	eventService := service.NewEventService(eventRepo, bookingRepo)
	bookingService := service.NewBookingService(bookingRepo, eventRepo, capacity, n, a.log)

	a.scheduler = scheduler.New(
		capacity,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, bookingService, capacity, !a.cfg.Gin.IsRelease())
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.BasicAuth(a.cfg.Auth.Username, a.cfg.Auth.Password, a.cfg.Auth.Realm),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	c := cors.New(cors.Options{
		AllowedOrigins: a.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      c.Handler(r),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	if a.mongo != nil {
		if err := a.mongo.Close(shutdownCtx); err != nil {
			return fmt.Errorf("close mongo: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "mongo connection closed")
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
