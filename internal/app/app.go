package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/EventGate/internal/config"
	"github.com/stpnv0/EventGate/internal/handler"
	"github.com/stpnv0/EventGate/internal/middleware"
	"github.com/stpnv0/EventGate/internal/notification"
	"github.com/stpnv0/EventGate/internal/realtime"
	"github.com/stpnv0/EventGate/internal/repository"
	"github.com/stpnv0/EventGate/internal/router"
	"github.com/stpnv0/EventGate/internal/scheduler"
	"github.com/stpnv0/EventGate/internal/service"
	"github.com/stpnv0/EventGate/migrations"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg          *config.Config
	log          logger.Logger
	db           *dbpg.DB
	redis        *redis.Client
	localLimiter *middleware.LocalLimiter
	httpServer   *http.Server
	scheduler    *scheduler.Scheduler
	listener     *realtime.PGListener
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventGate",
		cfg.App.Env,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if cfg.App.IsProduction() && cfg.App.CronSecret == "" {
		log.Warn("CRON_SECRET is empty in production, /api/cron will reject every call")
	}

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
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

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initLimiter prefers Redis so that every instance shares one budget.
func (a *App) initLimiter() (middleware.Limiter, error) {
	rl := a.cfg.RateLimit

	if !a.cfg.Redis.Enabled() {
		a.localLimiter = middleware.NewLocalLimiter(rl.RPS, rl.Burst)
		a.log.Info("rate limiter: in-process")
		return a.localLimiter, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.Info("rate limiter: redis", logger.String("addr", a.cfg.Redis.Addr))
	return middleware.NewRedisLimiter(client, rl.KeyPrefix, rl.RPS, rl.Burst), nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	tableRepo := repository.NewTableRepo(a.db)
	invitationRepo := repository.NewInvitationRepo(a.db)
	assignmentRepo := repository.NewAssignmentRepo(a.db)
	terminalRepo := repository.NewTerminalRepo(a.db)
	scanRepo := repository.NewScanRepo(a.db)
	systemRepo := repository.NewSystemRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	accessService := service.NewAccessService(terminalRepo)
	systemService := service.NewSystemService(systemRepo, terminalRepo, assignmentRepo, n, a.log, a.cfg.Checks.Grace)

	services := handler.Services{
		Events:      service.NewEventService(eventRepo, tableRepo, invitationRepo, assignmentRepo),
		Tables:      service.NewTableService(tableRepo, eventRepo),
		Invitations: service.NewInvitationService(invitationRepo, eventRepo),
		Assignments: service.NewAssignmentService(assignmentRepo, eventRepo, userRepo),
		Terminals:   service.NewTerminalService(terminalRepo, eventRepo, a.log),
		Access:      accessService,
		Scans:       service.NewScanService(accessService, scanRepo, a.log),
		Users:       service.NewUserService(userRepo),
		System:      systemService,
	}

	a.scheduler = scheduler.New(
		systemService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	hub := realtime.NewHub(a.cfg.Realtime.Buffer)
	a.listener = realtime.NewPGListener(
		a.cfg.Postgres.DSN(),
		a.cfg.Realtime.MinReconnect,
		a.cfg.Realtime.MaxReconnect,
		hub,
		a.log,
	)

	limiter, err := a.initLimiter()
	if err != nil {
		return fmt.Errorf("init rate limiter: %w", err)
	}

	h := handler.NewHandler(services, hub, handler.CronAuth{
		Production: a.cfg.App.IsProduction(),
		Secret:     a.cfg.App.CronSecret,
	})
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		[]ginext.HandlerFunc{middleware.RateLimit(limiter, a.log)},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(middleware.DefaultCORSConfig(a.cfg.CORS.AllowedOrigins)),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
	a.httpServer.RegisterOnShutdown(h.CloseStreams)

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	go func() {
		if err := a.listener.Run(ctx); err != nil {
			a.log.Error("realtime listener exited",
				logger.String("error", err.Error()),
			)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
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

	// open event streams are closed by the handler's shutdown hook
	var errs []error
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")
	}

	if a.localLimiter != nil {
		a.localLimiter.Stop()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close db: %w", err))
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
