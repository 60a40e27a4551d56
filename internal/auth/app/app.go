package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/nativoenglish/lingo/internal/auth/denylist"
	httpapi "github.com/nativoenglish/lingo/internal/auth/http"
	"github.com/nativoenglish/lingo/internal/auth/notify"
	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/internal/auth/store"
	"github.com/nativoenglish/lingo/internal/auth/store/drivers/sqlite"
	"github.com/nativoenglish/lingo/pkg/cryptox"
	"github.com/nativoenglish/lingo/pkg/jwtx"
	"github.com/nativoenglish/lingo/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application wires the auth service together: store, denylist, notifier,
// services and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   jwtx.Signer
	keys     *jwtx.KeySet
	denylist denylist.Denylist
	notifier notify.Notifier

	tokenService        *service.TokenService
	authService         *service.AuthService
	userService         *service.UserService
	passwordService     *service.PasswordService
	twoFactorService    *service.TwoFactorService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "lingo-auth",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, keys, err := initSigningKeys(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.signer = signer
	app.keys = keys

	app.initDenylist()
	app.initNotifier()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops housekeeping and closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied")
	return nil
}

// initDenylist picks redis when configured so revocations are shared across
// replicas, and the in-process cache otherwise.
func (app *Application) initDenylist() {
	if app.cfg.RedisAddr == "" {
		app.denylist = denylist.NewMemory()
		app.logger.Info("token denylist: in-memory")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     app.cfg.RedisAddr,
		Password: app.cfg.RedisPassword,
	})
	app.denylist = denylist.NewRedis(client)
	app.logger.Info("token denylist: redis", "addr", app.cfg.RedisAddr)
}

func (app *Application) initNotifier() {
	if app.cfg.SMTPHost == "" {
		app.notifier = notify.Noop{}
		app.logger.Warn("no SMTP host configured; account emails will be dropped")
		return
	}

	smtp, err := notify.NewSMTP(notify.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		From:     app.cfg.SMTPFrom,
		Username: app.cfg.SMTPUser,
		Password: app.cfg.SMTPPassword,
		TLSMode:  app.cfg.SMTPTLSMode,
	})
	if err != nil {
		// Template parsing only fails on a programming error.
		app.logger.Error("failed to initialize SMTP notifier", "error", err)
		app.notifier = notify.Noop{}
		return
	}
	app.notifier = smtp
	app.logger.Info("SMTP notifier configured", "host", app.cfg.SMTPHost)
}

func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		Signer:     app.signer,
		Verifier:   jwtx.NewVerifierEdDSA(app.keys, app.cfg.Issuer),
		Denylist:   app.denylist,
		Issuer:     app.cfg.Issuer,
		AccessTTL:  app.cfg.AccessTokenTTL,
		RefreshTTL: app.cfg.RefreshTokenTTL,
	}

	otpService := &service.OTPService{
		Store:  app.db,
		Issuer: app.cfg.Issuer,
	}

	app.authService = &service.AuthService{
		Store:    app.db,
		Tokens:   app.tokenService,
		OTP:      otpService,
		Notifier: app.notifier,
	}
	app.userService = &service.UserService{Store: app.db}
	app.passwordService = &service.PasswordService{
		Store:    app.db,
		Tokens:   app.tokenService,
		Notifier: app.notifier,
	}
	app.twoFactorService = &service.TwoFactorService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	app.router = httpapi.NewRouter(app.keys, BuildVersion, app.db, app.logger)
	app.router.TokenService = app.tokenService
	app.router.AuthService = app.authService
	app.router.UserService = app.userService
	app.router.PasswordService = app.passwordService
	app.router.TwoFactorService = app.twoFactorService
	app.router.ApplyRoutes()

	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: app.router,
	}
}
