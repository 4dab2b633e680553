package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/chapterhouse/pageturn/internal/club/http"
	"github.com/chapterhouse/pageturn/internal/club/service"
	"github.com/chapterhouse/pageturn/internal/club/store"
	"github.com/chapterhouse/pageturn/internal/club/store/drivers/sqlite"
	"github.com/chapterhouse/pageturn/pkg/cryptox"
	"github.com/chapterhouse/pageturn/pkg/jwtx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the club service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db    store.Store
	codec *jwtx.Codec

	// Services
	userService         *service.UserService
	socialService       *service.SocialService
	membershipService   *service.MembershipService
	inviteService       *service.InviteService
	clubService         *service.ClubService
	bookService         *service.BookService
	reviewService       *service.ReviewService
	meetingService      *service.MeetingService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "pageturn",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initSigner(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start invite housekeeping
	app.housekeepingService.Start()

	app.logger.Info("club service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down club service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("club service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initSigner loads the Ed25519 signing key, generating one on first start.
func (app *Application) initSigner() error {
	pemKey, err := jwtx.LoadOrGenerateKeyPEM(app.cfg.SigningKeyFile)
	if err != nil {
		return fmt.Errorf("failed to load signing key: %w", err)
	}

	codec, err := jwtx.NewCodec(app.cfg.Issuer, pemKey)
	if err != nil {
		return fmt.Errorf("failed to initialize token codec: %w", err)
	}
	app.codec = codec

	app.logger.Info("token signer ready", "kid", codec.KID())
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.userService = &service.UserService{
		Store:     app.db,
		Codec:     app.codec,
		Issuer:    app.cfg.Issuer,
		AccessTTL: app.cfg.AccessTokenTTL,
	}

	app.socialService = &service.SocialService{Store: app.db}
	app.membershipService = &service.MembershipService{Store: app.db}
	app.inviteService = &service.InviteService{
		Store:  app.db,
		Codec:  app.codec,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.InviteTokenTTL,
	}
	app.clubService = &service.ClubService{Store: app.db}
	app.bookService = &service.BookService{Store: app.db}
	app.reviewService = &service.ReviewService{Store: app.db}
	app.meetingService = &service.MeetingService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.InviteRetention,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.codec,
		app.cfg.Issuer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.UserService = app.userService
	router.SocialService = app.socialService
	router.MembershipService = app.membershipService
	router.InviteService = app.inviteService
	router.ClubService = app.clubService
	router.BookService = app.bookService
	router.ReviewService = app.reviewService
	router.MeetingService = app.meetingService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
