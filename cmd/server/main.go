package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventr/config"
	_ "eventr/docs"
	"eventr/internal/adapters/auth"
	"eventr/internal/adapters/email"
	deliveryhttp "eventr/internal/delivery/http"
	"eventr/internal/delivery/http/controllers"
	"eventr/internal/delivery/http/middleware"
	"eventr/internal/domain"
	"eventr/internal/repository"
	"eventr/internal/repository/filesystem"
	"eventr/internal/repository/memory"
	"eventr/internal/repository/sqldb"
	"eventr/internal/services"
)

// @title eventr API
// @version 1.0
// @description Events, RSVPs and session-based authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, db, err := openBackend(ctx, cfg)
	if err != nil {
		logger.Error("open storage", "backend", cfg.DataBackend, "err", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	tokens := auth.NewJWTIssuer(cfg.JWTSecret)
	store := repository.NewStore(backend, hasher)

	mailer, err := email.NewMailer(ctx, email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipTLS,
		},
	}, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	userService := services.NewUserService(store, hasher, tokens, cfg.SessionTTL, emailService, logger)
	eventService := services.NewEventService(store)
	attendeeService := services.NewAttendeeService(store, emailService, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx)

	router := deliveryhttp.NewRouter(
		controllers.NewEventController(logger, eventService),
		controllers.NewAttendeeController(logger, attendeeService),
		controllers.NewUserController(logger, eventService, attendeeService),
		controllers.NewAuthController(logger, userService),
		limiter,
	)

	var handler http.Handler = router
	handler = middleware.Authenticate(userService, logger)(handler)
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "port", cfg.Port, "env", cfg.Environment, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "err", err)
	}
	logger.Info("server stopped")
}

// openBackend returns the storage backend selected by DATA_BACKEND. db is
// non-nil for SQL backends and must be closed by the caller.
func openBackend(ctx context.Context, cfg *config.Config) (domain.Backend, *sql.DB, error) {
	switch cfg.DataBackend {
	case "memory":
		return memory.NewBackend(), nil, nil
	case "file":
		b, err := filesystem.NewBackend(cfg.DataDir)
		return b, nil, err
	default:
		pingCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
		defer cancel()
		db, err := sqldb.Open(pingCtx, cfg.DataBackend, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := sqldb.EnsureSchema(pingCtx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return sqldb.NewBackend(db, cfg.DataBackend), db, nil
	}
}
