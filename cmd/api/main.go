package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/cache"
	"github.com/fhuszti/portfolio-ms-go/internal/config"
	"github.com/fhuszti/portfolio-ms-go/internal/db"
	"github.com/fhuszti/portfolio-ms-go/internal/handler/api"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	cMiddleware "github.com/fhuszti/portfolio-ms-go/internal/middleware"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/renderer"
	"github.com/fhuszti/portfolio-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/portfolio-ms-go/internal/storage"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
	calendarSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/calendar"
	mediaSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/media"
	msuuid "github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	strg := initStorage(ctx, cfg)

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		d := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		defer func() { _ = d.Close() }()
		dispatcher = d
		logger.Info(ctx, "✅  Redis cache and task queue enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured, caching and thumbnails are disabled")
	}

	mediaRepo := mariadb.NewMediaRepository(database.DB)
	eventRepo := mariadb.NewEventRepository(database.DB)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	now := func() time.Time { return time.Now().UTC() }

	r := initRouter(ctx)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", api.HealthHandler(database, now))

		// media catalog
		getMediaSvc := mediaSvc.NewMediaGetter(mediaRepo)
		r.Get("/media", api.ListMediaHandler(mediaSvc.NewMediaLister(mediaRepo)))
		r.With(cMiddleware.WithID()).Get("/media/{id}", api.GetMediaHandler(rendererSvc, getMediaSvc))

		// event calendar
		eventLister := calendarSvc.NewEventLister(eventRepo, mediaRepo)
		r.Get("/calendar", api.ListEventsHandler(eventLister))
		r.Get("/calendar/month/{year}/{month}", api.MonthlyEventsHandler(eventLister))
		r.Get("/calendar/upcoming/limit/{limit}", api.UpcomingEventsHandler(calendarSvc.NewUpcomingEventLister(eventRepo, mediaRepo, now)))
		r.With(cMiddleware.WithID()).Get("/calendar/{id}", api.GetEventHandler(rendererSvc, calendarSvc.NewEventGetter(eventRepo, mediaRepo)))

		// mutations
		r.Group(func(r chi.Router) {
			r.Use(cMiddleware.WithDSTAuth(cfg.JWTPublicKey))

			r.With(httprate.Limit(
				cfg.UploadRateLimit,
				time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					api.WriteError(w, http.StatusTooManyRequests, "Too many uploads, please try again later", nil)
				}),
			)).Post("/media/upload", api.UploadMediaHandler(mediaSvc.NewMediaUploader(mediaRepo, strg, dispatcher, msuuid.NewUUID, now)))
			r.With(cMiddleware.WithID()).Put("/media/{id}", api.UpdateMediaHandler(mediaSvc.NewMediaUpdater(mediaRepo, ca)))
			r.With(cMiddleware.WithID()).Delete("/media/{id}", api.DeleteMediaHandler(mediaSvc.NewMediaDeleter(mediaRepo, strg, ca)))

			r.Post("/calendar", api.CreateEventHandler(calendarSvc.NewEventCreator(eventRepo, mediaRepo, msuuid.NewUUID, now)))
			r.With(cMiddleware.WithID()).Put("/calendar/{id}", api.UpdateEventHandler(calendarSvc.NewEventUpdater(eventRepo, mediaRepo, ca, now)))
			r.With(cMiddleware.WithID()).Delete("/calendar/{id}", api.DeleteEventHandler(calendarSvc.NewEventDeleter(eventRepo, ca)))
		})
	})

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(ctx, db.MariaDbConfig{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.ObjectStore {
	strg, err := storage.New(ctx, cfg.StorageDriver, storage.ConfigFromSettings(cfg))
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise %s storage client: %v", cfg.StorageDriver, err)
		os.Exit(1)
	}
	if err := strg.InitBuckets(ctx); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise buckets: %v", err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
