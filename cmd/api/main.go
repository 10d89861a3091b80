package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"jobdesk/application"
	"jobdesk/auth"
	"jobdesk/company"
	"jobdesk/config"
	"jobdesk/db"
	"jobdesk/job"
	"jobdesk/logger"
	"jobdesk/user"
	"jobdesk/web"
)

// runningInTTY returns true when stdout is a character device, in which
// case log events are teed to the console.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()

	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer logOut.Sync()

	if cfg.JWTSecret == "" {
		logOut.Warnw("JWT_SECRET is not set, using the insecure development default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logOut.Fatalw("bootstrap database pool", "error", err)
	}
	defer pool.Close()
	logOut.Infow("database online")

	codec := auth.NewCodec(cfg.JWTSecret)

	authSvc := auth.NewService(auth.NewRepository(pool), codec)
	jobSvc := job.NewService(job.NewRepository(pool))
	applySvc := application.NewService(application.NewRepository(pool))
	companySvc := company.NewService(company.NewRepository(pool))
	userSvc := user.NewService(user.NewRepository(pool))

	authHandler := auth.NewHandler(authSvc, cfg.Production(), logOut)
	jobHandler := job.NewHandler(jobSvc, logOut)
	applyHandler := application.NewHandler(applySvc, logOut)
	companyHandler := company.NewHandler(companySvc, logOut)
	userHandler := user.NewHandler(userSvc, logOut)

	gate := auth.NewGate(codec)

	r := chi.NewRouter()
	r.Use(web.RequestID)
	r.Use(web.Logging(logOut))
	r.Use(gate.Middleware)

	r.Mount("/api/auth", authHandler.Routes())
	r.Mount("/api/ads", jobHandler.Routes())
	r.Mount("/api/apply", applyHandler.Routes())
	r.Mount("/api/company", companyHandler.Routes())
	r.Mount("/api/users", userHandler.Routes())
	r.Get("/api/companyOptions", companyHandler.HandleOptions)

	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		if err := pool.Ping(req.Context()); err != nil {
			web.Respond(w, http.StatusServiceUnavailable, map[string]any{"status": "degraded"})
			return
		}
		web.Respond(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logOut.Infow("listening", "address", cfg.Address, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logOut.Fatalw("http server", "error", err)
	}
	logOut.Infow("shutdown complete")
}
