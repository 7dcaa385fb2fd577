// Command server runs the ElectroMart inventory web application.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/electromart/inventory/internal/config"
	"github.com/electromart/inventory/internal/db"
	"github.com/electromart/inventory/internal/db/migrations"
	"github.com/electromart/inventory/internal/dbpool"
	"github.com/electromart/inventory/internal/service"
	"github.com/electromart/inventory/internal/store"
	"github.com/electromart/inventory/internal/web"
)

// version is set at build time via -ldflags.
var version = "dev"

const shutdownGrace = 10 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := run(log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(log *logrus.Logger) error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		return err
	}

	base := store.Base{Pool: pool, Log: log}
	itemStore := store.NewItemStore(base)
	categoryStore := store.NewCategoryStore(base)
	changeStore := store.NewChangeStore(base)
	dashboardStore := store.NewDashboardStore(base)

	items := service.NewItemService(itemStore, categoryStore, changeStore, log)
	categories := service.NewCategoryService(categoryStore, itemStore, log)
	changes := service.NewChangeService(changeStore, log)
	dashboard := service.NewDashboardService(dashboardStore, log)

	router := web.NewRouter(&web.RouterDeps{
		Log:           log,
		DB:            pool,
		Items:         items,
		Categories:    categories,
		Changes:       changes,
		Dashboard:     dashboard,
		CORSOrigins:   cfg.CORSOrigins,
		AdminPassword: cfg.AdminPassword.Value(),
		Version:       version,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.WithFields(logrus.Fields{"addr": cfg.Addr(), "version": version}).Info("server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
