package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"hoteldesk/m/internal/api"
	"hoteldesk/m/internal/config"
	"hoteldesk/m/internal/database"
	"hoteldesk/m/internal/logger"
	"hoteldesk/m/internal/migrations"
	"hoteldesk/m/internal/seed"
	"hoteldesk/m/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db, err := database.Connect(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	if cfg.MenuCSV != "" {
		if _, err := seed.LoadMenu(db, cfg.MenuCSV); err != nil {
			log.Printf("menu seed skipped: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := seed.EnsureAdmin(ctx, db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("admin seed error: %v", err)
	}

	lg := logger.NewLogger("hoteldesk", os.Stdout)
	svc := service.New(db, lg, service.WithLocation(cfg.Location))
	handler := api.New(db, svc, cfg.Secret, lg)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler.Router(cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("server_start", "", "hoteldesk server starting", slog.String("addr", srv.Addr), slog.String("driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		lg.Info("server_stop", "", "shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		lg.Error("server_error", "", "server stopped with error", err)
		os.Exit(1)
	}
}
