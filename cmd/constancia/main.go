package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/constancia/internal/api"
	"github.com/terraincognita07/constancia/internal/config"
	"github.com/terraincognita07/constancia/internal/docstore"
	"github.com/terraincognita07/constancia/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	location := mustLoadLocation(cfg.TimeZone)
	time.Local = location

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	if err := seedAdmin(store, cfg); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}

	goals := services.WeeklyGoals{
		Contacts: cfg.WeeklyContactGoal,
		Demos:    cfg.WeeklyDemoGoal,
		Plans:    cfg.WeeklyPlanGoal,
	}
	handler := api.NewHandler(store, cfg.SecretKey, location, cfg.CookieSecure, goals)

	app := fiber.New(fiber.Config{
		AppName:               "Constancia",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Constancia listening on http://0.0.0.0:%s (store: %s, tz: %s)", cfg.Port, cfg.StoreBackend, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func openStore(cfg *config.Config) (docstore.Store, error) {
	if cfg.StoreBackend == config.StoreBackendSQLite {
		database, err := docstore.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return docstore.NewSQLiteStore(database), nil
	}
	return docstore.NewFileStore(cfg.DataFile), nil
}

// seedAdmin makes sure the admin account exists before the first request.
func seedAdmin(store docstore.Store, cfg *config.Config) error {
	document, revision, err := store.Load()
	if err != nil {
		return err
	}

	setup := services.NewSetupService(document)
	changed, err := setup.EnsureAdmin(cfg.AdminUser, cfg.AdminPassword, time.Now())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	_, err = store.Save(document, revision)
	return err
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
