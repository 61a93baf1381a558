package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ship-registry/core/config"
	"ship-registry/core/database"
	"ship-registry/core/loader"
	"ship-registry/core/logger"
	"ship-registry/core/metrics"
	"ship-registry/core/middleware/auth"
	"ship-registry/core/middleware/rayid"
	"ship-registry/feature/fleet"
	"ship-registry/feature/fleet/snapshot"
	"ship-registry/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "ship-registry/docs/swagger"
)

// @title Ship Registry API
// @version 1.0
// @description API for the reconciled ship collection of a player.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ship registry server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional, only used by the schema check)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to export database", zap.String("driver", cfg.Database.Driver))
		}

		// 4. Snapshot source and classifier
		source, client, err := newSource(cfg)
		if err != nil {
			logg.Fatal("Failed to create snapshot source", zap.Error(err))
		}
		cls, err := newClassifier(cfg)
		if err != nil {
			logg.Fatal("Failed to load classifier", zap.Error(err))
		}

		m := metrics.New()
		snapLoader := snapshot.NewLoader(source, cfg.Snapshot.Layout(), logg)
		fleetSvc, err := fleet.NewService(snapLoader, cls, cfg.Snapshot, m, logg)
		if err != nil {
			logg.Fatal("Failed to create fleet service", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			ReadTimeout:           time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
			WriteTimeout:          time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(fleet.NewFeature(fleetSvc))
		mgr.Register(integrity.NewFeature(integrity.NewService(client, cfg.Storage.Bucket, source, cfg.Snapshot.Layout(), db, logg)))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", m.Handler())

		// 4. Auth (Protect API)
		if !cfg.Server.AuthEnabled() {
			logg.Warn("API key not set, the API is unprotected")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger", "/metrics"}}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
