package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"commerce-linker/core/config"
	"commerce-linker/core/forecast"
	"commerce-linker/core/loader"
	"commerce-linker/core/logger"
	"commerce-linker/core/middleware/auth"
	"commerce-linker/core/middleware/rayid"
	"commerce-linker/core/storage"

	"commerce-linker/feature/dataset"
	"commerce-linker/feature/matching"
	"commerce-linker/feature/segments"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "commerce-linker/docs/swagger"
)

// @title Commerce Linker API
// @version 1.0
// @description API for synthetic commerce datasets, session to account matching and audience segments.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the commerce linker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		logg = logg.With(zap.String("server", cfg.Server.Name))
		zap.ReplaceGlobals(logg)

		// Database is optional; without it nothing is persisted.
		var db *gorm.DB
		if conn, err := openDatabase(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}

		// Storage is optional as well; exports answer 503 without it.
		var store storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client failed", zap.Error(err))
		} else {
			store = client
		}

		forecaster := forecast.New(cfg.Forecast, logg)
		if !forecaster.Enabled() {
			logg.Info("Forecast model disabled, using trend fallback")
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			AppName:               cfg.Server.Name,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		datasets := dataset.NewFeature(cfg.Generator, db, store, cfg.Storage, logg)

		mgr := loader.NewManager()
		mgr.Register(datasets)
		mgr.Register(matching.NewFeature(cfg.Matching, datasets.Service(), db, logg))
		mgr.Register(segments.NewFeature(db, forecaster, cfg.Forecast.CacheTTL(), logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

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

		app.Use(auth.New(auth.Config{
			ApiKey:      cfg.Server.ApiKey,
			PublicPaths: []string{"/health", "/metrics", "/swagger/*"},
		}))

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"status":   "ok",
				"server":   cfg.Server.Name,
				"database": db != nil,
				"storage":  store != nil,
				"forecast": forecaster.Enabled(),
			})
		})

		loaded, err := mgr.LoadAll(app.Group("/api"))
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Bool("auth", cfg.Server.AuthEnabled()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
