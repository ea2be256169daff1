package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bulk-seeder/core/loader"
	"bulk-seeder/core/logger"
	"bulk-seeder/core/middleware/auth"
	"bulk-seeder/core/middleware/rayid"
	"bulk-seeder/feature/seeding"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "bulk-seeder/docs/swagger"
)

// @title Bulk Seeder API
// @version 1.0
// @description API for running and inspecting database seeding plans.
// @host localhost:8080
// @BasePath /

var startUploadFlag bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the seeding server",
	Long:  `Starts the HTTP server exposing seeding runs, reports and plan checks.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := bootstrap(context.Background(), startUploadFlag)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer rt.Close(context.Background())
		logg := rt.logger
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(seeding.NewFeature(rt.service))

		// RayID first so every later log line carries it.
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

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
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
	startCmd.Flags().BoolVar(&startUploadFlag, "upload-report", false, "store every run report in the storage bucket")
	RootCmd.AddCommand(startCmd)
}
