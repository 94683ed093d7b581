package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"armory/core/loader"
	"armory/core/logger"
	"armory/core/middleware/auth"
	"armory/core/middleware/rayid"
	"armory/feature/bones"
	"armory/feature/equipment"
	"armory/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "armory/docs/swagger"
)

// @title Armory API
// @version 1.0
// @description Equipment catalog, equipment sessions and bone resolution for character rigs.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the armory server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		logg := d.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := d.withStorage(); err != nil {
			return err
		}

		// A malformed catalog is a configuration error: fail fast.
		catalog, err := d.catalog.Catalog(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		logg.Info("Catalog loaded", zap.String("source", d.cfg.Catalog.Source), zap.Int("items", catalog.Len()))

		d.withDatabase()
		store, err := d.sessionStore()
		if err != nil {
			return err
		}
		if store == nil {
			logg.Info("Sessions are kept in memory only")
		}

		resolver := bones.NewResolver(nil, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           d.cfg.Server.Timeout(),
			WriteTimeout:          d.cfg.Server.Timeout(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(equipment.NewFeature(d.catalog, resolver, store, logg))
		mgr.Register(bones.NewFeature(resolver, logg))
		mgr.Register(integrity.NewFeature(d.catalog, resolver.Aliases(), d.client, d.cfg.Storage.Bucket, logg, d.db))

		// RayID must be first to trace everything.
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

		// Swagger documentation stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		if d.cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{ApiKey: d.cfg.Server.ApiKey}))
		} else {
			logg.Warn("API key is empty, authentication is disabled")
		}

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", d.cfg.Server.Address()))
			errCh <- app.Listen(d.cfg.Server.Address())
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
