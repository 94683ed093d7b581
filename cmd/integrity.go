package cmd

import (
	"context"

	"armory/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks",
	Long:  `Checks the catalog, the presence of every catalog asset in storage, and the session table schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// catalogCheckCmd represents the integrity catalog command
var catalogCheckCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate the item catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// assetsCheckCmd represents the integrity assets command
var assetsCheckCmd = &cobra.Command{
	Use:   "assets",
	Short: "Check that every catalog mesh exists in storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// serverCheckCmd represents the integrity server command
var serverCheckCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the session table schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(catalogCheckCmd, assetsCheckCmd, serverCheckCmd)
}

func runIntegrityChecks(ctx context.Context, runCatalog, runAssets, runServer bool) error {
	d, err := newDeps()
	if err != nil {
		return err
	}
	logg := d.logger
	defer logg.Sync()

	if err := d.withStorage(); err != nil {
		return err
	}
	if runServer {
		d.withDatabase()
	}

	svc := integrity.NewService(d.catalog, nil, d.client, d.cfg.Storage.Bucket, logg, d.db)

	if runCatalog {
		logg.Info("Checking catalog...", zap.String("source", d.cfg.Catalog.Source))
		report := svc.CheckCatalog(ctx)
		if report.Valid {
			logg.Info("Catalog is valid.", zap.Int("items", report.Items))
		} else {
			for _, e := range report.Errors {
				logg.Error("Catalog error", zap.String("error", e))
			}
		}
		for _, w := range report.Warnings {
			logg.Warn("Catalog warning", zap.String("warning", w))
		}
	}

	if runAssets {
		logg.Info("Checking catalog assets...", zap.String("bucket", d.cfg.Storage.Bucket))
		report, err := svc.CheckAssets(ctx)
		if err != nil {
			logg.Error("Asset check failed", zap.Error(err))
		} else if len(report.Missing) == 0 {
			logg.Info("All catalog assets are present.", zap.Int("total", report.Total))
		} else {
			logg.Warn("Missing assets detected",
				zap.Int("total", report.Total),
				zap.Strings("missing", report.Missing))
		}
	}

	if runServer {
		logg.Info("Checking server schema integrity...")
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Server schema matches expected definition.")
		} else {
			logg.Warn("Server schema mismatches found")
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	return nil
}
