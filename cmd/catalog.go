package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"armory/feature/bones"
	"armory/feature/equipment"
	"armory/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List, validate or publish the item catalog",
	Long: `Loads the catalog from the configured source (builtin, file, storage) and
prints it. With --publish the catalog is uploaded to the configured storage
object so a 'storage' catalog source can serve it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		validate, _ := cmd.Flags().GetBool("validate")
		publish, _ := cmd.Flags().GetBool("publish")

		d, err := newDeps()
		if err != nil {
			return err
		}
		defer d.logger.Sync()

		if err := d.withStorage(); err != nil {
			if !validate {
				return err
			}
			// A file catalog is validated while the source is built.
			problems := checks.SplitErrors(err)
			for _, e := range problems {
				d.logger.Error("Catalog error", zap.String("error", e))
			}
			return fmt.Errorf("catalog is invalid (%d errors)", len(problems))
		}

		if validate {
			report := checks.CheckCatalog(ctx, d.catalog, bones.DefaultAliases())
			for _, w := range report.Warnings {
				d.logger.Warn("Catalog warning", zap.String("warning", w))
			}
			if !report.Valid {
				for _, e := range report.Errors {
					d.logger.Error("Catalog error", zap.String("error", e))
				}
				return fmt.Errorf("catalog is invalid (%d errors)", len(report.Errors))
			}
			d.logger.Info("Catalog is valid", zap.Int("items", report.Items))
			return nil
		}

		catalog, err := d.catalog.Catalog(ctx)
		if err != nil {
			return err
		}

		if publish {
			info, err := equipment.PublishCatalog(ctx, d.client, d.cfg.Storage.Bucket, d.cfg.Storage.Region, d.cfg.Catalog.Object, catalog)
			if err != nil {
				return err
			}
			d.logger.Info("Catalog published",
				zap.String("bucket", info.Bucket),
				zap.String("object", info.Key),
				zap.Int64("size", info.Size))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tSLOT\tBONE\tSCALE\tPATH")
		for _, item := range catalog.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%s\n",
				item.Name, item.Type, item.Slot, item.AttachBone, item.EffectiveScale(), item.Path)
		}
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().Bool("validate", false, "Validate the catalog and exit non-zero on errors")
	catalogCmd.Flags().Bool("publish", false, "Upload the catalog to the configured storage object")
}
