package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/linkbio/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the profile card as a static site",
	Long: `Writes index.html and its stylesheet into the output directory. In
production mode every asset URL is prefixed with site.base_path so the export
can be served from a sub-path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		exporter, err := site.NewExporter(cfg.Site.Prefix(), logger)
		if err != nil {
			return err
		}
		if err := exporter.Export(cfg.Site.OutDir, cfg.ProfileValue()); err != nil {
			return fmt.Errorf("failed to export site: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s site to %s\n", cfg.Site.Mode, cfg.Site.OutDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("out", "o", "", "Output directory (default from config)")
	exportCmd.Flags().String("mode", "", "development or production (default from config)")
}
