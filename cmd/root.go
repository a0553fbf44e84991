// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/linkbio/internal/config"
)

// cfg is populated before any subcommand runs.
var cfg config.Config

// flagKeys maps subcommand flags onto config keys. Only the running
// command's flags are bound, so commands may share flag names.
var flagKeys = map[string]string{
	"user":   "github.user",
	"out":    "site.out_dir",
	"mode":   "site.mode",
	"width":  "background.width",
	"height": "background.height",
	"seed":   "background.seed",
}

var rootCmd = &cobra.Command{
	Use:   "linkbio",
	Short: "A personal link-in-bio card with live GitHub activity.",
	Long: `linkbio renders a personal "link in bio" card: a profile header, a list of
social links, an animated circuit background and a widget with a GitHub user's
recent public activity and repositories.

Settings come from built-in defaults, an optional config file (--config or
LINKBIO_CONFIG) and LINKBIO_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.New()
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return fmt.Errorf("failed to bind --%s: %w", name, err)
				}
			}
		}
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(v, path)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newLogger discards everything unless --verbose is set.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a config file (YAML, TOML or JSON)")
}
