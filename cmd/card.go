package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/linkbio/internal/tui"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Shows the profile card with live GitHub activity in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		widget, err := newWidget(logger)
		if err != nil {
			return err
		}
		return tui.Run(ctx, tui.New(ctx, cfg.ProfileValue(), widget))
	},
}

func init() {
	rootCmd.AddCommand(cardCmd)
	cardCmd.Flags().StringP("user", "u", "", "GitHub user name (default from config)")
}
