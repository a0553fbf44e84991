package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/linkbio/internal/domain"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Fetches the GitHub widget snapshot and outputs it as JSON",
	Long: `Fetches a GitHub user's recent public events and most recently updated
repositories exactly as the card's widget does, and prints the resulting view
as JSON. A failed fetch yields empty lists, never an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		tabStr, _ := cmd.Flags().GetString("tab")
		tab, err := domain.ParseTab(tabStr)
		if err != nil {
			return err
		}

		widget, err := newWidget(logger)
		if err != nil {
			return err
		}
		defer widget.Close()

		widget.SetTab(tab)
		widget.Load(cmd.Context())

		// Marshal the view into a pretty-printed JSON string.
		jsonData, err := json.MarshalIndent(widget.Snapshot(time.Now()), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal view to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.Flags().StringP("user", "u", "", "GitHub user name (default from config)")
	activityCmd.Flags().String("tab", string(domain.TabActivity), "Active tab recorded in the output (activity|projects)")
}
