package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/linkbio/internal/circuit"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Runs the circuit background headless and outputs line statistics as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		frames, _ := cmd.Flags().GetInt("frames")
		if frames < 0 {
			return fmt.Errorf("--frames must not be negative, got %d", frames)
		}

		bg := cfg.Background
		field := circuit.NewField(float64(bg.Width), float64(bg.Height), newRand(bg.Seed))
		for i := 0; i < frames; i++ {
			field.Frame(nil)
		}
		logger.WithField("frames", frames).Debug("Simulation complete")

		summary, err := field.Stats()
		if err != nil {
			return err
		}
		jsonData, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	addSurfaceFlags(simulateCmd)
	simulateCmd.Flags().Int("frames", 600, "Number of frames to step")
}
