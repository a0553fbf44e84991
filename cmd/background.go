package cmd

import (
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/linkbio/internal/circuit"
	"github.com/naka-gawa/linkbio/internal/circuit/screen"
)

var backgroundCmd = &cobra.Command{
	Use:   "background",
	Short: "Opens a window running the animated circuit background",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		bg := cfg.Background
		field := circuit.NewField(float64(bg.Width), float64(bg.Height), newRand(bg.Seed))
		return screen.Run(ctx, screen.Config{
			Title:  cfg.Profile.Name,
			Width:  bg.Width,
			Height: bg.Height,
		}, field, logger)
	},
}

// newRand returns a PCG source; seed 0 means time-based.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func addSurfaceFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 0, "Surface width in pixels (default from config)")
	cmd.Flags().Int("height", 0, "Surface height in pixels (default from config)")
	cmd.Flags().Uint64("seed", 0, "Random seed; 0 picks one from the clock")
}

func init() {
	rootCmd.AddCommand(backgroundCmd)
	addSurfaceFlags(backgroundCmd)
}
