package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eisla/eisla/internal/engine"
	"github.com/eisla/eisla/internal/preview"
)

// placeCommand creates the place command: one placement run without the
// surrounding pipeline stages.
func (c *CLI) placeCommand() *cobra.Command {
	var (
		seed    int64
		profile string
		budget  float64
		output  string
	)

	cmd := &cobra.Command{
		Use:   "place <design>",
		Short: "Place a design's components and write placement.json",
		Long: `Place runs the annealing optimizer on one design and writes the
placement document plus an SVG preview. Designs are JSON documents; CSV
and Excel part lists are imported on the fly.

The optimizer is an anytime algorithm: it returns the best layout found
within the time budget, never worse than its starting point.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			design, err := c.loadDesign(args[0])
			if err != nil {
				return err
			}
			prof, err := c.resolveProfile(profile)
			if err != nil {
				return err
			}
			settings := prof.Settings
			if cmd.Flags().Changed("budget") {
				settings.TimeBudgetSec = budget
			}

			placer, err := c.newPlacer()
			if err != nil {
				return err
			}
			runSeed := c.pickSeed(cmd, seed)
			result := placer.Place(cmd.Context(), engine.Request{
				Design:   design,
				Settings: settings,
				Seed:     runSeed,
			})

			if err := os.MkdirAll(output, 0755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			placementPath := filepath.Join(output, "placement.json")
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(placementPath, data, 0644); err != nil {
				return err
			}
			previewPath := filepath.Join(output, "preview.svg")
			svg := preview.NewRenderer(c.Logger).Render(result, nil)
			if err := os.WriteFile(previewPath, []byte(svg), 0644); err != nil {
				return err
			}

			printSuccess("placed %d components on %gx%g mm (profile %s, seed %d)",
				len(result.Components), result.Board.WidthMM, result.Board.HeightMM, prof.Name, runSeed)
			printDetail("score %.1f %s %.1f (%.1f%% better, %d iterations)",
				result.Score.Initial, iconArrow, result.Score.Final,
				result.Score.ImprovementPct, result.Iterations)
			printDetail("board utilization %.1f%%", result.Utilization())
			printFile(placementPath)
			printFile(previewPath)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed (identical seeds reproduce runs exactly)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "annealing profile (fast, balanced, thorough or a custom name)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "wall-clock budget in seconds, overrides the profile")
	cmd.Flags().StringVarP(&output, "output", "o", ".", "output directory")

	return cmd
}
