package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/eisla/eisla/internal/engine"
	"github.com/eisla/eisla/internal/project"
)

// compareCommand creates the compare command: every annealing profile run
// against one design across several seeds.
func (c *CLI) compareCommand() *cobra.Command {
	var (
		seeds    int
		baseSeed int64
	)

	cmd := &cobra.Command{
		Use:   "compare <design>",
		Short: "Compare annealing profiles on one design",
		Long: `Compare places the design once per profile and seed and aggregates
the final scores. Seeds derive from the base seed by offset, so the whole
comparison reproduces exactly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			design, err := c.loadDesign(args[0])
			if err != nil {
				return err
			}
			placer, err := c.newPlacer()
			if err != nil {
				return err
			}

			custom, err := project.LoadCustomProfilesFromDefault()
			if err != nil {
				c.Logger.Warn("custom profiles unreadable, comparing built-ins only", "err", err)
				custom = nil
			}
			scenarios := engine.ScenariosFromProfiles(project.MergedProfiles(custom))

			results := placer.CompareProfiles(cmd.Context(), design, scenarios, c.pickSeed(cmd, baseSeed), seeds)
			fmt.Println(renderComparison(results))
			return nil
		},
	}

	cmd.Flags().IntVar(&seeds, "seeds", 3, "seeds per profile")
	cmd.Flags().Int64Var(&baseSeed, "seed", 0, "base PRNG seed")

	return cmd
}

// renderComparison formats the comparison table. The row with the lowest
// best score is highlighted; scores are penalties, lower is better.
func renderComparison(results []engine.ComparisonResult) string {
	if len(results) == 0 {
		return styleDim.Render("no profiles to compare")
	}

	bestRow := 0
	for i, r := range results {
		if r.BestFinal < results[bestRow].BestFinal {
			bestRow = i
		}
	}

	cell := lipgloss.NewStyle().PaddingRight(2)
	rows := make([][]string, 0, len(results)+1)
	rows = append(rows, []string{"PROFILE", "RUNS", "MEAN", "STDDEV", "BEST", "SEED", "IMPROVE", "ITER"})
	for _, r := range results {
		rows = append(rows, []string{
			r.Scenario.Name,
			fmt.Sprintf("%d", len(r.Runs)),
			fmt.Sprintf("%.1f", r.MeanFinal),
			fmt.Sprintf("%.1f", r.StdDevFinal),
			fmt.Sprintf("%.1f", r.BestFinal),
			fmt.Sprintf("%d", r.BestSeed),
			fmt.Sprintf("%.1f%%", r.MeanImprovement),
			fmt.Sprintf("%d", r.TotalIterations),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, v := range row {
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	out := styleTitle.Render("Annealing profile comparison") + "\n"
	for ri, row := range rows {
		line := ""
		for i, v := range row {
			line += cell.Width(widths[i] + 2).Render(v)
		}
		switch {
		case ri == 0:
			line = styleHeaderRow.Render(line)
		case ri-1 == bestRow:
			line = styleBestRow.Render(line + " " + iconSuccess)
		}
		out += line + "\n"
	}
	return out
}
