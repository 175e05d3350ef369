package cli

import (
	"github.com/spf13/cobra"

	"github.com/eisla/eisla/internal/job"
	"github.com/eisla/eisla/internal/project"
)

// pipelineCommand creates the pipeline command: the full run from design
// to packaged artifacts.
func (c *CLI) pipelineCommand() *cobra.Command {
	var (
		seed          int64
		profile       string
		output        string
		overridesPath string
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "pipeline <design>",
		Short: "Run the full pipeline: validate, place, netlist, schematic, exports",
		Long: `Pipeline runs every stage on one design and writes all artifacts into
a job directory under the workspace root. Blocking validation findings
abort the run unless --force is given.`,
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

			opts := job.Options{
				Settings: prof.Settings,
				Seed:     c.pickSeed(cmd, seed),
				Force:    force,
			}
			if overridesPath != "" {
				overrides, err := project.LoadOverrides(overridesPath)
				if err != nil {
					return err
				}
				opts.Overrides = overrides
			}

			cat, err := c.openCatalog()
			if err != nil {
				return err
			}
			workspace := output
			if workspace == "" {
				workspace = project.ResolveWorkspace(c.Config)
			}

			runner := job.NewRunner(cat, workspace, c.Logger)
			j, runErr := runner.Run(cmd.Context(), design, opts)
			if j != nil {
				printStages(j)
				c.rememberJob(j.ID)
			}
			if runErr != nil {
				return runErr
			}

			printSuccess("job %s complete", j.ID)
			if j.Score != nil {
				printDetail("score %.1f %s %.1f (%.1f%% better)",
					j.Score.Initial, iconArrow, j.Score.Final, j.Score.ImprovementPct)
			}
			if j.Errors > 0 || j.Warnings > 0 {
				printWarning("validation: %d errors, %d warnings", j.Errors, j.Warnings)
			}
			printFile(j.Dir())
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed (identical seeds reproduce runs exactly)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "annealing profile (fast, balanced, thorough or a custom name)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "workspace root (default from config, ~/.eisla/jobs)")
	cmd.Flags().StringVar(&overridesPath, "overrides", "", "placement overrides file applied after optimization")
	cmd.Flags().BoolVar(&force, "force", false, "run even when validation reports blocking findings")

	return cmd
}

// printStages prints the per-stage ledger of a job.
func printStages(j *job.Job) {
	for _, st := range j.Stages {
		switch st.Status {
		case job.StatusDone:
			printDetail("%s %s (%d ms)", iconSuccess, st.Name, st.DurationMS)
		case job.StatusFailed:
			printError("%s: %s", st.Name, st.Error)
		default:
			printDetail("%s %s", iconInfo, st.Name)
		}
	}
}
