package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eisla/eisla/internal/job"
	"github.com/eisla/eisla/internal/model"
	"github.com/eisla/eisla/internal/validate"
)

// validateCommand creates the validate command: the rule suite alone,
// without placing anything.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <design>",
		Short: "Check a design against the electrical rule suite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			design, err := c.loadDesign(args[0])
			if err != nil {
				return err
			}
			cat, err := c.openCatalog()
			if err != nil {
				return err
			}

			design.Components = job.ExpandQuantities(design.Components)
			job.BackfillPowerDraw(cat, design.Components)
			budget := model.PowerBudget{TotalMA: design.TotalDrawMA(), Source: design.Board.PowerSource}
			res := validate.NewValidator(cat, c.Logger).Validate(design.Components, budget, design.Board)

			for _, f := range res.Findings {
				switch f.Severity {
				case validate.SeverityError:
					printError("%s: %s", f.Rule, f.Title)
				case validate.SeverityWarning:
					printWarning("%s: %s", f.Rule, f.Title)
				default:
					printInfo("%s: %s", f.Rule, f.Title)
				}
				if f.Description != "" {
					printDetail("%s", f.Description)
				}
			}
			for _, aa := range res.AutoAdds {
				printDetail("auto-add %dx %s (%s)", max(aa.Quantity, 1), aa.ComponentID, aa.Reason)
			}

			if res.ErrorCount > 0 {
				return fmt.Errorf("%d blocking findings", res.ErrorCount)
			}
			printSuccess("design passes: %d warnings, %d notes", res.WarningCount, res.InfoCount)
			return nil
		},
	}
	return cmd
}
