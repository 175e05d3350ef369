package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eisla/eisla/internal/importer"
	"github.com/eisla/eisla/internal/project"
)

// importCommand creates the import command: spreadsheet part list in,
// design document out.
func (c *CLI) importCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "import <file.csv|file.xlsx>",
		Short: "Import a part list spreadsheet into a design document",
		Long: `Import reads a CSV or Excel part list, matches each row against the
catalog by id, display name or MPN, and writes a design document ready
for place or pipeline. Unmatched rows pass through with a warning and
resolve to category fallbacks at placement time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.openCatalog()
			if err != nil {
				return err
			}

			res := importer.ImportFile(args[0], cat)
			for _, w := range res.Warnings {
				printWarning("%s", w)
			}
			if len(res.Errors) > 0 {
				for _, e := range res.Errors {
					printError("%s", e)
				}
				return fmt.Errorf("%d rows could not be imported", len(res.Errors))
			}

			design := res.Design()
			design.Name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))

			if output == "" {
				output = design.Name + ".json"
			}
			if err := project.SaveDesign(output, design); err != nil {
				return err
			}

			printSuccess("imported %d components", len(design.Components))
			if design.MCUID != "" {
				printDetail("MCU: %s", design.MCUID)
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "design file to write (default <input>.json)")

	return cmd
}
