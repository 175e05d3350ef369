package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
)

// catalogCommand creates the catalog inspection command group.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the component catalog",
	}
	cmd.AddCommand(c.catalogListCommand())
	cmd.AddCommand(c.catalogShowCommand())
	return cmd
}

// catalogListCommand creates the "catalog list" subcommand.
func (c *CLI) catalogListCommand() *cobra.Command {
	var (
		search   string
		category string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.openCatalog()
			if err != nil {
				return err
			}

			var defs []catalog.Definition
			switch {
			case search != "":
				defs = cat.Search(search)
			case category != "":
				defs = cat.ByCategory(model.Category(category))
			default:
				defs = cat.All()
			}
			if len(defs) == 0 {
				printInfo("no matching entries")
				return nil
			}

			for _, d := range defs {
				price := ""
				if d.Price1 > 0 {
					price = fmt.Sprintf("$%.2f", d.Price1)
				}
				fmt.Printf("%-32s %-14s %-14s %s\n",
					d.ID, d.Category, d.Package, styleDim.Render(price))
			}
			printDetail("%d entries", len(defs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "substring search over id, name and MPN")
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category")

	return cmd
}

// catalogShowCommand creates the "catalog show" subcommand.
func (c *CLI) catalogShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog entry in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.openCatalog()
			if err != nil {
				return err
			}
			def, ok := cat.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown component %q", args[0])
			}

			fmt.Println(styleTitle.Render(def.DisplayName))
			printKeyValue("id", def.ID)
			printKeyValue("category", def.Category)
			if def.Subcategory != "" {
				printKeyValue("subcategory", def.Subcategory)
			}
			if def.MPN != "" {
				printKeyValue("mpn", def.MPN)
			}
			if def.Manufacturer != "" {
				printKeyValue("manufacturer", def.Manufacturer)
			}
			if def.Package != "" {
				printKeyValue("package", def.Package)
			}
			if def.DimensionsMM != nil {
				printKeyValue("dimensions", fmt.Sprintf("%gx%g mm", def.DimensionsMM.Width, def.DimensionsMM.Height))
			}
			if def.PlacementZone != "" {
				printKeyValue("zone", def.PlacementZone)
			}
			if def.PlacementPriority != nil {
				printKeyValue("priority", fmt.Sprintf("%d", *def.PlacementPriority))
			}
			if def.PowerDrawMA > 0 {
				printKeyValue("power draw", fmt.Sprintf("%d mA", def.PowerDrawMA))
			}
			if len(def.Interfaces) > 0 {
				printKeyValue("interfaces", strings.Join(def.Interfaces, ", "))
			}
			if len(def.Capabilities) > 0 {
				printKeyValue("capabilities", strings.Join(def.Capabilities, ", "))
			}
			if def.Price1 > 0 {
				printKeyValue("price", fmt.Sprintf("$%.2f (1) / $%.2f (10) / $%.2f (100)",
					def.Price1, def.Price10, def.Price100))
			}
			if def.KiCadSymbol != "" {
				printKeyValue("symbol", def.KiCadSymbol)
			}
			if def.KiCadFootprint != "" {
				printKeyValue("footprint", def.KiCadFootprint)
			}
			return nil
		},
	}
}
