// Package cli implements the eisla command-line interface.
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/engine"
	"github.com/eisla/eisla/internal/importer"
	"github.com/eisla/eisla/internal/model"
	"github.com/eisla/eisla/internal/project"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config model.AppConfig

	catalogPath string
	debug       bool
}

// New creates a CLI instance with a default logger and the saved app
// config (or defaults when none exists or it cannot be read).
func New(w io.Writer, level log.Level) *CLI {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: config,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "eisla",
		Short:        "Eisla places electronic components on PCBs",
		Long:         `Eisla is the PCB-generation pipeline: it validates a design, places its components with a simulated-annealing optimizer and writes the netlist, schematic, preview and fabrication-support artifacts.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.debug {
				c.SetLogLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "catalog overlay file merged over the built-in catalog")

	root.AddCommand(c.placeCommand())
	root.AddCommand(c.pipelineCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// openCatalog returns the built-in catalog, with the --catalog overlay
// merged over it when one was given.
func (c *CLI) openCatalog() (*catalog.Catalog, error) {
	cat := catalog.BuiltIn()
	if c.catalogPath == "" {
		return cat, nil
	}
	overlay, err := catalog.Load(c.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog overlay %s: %w", c.catalogPath, err)
	}
	return cat.Merge(overlay), nil
}

// newPlacer builds a placer over the active catalog.
func (c *CLI) newPlacer() (*engine.Placer, error) {
	cat, err := c.openCatalog()
	if err != nil {
		return nil, err
	}
	return engine.NewPlacer(cat, c.Logger), nil
}

// loadDesign reads a design document. JSON files are design documents;
// CSV and Excel files go through the spreadsheet importer.
func (c *CLI) loadDesign(path string) (model.Design, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx", ".xls":
		cat, err := c.openCatalog()
		if err != nil {
			return model.Design{}, err
		}
		res := importer.ImportFile(path, cat)
		if len(res.Errors) > 0 {
			return model.Design{}, fmt.Errorf("import %s: %s", path, strings.Join(res.Errors, "; "))
		}
		for _, w := range res.Warnings {
			c.Logger.Warn(w)
		}
		d := res.Design()
		if d.Name == "" {
			d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		return d, nil
	default:
		return project.LoadDesign(path)
	}
}

// resolveProfile finds an annealing profile by name across the built-ins
// and the user's custom profiles. An empty name takes the configured
// default.
func (c *CLI) resolveProfile(name string) (model.AnnealProfile, error) {
	if name == "" {
		name = c.Config.DefaultProfile
	}
	if name == "" {
		name = "balanced"
	}
	custom, err := project.LoadCustomProfilesFromDefault()
	if err != nil {
		c.Logger.Warn("custom profiles unreadable, using built-ins", "err", err)
		custom = nil
	}
	profiles := project.MergedProfiles(custom)
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return model.AnnealProfile{}, fmt.Errorf("unknown profile %q (have: %s)", name, strings.Join(names, ", "))
}

// pickSeed resolves the run seed: an explicit flag wins, then the saved
// default, then a fresh time-derived stream.
func (c *CLI) pickSeed(cmd *cobra.Command, flagSeed int64) int64 {
	if cmd.Flags().Changed("seed") {
		return flagSeed
	}
	if c.Config.DefaultSeed != 0 {
		return c.Config.DefaultSeed
	}
	return time.Now().UnixNano()
}

// rememberJob appends a job id to the recent list and saves the config.
// Persistence failures only warn; the run already succeeded.
func (c *CLI) rememberJob(id string) {
	c.Config.RememberJob(id)
	if err := project.SaveAppConfig(project.DefaultConfigPath(), c.Config); err != nil {
		c.Logger.Warn("could not save recent-job list", "err", err)
	}
}
