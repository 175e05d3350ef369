package job

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/drc"
	"github.com/eisla/eisla/internal/engine"
	"github.com/eisla/eisla/internal/export"
	"github.com/eisla/eisla/internal/model"
	"github.com/eisla/eisla/internal/netlist"
	"github.com/eisla/eisla/internal/preview"
	"github.com/eisla/eisla/internal/project"
	"github.com/eisla/eisla/internal/schematic"
	"github.com/eisla/eisla/internal/validate"
)

// Runner executes the pipeline for one design per call. The catalog is
// shared read-only; concurrent Run calls are safe as long as each brings
// its own seed.
type Runner struct {
	catalog   *catalog.Catalog
	workspace string
	log       *log.Logger
}

// NewRunner wires a runner to a catalog and a workspace root. A nil
// logger falls back to the package default.
func NewRunner(cat *catalog.Catalog, workspace string, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{catalog: cat, workspace: workspace, log: logger}
}

// Options tunes one pipeline run. An empty ID gets a generated uuid;
// callers that hand out the id before the run starts set their own.
type Options struct {
	ID        string
	Settings  model.AnnealSettings
	Seed      int64
	Force     bool
	Overrides model.PlacementOverrides
}

// Run executes validate, place, netlist, schematic, preview, exports and
// package in order. The first stage error aborts the run with the
// partial job returned alongside it; job.json tracks per-stage status
// either way. Cancellation lands on stage boundaries, the annealer's own
// wall budget bounds the place stage from inside.
func (r *Runner) Run(ctx context.Context, d model.Design, opts Options) (*Job, error) {
	id := opts.ID
	if id == "" {
		id = uuid.New().String()
	}
	dir := filepath.Join(r.workspace, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating job directory: %w", err)
	}

	d.Components = ExpandQuantities(d.Components)

	job := &Job{
		ID:         id,
		DesignName: d.Name,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Seed:       opts.Seed,
		Status:     StatusRunning,
		dir:        dir,
	}

	r.log.Info("job starting",
		"job", id, "design", d.Name, "components", len(d.Components))

	// Stage outputs threaded through the closures below.
	var (
		valRes    *validate.Result
		placement *model.PlacementResult
		nets      *netlist.Result
	)

	stages := []struct {
		name string
		run  func() error
	}{
		{StageValidate, func() error {
			BackfillPowerDraw(r.catalog, d.Components)
			budget := model.PowerBudget{TotalMA: d.TotalDrawMA(), Source: d.Board.PowerSource}
			valRes = validate.NewValidator(r.catalog, r.log).Validate(d.Components, budget, d.Board)

			for _, aa := range valRes.AutoAdds {
				n := max(aa.Quantity, 1)
				for i := 0; i < n; i++ {
					d.Components = append(d.Components, model.Instance{
						ComponentID: aa.ComponentID,
						AutoAdded:   true,
					})
				}
			}

			if err := writeJSON(filepath.Join(dir, ValidationFileName), valRes); err != nil {
				return fmt.Errorf("%s: %w", ValidationFileName, err)
			}
			if err := writeJSON(filepath.Join(dir, ResolvedFileName), d.ToResolvedInput()); err != nil {
				return fmt.Errorf("%s: %w", ResolvedFileName, err)
			}

			job.Errors = valRes.ErrorCount
			job.Warnings = valRes.WarningCount
			if valRes.ErrorCount > 0 && !opts.Force {
				return fmt.Errorf("%d blocking findings, re-run with --force to override", valRes.ErrorCount)
			}
			return nil
		}},
		{StagePlace, func() error {
			placer := engine.NewPlacer(r.catalog, r.log)
			placement = placer.Place(ctx, engine.Request{Design: d, Settings: opts.Settings, Seed: opts.Seed})

			if len(opts.Overrides) > 0 {
				applied := opts.Overrides.Apply(placement)
				r.log.Info("applied placement overrides", "refs", applied)
				if err := project.SaveOverrides(filepath.Join(dir, project.OverridesFileName), opts.Overrides); err != nil {
					return fmt.Errorf("%s: %w", project.OverridesFileName, err)
				}
			}

			score := placement.Score
			job.Score = &score
			return writeJSON(filepath.Join(dir, "placement.json"), placement)
		}},
		{StageNetlist, func() error {
			nets = netlist.NewBuilder(r.catalog, r.log).Build(placement, d.Components)
			return writeJSON(filepath.Join(dir, "netlist.json"), nets)
		}},
		{StageSchematic, func() error {
			sch := schematic.NewWriter(r.catalog, r.log).Generate(placement, nets)
			return os.WriteFile(filepath.Join(dir, "board.kicad_sch"), []byte(sch), 0644)
		}},
		{StagePreview, func() error {
			warned := preview.WarnedRefs(placement, valRes.Findings)
			svg := preview.NewRenderer(r.log).Render(placement, warned)
			return os.WriteFile(filepath.Join(dir, "preview.svg"), []byte(svg), 0644)
		}},
		{StageExports, func() error {
			steps := []struct {
				name string
				run  func(path string) error
			}{
				{"bom.csv", func(path string) error { return export.ExportBOMCSV(path, placement, r.catalog) }},
				{"bom.xlsx", func(path string) error { return export.ExportBOMXLSX(path, placement, r.catalog) }},
				{"pnp.csv", func(path string) error { return export.ExportPickAndPlace(path, placement, r.catalog) }},
				{"report.pdf", func(path string) error { return export.ExportReportPDF(path, placement, r.catalog) }},
				{"labels.pdf", func(path string) error { return export.ExportLabels(path, id, placement) }},
				{"outline.dxf", func(path string) error { return export.ExportOutlineDXF(path, placement, catalog.DefaultClearanceMM) }},
				{"validation_warnings.txt", func(path string) error {
					_, err := export.ExportValidationText(path, valRes)
					return err
				}},
			}
			for _, step := range steps {
				if err := step.run(filepath.Join(dir, step.name)); err != nil {
					return fmt.Errorf("%s: %w", step.name, err)
				}
			}
			return nil
		}},
		{StagePackage, func() error {
			n, err := PackageArtifacts(dir, r.log)
			if err != nil {
				return err
			}
			r.log.Info("packaged artifacts", "count", n)
			return nil
		}},
	}

	job.Stages = make([]Stage, len(stages))
	for i, st := range stages {
		job.Stages[i] = Stage{Name: st.name, Status: StatusPending}
	}

	if err := writeJSON(filepath.Join(dir, DesignFileName), d); err != nil {
		job.Status = StatusFailed
		_ = job.save()
		return job, fmt.Errorf("%s: %w", DesignFileName, err)
	}
	if err := job.save(); err != nil {
		return job, fmt.Errorf("%s: %w", JobFileName, err)
	}

	for i, st := range stages {
		if err := ctx.Err(); err != nil {
			job.Status = StatusFailed
			_ = job.save()
			return job, fmt.Errorf("pipeline cancelled before %s: %w", st.name, err)
		}

		entry := &job.Stages[i]
		entry.Status = StatusRunning
		_ = job.save()

		r.log.Info("stage starting", "stage", st.name)
		start := time.Now()
		err := st.run()
		entry.DurationMS = time.Since(start).Milliseconds()

		if err != nil {
			entry.Status = StatusFailed
			entry.Error = err.Error()
			job.Status = StatusFailed
			_ = job.save()
			r.log.Error("stage failed", "stage", st.name, "err", err)
			return job, fmt.Errorf("stage %s: %w", st.name, err)
		}

		entry.Status = StatusDone
		_ = job.save()
		r.log.Debug("stage complete", "stage", st.name, "duration_ms", entry.DurationMS)
	}

	job.Status = StatusDone
	if err := job.save(); err != nil {
		return job, fmt.Errorf("%s: %w", JobFileName, err)
	}

	if job.Score != nil {
		r.log.Info("job complete",
			"job", id, "final_score", job.Score.Final, "improvement_pct", job.Score.ImprovementPct)
	}
	return job, nil
}

// PackageArtifacts finishes a job directory. An externally produced DRC
// text report, when present, is parsed into drc_report.json with a
// DRC_FAILED.txt marker on failure; every known artifact is then zipped
// into package.zip. Returns the number of files packed.
func PackageArtifacts(dir string, logger *log.Logger) (int, error) {
	if logger == nil {
		logger = log.Default()
	}

	raw, err := os.ReadFile(filepath.Join(dir, DRCReportFileName))
	switch {
	case err == nil:
		report := drc.Parse(string(raw))
		if werr := writeJSON(filepath.Join(dir, "drc_report.json"), report); werr != nil {
			return 0, fmt.Errorf("drc_report.json: %w", werr)
		}
		written, werr := export.ExportDRCText(filepath.Join(dir, "DRC_FAILED.txt"), report)
		if werr != nil {
			return 0, fmt.Errorf("DRC_FAILED.txt: %w", werr)
		}
		if written {
			logger.Warn("design rule check failed",
				"errors", report.ErrorCount, "unrouted", report.UnroutedCount)
		}
	case os.IsNotExist(err):
		logger.Debug("no drc report found", "path", DRCReportFileName)
	default:
		return 0, fmt.Errorf("reading drc report: %w", err)
	}

	count, err := export.PackageZip(filepath.Join(dir, PackageFileName), dir)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", PackageFileName, err)
	}
	return count, nil
}
