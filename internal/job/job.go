// Package job runs the placement pipeline end to end, writing every
// artifact into a per-job directory under a workspace root.
package job

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
)

// Files the runner reads and writes by name. Stage outputs use the fixed
// artifact names the package step expects; anything else found in a job
// directory came from an external tool.
const (
	JobFileName        = "job.json"
	DesignFileName     = "design.json"
	ResolvedFileName   = "resolved.json"
	ValidationFileName = "validation_warnings.json"
	DRCReportFileName  = "drc_report.txt"
	PackageFileName    = "package.zip"
)

// Pipeline stages in run order.
const (
	StageValidate  = "validate"
	StagePlace     = "place"
	StageNetlist   = "netlist"
	StageSchematic = "schematic"
	StagePreview   = "preview"
	StageExports   = "exports"
	StagePackage   = "package"
)

// Stage and job statuses recorded in job.json.
const (
	StatusPending = "pending"
	StatusRunning = "running"
	StatusDone    = "done"
	StatusFailed  = "failed"
)

// Stage is one pipeline step's ledger entry.
type Stage struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// Job is the job.json record: identity, the per-stage ledger and the
// headline results of one pipeline run.
type Job struct {
	ID         string              `json:"id"`
	DesignName string              `json:"design_name,omitempty"`
	CreatedAt  string              `json:"created_at"`
	Seed       int64               `json:"seed"`
	Status     string              `json:"status"`
	Stages     []Stage             `json:"stages"`
	Score      *model.ScoreSummary `json:"score,omitempty"`
	Errors     int                 `json:"errors"`
	Warnings   int                 `json:"warnings"`

	dir string
}

// Dir returns the job's artifact directory.
func (j *Job) Dir() string { return j.dir }

// ArtifactPath returns the path of a named file inside the job directory.
func (j *Job) ArtifactPath(name string) string {
	return filepath.Join(j.dir, name)
}

// StageByName returns the ledger entry for the named stage, or nil when
// the stage is unknown.
func (j *Job) StageByName(name string) *Stage {
	for i := range j.Stages {
		if j.Stages[i].Name == name {
			return &j.Stages[i]
		}
	}
	return nil
}

// Load reads a job record back from its directory.
func Load(dir string) (*Job, error) {
	data, err := os.ReadFile(filepath.Join(dir, JobFileName))
	if err != nil {
		return nil, fmt.Errorf("reading job record: %w", err)
	}
	var j Job
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parsing job record %s: %w", dir, err)
	}
	j.dir = dir
	if j.Stages == nil {
		j.Stages = []Stage{}
	}
	return &j, nil
}

// save flushes the job record. Called on every stage transition so the
// on-disk status is never more than one stage behind.
func (j *Job) save() error {
	return writeJSON(filepath.Join(j.dir, JobFileName), j)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ExpandQuantities flattens quantity counts into repeated instances so
// every list entry maps to exactly one placed part. The copies carry the
// original metadata with the quantity cleared; the input slice is not
// modified.
func ExpandQuantities(insts []model.Instance) []model.Instance {
	out := make([]model.Instance, 0, len(insts))
	for _, inst := range insts {
		n := inst.Count()
		inst.Quantity = 0
		for i := 0; i < n; i++ {
			out = append(out, inst)
		}
	}
	return out
}

// BackfillPowerDraw fills zero per-instance current draws from the
// catalog entry's figure. Explicit values win; unknown parts stay at
// zero.
func BackfillPowerDraw(cat *catalog.Catalog, insts []model.Instance) {
	for i := range insts {
		if insts[i].PowerDrawMA != 0 {
			continue
		}
		if def, ok := cat.Get(insts[i].ComponentID); ok {
			insts[i].PowerDrawMA = def.PowerDrawMA
		}
	}
}
