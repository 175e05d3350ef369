package engine

import (
	"context"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/eisla/eisla/internal/model"
)

// ComparisonScenario defines a named annealing schedule to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.AnnealSettings
}

// ComparisonRun is one seeded placement inside a scenario.
type ComparisonRun struct {
	Seed   int64
	Result *model.PlacementResult
}

// ComparisonResult aggregates one scenario's runs across seeds. Scores are
// penalties, so Best is the minimum final score.
type ComparisonResult struct {
	Scenario        ComparisonScenario
	Runs            []ComparisonRun
	MeanFinal       float64
	StdDevFinal     float64
	BestFinal       float64
	BestSeed        int64
	MeanImprovement float64
	TotalIterations int
}

// ScenariosFromProfiles converts annealing profiles into comparison
// scenarios, keeping their order.
func ScenariosFromProfiles(profiles []model.AnnealProfile) []ComparisonScenario {
	scenarios := make([]ComparisonScenario, 0, len(profiles))
	for _, p := range profiles {
		scenarios = append(scenarios, ComparisonScenario{Name: p.Name, Settings: p.Settings})
	}
	return scenarios
}

// BuildDefaultScenarios returns the built-in schedule spread compared by
// default: fast, balanced and thorough.
func BuildDefaultScenarios() []ComparisonScenario {
	return ScenariosFromProfiles(model.AnnealProfiles)
}

// CompareProfiles places the design once per scenario and seed and
// aggregates the final scores. Seeds derive from baseSeed by offset, so a
// comparison is reproducible end to end.
func (p *Placer) CompareProfiles(ctx context.Context, d model.Design, scenarios []ComparisonScenario, baseSeed int64, seedCount int) []ComparisonResult {
	if seedCount < 1 {
		seedCount = 1
	}

	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		p.log.Info("comparing schedule", "profile", scenario.Name, "seeds", seedCount)

		runs := make([]ComparisonRun, 0, seedCount)
		finals := make([]float64, 0, seedCount)
		improvements := make([]float64, 0, seedCount)
		iterations := 0

		for i := 0; i < seedCount; i++ {
			seed := baseSeed + int64(i)
			res := p.Place(ctx, Request{Design: d, Settings: scenario.Settings, Seed: seed})
			runs = append(runs, ComparisonRun{Seed: seed, Result: res})
			finals = append(finals, res.Score.Final)
			improvements = append(improvements, res.Score.ImprovementPct)
			iterations += res.Iterations
		}

		best := 0
		for i := range finals {
			if finals[i] < finals[best] {
				best = i
			}
		}

		mean, std := stat.MeanStdDev(finals, nil)
		if math.IsNaN(std) {
			std = 0 // one sample has no spread under the n-1 divisor
		}

		results = append(results, ComparisonResult{
			Scenario:        scenario,
			Runs:            runs,
			MeanFinal:       model.Round1(mean),
			StdDevFinal:     model.Round1(std),
			BestFinal:       finals[best],
			BestSeed:        runs[best].Seed,
			MeanImprovement: model.Round1(stat.Mean(improvements, nil)),
			TotalIterations: iterations,
		})
	}
	return results
}
