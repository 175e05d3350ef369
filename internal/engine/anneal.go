package engine

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/eisla/eisla/internal/model"
)

// Annealer refines a seeded placement with simulated annealing. Three
// moves are tried at fixed odds: 50% translate one component by Gaussian
// noise, 20% rotate one component 90 degrees, 30% swap the full positions
// of two distinct components. Worse candidates are accepted with the
// Metropolis probability exp(-delta/T); the temperature cools by one
// factor per iteration whether or not the candidate was accepted.
type Annealer struct {
	Settings model.AnnealSettings

	comps  []model.Component
	board  model.Board
	scorer *Scorer
	rng    *rand.Rand
}

// Result carries the best placement found plus run telemetry.
type Result struct {
	Best       model.Placement
	Initial    float64
	Final      float64
	Iterations int
	FinalTemp  float64
}

// ImprovementPct returns how much the best score improved over the
// initial score, floored at zero.
func (r Result) ImprovementPct() float64 {
	if r.Initial <= 0 {
		return 0
	}
	return math.Max(0, (r.Initial-r.Final)/r.Initial*100)
}

// NewAnnealer builds an annealer over a fixed component list. The rng is
// the caller's seeded stream; the annealer draws from it but never
// reseeds it.
func NewAnnealer(comps []model.Component, b model.Board, mcuRef string, settings model.AnnealSettings, rng *rand.Rand) *Annealer {
	return &Annealer{
		Settings: settings,
		comps:    comps,
		board:    b,
		scorer:   NewScorer(comps, b, mcuRef),
		rng:      rng,
	}
}

// Run anneals from the given start state and returns the best placement
// seen. The wall-clock budget and ctx are checked every 200 iterations;
// in-flight iterations always complete, and the best-so-far snapshot is
// returned on any exit. With zero or one component, or a zero budget, the
// start state comes back untouched after zero iterations.
func (a *Annealer) Run(ctx context.Context, start model.Placement) Result {
	if len(a.comps) <= 1 {
		return Result{Best: start.Clone(), FinalTemp: a.Settings.InitialTemp}
	}

	current := start.Clone()
	best := current.Clone()
	curScore := a.scorer.Score(current)
	bestScore := curScore
	initScore := curScore

	temp := a.Settings.InitialTemp
	t0 := time.Now()
	itr := 0

	for temp > a.Settings.MinTemp && itr < a.Settings.MaxIterations {
		if itr%200 == 0 {
			if time.Since(t0).Seconds() > a.Settings.TimeBudgetSec || ctx.Err() != nil {
				break
			}
		}
		itr++

		candidate := current.Clone()
		switch move := a.rng.Float64(); {
		case move < 0.5:
			a.translate(candidate, temp)
		case move < 0.7:
			a.rotate(candidate)
		default:
			a.swap(candidate)
		}

		newScore := a.scorer.Score(candidate)
		delta := newScore - curScore

		if delta < 0 || a.rng.Float64() < math.Exp(-delta/temp) {
			current = candidate
			curScore = newScore
			if curScore < bestScore {
				best = current.Clone()
				bestScore = curScore
			}
		}

		temp *= a.Settings.CoolingRate
	}

	return Result{
		Best:       best,
		Initial:    initScore,
		Final:      bestScore,
		Iterations: itr,
		FinalTemp:  temp,
	}
}

// translate nudges one random component by Gaussian noise scaled to the
// current temperature, clamped back onto the board.
func (a *Annealer) translate(p model.Placement, temp float64) {
	c := a.comps[a.rng.Intn(len(a.comps))]
	pos := p[c.Ref]

	sigma := math.Max(3.0, temp*0.15)
	x := pos.XMM + a.rng.NormFloat64()*sigma
	y := pos.YMM + a.rng.NormFloat64()*sigma
	x, y = clampCentre(x, y, c.WidthMM/2, c.HeightMM/2, a.board)

	p[c.Ref] = model.Position{XMM: model.RoundMM(x), YMM: model.RoundMM(y), RotationDeg: pos.RotationDeg}
}

// rotate turns one random component a quarter turn in place.
func (a *Annealer) rotate(p model.Placement) {
	c := a.comps[a.rng.Intn(len(a.comps))]
	pos := p[c.Ref]
	pos.RotationDeg = (pos.RotationDeg + 90) % 360
	p[c.Ref] = pos
}

// swap exchanges the full position and rotation of two distinct
// components.
func (a *Annealer) swap(p model.Placement) {
	n := len(a.comps)
	i := a.rng.Intn(n)
	j := a.rng.Intn(n - 1)
	if j >= i {
		j++
	}
	ri, rj := a.comps[i].Ref, a.comps[j].Ref
	p[ri], p[rj] = p[rj], p[ri]
}
