package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
)

// Placer runs the full placement stage: catalog resolution, ref
// assignment, zone seeding, annealing and result assembly. The catalog is
// shared read-only; independent Place calls may run concurrently as long
// as each brings its own seed.
type Placer struct {
	catalog *catalog.Catalog
	log     *log.Logger
}

// NewPlacer wires a placer to a catalog. A nil logger falls back to the
// package default.
func NewPlacer(cat *catalog.Catalog, logger *log.Logger) *Placer {
	if logger == nil {
		logger = log.Default()
	}
	return &Placer{catalog: cat, log: logger}
}

// Request bundles one placement run.
type Request struct {
	Design   model.Design
	Settings model.AnnealSettings
	Seed     int64
}

// Place is the anytime placement entry point: it cannot fail on
// well-formed input and always returns a bounds-respecting result, even
// under a zero time budget. An empty component list yields an empty
// result with zero scores.
func (p *Placer) Place(ctx context.Context, req Request) *model.PlacementResult {
	board := req.Design.Board.Size()

	if len(req.Design.Components) == 0 {
		p.log.Warn("no components to place")
		return &model.PlacementResult{Board: board, Components: []model.PlacedComponent{}}
	}

	rng := rand.New(rand.NewSource(req.Seed))

	comps := AssignRefs(p.catalog.ResolveAll(req.Design.Components))

	p.log.Info("placing components",
		"count", len(comps),
		"board", fmt.Sprintf("%gx%gmm", board.WidthMM, board.HeightMM))

	seeded := InitialPlacement(comps, board, rng)

	mcuRef := ""
	if req.Design.MCUID != "" {
		for _, c := range comps {
			if c.ComponentID == req.Design.MCUID {
				mcuRef = c.Ref
				break
			}
		}
	}

	annealer := NewAnnealer(comps, board, mcuRef, req.Settings, rng)
	res := annealer.Run(ctx, seeded)
	improvement := res.ImprovementPct()

	p.log.Info("annealing complete",
		"iterations", res.Iterations,
		"final_temp", fmt.Sprintf("%.2f", res.FinalTemp),
		"score", fmt.Sprintf("%.1f -> %.1f", res.Initial, res.Final),
		"improvement_pct", fmt.Sprintf("%.1f", improvement))

	placed := make([]model.PlacedComponent, 0, len(comps))
	for _, c := range comps {
		pos := res.Best[c.Ref]
		placed = append(placed, model.PlacedComponent{
			ComponentID:   c.ComponentID,
			Ref:           c.Ref,
			DisplayName:   c.DisplayName,
			Category:      c.Category,
			Subcategory:   c.Subcategory,
			XMM:           model.RoundMM(pos.XMM),
			YMM:           model.RoundMM(pos.YMM),
			RotationDeg:   pos.RotationDeg,
			WidthMM:       c.WidthMM,
			HeightMM:      c.HeightMM,
			PlacementZone: c.Zone,
		})
	}

	var mcuRefOut *string
	if mcuRef != "" {
		mcuRefOut = &mcuRef
	}

	return &model.PlacementResult{
		Board:      board,
		Components: placed,
		MCURef:     mcuRefOut,
		Score: model.ScoreSummary{
			Initial:        model.Round1(res.Initial),
			Final:          model.Round1(res.Final),
			ImprovementPct: model.Round1(improvement),
		},
		Iterations: res.Iterations,
	}
}

// Components resolves and ref-assigns a design's component list without
// placing it. Collaborator stages that only need refs use this.
func (p *Placer) Components(d model.Design) []model.Component {
	return AssignRefs(p.catalog.ResolveAll(d.Components))
}
