package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/eisla/eisla/internal/model"
)

// point is a 2D coordinate in drawing units (mm).
type point struct {
	X float64
	Y float64
}

// loop is a closed polygon outline.
type loop []point

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed outlines.
type segment struct {
	start point
	end   point
}

// BoardOutline is the result of reading a mechanical outline drawing:
// the bounding dimensions of the largest closed shape, whether that
// shape is actually rectangular, and how many inner cutouts were found.
type BoardOutline struct {
	WidthMM     float64
	HeightMM    float64
	Rectangular bool
	Cutouts     int
	Warnings    []string
}

// BoardConfig converts the outline into a design board descriptor.
func (b BoardOutline) BoardConfig() model.BoardConfig {
	return model.BoardConfig{DimensionsMM: []float64{b.WidthMM, b.HeightMM}}
}

// ImportBoardOutline reads board dimensions from a DXF file. Closed shapes
// (LWPOLYLINE, CIRCLE, or chains of connected LINEs/ARCs) are collected;
// the largest becomes the board outline and its bounding box the board
// dimensions, rounded to 0.01 mm. Smaller shapes inside the board count
// as cutouts, which placement ignores.
func ImportBoardOutline(path string) (BoardOutline, error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return BoardOutline{}, fmt.Errorf("cannot open DXF file: %w", err)
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		return BoardOutline{}, fmt.Errorf("DXF file contains no entities")
	}

	var (
		loops    []loop
		segments []segment
		out      BoardOutline
	)

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			l := lwPolylineToLoop(e)
			if len(l) >= 3 {
				loops = append(loops, l)
			} else {
				out.Warnings = append(out.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			loops = append(loops, circleToLoop(e, 64))

		case *entity.Arc:
			pts := arcToPoints(e, 32)
			if len(pts) >= 2 {
				segments = append(segments, pointsToSegments(pts)...)
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: point{X: e.Start[0], Y: e.Start[1]},
				end:   point{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	loops = append(loops, chainSegments(segments, 0.01)...)
	if len(loops) == 0 {
		return BoardOutline{}, fmt.Errorf("no closed board outline found in DXF file")
	}

	// Largest shape is the board; everything else is a cutout candidate
	sort.Slice(loops, func(i, j int) bool {
		return loopArea(loops[i]) > loopArea(loops[j])
	})

	board := loops[0]
	bmin, bmax := boundingBox(board)
	width := roundMM(bmax.X - bmin.X)
	height := roundMM(bmax.Y - bmin.Y)
	if width < 0.01 || height < 0.01 {
		return BoardOutline{}, fmt.Errorf("board outline is degenerate (%.2f x %.2f mm)", width, height)
	}

	out.WidthMM = width
	out.HeightMM = height
	out.Rectangular = math.Abs(loopArea(board)-width*height) <= 0.005*width*height
	if !out.Rectangular {
		out.Warnings = append(out.Warnings,
			fmt.Sprintf("Outline is not rectangular, using %.2f x %.2f mm bounding box", width, height))
	}

	for _, l := range loops[1:] {
		lmin, lmax := boundingBox(l)
		if lmin.X >= bmin.X-0.01 && lmin.Y >= bmin.Y-0.01 &&
			lmax.X <= bmax.X+0.01 && lmax.Y <= bmax.Y+0.01 {
			out.Cutouts++
		} else {
			out.Warnings = append(out.Warnings, "Skipped shape outside the board outline")
		}
	}
	if out.Cutouts > 0 {
		out.Warnings = append(out.Warnings,
			fmt.Sprintf("%d inner cutouts ignored by placement", out.Cutouts))
	}

	return out, nil
}

// roundMM rounds a drawing coordinate to 0.01 mm, absorbing arc sampling
// noise.
func roundMM(v float64) float64 {
	return math.Round(v*100) / 100
}

// lwPolylineToLoop converts a DXF LWPOLYLINE entity to a closed loop.
// Bulge values on vertices produce interpolated arc segments.
func lwPolylineToLoop(lw *entity.LwPolyline) loop {
	var l loop

	for i := 0; i < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		current := point{X: v[0], Y: v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 {
			// This vertex has a bulge: interpolate an arc to the next vertex
			nextIdx := (i + 1) % len(lw.Vertices)
			next := point{X: lw.Vertices[nextIdx][0], Y: lw.Vertices[nextIdx][1]}
			arcPts := bulgeArcPoints(current, next, bulge, 32)
			// Add all but the last point (next vertex will be added naturally)
			l = append(l, arcPts[:len(arcPts)-1]...)
		} else {
			l = append(l, current)
		}
	}

	return l
}

// bulgeArcPoints generates points along an arc defined by two endpoints and a
// DXF bulge factor. The bulge is the tangent of 1/4 the included angle.
func bulgeArcPoints(p1, p2 point, bulge float64, numSegments int) []point {
	// Chord midpoint and length
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chordLen := math.Sqrt(dx*dx + dy*dy)
	if chordLen < 1e-9 {
		return []point{p1, p2}
	}

	// Sagitta and radius
	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	// Center of the arc: perpendicular direction from chord midpoint
	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	// Start and end angles
	startAngle := math.Atan2(p1.Y-cy, p1.X-cx)
	endAngle := math.Atan2(p2.Y-cy, p2.X-cx)

	// Sweep direction follows the bulge sign
	if bulge < 0 {
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else {
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	}

	var pts []point
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return pts
}

// circleToLoop approximates a circle as a regular polygon.
func circleToLoop(c *entity.Circle, numSegments int) loop {
	l := make(loop, numSegments)
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	for i := 0; i < numSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSegments)
		l[i] = point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return l
}

// arcToPoints converts a DXF ARC entity to a series of line points.
func arcToPoints(a *entity.Arc, numSegments int) []point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius
	startDeg := a.Angle[0]
	endDeg := a.Angle[1]

	startRad := startDeg * math.Pi / 180
	endRad := endDeg * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]point, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// pointsToSegments converts a point sequence to a slice of connected segments.
func pointsToSegments(pts []point) []segment {
	segs := make([]segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, segment{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments connects individual segments into closed loops.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) []loop {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var loops []loop

	for {
		// Find the first unused segment
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		// Try to extend the chain
		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// Only closed chains count as outlines
		if len(chain) >= 3 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			loops = append(loops, loop(chain[:len(chain)-1]))
		}
	}

	return loops
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}

// loopArea computes the absolute area of a polygon using the shoelace formula.
func loopArea(l loop) float64 {
	n := len(l)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += l[i].X * l[j].Y
		area -= l[j].X * l[i].Y
	}
	return math.Abs(area) / 2
}

// boundingBox returns the min and max corners of a loop.
func boundingBox(l loop) (point, point) {
	min := point{X: math.Inf(1), Y: math.Inf(1)}
	max := point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range l {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
