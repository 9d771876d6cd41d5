// Package routing computes orthogonal connection paths between node
// anchor points. Route is a pure function of the current geometry: it is
// re-invoked on every presentation pass, so it must stay side-effect free
// and cheap.
package routing

import (
	"image"

	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
)

// fanThreshold is the vertical spread past which a winner/out edge stops
// approaching head-on and fans downward instead.
const fanThreshold = 2 * bracketgraph.Grid

// elbowLead is how far a path runs straight out of its source (and into
// its destination) before turning.
const elbowLead = 2 * bracketgraph.Grid

// Path is a routed connection: an orthogonal polyline from the source
// anchor to the destination anchor. Loser edges render dashed; every
// path terminates in an arrowhead at the last point.
type Path struct {
	Points []image.Point
	Dashed bool
}

// ArrowDir returns the unit direction of the final segment, used to
// orient the arrowhead at the destination.
func (p Path) ArrowDir() image.Point {
	if len(p.Points) < 2 {
		return image.Point{}
	}
	last := p.Points[len(p.Points)-1]
	// Walk back past zero-length segments.
	for i := len(p.Points) - 2; i >= 0; i-- {
		prev := p.Points[i]
		if prev != last {
			return image.Pt(sign(last.X-prev.X), sign(last.Y-prev.Y))
		}
	}
	return image.Point{}
}

// Route computes the path for an edge leaving `from` (the position of the
// origin anchor) toward `to` (the destination anchor). The origin point
// id and edge type pick the elbow family:
//
//   - Edges leaving a winner/out anchor with enough vertical spread fan
//     downward: vertical, then horizontal along a grid-snapped row just
//     below the source, then vertical into the target. Winner branches of
//     adjacent matches fan out cleanly this way.
//   - Everything else approaches head-on: horizontal out of the source
//     along a grid-snapped column, vertical, then horizontal into the
//     target.
func Route(from, to image.Point, origin bracketgraph.PointID, typ bracketgraph.EdgeType) Path {
	p := Path{Dashed: typ == bracketgraph.EdgeLoser}

	fanOrigin := origin == bracketgraph.PointWinner || origin == bracketgraph.PointOut
	if fanOrigin && abs(to.Y-from.Y) > fanThreshold {
		row := bracketgraph.Snap(from.Y + elbowLead)
		p.Points = []image.Point{
			from,
			image.Pt(from.X, row),
			image.Pt(to.X, row),
			to,
		}
		return p
	}

	colOut := bracketgraph.Snap(from.X + elbowLead)
	colIn := bracketgraph.Snap(to.X - elbowLead)
	if colIn >= colOut {
		// Destination is ahead: one mid column suffices.
		p.Points = []image.Point{
			from,
			image.Pt(colOut, from.Y),
			image.Pt(colOut, to.Y),
			to,
		}
		return p
	}
	// Destination is behind the source: detour through a mid row so the
	// path still enters the target horizontally.
	row := bracketgraph.Snap((from.Y + to.Y) / 2)
	p.Points = []image.Point{
		from,
		image.Pt(colOut, from.Y),
		image.Pt(colOut, row),
		image.Pt(colIn, row),
		image.Pt(colIn, to.Y),
		to,
	}
	return p
}

// Hit reports whether pt lies within tol of any segment of the path.
// Used by delete mode to pick an edge by its stroke or arrowhead.
func Hit(p Path, pt image.Point, tol int) bool {
	for i := 0; i+1 < len(p.Points); i++ {
		if segmentDistance(p.Points[i], p.Points[i+1], pt) <= tol {
			return true
		}
	}
	return false
}

// segmentDistance returns the Chebyshev distance from pt to the
// axis-aligned segment a-b. Diagonal segments never occur in routed
// paths.
func segmentDistance(a, b, pt image.Point) int {
	minX, maxX := min(a.X, b.X), max(a.X, b.X)
	minY, maxY := min(a.Y, b.Y), max(a.Y, b.Y)
	dx := 0
	if pt.X < minX {
		dx = minX - pt.X
	} else if pt.X > maxX {
		dx = pt.X - maxX
	}
	dy := 0
	if pt.Y < minY {
		dy = minY - pt.Y
	} else if pt.Y > maxY {
		dy = pt.Y - maxY
	}
	return max(dx, dy)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
