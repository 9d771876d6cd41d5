package bracketgraph

import (
	"image"
	"math"
)

// Grid is the canvas quantization step. Every committed node position is
// a multiple of it.
const Grid = 5

// Node geometry in canvas units. Group nodes grow with their slot count;
// the other kinds are fixed.
const (
	NodeWidth        = 30
	SlotHeight       = 4
	MatchHeight      = 5
	GroupBaseHeight  = 3
	GroupPerSlotUnit = 1
)

// Snap quantizes a coordinate to the grid. Idempotent.
func Snap(v int) int {
	return int(math.Round(float64(v)/Grid)) * Grid
}

// SnapPoint quantizes both coordinates of a point.
func SnapPoint(p image.Point) image.Point {
	return image.Pt(Snap(p.X), Snap(p.Y))
}

// Size returns the node's width and height in canvas units.
func (n *Node) Size() image.Point {
	switch n.Kind {
	case KindMatch:
		return image.Pt(NodeWidth, MatchHeight)
	case KindSlot:
		return image.Pt(NodeWidth, SlotHeight)
	case KindGroup:
		slots := 0
		if n.Group != nil {
			slots = n.Group.SlotCount
		}
		return image.Pt(NodeWidth, GroupBaseHeight+slots*GroupPerSlotUnit)
	}
	return image.Point{}
}

// BoundsOf returns the node's bounding rectangle on the canvas.
func BoundsOf(n *Node) image.Rectangle {
	p := n.Pos()
	sz := n.Size()
	return image.Rect(p.X, p.Y, p.X+sz.X, p.Y+sz.Y)
}

// PointPosition resolves the canvas coordinate of a named connection
// point on the node. The second return is false when the node's kind
// does not expose that point.
//
// Anchors: out/winner sit on the right edge at 30% height, loser on the
// right edge at 70%, bottom at bottom-center, in/inA on the left edge at
// 40%/30%, inB on the left edge at 70%.
func PointPosition(n *Node, p PointID) (image.Point, bool) {
	sz := n.Size()
	w, h := sz.X, sz.Y

	switch n.Kind {
	case KindMatch:
		switch p {
		case PointWinner:
			return image.Pt(n.X+w, n.Y+h*3/10), true
		case PointLoser:
			return image.Pt(n.X+w, n.Y+h*7/10), true
		case PointInA:
			return image.Pt(n.X, n.Y+h*3/10), true
		case PointInB:
			return image.Pt(n.X, n.Y+h*7/10), true
		}
	case KindGroup, KindSlot:
		switch p {
		case PointOut:
			return image.Pt(n.X+w, n.Y+h*3/10), true
		case PointIn:
			return image.Pt(n.X, n.Y+h*4/10), true
		case PointBottom:
			return image.Pt(n.X+w/2, n.Y+h), true
		}
	}
	return image.Point{}, false
}

// EndpointPosition resolves an edge endpoint against the graph. Returns
// false when the node is gone or the point is invalid for its kind.
func (g *Graph) EndpointPosition(ep Endpoint) (image.Point, bool) {
	n := g.Node(ep.NodeID)
	if n == nil {
		return image.Point{}, false
	}
	return PointPosition(n, ep.Point)
}
