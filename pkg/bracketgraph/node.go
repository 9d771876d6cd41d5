// Package bracketgraph models the bracket designer's canvas graph: typed
// nodes (team groups, single-team slots, head-to-head matches) placed on a
// grid, wired together by directed, typed connections. Match results entered
// on a node propagate winning/losing teams along those connections.
package bracketgraph

import (
	"image"

	"github.com/google/uuid"
)

// Kind discriminates the node variants. The string values are persisted
// verbatim in saved documents.
type Kind string

const (
	KindGroup Kind = "group"
	KindSlot  Kind = "slot"
	KindMatch Kind = "match"
)

// EdgeType discriminates connection variants. Fixed at creation time by
// the drawing mode that produced the edge.
type EdgeType string

const (
	EdgeWinner EdgeType = "winner"
	EdgeLoser  EdgeType = "loser"
	EdgeNormal EdgeType = "normal"
)

// PointID names a connection anchor on a node. Which points a node exposes
// depends on its kind (see PointsFor).
type PointID string

const (
	PointIn     PointID = "in"
	PointOut    PointID = "out"
	PointBottom PointID = "bottom"
	PointWinner PointID = "winner"
	PointLoser  PointID = "loser"
	PointInA    PointID = "inA"
	PointInB    PointID = "inB"
)

// Node is a placed element on the canvas. Exactly one of Group, Slot or
// Match is non-nil, matching Kind.
type Node struct {
	ID    string     `json:"id"`
	Kind  Kind       `json:"kind"`
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Group *GroupData `json:"group,omitempty"`
	Slot  *SlotData  `json:"slot,omitempty"`
	Match *MatchData `json:"match,omitempty"`
}

// SlotAssignment is one occupied entry in a group's slot array.
type SlotAssignment struct {
	TeamID string `json:"teamId"`
	Score  int    `json:"score"`
}

// GroupData holds the payload of a "group" node. Slots is a fixed-order
// array of optional assignments; its length is independent of SlotCount
// and grows lazily (nil-padded) when an index past the end is written.
type GroupData struct {
	Name      string            `json:"name"`
	SlotCount int               `json:"slotCount"`
	Slots     []*SlotAssignment `json:"slots"`
}

// SlotData holds the payload of a "slot" node. An empty TeamID means the
// slot is unassigned.
type SlotData struct {
	Name   string `json:"name"`
	TeamID string `json:"teamId,omitempty"`
}

// MatchData holds the payload of a "match" node. Empty team ids and nil
// scores mean "not yet set"; propagation only fires once all four are set.
type MatchData struct {
	Name   string `json:"name"`
	TeamA  string `json:"teamA,omitempty"`
	TeamB  string `json:"teamB,omitempty"`
	ScoreA *int   `json:"scoreA,omitempty"`
	ScoreB *int   `json:"scoreB,omitempty"`
}

// Endpoint identifies one end of an edge: a connection point on a node.
type Endpoint struct {
	NodeID string  `json:"nodeId"`
	Point  PointID `json:"pointId"`
}

// Edge is a directed, typed wire between two connection points on
// distinct nodes.
type Edge struct {
	ID   string   `json:"id"`
	Type EdgeType `json:"type"`
	From Endpoint `json:"from"`
	To   Endpoint `json:"to"`
}

// NewID returns a fresh opaque node/edge identifier.
func NewID() string { return uuid.NewString() }

// ValidKind reports whether k is one of the closed set of node kinds.
func ValidKind(k Kind) bool {
	return k == KindGroup || k == KindSlot || k == KindMatch
}

// ValidEdgeType reports whether t is one of the closed set of edge types.
func ValidEdgeType(t EdgeType) bool {
	return t == EdgeWinner || t == EdgeLoser || t == EdgeNormal
}

// PointsFor returns the connection points a node kind exposes.
func PointsFor(k Kind) []PointID {
	switch k {
	case KindMatch:
		return []PointID{PointWinner, PointLoser, PointInA, PointInB}
	case KindGroup, KindSlot:
		return []PointID{PointOut, PointIn, PointBottom}
	default:
		return nil
	}
}

// Name returns the display name of the node's payload.
func (n *Node) Name() string {
	switch n.Kind {
	case KindGroup:
		if n.Group != nil {
			return n.Group.Name
		}
	case KindSlot:
		if n.Slot != nil {
			return n.Slot.Name
		}
	case KindMatch:
		if n.Match != nil {
			return n.Match.Name
		}
	}
	return ""
}

// Pos returns the node's canvas position.
func (n *Node) Pos() image.Point { return image.Pt(n.X, n.Y) }

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	c := *n
	if n.Group != nil {
		g := *n.Group
		g.Slots = make([]*SlotAssignment, len(n.Group.Slots))
		for i, s := range n.Group.Slots {
			if s != nil {
				cp := *s
				g.Slots[i] = &cp
			}
		}
		c.Group = &g
	}
	if n.Slot != nil {
		s := *n.Slot
		c.Slot = &s
	}
	if n.Match != nil {
		m := *n.Match
		if n.Match.ScoreA != nil {
			a := *n.Match.ScoreA
			m.ScoreA = &a
		}
		if n.Match.ScoreB != nil {
			b := *n.Match.ScoreB
			m.ScoreB = &b
		}
		c.Match = &m
	}
	return &c
}

// Clone returns a copy of the edge.
func (e *Edge) Clone() *Edge {
	c := *e
	return &c
}

// SetSlot writes an assignment at index i, growing the slot array with
// nil padding when i is past the current end. Negative indexes are ignored.
func (g *GroupData) SetSlot(i int, a *SlotAssignment) {
	if i < 0 {
		return
	}
	for len(g.Slots) <= i {
		g.Slots = append(g.Slots, nil)
	}
	g.Slots[i] = a
}

// SlotAt returns the assignment at index i, or nil when the index is
// empty or out of range.
func (g *GroupData) SlotAt(i int) *SlotAssignment {
	if i < 0 || i >= len(g.Slots) {
		return nil
	}
	return g.Slots[i]
}

// defaultData builds the initial payload for a freshly placed node.
func defaultData(k Kind) (*GroupData, *SlotData, *MatchData) {
	switch k {
	case KindGroup:
		return &GroupData{Name: "Group", SlotCount: 4}, nil, nil
	case KindSlot:
		return nil, &SlotData{Name: "Slot"}, nil
	case KindMatch:
		return nil, nil, &MatchData{Name: "Match"}
	}
	return nil, nil, nil
}
