package bracketgraph

import "image"

// Graph owns the node and edge lists. All mutations go through the named
// operations below; every one of them is total, so operations referencing
// unknown ids are silent no-ops so that stale references from async loads
// never fault an in-flight interaction.
type Graph struct {
	nodes map[string]*Node
	order []string // insertion order for deterministic iteration
	edges []*Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// ── Node operations ──

// AddNode places a node of the given kind with its default payload. The
// position is snapped to the grid. Returns the new node.
func (g *Graph) AddNode(kind Kind, pos image.Point) *Node {
	if !ValidKind(kind) {
		return nil
	}
	gr, sl, ma := defaultData(kind)
	n := &Node{
		ID:    NewID(),
		Kind:  kind,
		X:     Snap(pos.X),
		Y:     Snap(pos.Y),
		Group: gr,
		Slot:  sl,
		Match: ma,
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	return n
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	result := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		if n, ok := g.nodes[id]; ok {
			result = append(result, n)
		}
	}
	return result
}

// MoveNode updates a node's position, snapped to the grid.
func (g *Graph) MoveNode(id string, pos image.Point) {
	if n, ok := g.nodes[id]; ok {
		n.X = Snap(pos.X)
		n.Y = Snap(pos.Y)
	}
}

// DeleteNode removes the node and cascades to every edge that references
// it as either endpoint.
func (g *Graph) DeleteNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	delete(g.nodes, id)

	for i, oid := range g.order {
		if oid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	filtered := g.edges[:0]
	for _, e := range g.edges {
		if e.From.NodeID != id && e.To.NodeID != id {
			filtered = append(filtered, e)
		}
	}
	g.edges = filtered
}

// UpdateNode applies a mutation to the node's payload. Unknown ids are
// no-ops. This is the generic shallow-merge entry point; the typed
// setters below are built on it.
func (g *Graph) UpdateNode(id string, mutate func(*Node)) {
	if n, ok := g.nodes[id]; ok && mutate != nil {
		mutate(n)
	}
}

// SetNodeName sets the payload name regardless of kind.
func (g *Graph) SetNodeName(id, name string) {
	g.UpdateNode(id, func(n *Node) {
		switch {
		case n.Group != nil:
			n.Group.Name = name
		case n.Slot != nil:
			n.Slot.Name = name
		case n.Match != nil:
			n.Match.Name = name
		}
	})
}

// SetGroupSlotCount sets the slot count of a group node (minimum 1).
func (g *Graph) SetGroupSlotCount(id string, count int) {
	if count < 1 {
		count = 1
	}
	g.UpdateNode(id, func(n *Node) {
		if n.Group != nil {
			n.Group.SlotCount = count
		}
	})
}

// SetGroupSlot assigns a team (with score) to a group slot index.
func (g *Graph) SetGroupSlot(id string, index int, teamID string, score int) {
	g.UpdateNode(id, func(n *Node) {
		if n.Group == nil {
			return
		}
		if teamID == "" {
			n.Group.SetSlot(index, nil)
			return
		}
		n.Group.SetSlot(index, &SlotAssignment{TeamID: teamID, Score: score})
	})
}

// SetSlotTeam assigns a team to a slot node; "" clears it.
func (g *Graph) SetSlotTeam(id, teamID string) {
	g.UpdateNode(id, func(n *Node) {
		if n.Slot != nil {
			n.Slot.TeamID = teamID
		}
	})
}

// SetMatchTeams assigns both participants of a match node.
func (g *Graph) SetMatchTeams(id, teamA, teamB string) {
	g.UpdateNode(id, func(n *Node) {
		if n.Match != nil {
			n.Match.TeamA = teamA
			n.Match.TeamB = teamB
		}
	})
}

// SetMatchScores sets the score pair of a match node. Nil means unset.
func (g *Graph) SetMatchScores(id string, scoreA, scoreB *int) {
	g.UpdateNode(id, func(n *Node) {
		if n.Match != nil {
			n.Match.ScoreA = scoreA
			n.Match.ScoreB = scoreB
		}
	})
}

// ── Edge operations ──

// AddEdge creates a typed edge between two connection points. Self-loops
// and endpoints referencing unknown nodes are rejected (nil return).
// Duplicate (from, to) endpoint pairs are silently ignored.
func (g *Graph) AddEdge(typ EdgeType, from, to Endpoint) *Edge {
	if !ValidEdgeType(typ) {
		return nil
	}
	if from.NodeID == to.NodeID {
		return nil
	}
	if g.nodes[from.NodeID] == nil || g.nodes[to.NodeID] == nil {
		return nil
	}
	for _, e := range g.edges {
		if e.From == from && e.To == to {
			return nil
		}
	}
	e := &Edge{ID: NewID(), Type: typ, From: from, To: to}
	g.edges = append(g.edges, e)
	return e
}

// DeleteEdge removes the edge with the given id.
func (g *Graph) DeleteEdge(id string) {
	for i, e := range g.edges {
		if e.ID == id {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return
		}
	}
}

// Edges returns all edges in creation order.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// OutEdges returns edges originating from the given node.
func (g *Graph) OutEdges(nodeID string) []*Edge {
	var result []*Edge
	for _, e := range g.edges {
		if e.From.NodeID == nodeID {
			result = append(result, e)
		}
	}
	return result
}

// InEdges returns edges terminating at the given node.
func (g *Graph) InEdges(nodeID string) []*Edge {
	var result []*Edge
	for _, e := range g.edges {
		if e.To.NodeID == nodeID {
			result = append(result, e)
		}
	}
	return result
}

// ── Replace / snapshot ──

// ReplaceAll swaps in a whole new node and edge set, deep-copied. Used by
// undo/redo restores and by load-from-persistence; unlike the other
// mutations it never checkpoints history, so callers that need an undo
// point must take one before causing the restore.
func (g *Graph) ReplaceAll(nodes []*Node, edges []*Edge) {
	g.nodes = make(map[string]*Node, len(nodes))
	g.order = g.order[:0]
	for _, n := range nodes {
		if n == nil || n.ID == "" {
			continue
		}
		if _, dup := g.nodes[n.ID]; dup {
			continue
		}
		g.nodes[n.ID] = n.Clone()
		g.order = append(g.order, n.ID)
	}
	g.edges = g.edges[:0]
	for _, e := range edges {
		if e == nil {
			continue
		}
		g.edges = append(g.edges, e.Clone())
	}
}

// Snapshot returns a deep copy of the current node and edge lists.
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		Nodes: make([]*Node, 0, len(g.order)),
		Edges: make([]*Edge, 0, len(g.edges)),
	}
	for _, n := range g.Nodes() {
		s.Nodes = append(s.Nodes, n.Clone())
	}
	for _, e := range g.edges {
		s.Edges = append(s.Edges, e.Clone())
	}
	return s
}

// ── Spatial queries ──

// HitTest returns the topmost (last-inserted) node whose body contains
// the point, or nil.
func (g *Graph) HitTest(pt image.Point) *Node {
	for i := len(g.order) - 1; i >= 0; i-- {
		n := g.nodes[g.order[i]]
		if n != nil && pt.In(BoundsOf(n)) {
			return n
		}
	}
	return nil
}
