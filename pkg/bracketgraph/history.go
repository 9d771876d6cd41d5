package bracketgraph

// Snapshot is an immutable copy of the graph's node and edge lists. It is
// the unit of undo/redo and the shape handed to the persistence layer.
type Snapshot struct {
	Nodes []*Node
	Edges []*Edge
}

// Clone deep-copies the snapshot.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{
		Nodes: make([]*Node, len(s.Nodes)),
		Edges: make([]*Edge, len(s.Edges)),
	}
	for i, n := range s.Nodes {
		c.Nodes[i] = n.Clone()
	}
	for i, e := range s.Edges {
		c.Edges[i] = e.Clone()
	}
	return c
}

// History is a linear undo/redo stack of full graph snapshots. Entries
// are checkpointed immediately before every structural mutation, so an
// undo always restores the pre-mutation state. The history never holds a
// reference into the live graph; everything is copied on the way in and
// on the way out.
type History struct {
	entries []Snapshot
	cursor  int // entries[cursor:] is the redo tail; cursor==len means "at tip"
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Checkpoint records the given pre-mutation state, discarding any redo
// tail beyond the cursor.
func (h *History) Checkpoint(current Snapshot) {
	h.entries = append(h.entries[:h.cursor], current.Clone())
	h.cursor = len(h.entries)
}

// Undo steps back one entry and returns the snapshot to restore. The
// caller passes the live state so that the first undo can park it as the
// redo target. Returns false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if h.cursor == 0 {
		return Snapshot{}, false
	}
	if h.cursor == len(h.entries) {
		h.entries = append(h.entries, current.Clone())
	}
	h.cursor--
	return h.entries[h.cursor].Clone(), true
}

// Redo steps forward one entry and returns the snapshot to restore.
// Returns false when already at the newest state.
func (h *History) Redo() (Snapshot, bool) {
	if h.cursor >= len(h.entries)-1 {
		return Snapshot{}, false
	}
	h.cursor++
	return h.entries[h.cursor].Clone(), true
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return h.cursor < len(h.entries)-1 }
