// Package bracketui is the interactive bracket designer: a Bubbletea
// program that turns pointer and keyboard input into graph mutations,
// with undo/redo checkpointing and persistence on every committed change.
package bracketui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/dali-douzi/bracketforge/internal/store"
	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
)

// Mode is the interaction mode of the editor. The three connect modes
// and delete mode are mutually exclusive; activating one deactivates the
// others, and re-activating the current mode toggles back to idle.
type Mode int

const (
	ModeIdle Mode = iota
	ModeConnectWinner
	ModeConnectLoser
	ModeConnectNormal
	ModeDelete
)

// EdgeType returns the edge type a connect mode draws, and whether the
// mode is a connect mode at all.
func (m Mode) EdgeType() (bracketgraph.EdgeType, bool) {
	switch m {
	case ModeConnectWinner:
		return bracketgraph.EdgeWinner, true
	case ModeConnectLoser:
		return bracketgraph.EdgeLoser, true
	case ModeConnectNormal:
		return bracketgraph.EdgeNormal, true
	}
	return "", false
}

// Zoom limits and step per discrete zoom action.
const (
	zoomMin  = 0.5
	zoomMax  = 2.0
	zoomStep = 0.1
)

// Model is the editor state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int
	CamX, CamY     int
	Zoom           float64

	Graph      *bracketgraph.Graph
	History    *bracketgraph.History
	Store      store.BracketStore
	Tournament *store.Tournament
	Autosave   bool

	Mode        Mode
	PendingFrom *bracketgraph.Endpoint // first click of the connect protocol
	SelectedID  string

	// Drag state
	Dragging   bool
	DragNodeID string
	DragOffX   int
	DragOffY   int

	// Pan state
	Panning  bool
	PanLastX int
	PanLastY int

	// Edit modal state
	EditOpen   bool
	EditNodeID string
	EditFields []editField
	EditFocus  int
}

// NewModel creates the editor for a tournament backed by the given store.
func NewModel(t *store.Tournament, st store.BracketStore) Model {
	return Model{
		Zoom:       1.0,
		Graph:      bracketgraph.New(),
		History:    bracketgraph.NewHistory(),
		Store:      st,
		Tournament: t,
		Autosave:   true,
	}
}

// Init implements tea.Model: kick off the initial document load.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// bracketLoadedMsg carries the result of the initial load.
type bracketLoadedMsg struct {
	snap bracketgraph.Snapshot
	ok   bool
	err  error
}

// bracketSavedMsg carries the result of a fire-and-forget save.
type bracketSavedMsg struct {
	err error
}

func (m Model) loadCmd() tea.Cmd {
	st, id := m.Store, m.Tournament.ID
	return func() tea.Msg {
		snap, ok, err := st.Load(id)
		return bracketLoadedMsg{snap: snap, ok: ok, err: err}
	}
}

// saveCmd snapshots the graph now and persists it off the update loop.
// Nothing awaits the write; a failure is only logged.
func (m Model) saveCmd() tea.Cmd {
	if !m.Autosave || m.Store == nil {
		return nil
	}
	snap := m.Graph.Snapshot()
	st, id := m.Store, m.Tournament.ID
	return func() tea.Msg {
		return bracketSavedMsg{err: st.Save(id, snap)}
	}
}

// checkpoint records the current graph state as an undo point. Always
// called immediately before a structural mutation, never after.
func (m *Model) checkpoint() {
	m.History.Checkpoint(m.Graph.Snapshot())
}

// applyLoaded replaces the live graph with a loaded document. The load
// is not undoable, so no checkpoint is taken.
func (m *Model) applyLoaded(msg bracketLoadedMsg) {
	if msg.err != nil {
		slog.Warn("bracket load failed, starting empty", "tournament", m.Tournament.ID, "err", msg.err)
		return
	}
	if !msg.ok {
		return
	}
	m.Graph.ReplaceAll(msg.snap.Nodes, msg.snap.Edges)
}
