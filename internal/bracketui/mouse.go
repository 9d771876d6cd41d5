package bracketui

import (
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
	"github.com/dali-douzi/bracketforge/pkg/routing"
)

// Hit tolerances in canvas units.
const (
	pointHitTol = 2 // connection point anchors
	edgeHitTol  = 1 // edge stroke / arrowhead in delete mode
)

// handleMouse translates mouse events into the pointer FSM. Motion is
// only consumed while a drag or pan is active; presses outside the
// canvas region are ignored.
func handleMouse(m Model, msg tea.MouseMsg, canvasRect image.Rectangle) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	switch msg.(type) {
	case tea.MouseMotionMsg:
		m = m.pointerMove(m.worldAt(image.Pt(mouse.X, mouse.Y)), mouse.X, mouse.Y)
		return m, nil

	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft {
			return m, nil
		}
		if !image.Pt(mouse.X, mouse.Y).In(canvasRect) {
			return m, nil
		}
		return m.pointerDown(m.worldAt(image.Pt(mouse.X, mouse.Y)))

	case tea.MouseReleaseMsg:
		return m.pointerUp()
	}

	return m, nil
}

// pointerDown dispatches a press at world coordinates through the
// current interaction mode.
func (m Model) pointerDown(world image.Point) (Model, tea.Cmd) {
	if _, isConnect := m.Mode.EdgeType(); isConnect {
		return m.connectClick(world)
	}
	if m.Mode == ModeDelete {
		return m.deleteClick(world)
	}

	// Idle: a press on a connection point is inert; a press on a node
	// body grabs it; a press on empty canvas starts a pan.
	if _, ok := m.pointAt(world); ok {
		return m, nil
	}
	if hit := m.Graph.HitTest(world); hit != nil {
		m.SelectedID = hit.ID
		m.Dragging = true
		m.DragNodeID = hit.ID
		m.DragOffX = world.X - hit.X
		m.DragOffY = world.Y - hit.Y
		return m, nil
	}
	m.SelectedID = ""
	m.Panning = true
	m.PanLastX = m.MouseX
	m.PanLastY = m.MouseY
	return m, nil
}

// pointerMove advances an active drag or pan. Dragged nodes are snapped
// continuously so the routed wires never jitter between drop and redraw.
func (m Model) pointerMove(world image.Point, screenX, screenY int) Model {
	switch {
	case m.Dragging && m.DragNodeID != "":
		m.Graph.MoveNode(m.DragNodeID, image.Pt(world.X-m.DragOffX, world.Y-m.DragOffY))
	case m.Panning:
		m.CamX -= int(float64(screenX-m.PanLastX) / m.Zoom)
		m.CamY -= int(float64(screenY-m.PanLastY) / m.Zoom)
		m.PanLastX = screenX
		m.PanLastY = screenY
	}
	return m
}

// pointerUp ends whichever gesture is active. A finished drag persists
// the moved graph; intermediate frames never checkpoint history, so an
// undo rewinds past the whole drag.
func (m Model) pointerUp() (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.Dragging {
		m.Dragging = false
		m.DragNodeID = ""
		cmd = m.saveCmd()
	}
	m.Panning = false
	return m, cmd
}

// connectClick is the two-click connection protocol. The first click on
// a connection point records it; the second click on a point of a
// different node creates an edge of the active mode's type. A second
// click on the same node silently clears the pending selection. The mode
// stays armed for the next edge either way.
func (m Model) connectClick(world image.Point) (Model, tea.Cmd) {
	ep, ok := m.pointAt(world)
	if !ok {
		return m, nil
	}
	if m.PendingFrom == nil {
		m.PendingFrom = &ep
		return m, nil
	}

	from := *m.PendingFrom
	m.PendingFrom = nil
	if from.NodeID == ep.NodeID {
		return m, nil
	}

	typ, _ := m.Mode.EdgeType()
	before := m.Graph.Snapshot()
	if m.Graph.AddEdge(typ, from, ep) == nil {
		return m, nil
	}
	m.History.Checkpoint(before)
	return m, m.saveCmd()
}

// deleteClick removes the node (cascading its edges) or the edge under
// the pointer, checkpointing first.
func (m Model) deleteClick(world image.Point) (Model, tea.Cmd) {
	if hit := m.Graph.HitTest(world); hit != nil {
		m.checkpoint()
		m.Graph.DeleteNode(hit.ID)
		if m.SelectedID == hit.ID {
			m.SelectedID = ""
		}
		return m, m.saveCmd()
	}
	if e := m.edgeAt(world); e != nil {
		m.checkpoint()
		m.Graph.DeleteEdge(e.ID)
		return m, m.saveCmd()
	}
	return m, nil
}

// pointAt finds the connection point nearest the world coordinate within
// tolerance, preferring topmost nodes.
func (m Model) pointAt(world image.Point) (bracketgraph.Endpoint, bool) {
	nodes := m.Graph.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		for _, p := range bracketgraph.PointsFor(n.Kind) {
			pos, ok := bracketgraph.PointPosition(n, p)
			if !ok {
				continue
			}
			if chebyshev(pos, world) <= pointHitTol {
				return bracketgraph.Endpoint{NodeID: n.ID, Point: p}, true
			}
		}
	}
	return bracketgraph.Endpoint{}, false
}

// edgeAt returns the topmost edge whose routed stroke passes within
// tolerance of the world coordinate.
func (m Model) edgeAt(world image.Point) *bracketgraph.Edge {
	edges := m.Graph.Edges()
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		from, okFrom := m.Graph.EndpointPosition(e.From)
		to, okTo := m.Graph.EndpointPosition(e.To)
		if !okFrom || !okTo {
			continue
		}
		path := routing.Route(from, to, e.From.Point, e.Type)
		if routing.Hit(path, world, edgeHitTol) {
			return e
		}
	}
	return nil
}

func chebyshev(a, b image.Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
