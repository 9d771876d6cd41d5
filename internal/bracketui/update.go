package bracketui

import (
	"image"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
)

const panStep = 4

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case bracketLoadedMsg:
		m.applyLoaded(msg)

	case bracketSavedMsg:
		if msg.err != nil {
			slog.Warn("bracket save failed", "tournament", m.Tournament.ID, "err", msg.err)
		}

	case tea.KeyMsg:
		if m.EditOpen {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if m.EditOpen {
			return m, nil
		}
		return handleMouse(m, msg, m.canvasRect())
	}

	return m, nil
}

// handleKeys processes keyboard input outside the edit modal.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Camera panning
	case "up":
		m.CamY -= panStep
	case "down":
		m.CamY += panStep
	case "left":
		m.CamX -= panStep
	case "right":
		m.CamX += panStep

	// Connection modes. Re-selecting the active one toggles back to
	// idle; delete and connect modes are mutually exclusive.
	case "w":
		m = m.toggleMode(ModeConnectWinner)
	case "l":
		m = m.toggleMode(ModeConnectLoser)
	case "c":
		m = m.toggleMode(ModeConnectNormal)
	case "x":
		m = m.toggleMode(ModeDelete)

	// Place a new node at the viewport center.
	case "g":
		return m.addNode(bracketgraph.KindGroup)
	case "s":
		return m.addNode(bracketgraph.KindSlot)
	case "m":
		return m.addNode(bracketgraph.KindMatch)

	case "e":
		return m.openEdit(m.SelectedID)

	case "u", "ctrl+z":
		if snap, ok := m.History.Undo(m.Graph.Snapshot()); ok {
			m.Graph.ReplaceAll(snap.Nodes, snap.Edges)
			return m, m.saveCmd()
		}
	case "ctrl+r", "ctrl+y":
		if snap, ok := m.History.Redo(); ok {
			m.Graph.ReplaceAll(snap.Nodes, snap.Edges)
			return m, m.saveCmd()
		}

	// Zoom
	case "+", "=":
		m.Zoom = clampZoom(m.Zoom + zoomStep)
	case "-":
		m.Zoom = clampZoom(m.Zoom - zoomStep)
	case "0":
		m.Zoom = 1.0
		m.CamX, m.CamY = 0, 0

	case "esc", "escape":
		m.PendingFrom = nil
		m.SelectedID = ""
		m.Mode = ModeIdle
	}

	return m, nil
}

// toggleMode switches interaction modes, clearing any pending connection
// selection.
func (m Model) toggleMode(target Mode) Model {
	if m.Mode == target {
		m.Mode = ModeIdle
	} else {
		m.Mode = target
	}
	m.PendingFrom = nil
	return m
}

// addNode checkpoints, places a node of the given kind at the viewport
// center (snapped by the graph), and persists.
func (m Model) addNode(kind bracketgraph.Kind) (tea.Model, tea.Cmd) {
	center := m.worldAt(m.canvasRect().Min.Add(
		image.Pt(m.canvasRect().Dx()/2, m.canvasRect().Dy()/2)))
	m.checkpoint()
	n := m.Graph.AddNode(kind, center)
	if n != nil {
		m.SelectedID = n.ID
	}
	return m, m.saveCmd()
}

func clampZoom(z float64) float64 {
	if z < zoomMin {
		return zoomMin
	}
	if z > zoomMax {
		return zoomMax
	}
	return z
}

// canvasRect computes the canvas region rectangle for coordinate
// transforms. Must match the layout in View.
func (m Model) canvasRect() image.Rectangle {
	topH := 1
	bottomH := 1
	rightW := panelWidth
	return image.Rect(0, topH, m.Width-rightW, m.Height-bottomH)
}

// worldAt converts a screen coordinate into canvas-world coordinates,
// honoring camera and zoom.
func (m Model) worldAt(screen image.Point) image.Point {
	r := m.canvasRect()
	return image.Pt(
		m.CamX+int(float64(screen.X-r.Min.X)/m.Zoom),
		m.CamY+int(float64(screen.Y-r.Min.Y)/m.Zoom),
	)
}

// screenAt converts a world coordinate into screen coordinates.
func (m Model) screenAt(world image.Point) image.Point {
	r := m.canvasRect()
	return image.Pt(
		r.Min.X+int(float64(world.X-m.CamX)*m.Zoom),
		r.Min.Y+int(float64(world.Y-m.CamY)*m.Zoom),
	)
}
