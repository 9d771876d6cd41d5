package bracketui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dali-douzi/bracketforge/pkg/tealayout"
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#0a0f15")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)
)

// modeNames maps Mode to its toolbar label.
var modeNames = map[Mode]string{
	ModeIdle:          "IDLE",
	ModeConnectWinner: "CONNECT winner",
	ModeConnectLoser:  "CONNECT loser",
	ModeConnectNormal: "CONNECT",
	ModeDelete:        "DELETE",
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", panelWidth).
		Remaining("canvas").
		Build()

	canvasRegion := layout.Get("canvas")
	panelRegion := layout.Get("panel")

	var layers []*lipgloss.Layer

	layers = append(layers,
		tealayout.FillLayer(layout.Get("toolbar"), tbStyle, "toolbar-bg", 0),
		tealayout.FillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		tealayout.FillLayer(layout.Get("footer"), ftStyle, "footer-bg", 0),
	)

	modeStr := modeNames[m.Mode]
	if m.PendingFrom != nil {
		modeStr = fmt.Sprintf("%s — pick target point", modeStr)
	}
	tbContent := fmt.Sprintf(
		" %s  │  [w]in [l]ose [c]onnect [x]del  │  %s  │  [q]uit",
		m.Tournament.Name, modeStr,
	)
	layers = append(layers, tealayout.ToolbarLayer(tbContent, m.Width, tbStyle))

	selStr := "none"
	if n := m.Graph.Node(m.SelectedID); n != nil {
		selStr = fmt.Sprintf("%s:%s", kindInfo[n.Kind].Tag, n.Name())
	}
	ftContent := fmt.Sprintf(
		" Cam: (%d,%d)  Zoom: %.1fx  Sel: %s  Nodes: %d  Edges: %d",
		m.CamX, m.CamY, m.Zoom, selStr, len(m.Graph.Nodes()), len(m.Graph.Edges()),
	)
	layers = append(layers, tealayout.FooterLayer(ftContent, m.Width, m.Height-1, ftStyle))

	// Wires + grid at Z=0, nodes above, markers above that.
	layers = append(layers, buildWireCanvasLayer(m, canvasRegion.Rect))
	layers = append(layers, buildNodeLayers(m, canvasRegion.Rect)...)

	pr := panelRegion.Rect
	if pr.Dx() > 0 && pr.Dy() > 0 {
		helpH := 9
		teamsH := pr.Dy() - helpH
		if teamsH < 4 {
			teamsH = 4
		}
		layers = append(layers,
			buildSeparatorLayer(pr.Min.X-1, pr.Min.Y, pr.Dy()),
			tealayout.FillLayer(panelRegion, bgStyle, "panel-bg", 0),
			buildTeamsPanelLayer(m, pr.Min.X+1, pr.Min.Y, pr.Dx()-2, teamsH),
			buildHelpPanelLayer(pr.Min.X+1, pr.Min.Y+teamsH, pr.Dx()-2, helpH),
		)
	}

	if m.EditOpen {
		if modal := buildEditModalLayer(m, m.Width, m.Height); modal != nil {
			layers = append(layers, modal)
		}
	}

	comp := lipgloss.NewCompositor(layers...)
	cv := lipgloss.NewCanvas(m.Width, m.Height)
	cv.Compose(comp)

	v := tea.NewView(cv.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}
