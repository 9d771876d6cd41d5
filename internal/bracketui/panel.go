package bracketui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
)

const panelWidth = 30

// panelBG is slightly lighter than the canvas for visible distinction.
var panelBG = c("#101a26")

var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#7fd4ff")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#3a5566")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#4a9fd4")).
			Background(panelBG)

	panelPlacedStyle = lipgloss.NewStyle().
				Foreground(c("#2a3f50")).
				Background(panelBG).
				Strikethrough(true)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#1a3348")).
			Background(panelBG)

	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads a styled line to width with the panel background.
func padLine(s string, width int) string {
	vis := lipgloss.Width(s)
	if pad := width - vis; pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// buildTeamsPanelLayer renders the roster with unplaced teams prominent
// and placed teams struck through. The unplaced set is derived from the
// live graph on every frame, never stored.
func buildTeamsPanelLayer(m Model, x, y, width, height int) *lipgloss.Layer {
	placed := bracketgraph.PlacedTeamIDs(m.Graph)
	unplacedCount := 0
	for _, t := range m.Tournament.Teams {
		if !placed[t.ID] {
			unplacedCount++
		}
	}

	var lines []string
	lines = append(lines,
		panelTitleStyle.Render(fmt.Sprintf("TEAMS — %d to place", unplacedCount)),
		panelDimStyle.Render(strings.Repeat("─", max(0, width-2))))

	if len(m.Tournament.Teams) == 0 {
		lines = append(lines, panelDimStyle.Render("  (empty roster)"))
	}
	for _, t := range m.Tournament.Teams {
		if len(lines) >= height {
			break
		}
		if placed[t.ID] {
			lines = append(lines, panelPlacedStyle.Render("  "+t.Name))
		} else {
			lines = append(lines, panelTextStyle.Render("  "+t.Name))
		}
	}

	return panelLayer(lines, x, y, width, height, "panel-teams")
}

// buildHelpPanelLayer renders the static key reference.
func buildHelpPanelLayer(x, y, width, height int) *lipgloss.Layer {
	lines := []string{
		panelTitleStyle.Render("KEYS"),
		panelDimStyle.Render(strings.Repeat("─", max(0, width-2))),
		panelTextStyle.Render("  [g][s][m] add node"),
		panelTextStyle.Render("  [w][l][c] connect mode"),
		panelTextStyle.Render("  [x] delete  [e] edit"),
		panelTextStyle.Render("  [u] undo  ^r redo"),
		panelTextStyle.Render("  [+][-][0] zoom"),
		panelTextStyle.Render("  drag node / pan canvas"),
	}
	return panelLayer(lines, x, y, width, height, "panel-help")
}

// panelLayer pads lines to the panel box and wraps them in a layer.
func panelLayer(lines []string, x, y, width, height int, id string) *lipgloss.Layer {
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(x).Y(y).Z(1).ID(id)
}

// buildSeparatorLayer creates the vertical line between canvas and panel.
func buildSeparatorLayer(x, y, height int) *lipgloss.Layer {
	lines := make([]string, max(0, height))
	for i := range lines {
		lines[i] = panelSepStyle.Render("│")
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(x).Y(y).Z(1).ID("separator")
}
