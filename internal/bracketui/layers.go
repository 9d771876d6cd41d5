package bracketui

import (
	"fmt"
	"image"

	"charm.land/lipgloss/v2"
	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
	"github.com/dali-douzi/bracketforge/pkg/canvas"
	"github.com/dali-douzi/bracketforge/pkg/routing"
)

// canvas style keys for the wire/grid background layer.
const (
	styleBG        canvas.StyleKey = 0
	styleGrid      canvas.StyleKey = 1
	styleWire      canvas.StyleKey = 2
	styleWireLoser canvas.StyleKey = 3
	styleArrow     canvas.StyleKey = 4
	stylePreview   canvas.StyleKey = 5
)

var bufStyles = map[canvas.StyleKey]lipgloss.Style{
	styleBG:        lipgloss.NewStyle().Foreground(c("#1a2a3a")).Background(colorBG),
	styleGrid:      lipgloss.NewStyle().Foreground(c("#0e1e2e")).Background(colorBG),
	styleWire:      lipgloss.NewStyle().Foreground(c("#4a9fd4")).Background(colorBG),
	styleWireLoser: lipgloss.NewStyle().Foreground(c("#3a5566")).Background(colorBG),
	styleArrow:     lipgloss.NewStyle().Foreground(c("#7fd4ff")).Background(colorBG).Bold(true),
	stylePreview:   lipgloss.NewStyle().Foreground(c("#ffcc00")).Background(colorBG),
}

// buildWireCanvasLayer renders the grid and every routed connection into
// a cell buffer and returns it as the Z=0 background layer. The router
// is pure, so re-routing on every frame is safe.
func buildWireCanvasLayer(m Model, viewport image.Rectangle) *lipgloss.Layer {
	w := viewport.Dx()
	h := viewport.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(viewport.Min.X).Y(viewport.Min.Y).Z(0)
	}

	buf := canvas.New(w, h, styleBG)

	gridSpacing := max(1, int(bracketgraph.Grid*m.Zoom))
	canvas.DrawGrid(buf, m.CamX, m.CamY, gridSpacing, gridSpacing, styleGrid)

	toBuf := func(p image.Point) image.Point {
		s := m.screenAt(p)
		return s.Sub(viewport.Min)
	}

	for _, e := range m.Graph.Edges() {
		from, okFrom := m.Graph.EndpointPosition(e.From)
		to, okTo := m.Graph.EndpointPosition(e.To)
		if !okFrom || !okTo {
			continue
		}
		path := routing.Route(from, to, e.From.Point, e.Type)
		pts := make([]image.Point, len(path.Points))
		for i, p := range path.Points {
			pts[i] = toBuf(p)
		}
		ws := styleWire
		if path.Dashed {
			ws = styleWireLoser
		}
		canvas.DrawPolyline(buf, pts, path.Dashed, ws, styleArrow)
	}

	// Connect-mode preview from the pending anchor to the pointer.
	if m.PendingFrom != nil {
		if from, ok := m.Graph.EndpointPosition(*m.PendingFrom); ok {
			fp := toBuf(from)
			mp := image.Pt(m.MouseX, m.MouseY).Sub(viewport.Min)
			canvas.DrawDashedLine(buf, fp.X, fp.Y, mp.X, mp.Y, stylePreview)
		}
	}

	rendered := buf.Render(bufStyles)
	return lipgloss.NewLayer(rendered).X(viewport.Min.X).Y(viewport.Min.Y).Z(0).ID("wire-canvas")
}

// buildNodeLayers creates a layer per visible node.
func buildNodeLayers(m Model, viewport image.Rectangle) []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	for _, node := range m.Graph.Nodes() {
		sz := node.Size()
		sp := m.screenAt(node.Pos())
		nodeRect := image.Rect(sp.X, sp.Y, sp.X+sz.X, sp.Y+sz.Y)
		if !nodeRect.Overlaps(viewport) {
			continue
		}

		bc, tc, bg := kindColors[node.Kind].border, kindColors[node.Kind].text, colorBG
		if node.ID == m.SelectedID {
			bc, tc, bg = selBorder, selText, selBG
		}
		if m.PendingFrom != nil && m.PendingFrom.NodeID == node.ID {
			bc = pendingBorder
		}

		boxStyle := lipgloss.NewStyle().
			Border(borderForKind(node.Kind)).
			BorderForeground(bc).
			Background(bg).
			Width(sz.X - 2)

		textStyle := lipgloss.NewStyle().Foreground(tc).Background(bg)
		titleStyle := textStyle.Bold(true)

		lines := nodeLines(node, m.Tournament.Teams)
		content := ""
		for i, l := range lines {
			if len(l) > sz.X-2 {
				l = l[:sz.X-2]
			}
			st := textStyle
			if i == 0 {
				st = titleStyle
			}
			if i > 0 {
				content += "\n"
			}
			content += st.Render(l)
		}

		layers = append(layers, lipgloss.NewLayer(boxStyle.Render(content)).
			X(sp.X).Y(sp.Y).Z(2).
			ID(fmt.Sprintf("node-%s", node.ID)))

		// Kind tag in the top border.
		tag := lipgloss.NewStyle().Foreground(bc).Background(bg).
			Render(fmt.Sprintf("[%s]", kindInfo[node.Kind].Tag))
		layers = append(layers, lipgloss.NewLayer(tag).
			X(sp.X+2).Y(sp.Y).Z(3).
			ID(fmt.Sprintf("tag-%s", node.ID)))

		// Connection point markers while a connect mode is armed.
		if _, armed := m.Mode.EdgeType(); armed {
			layers = append(layers, buildPointMarkers(m, node)...)
		}
	}

	return layers
}

// buildPointMarkers renders the node's connection anchors so the
// two-click protocol has visible targets.
func buildPointMarkers(m Model, node *bracketgraph.Node) []*lipgloss.Layer {
	markerStyle := lipgloss.NewStyle().Foreground(pendingBorder).Background(colorBG).Bold(true)
	var layers []*lipgloss.Layer
	for _, p := range bracketgraph.PointsFor(node.Kind) {
		pos, ok := bracketgraph.PointPosition(node, p)
		if !ok {
			continue
		}
		glyph := "◦"
		if m.PendingFrom != nil && m.PendingFrom.NodeID == node.ID && m.PendingFrom.Point == p {
			glyph = "●"
		}
		sp := m.screenAt(pos)
		layers = append(layers, lipgloss.NewLayer(markerStyle.Render(glyph)).
			X(sp.X).Y(sp.Y).Z(4).
			ID(fmt.Sprintf("pt-%s-%s", node.ID, p)))
	}
	return layers
}
