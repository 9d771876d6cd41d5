package bracketui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette: dark arena blue.
var (
	colorBG = c("#070b10")

	// Node kind colors
	kindColors = map[bracketgraph.Kind]struct{ border, text color.Color }{
		bracketgraph.KindGroup: {border: c("#4a9fd4"), text: c("#7fd4ff")},
		bracketgraph.KindSlot:  {border: c("#44cc88"), text: c("#88ffc4")},
		bracketgraph.KindMatch: {border: c("#d49a44"), text: c("#ffd488")},
	}

	// Selection override colors
	selBorder = c("#ffffff")
	selText   = c("#ffffff")
	selBG     = c("#10202c")

	// Pending connect highlight
	pendingBorder = c("#ffcc00")

	// Chrome colors
	toolbarColor = c("#7fd4ff")
	footerColor  = c("#666666")
)

// borderForKind returns the border style for a node kind.
func borderForKind(k bracketgraph.Kind) lipgloss.Border {
	switch k {
	case bracketgraph.KindMatch:
		return lipgloss.ThickBorder()
	case bracketgraph.KindGroup:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
