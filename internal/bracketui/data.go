package bracketui

import (
	"fmt"

	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
)

// KindInfo carries display metadata for a node kind; geometry lives in
// bracketgraph so hit testing and rendering agree.
type KindInfo struct {
	Label string // human-readable label (e.g. "Match")
	Tag   string // short tag in the top border (e.g. "M")
}

var kindInfo = map[bracketgraph.Kind]KindInfo{
	bracketgraph.KindGroup: {Label: "Group", Tag: "G"},
	bracketgraph.KindSlot:  {Label: "Slot", Tag: "S"},
	bracketgraph.KindMatch: {Label: "Match", Tag: "M"},
}

// nodeLines builds the text rows shown inside a node's box. The row
// count matches the heights in bracketgraph geometry.
func nodeLines(n *bracketgraph.Node, roster []bracketgraph.Team) []string {
	name := func(teamID string) string {
		if teamID == "" {
			return "—"
		}
		return bracketgraph.TeamName(roster, teamID)
	}

	switch {
	case n.Match != nil:
		m := n.Match
		return []string{
			m.Name,
			fmt.Sprintf("A %s %s", name(m.TeamA), scoreText(m.ScoreA)),
			fmt.Sprintf("B %s %s", name(m.TeamB), scoreText(m.ScoreB)),
		}
	case n.Slot != nil:
		return []string{n.Slot.Name, name(n.Slot.TeamID)}
	case n.Group != nil:
		g := n.Group
		lines := []string{g.Name}
		for i := 0; i < g.SlotCount; i++ {
			if a := g.SlotAt(i); a != nil {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, name(a.TeamID)))
			} else {
				lines = append(lines, fmt.Sprintf("%d. —", i+1))
			}
		}
		return lines
	}
	return nil
}

// scoreText renders a score for display; unset scores show as 0 but stay
// unset in the model.
func scoreText(s *int) string {
	if s == nil {
		return "0"
	}
	return fmt.Sprintf("%d", *s)
}
