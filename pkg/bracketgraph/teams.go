package bracketgraph

// Team is one roster entry of the tournament being edited. The roster is
// supplied by the caller and read-only to this package.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlacedTeamIDs returns the set of team ids appearing in any node's
// assignment fields (slot team, match participants, group slots).
func PlacedTeamIDs(g *Graph) map[string]bool {
	placed := make(map[string]bool)
	mark := func(id string) {
		if id != "" {
			placed[id] = true
		}
	}
	for _, n := range g.Nodes() {
		switch {
		case n.Slot != nil:
			mark(n.Slot.TeamID)
		case n.Match != nil:
			mark(n.Match.TeamA)
			mark(n.Match.TeamB)
		case n.Group != nil:
			for _, s := range n.Group.Slots {
				if s != nil {
					mark(s.TeamID)
				}
			}
		}
	}
	return placed
}

// Unplaced returns the roster teams whose id does not appear anywhere in
// the graph, in roster order.
func Unplaced(roster []Team, g *Graph) []Team {
	placed := PlacedTeamIDs(g)
	var out []Team
	for _, t := range roster {
		if !placed[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

// TeamName resolves a team id against the roster, falling back to the id
// itself for teams no longer on the roster.
func TeamName(roster []Team, id string) string {
	for _, t := range roster {
		if t.ID == id {
			return t.Name
		}
	}
	return id
}
