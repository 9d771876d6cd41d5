package bracketgraph

// Propagate pushes a match node's winner and loser into its downstream
// nodes along typed out-edges. It must be called from every code path
// that can change a match's scores or team assignments.
//
// The model is propagation-on-write, not a dataflow graph: each call
// evaluates exactly the named match, and recurses only when one of its
// writes lands on another match and actually changes a value. The change
// detection is what keeps cyclic graphs from looping: re-writing an
// identical value stops the cascade.
func Propagate(g *Graph, matchID string) {
	n := g.Node(matchID)
	if n == nil || n.Match == nil {
		return
	}
	m := n.Match

	// Winner is only determined once both teams and both scores are set.
	if m.TeamA == "" || m.TeamB == "" || m.ScoreA == nil || m.ScoreB == nil {
		return
	}
	// A tie is a valid terminal state, not an error.
	if *m.ScoreA == *m.ScoreB {
		return
	}

	winner, loser := m.TeamA, m.TeamB
	if *m.ScoreB > *m.ScoreA {
		winner, loser = m.TeamB, m.TeamA
	}

	for _, e := range g.OutEdges(matchID) {
		var teamID string
		switch e.Type {
		case EdgeWinner:
			teamID = winner
		case EdgeLoser:
			teamID = loser
		default:
			continue
		}
		if writeTeam(g, e.To, teamID) {
			Propagate(g, e.To.NodeID)
		}
	}
}

// writeTeam writes a team id into the destination endpoint of an edge.
// It reports whether the destination is a match whose value changed and
// therefore needs re-evaluation. Group destinations are deliberately
// untouched: the connection UI allows drawing edges into groups, but no
// slot-targeting scheme is defined for them.
func writeTeam(g *Graph, to Endpoint, teamID string) bool {
	target := g.Node(to.NodeID)
	if target == nil {
		return false
	}
	switch target.Kind {
	case KindSlot:
		if target.Slot != nil {
			target.Slot.TeamID = teamID
		}
		return false
	case KindMatch:
		if target.Match == nil {
			return false
		}
		if to.Point == PointInA {
			if target.Match.TeamA == teamID {
				return false
			}
			target.Match.TeamA = teamID
			return true
		}
		if target.Match.TeamB == teamID {
			return false
		}
		target.Match.TeamB = teamID
		return true
	}
	return false
}
