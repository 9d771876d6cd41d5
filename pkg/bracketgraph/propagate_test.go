package bracketgraph

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func addMatch(g *Graph, x, y int) *Node {
	return g.AddNode(KindMatch, image.Pt(x, y))
}

// ── basic winner/loser routing ──

func TestPropagateWinnerAndLoser(t *testing.T) {
	g := New()
	m := addMatch(g, 0, 0)
	winSlot := g.AddNode(KindSlot, image.Pt(50, 0))
	loseSlot := g.AddNode(KindSlot, image.Pt(50, 30))
	require.NotNil(t, g.AddEdge(EdgeWinner, Endpoint{m.ID, PointWinner}, Endpoint{winSlot.ID, PointIn}))
	require.NotNil(t, g.AddEdge(EdgeLoser, Endpoint{m.ID, PointLoser}, Endpoint{loseSlot.ID, PointIn}))

	g.SetMatchTeams(m.ID, "alpha", "beta")
	g.SetMatchScores(m.ID, intp(2), intp(1))
	Propagate(g, m.ID)

	assert.Equal(t, "alpha", winSlot.Slot.TeamID)
	assert.Equal(t, "beta", loseSlot.Slot.TeamID)
}

func TestPropagateLowerScoreWins(t *testing.T) {
	g := New()
	m := addMatch(g, 0, 0)
	winSlot := g.AddNode(KindSlot, image.Pt(50, 0))
	g.AddEdge(EdgeWinner, Endpoint{m.ID, PointWinner}, Endpoint{winSlot.ID, PointIn})

	g.SetMatchTeams(m.ID, "alpha", "beta")
	g.SetMatchScores(m.ID, intp(0), intp(3))
	Propagate(g, m.ID)

	assert.Equal(t, "beta", winSlot.Slot.TeamID)
}

// ── gating ──

func TestPropagateRequiresCompleteResult(t *testing.T) {
	g := New()
	m := addMatch(g, 0, 0)
	slot := g.AddNode(KindSlot, image.Pt(50, 0))
	g.AddEdge(EdgeWinner, Endpoint{m.ID, PointWinner}, Endpoint{slot.ID, PointIn})

	// Teams without scores.
	g.SetMatchTeams(m.ID, "alpha", "beta")
	Propagate(g, m.ID)
	assert.Empty(t, slot.Slot.TeamID)

	// One score only.
	g.SetMatchScores(m.ID, intp(2), nil)
	Propagate(g, m.ID)
	assert.Empty(t, slot.Slot.TeamID)

	// Tie: no winner, nothing moves.
	g.SetMatchScores(m.ID, intp(1), intp(1))
	Propagate(g, m.ID)
	assert.Empty(t, slot.Slot.TeamID)
}

func TestPropagateSkipsNormalEdges(t *testing.T) {
	g := New()
	m := addMatch(g, 0, 0)
	slot := g.AddNode(KindSlot, image.Pt(50, 0))
	g.AddEdge(EdgeNormal, Endpoint{m.ID, PointWinner}, Endpoint{slot.ID, PointIn})

	g.SetMatchTeams(m.ID, "alpha", "beta")
	g.SetMatchScores(m.ID, intp(2), intp(0))
	Propagate(g, m.ID)

	assert.Empty(t, slot.Slot.TeamID, "normal edges carry no result")
}

func TestPropagateGroupTargetUntouched(t *testing.T) {
	g := New()
	m := addMatch(g, 0, 0)
	grp := g.AddNode(KindGroup, image.Pt(50, 0))
	g.AddEdge(EdgeWinner, Endpoint{m.ID, PointWinner}, Endpoint{grp.ID, PointIn})

	g.SetMatchTeams(m.ID, "alpha", "beta")
	g.SetMatchScores(m.ID, intp(2), intp(0))
	Propagate(g, m.ID)

	for _, s := range grp.Group.Slots {
		assert.Nil(t, s)
	}
}

// ── cascades ──

func TestPropagateCascadesThroughMatches(t *testing.T) {
	g := New()
	semi := addMatch(g, 0, 0)
	final := addMatch(g, 50, 0)
	champ := g.AddNode(KindSlot, image.Pt(100, 0))
	g.AddEdge(EdgeWinner, Endpoint{semi.ID, PointWinner}, Endpoint{final.ID, PointInA})
	g.AddEdge(EdgeWinner, Endpoint{final.ID, PointWinner}, Endpoint{champ.ID, PointIn})

	// Final already has its other participant and a decided score.
	g.SetMatchTeams(final.ID, "", "gamma")
	g.SetMatchScores(final.ID, intp(3), intp(1))

	g.SetMatchTeams(semi.ID, "alpha", "beta")
	g.SetMatchScores(semi.ID, intp(2), intp(0))
	Propagate(g, semi.ID)

	assert.Equal(t, "alpha", final.Match.TeamA, "semi winner lands in the final's A seat")
	assert.Equal(t, "alpha", champ.Slot.TeamID, "final re-evaluates once its seat fills")
}

func TestPropagateInBTargetsTeamB(t *testing.T) {
	g := New()
	semi := addMatch(g, 0, 0)
	final := addMatch(g, 50, 0)
	g.AddEdge(EdgeWinner, Endpoint{semi.ID, PointWinner}, Endpoint{final.ID, PointInB})

	g.SetMatchTeams(semi.ID, "alpha", "beta")
	g.SetMatchScores(semi.ID, intp(1), intp(0))
	Propagate(g, semi.ID)

	assert.Equal(t, "alpha", final.Match.TeamB)
	assert.Empty(t, final.Match.TeamA)
}

func TestPropagateCycleTerminates(t *testing.T) {
	g := New()
	a := addMatch(g, 0, 0)
	b := addMatch(g, 50, 0)
	g.AddEdge(EdgeWinner, Endpoint{a.ID, PointWinner}, Endpoint{b.ID, PointInA})
	g.AddEdge(EdgeWinner, Endpoint{b.ID, PointWinner}, Endpoint{a.ID, PointInA})

	g.SetMatchTeams(b.ID, "", "delta")
	g.SetMatchScores(b.ID, intp(2), intp(0))
	g.SetMatchTeams(a.ID, "alpha", "beta")
	g.SetMatchScores(a.ID, intp(2), intp(0))

	// The second hop rewrites a.TeamA with an identical value and stops.
	Propagate(g, a.ID) // must return

	assert.Equal(t, "alpha", b.Match.TeamA)
	assert.Equal(t, "alpha", a.Match.TeamA)
}

func TestPropagateRerunOverwritesStaleResult(t *testing.T) {
	g := New()
	m := addMatch(g, 0, 0)
	slot := g.AddNode(KindSlot, image.Pt(50, 0))
	g.AddEdge(EdgeWinner, Endpoint{m.ID, PointWinner}, Endpoint{slot.ID, PointIn})

	g.SetMatchTeams(m.ID, "alpha", "beta")
	g.SetMatchScores(m.ID, intp(2), intp(0))
	Propagate(g, m.ID)
	require.Equal(t, "alpha", slot.Slot.TeamID)

	// Score correction flips the result downstream.
	g.SetMatchScores(m.ID, intp(0), intp(2))
	Propagate(g, m.ID)
	assert.Equal(t, "beta", slot.Slot.TeamID)
}

// ── roster bookkeeping ──

func TestUnplacedTracksPropagation(t *testing.T) {
	roster := []Team{{ID: "alpha", Name: "Alpha"}, {ID: "beta", Name: "Beta"}, {ID: "gamma", Name: "Gamma"}}

	g := New()
	m := addMatch(g, 0, 0)
	slot := g.AddNode(KindSlot, image.Pt(50, 0))
	g.AddEdge(EdgeWinner, Endpoint{m.ID, PointWinner}, Endpoint{slot.ID, PointIn})

	g.SetMatchTeams(m.ID, "alpha", "beta")
	assert.Equal(t, []Team{{ID: "gamma", Name: "Gamma"}}, Unplaced(roster, g))

	g.SetMatchScores(m.ID, intp(2), intp(1))
	Propagate(g, m.ID)
	assert.Equal(t, []Team{{ID: "gamma", Name: "Gamma"}}, Unplaced(roster, g))

	g.SetSlotTeam(slot.ID, "gamma") // manual override
	g.SetMatchTeams(m.ID, "", "")
	assert.Equal(t, []Team{{ID: "alpha", Name: "Alpha"}, {ID: "beta", Name: "Beta"}}, Unplaced(roster, g))
}

func TestTeamNameFallsBackToID(t *testing.T) {
	roster := []Team{{ID: "alpha", Name: "Alpha"}}
	assert.Equal(t, "Alpha", TeamName(roster, "alpha"))
	assert.Equal(t, "zz", TeamName(roster, "zz"))
}
