package bracketui

import (
	"image"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
)

// openEditOn opens the modal and returns the concrete model.
func openEditOn(t *testing.T, m Model, nodeID string) Model {
	t.Helper()
	tm, _ := m.openEdit(nodeID)
	out, ok := tm.(Model)
	require.True(t, ok)
	require.True(t, out.EditOpen)
	return out
}

func setField(t *testing.T, m *Model, label, value string) {
	t.Helper()
	for i := range m.EditFields {
		if m.EditFields[i].label == label {
			m.EditFields[i].input.SetValue(value)
			return
		}
	}
	t.Fatalf("no field labelled %q", label)
}

func commitEdit(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	tm, cmd := m.saveEdit()
	out, ok := tm.(Model)
	require.True(t, ok)
	return out, cmd
}

// ── open ──

func TestOpenEditUnknownNode(t *testing.T) {
	m := newTestModel()
	tm, cmd := m.openEdit("ghost")
	assert.Nil(t, cmd)
	assert.False(t, tm.(Model).EditOpen)
}

func TestOpenEditFieldsPerKind(t *testing.T) {
	m := newTestModel()
	grp := m.Graph.AddNode(bracketgraph.KindGroup, image.Pt(0, 0))
	m.Graph.SetGroupSlotCount(grp.ID, 3)

	em := openEditOn(t, m, grp.ID)
	// Name, Slots, then one team row per slot.
	require.Len(t, em.EditFields, 5)
	assert.Equal(t, "Name", em.EditFields[0].label)
	assert.Equal(t, "Slots", em.EditFields[1].label)
	assert.Equal(t, "Slot 1", em.EditFields[2].label)
	assert.Equal(t, 0, em.EditFields[2].slotIndex)

	match := m.Graph.AddNode(bracketgraph.KindMatch, image.Pt(50, 0))
	em = openEditOn(t, m, match.ID)
	require.Len(t, em.EditFields, 5)
	assert.Equal(t, "Team A", em.EditFields[1].label)
	assert.Equal(t, "Score B", em.EditFields[4].label)
}

// ── save ──

func TestSaveEditMatchPropagates(t *testing.T) {
	m := newTestModel()
	match := m.Graph.AddNode(bracketgraph.KindMatch, image.Pt(0, 0))
	slot := m.Graph.AddNode(bracketgraph.KindSlot, image.Pt(50, 20))
	m.Graph.AddEdge(bracketgraph.EdgeWinner,
		bracketgraph.Endpoint{NodeID: match.ID, Point: bracketgraph.PointWinner},
		bracketgraph.Endpoint{NodeID: slot.ID, Point: bracketgraph.PointIn})

	em := openEditOn(t, m, match.ID)
	setField(t, &em, "Team A", "Alpha")
	setField(t, &em, "Team B", "Beta")
	setField(t, &em, "Score A", "2")
	setField(t, &em, "Score B", "1")

	em, cmd := commitEdit(t, em)
	require.NotNil(t, cmd)
	assert.False(t, em.EditOpen)

	md := em.Graph.Node(match.ID).Match
	assert.Equal(t, "t-alpha", md.TeamA, "typed names resolve to roster ids")
	assert.Equal(t, "t-beta", md.TeamB)
	require.NotNil(t, md.ScoreA)
	assert.Equal(t, 2, *md.ScoreA)

	assert.Equal(t, "t-alpha", em.Graph.Node(slot.ID).Slot.TeamID,
		"winner lands downstream on save")
	assert.True(t, em.History.CanUndo())
}

func TestSaveEditGarbageScoreStaysUnset(t *testing.T) {
	m := newTestModel()
	match := m.Graph.AddNode(bracketgraph.KindMatch, image.Pt(0, 0))

	em := openEditOn(t, m, match.ID)
	setField(t, &em, "Team A", "Alpha")
	setField(t, &em, "Team B", "Beta")
	setField(t, &em, "Score A", "two")
	setField(t, &em, "Score B", "1")

	em, _ = commitEdit(t, em)
	md := em.Graph.Node(match.ID).Match
	assert.Nil(t, md.ScoreA, "non-integer text leaves the score unset")
	require.NotNil(t, md.ScoreB)
}

func TestSaveEditGroup(t *testing.T) {
	m := newTestModel()
	grp := m.Graph.AddNode(bracketgraph.KindGroup, image.Pt(0, 0))
	m.Graph.SetGroupSlotCount(grp.ID, 2)

	em := openEditOn(t, m, grp.ID)
	setField(t, &em, "Name", "Group A")
	setField(t, &em, "Slots", "3")
	setField(t, &em, "Slot 1", "Gamma")

	em, _ = commitEdit(t, em)
	gd := em.Graph.Node(grp.ID).Group
	assert.Equal(t, "Group A", gd.Name)
	assert.Equal(t, 3, gd.SlotCount)
	require.NotNil(t, gd.SlotAt(0))
	assert.Equal(t, "t-gamma", gd.SlotAt(0).TeamID)
}

func TestSaveEditSlotClearsTeam(t *testing.T) {
	m := newTestModel()
	slot := m.Graph.AddNode(bracketgraph.KindSlot, image.Pt(0, 0))
	m.Graph.SetSlotTeam(slot.ID, "t-alpha")

	em := openEditOn(t, m, slot.ID)
	setField(t, &em, "Team", "")
	em, _ = commitEdit(t, em)

	assert.Empty(t, em.Graph.Node(slot.ID).Slot.TeamID, "blank input clears the assignment")
}

// ── team resolution ──

func TestResolveTeam(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, "t-alpha", m.resolveTeam("t-alpha"), "exact id")
	assert.Equal(t, "t-beta", m.resolveTeam("beta"), "name, case-folded")
	assert.Equal(t, "t-gamma", m.resolveTeam("gam"), "fuzzy prefix")
	assert.Empty(t, m.resolveTeam("zzzz"), "no match clears")
	assert.Empty(t, m.resolveTeam(""))
}

func TestParseScore(t *testing.T) {
	require.Nil(t, parseScore(""))
	require.Nil(t, parseScore("x"))
	v := parseScore("13")
	require.NotNil(t, v)
	assert.Equal(t, 13, *v)
	neg := parseScore("-1")
	require.NotNil(t, neg)
	assert.Equal(t, -1, *neg)
}
