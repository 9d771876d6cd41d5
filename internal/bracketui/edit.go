package bracketui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"
	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// fieldKind tells the save path how to interpret a field's text.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldNumber
	fieldTeam // resolved against the roster, fuzzy
)

// editField is one input row of the edit modal.
type editField struct {
	label     string
	kind      fieldKind
	slotIndex int // group slot index for fieldTeam rows inside a group
	input     textinput.Model
}

func newField(label string, kind fieldKind, value string) editField {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 40
	in.SetValue(value)
	return editField{label: label, kind: kind, slotIndex: -1, input: in}
}

// openEdit opens the edit modal for a node, building one input per
// editable payload field of its kind.
func (m Model) openEdit(nodeID string) (tea.Model, tea.Cmd) {
	n := m.Graph.Node(nodeID)
	if n == nil {
		return m, nil
	}

	roster := m.Tournament.Teams
	teamText := func(id string) string {
		if id == "" {
			return ""
		}
		return bracketgraph.TeamName(roster, id)
	}

	var fields []editField
	switch {
	case n.Group != nil:
		fields = append(fields,
			newField("Name", fieldText, n.Group.Name),
			newField("Slots", fieldNumber, strconv.Itoa(n.Group.SlotCount)))
		for i := 0; i < n.Group.SlotCount; i++ {
			val := ""
			if a := n.Group.SlotAt(i); a != nil {
				val = teamText(a.TeamID)
			}
			f := newField(fmt.Sprintf("Slot %d", i+1), fieldTeam, val)
			f.slotIndex = i
			fields = append(fields, f)
		}
	case n.Slot != nil:
		fields = append(fields,
			newField("Name", fieldText, n.Slot.Name),
			newField("Team", fieldTeam, teamText(n.Slot.TeamID)))
	case n.Match != nil:
		fields = append(fields,
			newField("Name", fieldText, n.Match.Name),
			newField("Team A", fieldTeam, teamText(n.Match.TeamA)),
			newField("Team B", fieldTeam, teamText(n.Match.TeamB)),
			newField("Score A", fieldNumber, numText(n.Match.ScoreA)),
			newField("Score B", fieldNumber, numText(n.Match.ScoreB)))
	default:
		return m, nil
	}

	m.EditOpen = true
	m.EditNodeID = nodeID
	m.EditFields = fields
	m.EditFocus = 0
	cmd := m.EditFields[0].input.Focus()
	return m, cmd
}

// handleEditKeys processes keys while the modal is open.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.EditOpen = false
		return m, nil

	case "enter":
		return m.saveEdit()

	case "tab", "down":
		return m.focusField((m.EditFocus + 1) % len(m.EditFields))
	case "shift+tab", "up":
		return m.focusField((m.EditFocus - 1 + len(m.EditFields)) % len(m.EditFields))

	default:
		var cmd tea.Cmd
		m.EditFields[m.EditFocus].input, cmd = m.EditFields[m.EditFocus].input.Update(msg)
		return m, cmd
	}
}

func (m Model) focusField(i int) (tea.Model, tea.Cmd) {
	m.EditFields[m.EditFocus].input.Blur()
	m.EditFocus = i
	cmd := m.EditFields[i].input.Focus()
	return m, cmd
}

// saveEdit checkpoints the pre-edit state, applies every field through
// the graph's typed setters, re-runs outcome propagation when the edited
// node is a match, and persists.
func (m Model) saveEdit() (tea.Model, tea.Cmd) {
	m.EditOpen = false
	n := m.Graph.Node(m.EditNodeID)
	if n == nil {
		return m, nil
	}

	m.checkpoint()

	value := func(f editField) string { return strings.TrimSpace(f.input.Value()) }

	switch {
	case n.Group != nil:
		for _, f := range m.EditFields {
			switch {
			case f.label == "Name":
				m.Graph.SetNodeName(n.ID, value(f))
			case f.label == "Slots":
				if count, err := strconv.Atoi(value(f)); err == nil {
					m.Graph.SetGroupSlotCount(n.ID, count)
				}
			case f.kind == fieldTeam && f.slotIndex >= 0:
				score := 0
				if a := n.Group.SlotAt(f.slotIndex); a != nil {
					score = a.Score
				}
				m.Graph.SetGroupSlot(n.ID, f.slotIndex, m.resolveTeam(value(f)), score)
			}
		}
	case n.Slot != nil:
		for _, f := range m.EditFields {
			switch f.label {
			case "Name":
				m.Graph.SetNodeName(n.ID, value(f))
			case "Team":
				m.Graph.SetSlotTeam(n.ID, m.resolveTeam(value(f)))
			}
		}
	case n.Match != nil:
		teamA, teamB := n.Match.TeamA, n.Match.TeamB
		scoreA, scoreB := n.Match.ScoreA, n.Match.ScoreB
		for _, f := range m.EditFields {
			switch f.label {
			case "Name":
				m.Graph.SetNodeName(n.ID, value(f))
			case "Team A":
				teamA = m.resolveTeam(value(f))
			case "Team B":
				teamB = m.resolveTeam(value(f))
			case "Score A":
				scoreA = parseScore(value(f))
			case "Score B":
				scoreB = parseScore(value(f))
			}
		}
		m.Graph.SetMatchTeams(n.ID, teamA, teamB)
		m.Graph.SetMatchScores(n.ID, scoreA, scoreB)
		bracketgraph.Propagate(m.Graph, n.ID)
	}

	return m, m.saveCmd()
}

// resolveTeam maps typed text to a roster team id: exact id or name
// first, then the closest fuzzy name match. Unmatched text (or empty
// input) clears the assignment.
func (m Model) resolveTeam(text string) string {
	if text == "" {
		return ""
	}
	roster := m.Tournament.Teams
	names := make([]string, len(roster))
	for i, t := range roster {
		if t.ID == text || strings.EqualFold(t.Name, text) {
			return t.ID
		}
		names[i] = t.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(text, names)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return roster[best.OriginalIndex].ID
}

// parseScore turns field text into an optional score. Anything that
// isn't a clean integer leaves the score unset so propagation never
// fires on partial or garbage data.
func parseScore(text string) *int {
	if text == "" {
		return nil
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}
	return &v
}

func numText(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// buildEditModalLayer renders the edit modal as a centered Z=100 layer.
func buildEditModalLayer(m Model, screenW, screenH int) *lipgloss.Layer {
	n := m.Graph.Node(m.EditNodeID)
	if n == nil {
		return nil
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(c("#7fd4ff")).
		Background(c("#0a0f15")).
		Bold(true)
	labelStyle := lipgloss.NewStyle().
		Foreground(c("#ddaa44")).
		Background(c("#0a0f15"))
	hintStyle := lipgloss.NewStyle().
		Foreground(c("#3a5566")).
		Background(c("#0a0f15")).
		Italic(true)

	lines := []string{
		titleStyle.Render(fmt.Sprintf("  EDIT — %s", strings.ToUpper(kindInfo[n.Kind].Label))),
		"",
	}
	for i, f := range m.EditFields {
		marker := "  "
		if i == m.EditFocus {
			marker = "▸ "
		}
		lines = append(lines,
			labelStyle.Render(fmt.Sprintf("%s%-8s", marker, f.label)),
			"  "+f.input.View())
	}
	lines = append(lines, "",
		hintStyle.Render("  [tab] next  [enter] save  [esc] cancel"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(c("#4a9fd4")).
		Background(c("#0a0f15")).
		Width(48).
		Padding(1, 2)

	rendered := boxStyle.Render(strings.Join(lines, "\n"))
	cx := max(0, (screenW-lipgloss.Width(rendered))/2)
	cy := max(0, (screenH-lipgloss.Height(rendered))/2)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("edit-modal")
}
