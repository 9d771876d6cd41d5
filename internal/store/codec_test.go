package store

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
)

func buildSample(t *testing.T) bracketgraph.Snapshot {
	t.Helper()
	g := bracketgraph.New()
	grp := g.AddNode(bracketgraph.KindGroup, image.Pt(0, 0))
	m := g.AddNode(bracketgraph.KindMatch, image.Pt(50, 0))
	slot := g.AddNode(bracketgraph.KindSlot, image.Pt(100, 0))
	g.SetGroupSlot(grp.ID, 0, "t1", 3)
	g.SetMatchTeams(m.ID, "t1", "t2")
	score := 2
	g.SetMatchScores(m.ID, &score, nil)
	require.NotNil(t, g.AddEdge(bracketgraph.EdgeWinner,
		bracketgraph.Endpoint{NodeID: m.ID, Point: bracketgraph.PointWinner},
		bracketgraph.Endpoint{NodeID: slot.ID, Point: bracketgraph.PointIn}))
	return g.Snapshot()
}

// ── round trip ──

func TestDocumentRoundTrip(t *testing.T) {
	snap := buildSample(t)

	data, err := EncodeDocument(snap)
	require.NoError(t, err)

	got := DecodeDocument(data)
	require.Len(t, got.Nodes, 3)
	require.Len(t, got.Edges, 1)

	for i, n := range snap.Nodes {
		assert.Equal(t, n.ID, got.Nodes[i].ID)
		assert.Equal(t, n.Kind, got.Nodes[i].Kind)
		assert.Equal(t, n.X, got.Nodes[i].X)
		assert.Equal(t, n.Y, got.Nodes[i].Y)
	}
	m := got.Nodes[1].Match
	require.NotNil(t, m)
	assert.Equal(t, "t1", m.TeamA)
	require.NotNil(t, m.ScoreA)
	assert.Equal(t, 2, *m.ScoreA)
	assert.Nil(t, m.ScoreB, "unset scores stay unset across a round trip")

	grp := got.Nodes[0].Group
	require.NotNil(t, grp)
	require.NotNil(t, grp.SlotAt(0))
	assert.Equal(t, "t1", grp.SlotAt(0).TeamID)
	assert.Equal(t, 3, grp.SlotAt(0).Score)

	assert.Equal(t, snap.Edges[0].ID, got.Edges[0].ID)
	assert.Equal(t, bracketgraph.EdgeWinner, got.Edges[0].Type)
}

func TestEncodeEmptySnapshot(t *testing.T) {
	data, err := EncodeDocument(bracketgraph.Snapshot{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"components":[],"connections":[]}`, string(data))
}

// ── tolerant decode ──

func TestDecodeMalformedJSON(t *testing.T) {
	snap := DecodeDocument([]byte(`{not json`))
	assert.Empty(t, snap.Nodes)
	assert.Empty(t, snap.Edges)
}

func TestDecodeMissingArrays(t *testing.T) {
	snap := DecodeDocument([]byte(`{}`))
	assert.Empty(t, snap.Nodes)
	assert.Empty(t, snap.Edges)
}

func TestDecodeDropsBadNodes(t *testing.T) {
	doc := `{"components":[
		{"id":"a","kind":"slot","x":0,"y":0},
		{"id":"","kind":"slot"},
		{"id":"b","kind":"pyramid"},
		{"id":"a","kind":"match"}
	],"connections":[]}`

	snap := DecodeDocument([]byte(doc))
	require.Len(t, snap.Nodes, 1)
	assert.Equal(t, "a", snap.Nodes[0].ID)
	assert.Equal(t, bracketgraph.KindSlot, snap.Nodes[0].Kind)
}

func TestDecodeDropsBadEdges(t *testing.T) {
	doc := `{"components":[
		{"id":"a","kind":"slot"},
		{"id":"b","kind":"slot"}
	],"connections":[
		{"id":"ok","type":"normal","from":{"nodeId":"a","pointId":"out"},"to":{"nodeId":"b","pointId":"in"}},
		{"id":"loop","type":"normal","from":{"nodeId":"a","pointId":"out"},"to":{"nodeId":"a","pointId":"in"}},
		{"id":"dangling","type":"normal","from":{"nodeId":"a","pointId":"out"},"to":{"nodeId":"ghost","pointId":"in"}},
		{"id":"badtype","type":"teleport","from":{"nodeId":"a","pointId":"out"},"to":{"nodeId":"b","pointId":"in"}},
		{"id":"","type":"normal","from":{"nodeId":"a","pointId":"out"},"to":{"nodeId":"b","pointId":"in"}}
	]}`

	snap := DecodeDocument([]byte(doc))
	require.Len(t, snap.Edges, 1)
	assert.Equal(t, "ok", snap.Edges[0].ID)
}

func TestDecodeNormalizesPayloads(t *testing.T) {
	doc := `{"components":[
		{"id":"g","kind":"group","slot":{"name":"stray"}},
		{"id":"m","kind":"match","group":{"name":"stray"}}
	],"connections":[]}`

	snap := DecodeDocument([]byte(doc))
	require.Len(t, snap.Nodes, 2)

	g := snap.Nodes[0]
	require.NotNil(t, g.Group)
	assert.Nil(t, g.Slot, "mismatched payloads are cleared")
	assert.GreaterOrEqual(t, g.Group.SlotCount, 1)

	m := snap.Nodes[1]
	require.NotNil(t, m.Match)
	assert.Nil(t, m.Group)
}
