// Package store persists bracket documents to a durable key scoped by
// tournament id, and loads the tournament roster handed to the editor.
package store

import (
	"encoding/json"
	"log/slog"

	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
)

// bracketDoc is the wire form of a saved bracket. The field names are
// part of the stored format and must round-trip losslessly.
type bracketDoc struct {
	Components  []*bracketgraph.Node `json:"components"`
	Connections []*bracketgraph.Edge `json:"connections"`
}

// EncodeDocument serializes a graph snapshot to its stored JSON form.
func EncodeDocument(snap bracketgraph.Snapshot) ([]byte, error) {
	doc := bracketDoc{
		Components:  snap.Nodes,
		Connections: snap.Edges,
	}
	if doc.Components == nil {
		doc.Components = []*bracketgraph.Node{}
	}
	if doc.Connections == nil {
		doc.Connections = []*bracketgraph.Edge{}
	}
	return json.Marshal(doc)
}

// DecodeDocument parses a stored bracket document. It never fails:
// malformed data is logged and dropped so a bad save degrades to an
// empty (or partial) graph instead of refusing to load the editor.
// Missing arrays default to empty; nodes with unknown kinds, edges with
// unknown types, self-loops, and edges referencing absent nodes are
// discarded with a warning.
func DecodeDocument(data []byte) bracketgraph.Snapshot {
	var doc bracketDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("discarding malformed bracket document", "err", err)
		return bracketgraph.Snapshot{}
	}

	var snap bracketgraph.Snapshot
	seen := make(map[string]bool)
	for _, n := range doc.Components {
		if n == nil || n.ID == "" || !bracketgraph.ValidKind(n.Kind) {
			slog.Warn("discarding bracket node", "reason", "missing id or unknown kind")
			continue
		}
		if seen[n.ID] {
			slog.Warn("discarding bracket node", "reason", "duplicate id", "id", n.ID)
			continue
		}
		normalizeNode(n)
		seen[n.ID] = true
		snap.Nodes = append(snap.Nodes, n)
	}
	for _, e := range doc.Connections {
		switch {
		case e == nil || e.ID == "":
			slog.Warn("discarding bracket edge", "reason", "missing id")
		case !bracketgraph.ValidEdgeType(e.Type):
			slog.Warn("discarding bracket edge", "reason", "unknown type", "type", e.Type)
		case e.From.NodeID == e.To.NodeID:
			slog.Warn("discarding bracket edge", "reason", "self-loop", "id", e.ID)
		case !seen[e.From.NodeID] || !seen[e.To.NodeID]:
			slog.Warn("discarding bracket edge", "reason", "dangling endpoint", "id", e.ID)
		default:
			snap.Edges = append(snap.Edges, e)
		}
	}
	return snap
}

// normalizeNode defaults the payload matching the node's kind and clears
// any payload that doesn't, so downstream code can rely on exactly one
// being set.
func normalizeNode(n *bracketgraph.Node) {
	switch n.Kind {
	case bracketgraph.KindGroup:
		if n.Group == nil {
			n.Group = &bracketgraph.GroupData{}
		}
		if n.Group.SlotCount < 1 {
			n.Group.SlotCount = 1
		}
		n.Slot, n.Match = nil, nil
	case bracketgraph.KindSlot:
		if n.Slot == nil {
			n.Slot = &bracketgraph.SlotData{}
		}
		n.Group, n.Match = nil, nil
	case bracketgraph.KindMatch:
		if n.Match == nil {
			n.Match = &bracketgraph.MatchData{}
		}
		n.Group, n.Slot = nil, nil
	}
}
