package store

import "github.com/dali-douzi/bracketforge/pkg/bracketgraph"

// BracketStore is the durable key-value channel a bracket document is
// saved to, keyed by tournament id. Implementations: SQLite for real
// sessions, Memory for tests.
type BracketStore interface {
	// Load reads the bracket for the tournament. ok is false when no
	// document has been saved yet.
	Load(tournamentID string) (snap bracketgraph.Snapshot, ok bool, err error)
	// Save writes the bracket for the tournament, replacing any
	// previous document.
	Save(tournamentID string, snap bracketgraph.Snapshot) error
	Close() error
}

// BracketKey namespaces the stored document by tournament id.
func BracketKey(tournamentID string) string {
	return "bracket-" + tournamentID
}

// Memory is an in-process BracketStore.
type Memory struct {
	docs map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Load implements BracketStore.
func (m *Memory) Load(tournamentID string) (bracketgraph.Snapshot, bool, error) {
	data, ok := m.docs[BracketKey(tournamentID)]
	if !ok {
		return bracketgraph.Snapshot{}, false, nil
	}
	return DecodeDocument(data), true, nil
}

// Save implements BracketStore.
func (m *Memory) Save(tournamentID string, snap bracketgraph.Snapshot) error {
	data, err := EncodeDocument(snap)
	if err != nil {
		return err
	}
	m.docs[BracketKey(tournamentID)] = data
	return nil
}

// Close implements BracketStore.
func (m *Memory) Close() error { return nil }

var _ BracketStore = (*Memory)(nil)
