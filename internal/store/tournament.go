package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
)

// Tournament is the record handed to the editor: an id, a display name,
// and the team roster. The editor never mutates it; it is a snapshot for
// the duration of one editing session.
type Tournament struct {
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	Teams []bracketgraph.Team `json:"teams"`
}

// LoadTournament reads a tournament record from a JSON file. The id is
// required; a missing or null team list defaults to empty, and entries
// without an id are dropped.
func LoadTournament(path string) (*Tournament, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tournament file: %w", err)
	}

	var t Tournament
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing tournament file: %w", err)
	}
	if strings.TrimSpace(t.ID) == "" {
		return nil, fmt.Errorf("tournament file %s: missing id", path)
	}
	if t.Name == "" {
		t.Name = t.ID
	}

	teams := t.Teams[:0]
	for _, team := range t.Teams {
		if team.ID == "" {
			continue
		}
		if team.Name == "" {
			team.Name = team.ID
		}
		teams = append(teams, team)
	}
	t.Teams = teams
	return &t, nil
}
