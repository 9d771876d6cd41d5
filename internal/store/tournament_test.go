package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTournament(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tournament.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTournament(t *testing.T) {
	path := writeTournament(t, `{
		"id": "summer-open",
		"name": "Summer Open",
		"teams": [
			{"id": "t1", "name": "Alpha"},
			{"id": "t2"},
			{"id": "", "name": "nameless"}
		]
	}`)

	tn, err := LoadTournament(path)
	require.NoError(t, err)
	assert.Equal(t, "summer-open", tn.ID)
	assert.Equal(t, "Summer Open", tn.Name)
	require.Len(t, tn.Teams, 2, "entries without an id are dropped")
	assert.Equal(t, "Alpha", tn.Teams[0].Name)
	assert.Equal(t, "t2", tn.Teams[1].Name, "team name defaults to its id")
}

func TestLoadTournamentNameDefaultsToID(t *testing.T) {
	path := writeTournament(t, `{"id": "cup-24"}`)
	tn, err := LoadTournament(path)
	require.NoError(t, err)
	assert.Equal(t, "cup-24", tn.Name)
	assert.Empty(t, tn.Teams)
}

func TestLoadTournamentErrors(t *testing.T) {
	_, err := LoadTournament(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadTournament(writeTournament(t, `{broken`))
	assert.Error(t, err)

	_, err = LoadTournament(writeTournament(t, `{"id": "  "}`))
	assert.Error(t, err, "blank id is rejected")
}
