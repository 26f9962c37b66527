package logs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/checkers-go/checkers/checkers"
	"github.com/checkers-go/checkers/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	t.Cleanup(repo.Close)
	return repo
}

func TestSummarize(t *testing.T) {
	g, err := notation.ParsePosition("8/8/1a6/2b5/8/8/8/8 1", checkers.Config{
		Names: [2]string{"alice", "bob"},
		Rules: checkers.Rules{MandatoryCapture: true},
	})
	require.NoError(t, err)
	s := checkers.NewSession(g)

	sum := Summarize(s, s.Snapshot(), 0)
	assert.Equal(t, ResultUnfinished, sum.Result)
	assert.Equal(t, "", sum.Winner)
	assert.True(t, sum.MandatoryCapture)

	require.NoError(t, s.Play(checkers.Coord{Row: 2, Col: 1}, checkers.Coord{Row: 4, Col: 3}))
	sum = Summarize(s, s.Snapshot(), 1)
	assert.Equal(t, s.ID, sum.ID)
	assert.Equal(t, "alice", sum.Player1)
	assert.Equal(t, "bob", sum.Player2)
	assert.Equal(t, ResultOne, sum.Result)
	assert.Equal(t, WinnerOne, sum.Winner)
	assert.Equal(t, 1, sum.Moves)
	assert.Equal(t, "8/8/8/8/3a4/8/8/8 2", sum.Position)
}

func TestInsertAndQuery(t *testing.T) {
	repo := openTemp(t)
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	games := []*Game{
		{ID: "g1", Timestamp: start, Player1: "alice", Player2: "bob",
			Result: ResultOne, Winner: WinnerOne, Moves: 41, Position: notation.Start},
		{ID: "g2", Timestamp: start.Add(time.Hour), Player1: "bob", Player2: "alice",
			Result: ResultOne, Winner: WinnerOne, Moves: 37, Position: notation.Start},
		{ID: "g3", Timestamp: start.Add(2 * time.Hour), Player1: "alice", Player2: "carol",
			Result: ResultUnfinished, Moves: 3, Position: notation.Start, MandatoryCapture: true},
	}
	require.NoError(t, repo.InsertGame(games[0]))
	require.NoError(t, repo.InsertGames(games[1:]))

	got, err := repo.Games("alice")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, g := range got {
		assert.Equal(t, games[i].ID, g.ID)
		assert.True(t, games[i].Timestamp.Equal(g.Timestamp), "time %v != %v", g.Timestamp, games[i].Timestamp)
		assert.Equal(t, games[i].Moves, g.Moves)
		assert.Equal(t, games[i].MandatoryCapture, g.MandatoryCapture)
	}

	got, err = repo.Games("carol")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "g3", got[0].ID)

	stats, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, []PlayerStats{
		{Player: "alice", Games: 3, Wins: 1, Losses: 1, Unfinished: 1},
		{Player: "bob", Games: 2, Wins: 1, Losses: 1},
		{Player: "carol", Games: 1, Unfinished: 1},
	}, stats)
}

func TestInsertDuplicate(t *testing.T) {
	repo := openTemp(t)
	g := &Game{ID: "dup", Timestamp: time.Now(), Result: ResultUnfinished}
	require.NoError(t, repo.InsertGame(g))
	assert.Error(t, repo.InsertGame(g))
	assert.Error(t, repo.InsertGames([]*Game{{ID: "fresh", Result: ResultUnfinished}, g}))

	got, err := repo.Games("")
	require.NoError(t, err)
	assert.Len(t, got, 1, "failed batch must roll back")
}
