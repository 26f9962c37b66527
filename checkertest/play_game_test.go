package checkertest

import (
	"testing"

	"github.com/checkers-go/checkers/checkers"
	"github.com/checkers-go/checkers/notation"
)

func TestPlayGames(t *testing.T) {
	cases := []struct {
		name  string
		rules checkers.Rules
		moves string
		final string
	}{
		{
			"exchange",
			checkers.Rules{},
			"d3-e4 c6-d5 e4xc6 b7xd5",
			"1a1a1a1a/a1a1a1a1/1a3a1a/8/3b4/b3b1b1/3b1b1b/b1b1b1b1 1",
		},
		{
			"declined capture",
			checkers.Rules{},
			"d3-e4 c6-d5 b3-a4",
			"1a1a1a1a/a1a1a1a1/5a1a/a3a3/3b4/b3b1b1/1b1b1b1b/b1b1b1b1 2",
		},
		{
			"forced capture",
			checkers.Rules{MandatoryCapture: true},
			"d3-e4 c6-d5 e4xc6 d7xb5",
			"1a1a1a1a/a1a1a1a1/1a3a1a/8/1b6/b3b1b1/1b3b1b/b1b1b1b1 1",
		},
	}
	for _, tc := range cases {
		g := Position(checkers.Config{Rules: tc.rules}, "", tc.moves)
		if got := notation.FormatPosition(g); got != tc.final {
			t.Errorf("%s: final position\n got %s\nwant %s", tc.name, got, tc.final)
		}
	}
}

func TestMandatoryCaptureRejectsStep(t *testing.T) {
	g := Position(checkers.Config{Rules: checkers.Rules{MandatoryCapture: true}}, "", "d3-e4 c6-d5")
	if _, err := notation.FindMove(g, "b3-a4"); err == nil {
		t.Fatal("step allowed while a capture is available")
	}
	m, err := notation.FindMove(g, "e4xc6")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Captured) != 1 || m.Captured[0].Coord() != Square("d5") {
		t.Fatalf("captured=%v", m.Captured)
	}
}

func TestFormatMoves(t *testing.T) {
	g := Position(checkers.Config{}, "8/8/1a6/2b5/8/4b3/8/8 1", "")
	if got := FormatMoves(g.LegalMoves()); got != "b3-a4 b3xd5xf7" {
		t.Fatalf("moves=%q", got)
	}
}
