package checkertest

import (
	"strings"

	"github.com/checkers-go/checkers/checkers"
	"github.com/checkers-go/checkers/notation"
)

func Square(s string) checkers.Coord {
	c, e := notation.ParseSquare(s)
	if e != nil {
		panic(e)
	}
	return c
}

func FormatMoves(ms []checkers.Move) string {
	var bits []string
	for _, m := range ms {
		bits = append(bits, notation.FormatMove(m))
	}
	return strings.Join(bits, " ")
}

// Position parses pos (or the start position if pos is empty) and
// plays the space-separated moves in ms.
func Position(cfg checkers.Config, pos, ms string) *checkers.Game {
	if pos == "" {
		pos = notation.Start
	}
	g, e := notation.ParsePosition(pos, cfg)
	if e != nil {
		panic(e)
	}
	for _, s := range strings.Fields(ms) {
		m, e := notation.FindMove(g, s)
		if e != nil {
			panic(e)
		}
		if e := g.Apply(m); e != nil {
			panic(e)
		}
	}
	return g
}
