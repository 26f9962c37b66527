package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/checkers-go/checkers/checkers"
)

// Start is the position string of a freshly set up game.
const Start = "1a1a1a1a/a1a1a1a1/1a1a1a1a/8/8/b1b1b1b1/1b1b1b1b/b1b1b1b1 1"

// ParsePosition builds a game from a position string. Ranks run from
// row 0 to row 7 separated by '/'; 'a' and 'b' are men of player one
// and two, 'A' and 'B' their kings, and digits count empty tiles. The
// last word is the side to move, "1" or "2".
func ParsePosition(s string, cfg checkers.Config) (*checkers.Game, error) {
	words := strings.Fields(s)
	if len(words) != 2 {
		return nil, errors.New("bad position: wrong number of words")
	}
	var toMove int
	switch words[1] {
	case "1":
		toMove = 0
	case "2":
		toMove = 1
	default:
		return nil, fmt.Errorf("bad side to move: %s", words[1])
	}
	rows := strings.Split(words[0], "/")
	if len(rows) != checkers.Size {
		return nil, fmt.Errorf("bad position: %d ranks", len(rows))
	}

	cfg.Empty = true
	g := checkers.New(cfg)
	for row, r := range rows {
		col := 0
		for _, ch := range r {
			if col >= checkers.Size {
				return nil, fmt.Errorf("rank %d too long: %q", row+1, r)
			}
			switch ch {
			case 'a', 'A', 'b', 'B':
				id := 0
				if ch == 'b' || ch == 'B' {
					id = 1
				}
				king := ch == 'A' || ch == 'B'
				if _, err := g.Place(id, row, col, king); err != nil {
					return nil, fmt.Errorf("rank %d: %w", row+1, err)
				}
				col++
			case '1', '2', '3', '4', '5', '6', '7', '8':
				col += int(ch - '0')
			default:
				return nil, fmt.Errorf("rank %d: bad character %q", row+1, ch)
			}
		}
		if col != checkers.Size {
			return nil, fmt.Errorf("rank %d bad length: %d", row+1, col)
		}
	}
	if err := g.SetCurrentPlayer(toMove); err != nil {
		return nil, err
	}
	return g, nil
}

func FormatPosition(g *checkers.Game) string {
	var ranks []string
	for row := 0; row < checkers.Size; row++ {
		ranks = append(ranks, formatRank(g.Board(), row))
	}
	return fmt.Sprintf("%s %d", strings.Join(ranks, "/"), g.CurrentPlayer().ID+1)
}

func formatRank(b *checkers.Board, row int) string {
	var out []byte
	empty := 0
	for col := 0; col < checkers.Size; col++ {
		t, _ := b.At(row, col)
		p := t.Occupant()
		if p == nil {
			empty++
			continue
		}
		if empty > 0 {
			out = append(out, byte('0'+empty))
			empty = 0
		}
		out = append(out, pieceByte(p))
	}
	if empty > 0 {
		out = append(out, byte('0'+empty))
	}
	return string(out)
}

func pieceByte(p *checkers.Piece) byte {
	c := byte('a' + p.Owner().ID)
	if p.IsKing() {
		c -= 'a' - 'A'
	}
	return c
}
