package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/checkers-go/checkers/checkers"
)

var (
	squareRE = regexp.MustCompile(`^([a-h])([1-8])$`)
	moveRE   = regexp.MustCompile(`^[a-h][1-8]([-x][a-h][1-8])+$`)
)

var ErrBadSquare = errors.New("bad square")

// ParseSquare parses a square name such as "c3". The letter names the
// column and the digit is the row plus one.
func ParseSquare(s string) (checkers.Coord, error) {
	groups := squareRE.FindStringSubmatch(strings.TrimSpace(s))
	if groups == nil {
		return checkers.Coord{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	return checkers.Coord{
		Row: int(groups[2][0] - '1'),
		Col: int(groups[1][0] - 'a'),
	}, nil
}

func FormatSquare(c checkers.Coord) string {
	return string([]byte{byte('a' + c.Col), byte('1' + c.Row)})
}

// ParseMove parses "c3-d4" or a capture chain such as "c3xe5xg7". It
// returns the starting square and every landing square in order.
func ParseMove(s string) (checkers.Coord, []checkers.Coord, error) {
	s = strings.TrimSpace(s)
	if !moveRE.MatchString(s) {
		return checkers.Coord{}, nil, fmt.Errorf("bad move: %q", s)
	}
	capture := strings.ContainsRune(s, 'x')
	if capture && strings.ContainsRune(s, '-') {
		return checkers.Coord{}, nil, fmt.Errorf("bad move: %q mixes steps and jumps", s)
	}
	if !capture && len(s) != len("c3-d4") {
		return checkers.Coord{}, nil, fmt.Errorf("bad move: %q takes more than one step", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return checkers.Coord{}, nil, err
	}
	var path []checkers.Coord
	for i := 3; i < len(s); i += 3 {
		c, err := ParseSquare(s[i : i+2])
		if err != nil {
			return checkers.Coord{}, nil, err
		}
		path = append(path, c)
	}
	return from, path, nil
}

func FormatMove(m checkers.Move) string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	var b strings.Builder
	b.WriteString(FormatSquare(m.From))
	for _, c := range m.Path {
		b.WriteString(sep)
		b.WriteString(FormatSquare(c))
	}
	return b.String()
}

// FindMove finds the legal move of g written as s. A capture may be
// given as just its start and end squares.
func FindMove(g *checkers.Game, s string) (checkers.Move, error) {
	from, path, err := ParseMove(s)
	if err != nil {
		return checkers.Move{}, err
	}
	dest := path[len(path)-1]
	var found *checkers.Move
	for _, m := range g.LegalMoves() {
		if m.From != from || m.Dest != dest {
			continue
		}
		if len(path) > 1 && !samePath(m.Path, path) {
			continue
		}
		if found == nil || len(m.Captured) > len(found.Captured) {
			mv := m
			found = &mv
		}
	}
	if found == nil {
		return checkers.Move{}, fmt.Errorf("illegal move: %s", s)
	}
	return *found, nil
}

func samePath(a, b []checkers.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
