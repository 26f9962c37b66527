package checkers

import (
	"sort"
	"testing"
)

type placement struct {
	player   int
	row, col int
	king     bool
}

func setup(t *testing.T, r Rules, ps ...placement) (*Game, []*Piece) {
	t.Helper()
	g := New(Config{Rules: r, Empty: true})
	var out []*Piece
	for _, p := range ps {
		pc, err := g.Place(p.player, p.row, p.col, p.king)
		if err != nil {
			t.Fatalf("place %v: %v", p, err)
		}
		out = append(out, pc)
	}
	return g, out
}

func dests(cs []Candidate) []Coord {
	var out []Coord
	for _, c := range cs {
		out = append(out, c.Dest)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func sameCoords(a, b []Coord) bool {
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

func TestResolveOpening(t *testing.T) {
	g := New(Config{})
	tile, _ := g.Board().At(2, 1)
	p := tile.Occupant()
	if p == nil || p.Owner() != g.Player(0) {
		t.Fatalf("expected player one on (2,1), got %v", p)
	}
	cs := Resolve(g.Board(), p, Rules{})
	want := []Coord{{3, 0}, {3, 2}}
	if got := dests(cs); !sameCoords(got, want) {
		t.Fatalf("dests=%v want %v", got, want)
	}
	for _, c := range cs {
		if c.IsCapture() {
			t.Errorf("unexpected capture %+v", c)
		}
	}
}

func TestResolveBlockedBackRow(t *testing.T) {
	g := New(Config{})
	tile, _ := g.Board().At(1, 2)
	if cs := Resolve(g.Board(), tile.Occupant(), Rules{}); len(cs) != 0 {
		t.Fatalf("blocked piece has moves: %v", dests(cs))
	}
}

func TestResolveSingleCapture(t *testing.T) {
	g, ps := setup(t, Rules{},
		placement{0, 2, 1, false},
		placement{1, 3, 2, false},
	)
	cs := Resolve(g.Board(), ps[0], Rules{})
	want := []Coord{{3, 0}, {4, 3}}
	if got := dests(cs); !sameCoords(got, want) {
		t.Fatalf("dests=%v want %v", got, want)
	}
	for _, c := range cs {
		switch c.Dest {
		case Coord{3, 0}:
			if c.IsCapture() {
				t.Errorf("simple move captured %v", c.Captured)
			}
		case Coord{4, 3}:
			if len(c.Captured) != 1 || c.Captured[0] != ps[1] {
				t.Errorf("captured=%v want [%v]", c.Captured, ps[1])
			}
			if !sameCoords(c.Path, []Coord{{4, 3}}) {
				t.Errorf("path=%v", c.Path)
			}
		}
	}
}

func TestResolveDoubleCapture(t *testing.T) {
	g, ps := setup(t, Rules{},
		placement{0, 2, 1, false},
		placement{1, 3, 2, false},
		placement{1, 5, 4, false},
	)
	cs := Resolve(g.Board(), ps[0], Rules{})
	want := []Coord{{3, 0}, {6, 5}}
	if got := dests(cs); !sameCoords(got, want) {
		t.Fatalf("dests=%v want %v", got, want)
	}
	var chain *Candidate
	for i := range cs {
		if cs[i].Dest == (Coord{6, 5}) {
			chain = &cs[i]
		}
	}
	if len(chain.Captured) != 2 || chain.Captured[0] != ps[1] || chain.Captured[1] != ps[2] {
		t.Fatalf("captured=%v", chain.Captured)
	}
	if !sameCoords(chain.Path, []Coord{{4, 3}, {6, 5}}) {
		t.Fatalf("path=%v", chain.Path)
	}
}

func TestResolveBranchingChains(t *testing.T) {
	g, ps := setup(t, Rules{},
		placement{0, 0, 3, false},
		placement{1, 1, 2, false},
		placement{1, 1, 4, false},
		placement{1, 3, 4, false},
	)
	cs := Resolve(g.Board(), ps[0], Rules{})
	want := []Coord{{2, 1}, {4, 3}}
	if got := dests(cs); !sameCoords(got, want) {
		t.Fatalf("dests=%v want %v", got, want)
	}
	for _, c := range cs {
		if c.Dest == (Coord{4, 3}) && len(c.Captured) != 2 {
			t.Errorf("chain to (4,3) captured %d", len(c.Captured))
		}
		if c.Dest == (Coord{2, 1}) && len(c.Captured) != 1 {
			t.Errorf("chain to (2,1) captured %d", len(c.Captured))
		}
	}
}

func TestResolveNoFriendlyCapture(t *testing.T) {
	g, ps := setup(t, Rules{},
		placement{0, 2, 1, false},
		placement{0, 3, 2, false},
	)
	cs := Resolve(g.Board(), ps[0], Rules{})
	if got := dests(cs); !sameCoords(got, []Coord{{3, 0}}) {
		t.Fatalf("dests=%v", got)
	}
}

func TestResolveEdge(t *testing.T) {
	g, ps := setup(t, Rules{},
		placement{0, 3, 0, false},
		placement{1, 4, 1, false},
		placement{1, 6, 7, false},
	)
	if got := dests(Resolve(g.Board(), ps[0], Rules{})); !sameCoords(got, []Coord{{5, 2}}) {
		t.Errorf("edge man dests=%v", got)
	}
	if got := dests(Resolve(g.Board(), ps[2], Rules{})); !sameCoords(got, []Coord{{5, 6}}) {
		t.Errorf("edge man dests=%v", got)
	}
}

func TestResolveKingLoop(t *testing.T) {
	g, ps := setup(t, Rules{},
		placement{0, 2, 2, true},
		placement{1, 3, 3, false},
		placement{1, 5, 3, false},
		placement{1, 5, 1, false},
		placement{1, 3, 1, false},
	)
	cs := Resolve(g.Board(), ps[0], Rules{})
	want := []Coord{{1, 1}, {1, 3}, {4, 0}, {4, 4}}
	if got := dests(cs); !sameCoords(got, want) {
		t.Fatalf("dests=%v want %v", got, want)
	}
	for _, c := range cs {
		if c.Dest.Row == 4 && len(c.Captured) != 3 {
			t.Errorf("chain to %v captured %d", c.Dest, len(c.Captured))
		}
	}
}

func TestResolveBackwardCaptures(t *testing.T) {
	g, ps := setup(t, Rules{},
		placement{0, 4, 3, false},
		placement{1, 3, 2, false},
	)
	if got := dests(Resolve(g.Board(), ps[0], Rules{})); !sameCoords(got, []Coord{{5, 2}, {5, 4}}) {
		t.Errorf("men capture backward without the rule: %v", got)
	}
	r := Rules{MenCaptureBackward: true}
	if got := dests(Resolve(g.Board(), ps[0], r)); !sameCoords(got, []Coord{{2, 1}, {5, 2}, {5, 4}}) {
		t.Errorf("backward capture dests=%v", got)
	}
}

func TestResolveDefaultRules(t *testing.T) {
	var r Rules
	if r.MandatoryCapture || r.MenCaptureBackward {
		t.Fatalf("zero Rules=%+v", r)
	}
	g, ps := setup(t, r,
		placement{0, 4, 3, true},
		placement{1, 3, 2, false},
	)
	want := []Coord{{2, 1}, {3, 4}, {5, 2}, {5, 4}}
	if got := dests(Resolve(g.Board(), ps[0], r)); !sameCoords(got, want) {
		t.Errorf("king dests=%v want %v", got, want)
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	g, ps := setup(t, Rules{},
		placement{0, 2, 1, false},
		placement{1, 3, 2, false},
		placement{1, 5, 4, false},
	)
	Resolve(g.Board(), ps[0], Rules{})
	checkConsistent(t, g)
	for _, p := range ps {
		if !p.InPlay() {
			t.Errorf("%v taken out of play", p)
		}
	}
	if ps[0].Coord() != (Coord{2, 1}) {
		t.Errorf("mover moved to %v", ps[0].Coord())
	}
}

func TestResolveCapturedPiece(t *testing.T) {
	g, ps := setup(t, Rules{},
		placement{0, 2, 1, false},
		placement{1, 3, 2, false},
	)
	if err := g.Play(Coord{2, 1}, Coord{4, 3}); err != nil {
		t.Fatal(err)
	}
	if cs := Resolve(g.Board(), ps[1], Rules{}); cs != nil {
		t.Fatalf("captured piece resolved %v", cs)
	}
}
