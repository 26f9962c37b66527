package checkers

// Rules selects the optional rule variations. The zero value leaves
// captures optional and lets men capture only forward; kings capture
// in all four directions under any Rules.
type Rules struct {
	// MandatoryCapture restricts the player to capturing moves
	// whenever any of their pieces has one.
	MandatoryCapture bool
	// MenCaptureBackward lets uncrowned pieces jump backwards. A man
	// that lands on its crowning row ends its chain there.
	MenCaptureBackward bool
}

// A Candidate is one destination reachable by the piece being
// resolved. Path holds every landing tile in order and ends with
// Dest; Captured holds the jumped pieces in the order they were
// taken.
type Candidate struct {
	Dest     Coord
	Captured []*Piece
	Path     []Coord
}

func (c Candidate) IsCapture() bool {
	return len(c.Captured) > 0
}

// Move is a Candidate together with the square the piece starts on.
type Move struct {
	From Coord
	Candidate
}

// Resolve computes every legal destination of p on b: simple steps
// first, then the endpoints of all capture chains. It does not modify
// the board.
func Resolve(b *Board, p *Piece, r Rules) []Candidate {
	if p == nil || !p.inPlay {
		return nil
	}
	origin := p.Coord()
	var out []Candidate
	for _, d := range p.directions(false) {
		to := origin.Add(d)
		t := b.at(to)
		if t == nil || !t.Empty() {
			continue
		}
		out = append(out, Candidate{Dest: to, Path: []Coord{to}})
	}
	return append(out, chains(b, p, r, []Coord{origin}, nil)...)
}

// chains returns the completed capture chains that continue from the
// last tile of visited. visited starts with the origin; captured is
// what the chain has jumped so far. Neither slice is modified.
func chains(b *Board, p *Piece, r Rules, visited []Coord, captured []*Piece) []Candidate {
	at := visited[len(visited)-1]
	if len(captured) > 0 && !p.king && at.Row == p.owner.CrownRow() {
		return []Candidate{finish(visited, captured)}
	}

	var out []Candidate
	for _, d := range p.directions(r.MenCaptureBackward) {
		over := at.Add(d)
		land := over.Add(d)
		victim := b.Occupant(over)
		if !p.opponent(victim) || containsPiece(captured, victim) {
			continue
		}
		t := b.at(land)
		if t == nil || !t.Empty() || containsCoord(visited, land) {
			continue
		}
		path := append(visited[:len(visited):len(visited)], land)
		taken := append(captured[:len(captured):len(captured)], victim)
		out = append(out, chains(b, p, r, path, taken)...)
	}
	if len(out) == 0 && len(captured) > 0 {
		out = append(out, finish(visited, captured))
	}
	return out
}

func finish(visited []Coord, captured []*Piece) Candidate {
	path := make([]Coord, len(visited)-1)
	copy(path, visited[1:])
	return Candidate{
		Dest:     visited[len(visited)-1],
		Captured: captured,
		Path:     path,
	}
}

func containsCoord(cs []Coord, c Coord) bool {
	for _, o := range cs {
		if o == c {
			return true
		}
	}
	return false
}

func containsPiece(ps []*Piece, p *Piece) bool {
	for _, o := range ps {
		if o == p {
			return true
		}
	}
	return false
}
