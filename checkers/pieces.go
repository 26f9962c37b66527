package checkers

import "fmt"

type Player struct {
	ID   int
	Name string

	direction int
	pieces    []*Piece
}

// Pieces returns the player's pieces in creation order, including
// pieces that have been captured.
func (p *Player) Pieces() []*Piece {
	return p.pieces
}

// Direction is the row delta of a forward step for this player's men.
func (p *Player) Direction() int {
	return p.direction
}

// CrownRow is the far rank a man must reach to become a king.
func (p *Player) CrownRow() int {
	if p.direction > 0 {
		return Size - 1
	}
	return 0
}

// InPlay counts the pieces p still has on the board.
func (p *Player) InPlay() int {
	n := 0
	for _, pc := range p.pieces {
		if pc.inPlay {
			n++
		}
	}
	return n
}

func (p *Player) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("player %d", p.ID+1)
}

type Piece struct {
	owner    *Player
	row, col int
	king     bool
	inPlay   bool
	selected bool
}

func (p *Piece) Owner() *Player {
	return p.owner
}

func (p *Piece) Row() int {
	return p.row
}

func (p *Piece) Col() int {
	return p.col
}

func (p *Piece) Coord() Coord {
	return Coord{p.row, p.col}
}

func (p *Piece) Direction() int {
	return p.owner.direction
}

func (p *Piece) IsKing() bool {
	return p.king
}

func (p *Piece) InPlay() bool {
	return p.inPlay
}

// Selected reports whether the piece is the game's current selection.
func (p *Piece) Selected() bool {
	return p.selected
}

func (p *Piece) opponent(q *Piece) bool {
	return q != nil && q.owner != p.owner
}

// directions lists the diagonal steps a piece may take, forward
// steps first.
func (p *Piece) directions(backward bool) []Coord {
	d := p.owner.direction
	dirs := []Coord{{d, -1}, {d, 1}}
	if p.king || backward {
		dirs = append(dirs, Coord{-d, -1}, Coord{-d, 1})
	}
	return dirs
}

func (p *Piece) String() string {
	s := "man"
	if p.king {
		s = "king"
	}
	if !p.inPlay {
		return fmt.Sprintf("%s's captured %s", p.owner, s)
	}
	return fmt.Sprintf("%s's %s at %v", p.owner, s, p.Coord())
}
