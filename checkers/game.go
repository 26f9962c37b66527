package checkers

import "errors"

// Rows is the number of ranks each side fills at the start.
const Rows = 3

type Config struct {
	Names [2]string
	Rules Rules
	// Empty skips the standard setup; pieces are added with Place.
	Empty bool
}

var (
	ErrOutOfBounds        = errors.New("coordinate is off the board")
	ErrInvalidSelection   = errors.New("no piece of the player to move on that tile")
	ErrNoSelection        = errors.New("no piece is selected")
	ErrInvalidDestination = errors.New("tile is not a legal destination")
	ErrOccupied           = errors.New("tile is occupied")
	ErrNoPlayer           = errors.New("no such player")
)

// Game holds the board and turn state of one game. It is the only
// writer of board, tile and piece state.
type Game struct {
	cfg     Config
	board   *Board
	players [2]*Player
	current int

	selected     *Piece
	destinations []Candidate
}

// New creates a game. Player one moves first, starts on rows 0-2 and
// moves towards row 7; player two starts on rows 5-7.
func New(cfg Config) *Game {
	g := &Game{
		cfg:   cfg,
		board: NewBoard(),
	}
	for i := range g.players {
		g.players[i] = &Player{
			ID:        i,
			Name:      cfg.Names[i],
			direction: 1 - 2*i,
		}
	}
	if cfg.Empty {
		return g
	}
	for row := 0; row < Size; row++ {
		var owner int
		switch {
		case row < Rows:
			owner = 0
		case row >= Size-Rows:
			owner = 1
		default:
			continue
		}
		for col := 0; col < Size; col++ {
			if (row+col)%2 == 1 {
				g.Place(owner, row, col, false)
			}
		}
	}
	return g
}

// Place puts a new piece for player id on an empty tile. It is meant
// for setting up positions before play starts.
func (g *Game) Place(id, row, col int, king bool) (*Piece, error) {
	if id < 0 || id >= len(g.players) {
		return nil, ErrNoPlayer
	}
	t, ok := g.board.At(row, col)
	if !ok {
		return nil, ErrOutOfBounds
	}
	if !t.Empty() {
		return nil, ErrOccupied
	}
	owner := g.players[id]
	p := &Piece{owner: owner, king: king, inPlay: true}
	owner.pieces = append(owner.pieces, p)
	g.board.place(p, t.Coord())
	return p, nil
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Rules() Rules {
	return g.cfg.Rules
}

func (g *Game) Players() [2]*Player {
	return g.players
}

// Player returns the player with the given id, or nil if there is
// none.
func (g *Game) Player(id int) *Player {
	if id < 0 || id >= len(g.players) {
		return nil
	}
	return g.players[id]
}

func (g *Game) CurrentPlayer() *Player {
	return g.players[g.current]
}

// SetCurrentPlayer sets the side to move and clears any selection.
// An unknown id returns ErrNoPlayer and leaves the game untouched.
func (g *Game) SetCurrentPlayer(id int) error {
	if id < 0 || id >= len(g.players) {
		return ErrNoPlayer
	}
	g.clearSelection()
	g.current = id
	return nil
}

func (g *Game) Selected() *Piece {
	return g.selected
}

func (g *Game) Destinations() []Candidate {
	return g.destinations
}

func (g *Game) IsDestination(row, col int) bool {
	_, ok := g.destination(Coord{row, col})
	return ok
}

// Activate dispatches an input event on (row, col): with nothing
// selected it selects, otherwise it deselects the selected piece or
// moves it to the tile.
func (g *Game) Activate(row, col int) error {
	if g.selected == nil {
		return g.Select(row, col)
	}
	if !InBounds(row, col) {
		return ErrOutOfBounds
	}
	if g.selected.Coord() == (Coord{row, col}) {
		return g.Select(row, col)
	}
	return g.Choose(row, col)
}

// Select selects the current player's piece on (row, col) and
// computes its destinations. Selecting the already selected piece
// deselects it.
func (g *Game) Select(row, col int) error {
	t, ok := g.board.At(row, col)
	if !ok {
		return ErrOutOfBounds
	}
	p := t.Occupant()
	if p == nil || p.owner != g.CurrentPlayer() {
		return ErrInvalidSelection
	}
	if p == g.selected {
		g.clearSelection()
		return nil
	}
	g.clearSelection()
	g.selected = p
	p.selected = true
	g.destinations = g.resolve(p)
	return nil
}

// Choose moves the selected piece to (row, col), removing everything
// it captures on the way, and passes the turn.
func (g *Game) Choose(row, col int) error {
	if !InBounds(row, col) {
		return ErrOutOfBounds
	}
	if g.selected == nil {
		return ErrNoSelection
	}
	c, ok := g.destination(Coord{row, col})
	if !ok {
		return ErrInvalidDestination
	}
	g.apply(g.selected, c)
	g.advanceTurn()
	return nil
}

// Play selects the piece on from and moves it to to as a single
// action. The game is unchanged if either step is rejected.
func (g *Game) Play(from, to Coord) error {
	prev, prevDests := g.selected, g.destinations
	g.clearSelection()
	if err := g.Select(from.Row, from.Col); err != nil {
		g.restoreSelection(prev, prevDests)
		return err
	}
	if err := g.Choose(to.Row, to.Col); err != nil {
		g.restoreSelection(prev, prevDests)
		return err
	}
	return nil
}

// Apply plays m, which must be one of LegalMoves. Unlike Play it tells
// apart chains that end on the same tile. Any selection is cleared.
func (g *Game) Apply(m Move) error {
	t, ok := g.board.At(m.From.Row, m.From.Col)
	if !ok {
		return ErrOutOfBounds
	}
	p := t.Occupant()
	if p == nil || p.owner != g.CurrentPlayer() {
		return ErrInvalidSelection
	}
	for _, c := range g.resolve(p) {
		if samePath(c.Path, m.Path) {
			g.apply(p, c)
			g.advanceTurn()
			return nil
		}
	}
	return ErrInvalidDestination
}

func samePath(a, b []Coord) bool {
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

func (g *Game) restoreSelection(p *Piece, dests []Candidate) {
	g.clearSelection()
	g.selected, g.destinations = p, dests
	if p != nil {
		p.selected = true
	}
}

func (g *Game) destination(c Coord) (Candidate, bool) {
	var best Candidate
	found := false
	for _, d := range g.destinations {
		if d.Dest != c {
			continue
		}
		if !found || len(d.Captured) > len(best.Captured) {
			best = d
			found = true
		}
	}
	return best, found
}

func (g *Game) apply(p *Piece, c Candidate) {
	g.board.lift(p)
	for _, v := range c.Captured {
		g.board.lift(v)
		v.inPlay = false
		v.row, v.col = -1, -1
	}
	g.board.place(p, c.Dest)
	if c.Dest.Row == p.owner.CrownRow() {
		p.king = true
	}
}

func (g *Game) advanceTurn() {
	g.clearSelection()
	g.current = 1 - g.current
}

func (g *Game) clearSelection() {
	if g.selected != nil {
		g.selected.selected = false
	}
	g.selected = nil
	g.destinations = nil
}

func (g *Game) resolve(p *Piece) []Candidate {
	cs := Resolve(g.board, p, g.cfg.Rules)
	if !g.cfg.Rules.MandatoryCapture || !g.mustCapture(p.owner) {
		return cs
	}
	var out []Candidate
	for _, c := range cs {
		if c.IsCapture() {
			out = append(out, c)
		}
	}
	return out
}

func (g *Game) mustCapture(pl *Player) bool {
	for _, p := range pl.pieces {
		if !p.inPlay {
			continue
		}
		for _, c := range Resolve(g.board, p, g.cfg.Rules) {
			if c.IsCapture() {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists every move available to the player to move.
func (g *Game) LegalMoves() []Move {
	return g.movesFor(g.CurrentPlayer())
}

func (g *Game) movesFor(pl *Player) []Move {
	var out []Move
	for _, p := range pl.pieces {
		if !p.inPlay {
			continue
		}
		for _, c := range g.resolve(p) {
			out = append(out, Move{From: p.Coord(), Candidate: c})
		}
	}
	return out
}

// HasLegalMove reports whether any in-play piece of pl has a
// destination.
func (g *Game) HasLegalMove(pl *Player) bool {
	for _, p := range pl.pieces {
		if p.inPlay && len(Resolve(g.board, p, g.cfg.Rules)) > 0 {
			return true
		}
	}
	return false
}

// GameOver reports whether the player to move is stuck. The winner is
// the other player.
func (g *Game) GameOver() (over bool, winner *Player) {
	if g.HasLegalMove(g.CurrentPlayer()) {
		return false, nil
	}
	return true, g.players[1-g.current]
}

// Clone returns a deep copy of g, including its selection.
func (g *Game) Clone() *Game {
	c := &Game{
		cfg:     g.cfg,
		board:   NewBoard(),
		current: g.current,
	}
	pieces := make(map[*Piece]*Piece)
	for i, pl := range g.players {
		np := &Player{ID: pl.ID, Name: pl.Name, direction: pl.direction}
		for _, p := range pl.pieces {
			q := &Piece{owner: np, row: p.row, col: p.col, king: p.king, inPlay: p.inPlay, selected: p.selected}
			np.pieces = append(np.pieces, q)
			pieces[p] = q
			if q.inPlay {
				c.board.place(q, q.Coord())
			}
		}
		c.players[i] = np
	}
	if g.selected != nil {
		c.selected = pieces[g.selected]
	}
	for _, d := range g.destinations {
		nd := Candidate{Dest: d.Dest, Path: append([]Coord(nil), d.Path...)}
		for _, v := range d.Captured {
			nd.Captured = append(nd.Captured, pieces[v])
		}
		c.destinations = append(c.destinations, nd)
	}
	return c
}
