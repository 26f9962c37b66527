package checkers

import "fmt"

// Size is the width and height of the board.
const Size = 8

type Coord struct {
	Row, Col int
}

func (c Coord) Add(d Coord) Coord {
	return Coord{c.Row + d.Row, c.Col + d.Col}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

type Tile struct {
	row, col int
	occupant *Piece
}

func (t *Tile) Row() int {
	return t.row
}

func (t *Tile) Col() int {
	return t.col
}

func (t *Tile) Coord() Coord {
	return Coord{t.row, t.col}
}

// Occupant returns the piece on the tile, or nil if it is empty.
func (t *Tile) Occupant() *Piece {
	return t.occupant
}

func (t *Tile) Empty() bool {
	return t.occupant == nil
}

// Dark reports whether the tile is one of the playing squares.
func (t *Tile) Dark() bool {
	return (t.row+t.col)%2 == 1
}

type Board struct {
	tiles [Size][Size]Tile
}

func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			b.tiles[row][col] = Tile{row: row, col: col}
		}
	}
	return b
}

// At returns the tile at (row, col). Coordinates outside the board
// return false and never touch the grid.
func (b *Board) At(row, col int) (*Tile, bool) {
	if !InBounds(row, col) {
		return nil, false
	}
	return &b.tiles[row][col], true
}

func (b *Board) at(c Coord) *Tile {
	t, _ := b.At(c.Row, c.Col)
	return t
}

// Occupant returns the piece at c, or nil for an empty or off-board
// coordinate.
func (b *Board) Occupant(c Coord) *Piece {
	if t := b.at(c); t != nil {
		return t.occupant
	}
	return nil
}

func (b *Board) place(p *Piece, c Coord) {
	t := b.at(c)
	t.occupant = p
	p.row, p.col = c.Row, c.Col
}

func (b *Board) lift(p *Piece) {
	if t := b.at(p.Coord()); t != nil && t.occupant == p {
		t.occupant = nil
	}
}
