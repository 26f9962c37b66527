package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/checkers-go/checkers/checkers"
	"github.com/checkers-go/checkers/notation"
	"github.com/fatih/color"
	"golang.org/x/net/context"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// An Event is one unit of user intent. Either Tile was activated, or
// Move names a whole move, or the player gave up.
type Event struct {
	Tile checkers.Coord
	Move *checkers.Move
	Quit bool
}

type Player interface {
	Next(ctx context.Context, g *checkers.Game) (Event, error)
}

var ErrQuit = errors.New("player quit")

type GlyphSet struct {
	Man  string
	King string
}

type Glyphs struct {
	One, Two GlyphSet
	Empty    string
	Dest     string
}

var DefaultGlyphs = Glyphs{
	One:   GlyphSet{Man: "a", King: "A"},
	Two:   GlyphSet{Man: "b", King: "B"},
	Empty: " ",
	Dest:  "*",
}

var UnicodeGlyphs = Glyphs{
	One:   GlyphSet{Man: "⛀", King: "⛁"},
	Two:   GlyphSet{Man: "⛂", King: "⛃"},
	Empty: " ",
	Dest:  "·",
}

type CLI struct {
	session *checkers.Session
	plies   int

	Config   checkers.Config
	// Position, if set, is the position string to start from.
	Position string
	Glyphs   *Glyphs
	Color    bool
	Out      io.Writer
	Players  [2]Player
}

// Session returns the session of the game being played, or nil before
// Play is called.
func (c *CLI) Session() *checkers.Session {
	return c.session
}

// Plies returns the number of completed moves.
func (c *CLI) Plies() int {
	return c.plies
}

// Play runs a game to completion and returns its final state. If a
// player stops giving input the game is returned with the error.
func (c *CLI) Play(ctx context.Context) (*checkers.Game, error) {
	c.plies = 0
	g := checkers.New(c.Config)
	if c.Position != "" {
		var err error
		if g, err = notation.ParsePosition(c.Position, c.Config); err != nil {
			return nil, err
		}
	}
	c.session = checkers.NewSession(g)
	for {
		var over bool
		var winner *checkers.Player
		var toMove *checkers.Player
		c.session.View(func(g *checkers.Game) {
			RenderBoard(c.Glyphs, c.Out, g, c.Color)
			over, winner = g.GameOver()
			toMove = g.CurrentPlayer()
		})
		if over {
			fmt.Fprintf(c.Out, "Game Over! %s wins: %s has no legal move.\n",
				label(winner), label(toMove))
			return c.session.Snapshot(), nil
		}
		ev, err := c.Players[toMove.ID].Next(ctx, c.session.Snapshot())
		if err != nil {
			return c.session.Snapshot(), err
		}
		if ev.Quit {
			return c.session.Snapshot(), ErrQuit
		}
		m, err := c.apply(ev)
		if err != nil {
			fmt.Fprintln(c.Out, "illegal move:", err)
			continue
		}
		if m == nil {
			continue
		}
		c.plies++
		if toMove.ID == 0 {
			fmt.Fprintf(c.Out, "%d. %s\n", (c.plies+1)/2, notation.FormatMove(*m))
		} else {
			fmt.Fprintf(c.Out, "%d. ... %s\n", (c.plies+1)/2, notation.FormatMove(*m))
		}
	}
}

// apply feeds ev to the session. It returns the move made, or nil if
// the event only changed the selection.
func (c *CLI) apply(ev Event) (*checkers.Move, error) {
	if ev.Move != nil {
		if err := c.session.Apply(*ev.Move); err != nil {
			return nil, err
		}
		return ev.Move, nil
	}

	var before checkers.Move
	var selected bool
	var mover int
	c.session.View(func(g *checkers.Game) {
		mover = g.CurrentPlayer().ID
		if p := g.Selected(); p != nil {
			selected = true
			before.From = p.Coord()
			for _, d := range g.Destinations() {
				if d.Dest != ev.Tile {
					continue
				}
				if before.Path == nil || len(d.Captured) > len(before.Captured) {
					before.Candidate = d
				}
			}
		}
	})
	if err := c.session.Activate(ev.Tile.Row, ev.Tile.Col); err != nil {
		return nil, err
	}
	var moved bool
	c.session.View(func(g *checkers.Game) {
		moved = g.CurrentPlayer().ID != mover
	})
	if !moved || !selected {
		return nil, nil
	}
	return &before, nil
}

func label(p *checkers.Player) string {
	return cases.Title(language.English).String(p.String())
}

func RenderBoard(gl *Glyphs, out io.Writer, g *checkers.Game, colored bool) {
	if gl == nil {
		gl = &DefaultGlyphs
	}
	pal := newPalette(colored)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", label(g.CurrentPlayer()))
	w := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	for y := checkers.Size - 1; y >= 0; y-- {
		fmt.Fprintf(w, "%c.\t", '1'+y)
		for x := 0; x < checkers.Size; x++ {
			t, _ := g.Board().At(y, x)
			fmt.Fprintf(w, "%s\t", pal.cell(gl, g, t))
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for x := 0; x < checkers.Size; x++ {
		fmt.Fprintf(w, "%c.\t", 'a'+x)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
	ps := g.Players()
	fmt.Fprintf(out, "pieces: %s:%d %s:%d\n",
		label(ps[0]), ps[0].InPlay(), label(ps[1]), ps[1].InPlay())
}

// palette colors board cells. Every attribute it uses has an escape
// sequence of the same length, so colored cells stay aligned.
type palette struct {
	one, two, selected, dest, empty *color.Color
}

func newPalette(colored bool) *palette {
	p := &palette{
		one:      color.New(color.FgRed),
		two:      color.New(color.FgBlue),
		selected: color.New(color.FgYellow),
		dest:     color.New(color.FgGreen),
		empty:    color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.one, p.two, p.selected, p.dest, p.empty} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) cell(gl *Glyphs, g *checkers.Game, t *checkers.Tile) string {
	pc := t.Occupant()
	if pc == nil {
		if g.IsDestination(t.Row(), t.Col()) {
			return p.dest.Sprintf("[%s]", gl.Dest)
		}
		return p.empty.Sprintf("[%s]", gl.Empty)
	}
	set, c := gl.One, p.one
	if pc.Owner().ID == 1 {
		set, c = gl.Two, p.two
	}
	if pc.Selected() {
		c = p.selected
	}
	glyph := set.Man
	if pc.IsKing() {
		glyph = set.King
	}
	return c.Sprintf("[%s]", glyph)
}
