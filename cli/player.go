package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/checkers-go/checkers/checkers"
	"github.com/checkers-go/checkers/notation"
	"golang.org/x/net/context"
)

// NewCLIPlayer returns a Player reading from in. A line holding a
// square ("c3") activates that tile; a move ("c3-d4", "c3xe5") is
// played whole; "quit" gives up the game.
func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) Next(ctx context.Context, g *checkers.Game) (Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Event{}, err
		}
		prompt := label(g.CurrentPlayer())
		if p := g.Selected(); p != nil {
			prompt = fmt.Sprintf("%s %s", prompt, notation.FormatSquare(p.Coord()))
		}
		fmt.Fprintf(c.out, "%s> ", prompt)
		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return Event{}, err
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "quit", "resign":
			return Event{Quit: true}, nil
		}
		if sq, err := notation.ParseSquare(line); err == nil {
			return Event{Tile: sq}, nil
		}
		m, err := notation.FindMove(g, line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error:", err)
			continue
		}
		return Event{Move: &m}, nil
	}
}
