package play

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/subcommands"

	"github.com/checkers-go/checkers/checkers"
	"github.com/checkers-go/checkers/cli"
	"github.com/checkers-go/checkers/cmd/internal/rulesflag"
	"github.com/checkers-go/checkers/logs"
)

type Command struct {
	one      string
	two      string
	position string
	db       string
	rules    checkers.Rules

	unicode bool
	color   bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play checkers from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play checkers on the command-line. Both sides read from stdin: enter a
square ("b3") to select or move to it, a whole move ("b3-a4",
"b3xd5xf7"), or "quit".
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.one, "one", "", "name of player one (default: random)")
	flags.StringVar(&c.two, "two", "", "name of player two (default: random)")
	flags.StringVar(&c.position, "position", "", "position string to start from")
	flags.StringVar(&c.db, "db", "", "record the game in this sqlite database")
	rulesflag.Register(flags, &c.rules)

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	flags.BoolVar(&c.color, "color", true, "highlight the selection and its destinations")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := [2]string{c.one, c.two}
	for i := range names {
		if names[i] == "" {
			names[i] = petname.Generate(2, "-")
		}
	}
	in := bufio.NewReader(os.Stdin)
	human := cli.NewCLIPlayer(os.Stdout, in)
	st := &cli.CLI{
		Config:   checkers.Config{Names: names, Rules: c.rules},
		Position: c.position,
		Glyphs:   glyphs(c.unicode),
		Color:    c.color,
		Out:      os.Stdout,
		Players:  [2]cli.Player{human, human},
	}
	g, err := st.Play(ctx)
	if g == nil {
		log.Printf("play: %v", err)
		return subcommands.ExitUsageError
	}
	if err != nil && !errors.Is(err, cli.ErrQuit) && !errors.Is(err, io.EOF) {
		log.Printf("play: %v", err)
		return subcommands.ExitFailure
	}

	if c.db != "" {
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Printf("open %q: %v", c.db, err)
			return subcommands.ExitFailure
		}
		defer repo.Close()
		sum := logs.Summarize(st.Session(), g, st.Plies())
		if err := repo.InsertGame(sum); err != nil {
			log.Printf("record game: %v", err)
			return subcommands.ExitFailure
		}
		log.Printf("recorded game %s: %s %s %s", sum.ID, sum.Player1, sum.Result, sum.Player2)
	}
	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}
