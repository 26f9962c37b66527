package stats

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/checkers-go/checkers/logs"
)

type Command struct {
	player string
}

func (*Command) Name() string     { return "stats" }
func (*Command) Synopsis() string { return "Report results recorded by play -db" }
func (*Command) Usage() string {
	return `stats [flags] GAMES.db

Print each player's record, or with -player, the games one player took
part in.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.player, "player", "", "list this player's games")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) != 1 {
		log.Println("Must supply a game database")
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(flag.Arg(0))
	if err != nil {
		log.Printf("open: %v", err)
		return subcommands.ExitFailure
	}
	defer repo.Close()

	w := tabwriter.NewWriter(os.Stdout, 4, 8, 1, '\t', 0)
	defer w.Flush()
	if c.player != "" {
		games, err := repo.Games(c.player)
		if err != nil {
			log.Printf("query: %v", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(w, "time\tplayer one\tplayer two\tresult\tmoves\n")
		for _, g := range games {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
				g.Timestamp.Format("2006-01-02 15:04"), g.Player1, g.Player2, g.Result, g.Moves)
		}
		return subcommands.ExitSuccess
	}

	st, err := repo.Stats()
	if err != nil {
		log.Printf("query: %v", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(w, "player\tgames\twins\tlosses\tunfinished\n")
	for _, s := range st {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", s.Player, s.Games, s.Wins, s.Losses, s.Unfinished)
	}
	return subcommands.ExitSuccess
}
