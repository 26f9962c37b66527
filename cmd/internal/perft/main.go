package perft

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/checkers-go/checkers/checkers"
	"github.com/checkers-go/checkers/cmd/internal/rulesflag"
	"github.com/checkers-go/checkers/notation"
	"github.com/checkers-go/checkers/perft"
)

type Command struct {
	depth    int
	workers  int
	position string
	divide   bool
	limit    time.Duration
	rules    checkers.Rules
}

func (*Command) Name() string     { return "perft" }
func (*Command) Synopsis() string { return "Count the move tree below a position" }
func (*Command) Usage() string {
	return `perft [flags]

Count every line of play to the given depth. With -divide, print the
count below each first move.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.depth, "depth", 5, "search depth in plies")
	flags.IntVar(&c.workers, "workers", runtime.NumCPU(), "number of parallel workers")
	flags.StringVar(&c.position, "position", notation.Start, "position string to count from")
	flags.BoolVar(&c.divide, "divide", false, "break the count down by first move")
	flags.DurationVar(&c.limit, "limit", 0, "give up after this long")
	rulesflag.Register(flags, &c.rules)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := notation.ParsePosition(c.position, checkers.Config{Rules: c.rules})
	if err != nil {
		log.Printf("parse position: %v", err)
		return subcommands.ExitUsageError
	}
	if c.limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.limit)
		defer cancel()
	}

	if c.divide && c.depth < 1 {
		log.Printf("-divide needs a depth of at least 1")
		return subcommands.ExitUsageError
	}

	start := time.Now()
	var total perft.Stats
	if c.divide {
		roots, err := perft.Divide(ctx, g, c.depth, c.workers)
		if err != nil {
			log.Printf("perft: %v", err)
			return subcommands.ExitFailure
		}
		w := tabwriter.NewWriter(os.Stdout, 4, 8, 1, '\t', 0)
		fmt.Fprintf(w, "move\tnodes\tcaptures\tpromotions\n")
		for _, r := range roots {
			total.Nodes += r.Nodes
			total.Captures += r.Captures
			total.Promotions += r.Promotions
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", r.Move, r.Nodes, r.Captures, r.Promotions)
		}
		w.Flush()
	} else {
		total, err = perft.Count(ctx, g, c.depth, c.workers)
		if err != nil {
			log.Printf("perft: %v", err)
			return subcommands.ExitFailure
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("depth=%d nodes=%d captures=%d promotions=%d\n",
		c.depth, total.Nodes, total.Captures, total.Promotions)
	log.Printf("searched %d nodes in %s (%.0f nodes/s)",
		total.Nodes, elapsed, float64(total.Nodes)/elapsed.Seconds())
	return subcommands.ExitSuccess
}
