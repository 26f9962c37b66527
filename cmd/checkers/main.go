package main

import (
	"context"
	"flag"
	"os"

	"github.com/checkers-go/checkers/cmd/internal/perft"
	"github.com/checkers-go/checkers/cmd/internal/play"
	"github.com/checkers-go/checkers/cmd/internal/serve"
	"github.com/checkers-go/checkers/cmd/internal/stats"
	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&serve.Command{}, "")
	subcommands.Register(&perft.Command{}, "")
	subcommands.Register(&stats.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
