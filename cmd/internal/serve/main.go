package serve

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/google/subcommands"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/checkers-go/checkers/checkers"
	"github.com/checkers-go/checkers/cmd/internal/rulesflag"
	"github.com/checkers-go/checkers/rpc"
)

type Command struct {
	port     int
	maxDepth int
	debug    bool
	rules    checkers.Rules
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve the checkers rules RPCs via GRPC" }
func (*Command) Usage() string {
	return `serve [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55430, "bind port")
	flags.IntVar(&c.maxDepth, "max-perft-depth", rpc.DefaultMaxPerftDepth, "deepest perft request to accept")
	flags.BoolVar(&c.debug, "debug", false, "log every request")
	rulesflag.Register(flags, &c.rules)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var logger *zap.Logger
	var err error
	if c.debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(rpc.UnaryLogger(logger)))
	rpc.RegisterRulesServer(grpcServer, &rpc.Server{
		Rules:         c.rules,
		MaxPerftDepth: c.maxDepth,
	})

	logger.Info("listening",
		zap.Int("port", c.port),
		zap.Bool("mandatory_capture", c.rules.MandatoryCapture),
		zap.Bool("backward_capture", c.rules.MenCaptureBackward),
	)
	if err := grpcServer.Serve(lis); err != nil {
		logger.Error("serve", zap.Error(err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
