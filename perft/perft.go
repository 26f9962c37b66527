// Package perft counts the move tree below a position. The counts are
// a check on move generation: any change to the rules engine that
// changes them is either a bug fix or a bug.
package perft

import (
	"context"

	"github.com/checkers-go/checkers/checkers"
	"github.com/checkers-go/checkers/notation"
	"golang.org/x/sync/errgroup"
)

// Stats counts the moves made at the last ply of the tree.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	Promotions uint64
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.Promotions += o.Promotions
}

// Root is the count below one move of the starting position.
type Root struct {
	Move string
	Stats
}

// Count walks the tree depth plies below g. Root moves are searched
// in parallel by up to workers goroutines; g itself is not modified.
// At depth 0 the position itself is the only node.
func Count(ctx context.Context, g *checkers.Game, depth, workers int) (Stats, error) {
	if depth < 1 {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}
		return Stats{Nodes: 1}, nil
	}
	roots, err := Divide(ctx, g, depth, workers)
	if err != nil {
		return Stats{}, err
	}
	var total Stats
	for _, r := range roots {
		total.add(r.Stats)
	}
	return total, nil
}

// Divide is Count broken down by root move, in LegalMoves order.
// Below depth 1 there are no root moves and it returns nil.
func Divide(ctx context.Context, g *checkers.Game, depth, workers int) ([]Root, error) {
	if depth < 1 {
		return nil, nil
	}
	moves := g.LegalMoves()
	out := make([]Root, len(moves))
	grp, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		grp.SetLimit(workers)
	}
	for i, m := range moves {
		i, m := i, m
		out[i].Move = notation.FormatMove(m)
		grp.Go(func() error {
			c := g.Clone()
			leaf := leafStats(c, m)
			if err := c.Apply(m); err != nil {
				return err
			}
			if depth == 1 {
				out[i].Stats = leaf
				return nil
			}
			return walk(ctx, c, depth-1, &out[i].Stats)
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func walk(ctx context.Context, g *checkers.Game, depth int, s *Stats) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	moves := g.LegalMoves()
	if depth == 1 {
		for _, m := range moves {
			s.add(leafStats(g, m))
		}
		return nil
	}
	for _, m := range moves {
		c := g.Clone()
		if err := c.Apply(m); err != nil {
			return err
		}
		if err := walk(ctx, c, depth-1, s); err != nil {
			return err
		}
	}
	return nil
}

func leafStats(g *checkers.Game, m checkers.Move) Stats {
	s := Stats{Nodes: 1}
	if m.IsCapture() {
		s.Captures++
	}
	p := g.Board().Occupant(m.From)
	if p != nil && !p.IsKing() && m.Dest.Row == p.Owner().CrownRow() {
		s.Promotions++
	}
	return s
}
