package rpc

import (
	"context"
	"errors"
	"runtime"

	"github.com/checkers-go/checkers/checkers"
	"github.com/checkers-go/checkers/notation"
	"github.com/checkers-go/checkers/perft"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultMaxPerftDepth bounds Perft requests when Server.MaxPerftDepth
// is unset.
const DefaultMaxPerftDepth = 6

// Server implements RulesServer. Positions are parsed with Rules.
type Server struct {
	Rules         checkers.Rules
	MaxPerftDepth int
}

func (s *Server) parse(position string) (*checkers.Game, error) {
	g, err := notation.ParsePosition(position, checkers.Config{Rules: s.Rules})
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return g, nil
}

func (s *Server) Destinations(ctx context.Context, req *DestinationsRequest) (*DestinationsResponse, error) {
	g, err := s.parse(req.Position)
	if err != nil {
		return nil, err
	}
	if err := g.Select(int(req.Row), int(req.Col)); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	var resp DestinationsResponse
	for _, c := range g.Destinations() {
		d := &Destination{Square: notation.FormatSquare(c.Dest)}
		for _, p := range c.Path {
			d.Path = append(d.Path, notation.FormatSquare(p))
		}
		for _, p := range c.Captured {
			d.Captured = append(d.Captured, notation.FormatSquare(p.Coord()))
		}
		resp.Destinations = append(resp.Destinations, d)
	}
	return &resp, nil
}

func (s *Server) Apply(ctx context.Context, req *ApplyRequest) (*ApplyResponse, error) {
	g, err := s.parse(req.Position)
	if err != nil {
		return nil, err
	}
	m, err := notation.FindMove(g, req.Move)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	mover := g.Board().Occupant(m.From)
	wasKing := mover.IsKing()
	resp := &ApplyResponse{Move: notation.FormatMove(m)}
	for _, p := range m.Captured {
		resp.Captured = append(resp.Captured, notation.FormatSquare(p.Coord()))
	}
	if err := g.Apply(m); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	resp.Crowned = !wasKing && mover.IsKing()
	resp.Position = notation.FormatPosition(g)
	return resp, nil
}

func (s *Server) Status(ctx context.Context, req *StatusRequest) (*StatusResponse, error) {
	g, err := s.parse(req.Position)
	if err != nil {
		return nil, err
	}
	resp := &StatusResponse{ToMove: int32(g.CurrentPlayer().ID + 1)}
	if over, winner := g.GameOver(); over {
		resp.Over = true
		resp.Winner = int32(winner.ID + 1)
	}
	for _, m := range g.LegalMoves() {
		resp.Moves = append(resp.Moves, notation.FormatMove(m))
	}
	for _, pl := range g.Players() {
		resp.Pieces = append(resp.Pieces, int32(pl.InPlay()))
	}
	return resp, nil
}

func (s *Server) Perft(ctx context.Context, req *PerftRequest) (*PerftResponse, error) {
	limit := s.MaxPerftDepth
	if limit == 0 {
		limit = DefaultMaxPerftDepth
	}
	if req.Depth < 1 || int(req.Depth) > limit {
		return nil, status.Errorf(codes.InvalidArgument, "depth must be between 1 and %d", limit)
	}
	g, err := s.parse(req.Position)
	if err != nil {
		return nil, err
	}
	st, err := perft.Count(ctx, g, int(req.Depth), runtime.NumCPU())
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, status.FromContextError(err).Err()
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &PerftResponse{
		Nodes:      st.Nodes,
		Captures:   st.Captures,
		Promotions: st.Promotions,
	}, nil
}
