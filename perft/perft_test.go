package perft

import (
	"context"
	"testing"

	"github.com/checkers-go/checkers/checkers"
	"github.com/checkers-go/checkers/checkertest"
	"github.com/checkers-go/checkers/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPosition(t *testing.T) {
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 7},
		{2, 49},
		{3, 302},
		{4, 1469},
	}
	g := checkers.New(checkers.Config{Rules: checkers.Rules{MandatoryCapture: true}})
	for _, tc := range cases {
		s, err := Count(context.Background(), g, tc.depth, 4)
		require.NoError(t, err)
		assert.Equal(t, tc.nodes, s.Nodes, "depth %d", tc.depth)
	}
	assert.Equal(t, notation.Start, notation.FormatPosition(g))
}

func TestOptionalCaptureWidensTree(t *testing.T) {
	strict, err := Count(context.Background(),
		checkers.New(checkers.Config{Rules: checkers.Rules{MandatoryCapture: true}}), 3, 0)
	require.NoError(t, err)
	loose, err := Count(context.Background(), checkers.New(checkers.Config{}), 3, 0)
	require.NoError(t, err)
	assert.Greater(t, loose.Nodes, strict.Nodes)
	assert.Greater(t, loose.Captures, uint64(0))
}

func TestWorkersAgree(t *testing.T) {
	g := checkertest.Position(checkers.Config{}, "", "b3-a4 e6-f5 d3-c4")
	one, err := Count(context.Background(), g, 3, 1)
	require.NoError(t, err)
	many, err := Count(context.Background(), g, 3, 16)
	require.NoError(t, err)
	assert.Equal(t, one, many)
}

func TestDivide(t *testing.T) {
	g := checkers.New(checkers.Config{})
	roots, err := Divide(context.Background(), g, 2, 2)
	require.NoError(t, err)
	require.Len(t, roots, 7)
	for _, r := range roots {
		assert.Equal(t, uint64(7), r.Nodes, "below %s", r.Move)
	}
	assert.Equal(t, "b3-a4", roots[0].Move)
}

func TestCaptureAndPromotion(t *testing.T) {
	cases := []struct {
		pos  string
		want Stats
	}{
		{"8/8/8/8/8/2a5/3b4/8 1", Stats{Nodes: 2, Captures: 1, Promotions: 1}},
		{"8/8/8/8/8/8/1a6/8 1", Stats{Nodes: 2, Promotions: 2}},
		{"8/8/8/8/8/8/1A6/8 1", Stats{Nodes: 4}},
	}
	for _, tc := range cases {
		g, err := notation.ParsePosition(tc.pos, checkers.Config{})
		require.NoError(t, err)
		s, err := Count(context.Background(), g, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, tc.want, s, tc.pos)
	}
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Count(ctx, checkers.New(checkers.Config{}), 4, 2)
	assert.Equal(t, context.Canceled, err)
}

func TestDepthZero(t *testing.T) {
	s, err := Count(context.Background(), checkers.New(checkers.Config{}), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, Stats{Nodes: 1}, s)

	roots, err := Divide(context.Background(), checkers.New(checkers.Config{}), 0, 1)
	require.NoError(t, err)
	assert.Empty(t, roots)
}
