package state_test

import (
	"fmt"
	"github.com/pkg/errors"
	"math"
	"slices"
	"testing"

	. "github.com/janpfeifer/goGroups/internal/state"
	. "github.com/janpfeifer/goGroups/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Printf

func TestNewGrid(t *testing.T) {
	for _, size := range []Size{{0, 5}, {5, 0}, {-1, 3}, {0, 0},
		{math.MaxInt, 2}, {2, math.MaxInt}, {math.MaxInt/2 + 1, 2}} {
		g, err := NewGrid(size)
		assert.Nil(t, g)
		assert.Truef(t, errors.Is(err, ErrInvalidDimension), "NewGrid(%s) returned %v", size, err)
	}
	g, err := NewGrid(Size{9, 11})
	require.NoError(t, err)
	assert.Equal(t, 9, g.Width())
	assert.Equal(t, 11, g.Height())
	assert.Equal(t, 0, g.NumStones())
}

func TestColorAt(t *testing.T) {
	g := BuildGridWithStones(Size{3, 2}, Stone{Point{0, 0}, Black}, Stone{Point{2, 1}, White})
	assert.Equal(t, Black, g.ColorAt(Point{0, 0}))
	assert.Equal(t, White, g.ColorAt(Point{2, 1}))
	assert.Equal(t, Empty, g.ColorAt(Point{1, 1}))

	// Outside the grid is always Empty, never a failure.
	for _, p := range []Point{{-1, 0}, {3, 0}, {0, 2}, {-100, 100}} {
		assert.Equal(t, Empty, g.ColorAt(p), "point %s", p)
	}

	// Later stones replace earlier ones.
	g.Place(Stone{Point{0, 0}, White}, Stone{Point{0, 0}, Empty})
	assert.Equal(t, Empty, g.ColorAt(Point{0, 0}))
	assert.Equal(t, 1, g.NumStones())
}

func TestSetOutsidePanics(t *testing.T) {
	g := BuildGridWithStones(Size{2, 2})
	assert.Panics(t, func() { g.Set(Point{2, 0}, Black) })
	assert.Panics(t, func() { g.Set(Point{0, -1}, White) })
	assert.Panics(t, func() { g.Set(Point{0, 0}, Color(7)) })
}

func TestIsInside(t *testing.T) {
	g := BuildGridWithStones(Size{4, 3})
	assert.True(t, g.IsInside(Point{0, 0}))
	assert.True(t, g.IsInside(Point{3, 2}))
	assert.False(t, g.IsInside(Point{4, 2}))
	assert.False(t, g.IsInside(Point{3, 3}))
	assert.False(t, g.IsInside(Point{-1, 0}))
}

func TestNeighbours(t *testing.T) {
	g := BuildGridWithStones(Size{3, 3})
	testCases := []struct {
		name  string
		point Point
		want  []Point
	}{
		{"corner", Point{0, 0}, []Point{{1, 0}, {0, 1}}},
		{"other corner", Point{2, 2}, []Point{{1, 2}, {2, 1}}},
		{"edge", Point{1, 0}, []Point{{0, 0}, {2, 0}, {1, 1}}},
		{"interior", Point{1, 1}, []Point{{0, 1}, {2, 1}, {1, 0}, {1, 2}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Neighbours(tc.point)
			assert.ElementsMatch(t, tc.want, got)
			assert.ElementsMatch(t, got, slices.Collect(g.NeighboursIter(tc.point)))
		})
	}

	// 1x1 grid has no neighbours at all.
	single := BuildGridWithStones(Size{1, 1})
	assert.Empty(t, single.Neighbours(Point{0, 0}))
}

func TestNeighboursCount(t *testing.T) {
	g := BuildGridWithStones(Size{5, 4})
	for p := range g.Points() {
		onEdgeX := p.X == 0 || p.X == g.Width()-1
		onEdgeY := p.Y == 0 || p.Y == g.Height()-1
		want := 4
		if onEdgeX && onEdgeY {
			want = 2
		} else if onEdgeX || onEdgeY {
			want = 3
		}
		assert.Len(t, g.Neighbours(p), want, "point %s", p)
	}
}

func TestPoints(t *testing.T) {
	g := BuildGridWithStones(Size{3, 2})
	points := slices.Collect(g.Points())
	assert.Len(t, points, 6)
	seen := make(map[Point]int)
	for _, p := range points {
		seen[p]++
		assert.True(t, g.IsInside(p))
	}
	for p, count := range seen {
		assert.Equal(t, 1, count, "point %s", p)
	}
	// Deterministic.
	assert.Equal(t, points, slices.Collect(g.Points()))

	// Early termination.
	var first []Point
	for p := range g.Points() {
		first = append(first, p)
		if len(first) == 2 {
			break
		}
	}
	assert.Len(t, first, 2)
}

func TestIndex(t *testing.T) {
	g := BuildGridWithStones(Size{4, 3})
	indices := make(map[int]bool)
	for p := range g.Points() {
		idx := g.Index(p)
		assert.False(t, indices[idx])
		indices[idx] = true
		assert.Equal(t, p, g.PointAt(idx))
	}
	assert.Len(t, indices, 12)
}

func TestParseGrid(t *testing.T) {
	g := BuildGrid(
		"# . o",
		". . .",
	)
	assert.Equal(t, Size{3, 2}, g.Size())
	assert.Equal(t, Black, g.ColorAt(Point{0, 1}))
	assert.Equal(t, White, g.ColorAt(Point{2, 1}))
	assert.Equal(t, Empty, g.ColorAt(Point{0, 0}))
	assert.Equal(t, []string{"#.o", "..."}, g.Layout())
	assert.Equal(t, "#.o\n...", g.String())

	_, err := ParseGrid([]string{"#.", "..."})
	assert.True(t, errors.Is(err, ErrInvalidLayout), "got %v", err)
	_, err = ParseGrid([]string{"#x"})
	assert.True(t, errors.Is(err, ErrInvalidLayout), "got %v", err)
	_, err = ParseGrid(nil)
	assert.True(t, errors.Is(err, ErrInvalidDimension), "got %v", err)
}

func TestStones(t *testing.T) {
	g := BuildGrid(
		"#o",
		".#",
	)
	stones := slices.Collect(g.Stones())
	assert.ElementsMatch(t, []Stone{
		{Point{0, 1}, Black}, {Point{1, 1}, White}, {Point{1, 0}, Black},
	}, stones)

	clone := g.Clone()
	clone.Set(Point{0, 0}, White)
	assert.Equal(t, Empty, g.ColorAt(Point{0, 0}))
	assert.Equal(t, White, clone.ColorAt(Point{0, 0}))
}

func TestStoneNotation(t *testing.T) {
	stone := Stone{Point{2, 3}, Black}
	assert.Equal(t, "C4b", stone.String())
	assert.Equal(t, "J1w", Stone{Point{8, 0}, White}.String())

	got, err := ParseStone("c4B")
	require.NoError(t, err)
	assert.Equal(t, stone, got)

	got, err = ParseStone("T19w")
	require.NoError(t, err)
	assert.Equal(t, Stone{Point{18, 18}, White}, got)

	for _, text := range []string{"", "C4", "I3b", "C0b", "Cxb", "C4x", "Z4b"} {
		_, err := ParseStone(text)
		assert.Truef(t, errors.Is(err, ErrInvalidStone), "ParseStone(%q) returned %v", text, err)
	}

	stones, err := ParseStones("A1b, B2w  C3b")
	require.NoError(t, err)
	assert.Equal(t, []Stone{{Point{0, 0}, Black}, {Point{1, 1}, White}, {Point{2, 2}, Black}}, stones)
}

func TestSizeAndColor(t *testing.T) {
	size, err := ParseSize("9x11")
	require.NoError(t, err)
	assert.Equal(t, Size{9, 11}, size)
	assert.Equal(t, "9x11", size.String())
	size, err = ParseSize("13")
	require.NoError(t, err)
	assert.Equal(t, Size{13, 13}, size)
	_, err = ParseSize("9xa")
	assert.Error(t, err)

	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
	assert.False(t, Empty.IsStone())
	assert.True(t, White.IsStone())
	assert.Equal(t, "Black", Black.String())
}
