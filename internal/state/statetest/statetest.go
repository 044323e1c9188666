// Package statetest provides helper functions to create tests using boards.
package statetest

import (
	. "github.com/janpfeifer/goGroups/internal/state"
	"github.com/janpfeifer/must"
	"slices"
)

// BuildGrid from a layout, one string per row with the top row first. See state.ParseGrid
// for the format. It panics if the layout is invalid.
func BuildGrid(rows ...string) *Grid {
	return must.M1(ParseGrid(rows))
}

// BuildGridWithStones creates a grid of the given size with the stones placed. It panics
// if the size is invalid.
func BuildGridWithStones(size Size, stones ...Stone) *Grid {
	g := must.M1(NewGrid(size))
	g.Place(stones...)
	return g
}

// SortedPoints returns a sorted copy of the points, ordered by state.ComparePoints.
func SortedPoints(points []Point) []Point {
	points = slices.Clone(points)
	slices.SortFunc(points, ComparePoints)
	return points
}
