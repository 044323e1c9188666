package state

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"iter"
	"math"
	"strings"
	"unicode"
)

// Grid holds the color of every point of a board of fixed size.
//
// Colors are stored densely, and the zero value Empty stands for points never set.
// A Grid is filled first and then only read: it is not safe to change it while
// another goroutine reads it.
type Grid struct {
	size   Size
	colors []Color
}

// NewGrid creates an empty Grid of the given size. It returns an error wrapping
// ErrInvalidDimension if width or height are not positive, or if the number of points
// doesn't fit an int.
func NewGrid(size Size) (*Grid, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "got size %s", size)
	}
	if size.Width > math.MaxInt/size.Height {
		return nil, errors.Wrapf(ErrInvalidDimension, "size %s has too many points", size)
	}
	return &Grid{
		size:   size,
		colors: make([]Color, size.Area()),
	}, nil
}

// Size of the grid.
func (g *Grid) Size() Size { return g.size }

// Width of the grid.
func (g *Grid) Width() int { return g.size.Width }

// Height of the grid.
func (g *Grid) Height() int { return g.size.Height }

// Clone makes a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	newG := &Grid{size: g.size, colors: make([]Color, len(g.colors))}
	copy(newG.colors, g.colors)
	return newG
}

// IsInside returns whether the point is within the grid limits.
func (g *Grid) IsInside(p Point) bool {
	return g.size.IsInside(p)
}

// Index returns the row-major index of an inside point: y*Width + x.
// The result is undefined for points outside the grid.
func (g *Grid) Index(p Point) int {
	return p.Y*g.size.Width + p.X
}

// PointAt is the inverse of Index.
func (g *Grid) PointAt(idx int) Point {
	return Point{X: idx % g.size.Width, Y: idx / g.size.Width}
}

// ColorAt returns the color at the given point. Points never set, and points
// outside the grid, are Empty.
func (g *Grid) ColorAt(p Point) Color {
	if !g.IsInside(p) {
		return Empty
	}
	return g.colors[g.Index(p)]
}

// Set the color at the given point. Setting a point outside the grid, or an
// invalid color, is a programming error and panics.
func (g *Grid) Set(p Point, c Color) {
	if !g.IsInside(p) {
		exceptions.Panicf("Grid.Set(%s, %s): point outside of grid of size %s", p, c, g.size)
	}
	if int(c) >= NumColors {
		exceptions.Panicf("Grid.Set(%s, %s): invalid color", p, c)
	}
	g.colors[g.Index(p)] = c
}

// Place the given stones on the grid, in order: a later stone on the same point
// replaces the earlier one.
func (g *Grid) Place(stones ...Stone) {
	for _, stone := range stones {
		g.Set(stone.Point, stone.Color)
	}
}

// NumStones returns the number of non-empty points.
func (g *Grid) NumStones() (count int) {
	for _, c := range g.colors {
		if c != Empty {
			count++
		}
	}
	return
}

// Stones iterates over the stones on the grid, in the same order as Points.
func (g *Grid) Stones() iter.Seq[Stone] {
	return func(yield func(Stone) bool) {
		for p := range g.Points() {
			if c := g.ColorAt(p); c != Empty {
				if !yield(Stone{Point: p, Color: c}) {
					return
				}
			}
		}
	}
}

// Points iterates over all points of the grid exactly once, column by column: x in the
// outer loop, y in the inner loop.
func (g *Grid) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for x := 0; x < g.size.Width; x++ {
			for y := 0; y < g.size.Height; y++ {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

var neighbourRelPoints = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NeighboursIter iterates over the up to 4 neighbours of p (left, right, down, up)
// that are inside the grid.
func (g *Grid) NeighboursIter(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, rel := range neighbourRelPoints {
			neighbour := Point{p.X + rel.X, p.Y + rel.Y}
			if !g.IsInside(neighbour) {
				continue
			}
			if !yield(neighbour) {
				return
			}
		}
	}
}

// Neighbours returns the up to 4 neighbours of p that are inside the grid. It
// returns a newly allocated slice.
func (g *Grid) Neighbours(p Point) []Point {
	neighbours := make([]Point, 0, len(neighbourRelPoints))
	for neighbour := range g.NeighboursIter(p) {
		neighbours = append(neighbours, neighbour)
	}
	return neighbours
}

// ParseGrid creates a Grid from a layout: one string per row, the top row first,
// with one character per point (see ColorChars: '.' empty, '#' black, 'o' white).
// Spaces are ignored, so "# . o" is the same as "#.o".
//
// It returns an error wrapping ErrInvalidLayout for unknown characters or rows of
// different lengths, and ErrInvalidDimension if there are no rows or columns.
func ParseGrid(rows []string) (*Grid, error) {
	cleaned := make([]string, len(rows))
	for ii, row := range rows {
		cleaned[ii] = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, row)
	}
	size := Size{Height: len(cleaned)}
	if size.Height > 0 {
		size.Width = len(cleaned[0])
	}
	g, err := NewGrid(size)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to parse layout")
	}
	for ii, row := range cleaned {
		if len(row) != size.Width {
			return nil, errors.Wrapf(ErrInvalidLayout, "row %d has %d points, but the first row has %d",
				ii, len(row), size.Width)
		}
		y := size.Height - 1 - ii
		for x := 0; x < len(row); x++ {
			c, found := colorFromChar(row[x])
			if !found {
				return nil, errors.Wrapf(ErrInvalidLayout, "unknown character %q in row %d", row[x], ii)
			}
			g.colors[g.Index(Point{x, y})] = c
		}
	}
	return g, nil
}

func colorFromChar(char byte) (Color, bool) {
	for c, colorChar := range ColorChars {
		if char == colorChar {
			return Color(c), true
		}
	}
	return Empty, false
}

// Layout returns the rows of the grid in the format read by ParseGrid, top row first.
func (g *Grid) Layout() []string {
	rows := make([]string, g.size.Height)
	row := make([]byte, g.size.Width)
	for y := g.size.Height - 1; y >= 0; y-- {
		for x := range g.size.Width {
			row[x] = ColorChars[g.colors[g.Index(Point{x, y})]]
		}
		rows[g.size.Height-1-y] = string(row)
	}
	return rows
}

// String returns the layout of the grid, one row per line.
func (g *Grid) String() string {
	return strings.Join(g.Layout(), "\n")
}
