// Package groups finds the groups of a board: maximal sets of same-colored stones
// connected through their 4 neighbours, along with their liberties -- the empty
// points next to any stone of the group.
//
// A group without liberties is dead (captured).
package groups

import (
	"fmt"
	"github.com/janpfeifer/goGroups/internal/generics"
	"github.com/janpfeifer/goGroups/internal/state"
	"k8s.io/klog/v2"
	"slices"
)

// Group of connected stones of the same color.
//
// It is created and fully populated by FindGroups, and shouldn't be changed afterwards.
type Group struct {
	// Color of the stones of the group, never state.Empty.
	Color state.Color

	// Points of the stones in the group. Never empty.
	Points generics.Set[state.Point]

	// Liberties are the empty points next to at least one stone of the group. The same empty
	// point may also be a liberty of other groups.
	Liberties generics.Set[state.Point]
}

func newGroup(color state.Color) *Group {
	return &Group{
		Color:     color,
		Points:    generics.MakeSet[state.Point](),
		Liberties: generics.MakeSet[state.Point](),
	}
}

// Len returns the number of stones in the group.
func (g *Group) Len() int { return len(g.Points) }

// IsAlive returns whether the group has at least one liberty.
func (g *Group) IsAlive() bool { return len(g.Liberties) > 0 }

// IsDead returns whether the group has no liberties, that is, it is captured.
func (g *Group) IsDead() bool { return len(g.Liberties) == 0 }

// SortedPoints returns the points of the group in the order of state.ComparePoints.
func (g *Group) SortedPoints() []state.Point {
	return g.Points.SortedFunc(state.ComparePoints)
}

// SortedLiberties returns the liberties of the group in the order of state.ComparePoints.
func (g *Group) SortedLiberties() []state.Point {
	return g.Liberties.SortedFunc(state.ComparePoints)
}

// String implements fmt.Stringer.
func (g *Group) String() string {
	return fmt.Sprintf("<group color=%s %d points %d liberties>", g.Color, len(g.Points), len(g.Liberties))
}

// Result of FindGroups: the groups found and an index from the points of the board to the group
// they belong to.
type Result struct {
	// Groups in the order they were discovered.
	Groups []*Group

	size    state.Size
	indices []int // Group index per point, row-major, -1 for empty points.
}

// Len returns the number of groups.
func (r *Result) Len() int { return len(r.Groups) }

// Size of the board the groups were found on.
func (r *Result) Size() state.Size { return r.size }

// IndexAt returns the index in Result.Groups of the group at point p, or -1 if p is empty or outside the board.
func (r *Result) IndexAt(p state.Point) int {
	if !r.size.IsInside(p) {
		return -1
	}
	return r.indices[p.Y*r.size.Width+p.X]
}

// GroupAt returns the group the stone at point p belongs to, or nil if p is empty or outside the board.
func (r *Result) GroupAt(p state.Point) *Group {
	idx := r.IndexAt(p)
	if idx < 0 {
		return nil
	}
	return r.Groups[idx]
}

// Dead returns the groups without liberties, in discovery order.
func (r *Result) Dead() []*Group {
	return r.filter(func(g *Group) bool { return g.IsDead() })
}

// Alive returns the groups with at least one liberty, in discovery order.
func (r *Result) Alive() []*Group {
	return r.filter(func(g *Group) bool { return g.IsAlive() })
}

// ByColor returns the groups of the given color, in discovery order.
func (r *Result) ByColor(color state.Color) []*Group {
	return r.filter(func(g *Group) bool { return g.Color == color })
}

func (r *Result) filter(fn func(g *Group) bool) (groups []*Group) {
	for _, g := range r.Groups {
		if fn(g) {
			groups = append(groups, g)
		}
	}
	return
}

// LibertyCount returns the number of liberties of the group owning the stone at p,
// and false if there is no stone at p.
func (r *Result) LibertyCount(p state.Point) (count int, found bool) {
	g := r.GroupAt(p)
	if g == nil {
		return 0, false
	}
	return len(g.Liberties), true
}

// BySize returns a copy of the groups sorted by decreasing size. Ties keep the discovery order.
func (r *Result) BySize() []*Group {
	groups := slices.Clone(r.Groups)
	slices.SortStableFunc(groups, func(a, b *Group) int { return b.Len() - a.Len() })
	return groups
}

// FindGroups partitions the stones of the grid into groups, and finds each group's liberties,
// in a single pass over the board.
//
// The grid is only read, and it must not be changed while FindGroups runs. Calls on different
// grids can run in parallel.
func FindGroups(grid *state.Grid) *Result {
	size := grid.Size()
	r := &Result{
		size:    size,
		indices: make([]int, size.Area()),
	}
	for ii := range r.indices {
		r.indices[ii] = -1
	}

	// visited marks stones already assigned to a group. Empty points are never marked, since
	// they may be liberties of more than one group.
	visited := make([]bool, size.Area())
	var frontier []state.Point
	for seed := range grid.Points() {
		if visited[grid.Index(seed)] {
			continue
		}
		color := grid.ColorAt(seed)
		if color == state.Empty {
			continue
		}
		group := newGroup(color)
		groupIdx := len(r.Groups)
		frontier = append(frontier[:0], seed)
		frontier = r.explore(grid, group, groupIdx, visited, frontier)
		r.Groups = append(r.Groups, group)
	}
	if klog.V(2).Enabled() {
		klog.Infof("FindGroups(%s board, %d stones): found %d groups, %d dead",
			size, grid.NumStones(), len(r.Groups), len(r.Dead()))
	}
	return r
}

// explore pops points from the frontier until it is empty, growing the group. It returns the
// frontier slice, empty, so its storage can be reused for the next group.
func (r *Result) explore(grid *state.Grid, group *Group, groupIdx int, visited []bool, frontier []state.Point) []state.Point {
	for len(frontier) > 0 {
		p := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		idx := grid.Index(p)
		if visited[idx] {
			continue
		}
		switch grid.ColorAt(p) {
		case state.Empty:
			group.Liberties.Insert(p)
		case group.Color:
			group.Points.Insert(p)
			visited[idx] = true
			r.indices[idx] = groupIdx
			for neighbour := range grid.NeighboursIter(p) {
				frontier = append(frontier, neighbour)
			}
		default:
			// Stone of the other color: it belongs to a different group.
		}
	}
	return frontier
}
