// Package survey runs FindGroups over many random boards in parallel, and collects
// statistics about the groups found.
package survey

import (
	"context"
	"fmt"
	"github.com/chewxy/math32"
	"github.com/janpfeifer/goGroups/internal/fill"
	"github.com/janpfeifer/goGroups/internal/groups"
	"github.com/janpfeifer/goGroups/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Config of a survey.
type Config struct {
	// Fill configures the random boards. If Fill.Seed is not 0, board i is seeded with Fill.Seed+i,
	// so the survey is reproducible.
	Fill fill.Config

	// NumBoards to generate.
	NumBoards int

	// Parallelism is the number of boards processed simultaneously. If <= 0, runtime.GOMAXPROCS is used.
	Parallelism int

	// OnBoard, if set, is called after each board is accounted for, with the results lock held.
	// It must not block.
	OnBoard func(r *Results)
}

// Results of a survey. Fields are only safe to read after Run returns, or from within Config.OnBoard.
type Results struct {
	mu    sync.Mutex
	start time.Time

	// Boards processed, out of Total.
	Boards, Total int

	// Stones and Groups over all boards.
	Stones, Groups int

	// GroupsPerColor and DeadPerColor are indexed by state.Color.
	GroupsPerColor, DeadPerColor [state.NumColors]int

	// DeadStones is the number of stones in dead groups.
	DeadStones int

	// LargestGroup is the number of stones in the largest group seen.
	LargestGroup int

	// Elapsed time for the survey.
	Elapsed time.Duration

	// Interrupted is set if the survey context was cancelled before all boards were processed.
	Interrupted bool

	// sumSquaredSizes of the groups, the sum of sizes is Stones.
	sumSquaredSizes int64
}

// add accounts for the groups of one board. It must be called with the lock held.
func (r *Results) add(grid *state.Grid, result *groups.Result) {
	r.Boards++
	r.Stones += grid.NumStones()
	r.Groups += result.Len()
	for _, g := range result.Groups {
		size := g.Len()
		r.GroupsPerColor[g.Color]++
		if g.IsDead() {
			r.DeadPerColor[g.Color]++
			r.DeadStones += size
		}
		r.LargestGroup = max(r.LargestGroup, size)
		r.sumSquaredSizes += int64(size) * int64(size)
	}
	r.Elapsed = time.Since(r.start)
}

// Dead returns the number of dead groups.
func (r *Results) Dead() int {
	return r.DeadPerColor[state.Black] + r.DeadPerColor[state.White]
}

// MeanGroupSize returns the average number of stones per group, or 0 if no groups were found.
func (r *Results) MeanGroupSize() float32 {
	if r.Groups == 0 {
		return 0
	}
	return float32(r.Stones) / float32(r.Groups)
}

// StdDevGroupSize returns the standard deviation of the number of stones per group.
func (r *Results) StdDevGroupSize() float32 {
	if r.Groups == 0 {
		return 0
	}
	n := float64(r.Groups)
	mean := float64(r.Stones) / n
	variance := float32(float64(r.sumSquaredSizes)/n - mean*mean)
	return math32.Sqrt(math32.Max(variance, 0))
}

// DeadRatio returns the fraction of groups that are dead.
func (r *Results) DeadRatio() float32 {
	if r.Groups == 0 {
		return 0
	}
	return float32(r.Dead()) / float32(r.Groups)
}

// String returns a one-line summary of the results.
func (r *Results) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Boards %d of %d: ", r.Boards, r.Total))
	parts = append(parts, fmt.Sprintf("%d groups (mean size %.2f ± %.2f, largest %d), ",
		r.Groups, r.MeanGroupSize(), r.StdDevGroupSize(), r.LargestGroup))
	parts = append(parts, fmt.Sprintf("%d dead (%.1f%%: %d %s / %d %s) - %s",
		r.Dead(), 100*r.DeadRatio(),
		r.DeadPerColor[state.Black], state.Black, r.DeadPerColor[state.White], state.White,
		r.Elapsed.Round(time.Millisecond)))
	return strings.Join(parts, "")
}

// parallelism returns the configured parallelism, or runtime.GOMAXPROCS if not set.
func (cfg Config) parallelism() int {
	if cfg.Parallelism > 0 {
		return cfg.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}

// Run the survey. Each board is generated and has its groups found in its own goroutine.
//
// If ctx is cancelled, no new boards are started and the partial results are returned with
// Results.Interrupted set, and no error.
func Run(ctx context.Context, cfg Config) (*Results, error) {
	if cfg.NumBoards <= 0 {
		return nil, errors.Errorf("survey requires a positive number of boards, got %d", cfg.NumBoards)
	}
	if _, err := state.NewGrid(cfg.Fill.Size); err != nil {
		return nil, errors.WithMessage(err, "invalid survey board size")
	}
	r := &Results{
		start: time.Now(),
		Total: cfg.NumBoards,
	}
	var wg errgroup.Group
	parallelism := cfg.parallelism()
	wg.SetLimit(parallelism)
	klog.V(1).Infof("Surveying %d boards of size %s (parallelism=%d)", cfg.NumBoards, cfg.Fill.Size, parallelism)

	for boardIdx := range cfg.NumBoards {
		if ctx.Err() != nil {
			break
		}
		wg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			fillCfg := cfg.Fill
			if fillCfg.Seed != 0 {
				fillCfg = fillCfg.WithSeed(fillCfg.Seed + uint64(boardIdx))
			}
			grid, err := fillCfg.NewGrid()
			if err != nil {
				return errors.WithMessagef(err, "board #%d", boardIdx)
			}
			result := groups.FindGroups(grid)

			r.mu.Lock()
			defer r.mu.Unlock()
			r.add(grid, result)
			if cfg.OnBoard != nil {
				cfg.OnBoard(r)
			}
			return nil
		})
	}
	err := wg.Wait()
	r.Elapsed = time.Since(r.start)
	if ctx.Err() != nil {
		klog.V(1).Infof("Survey interrupted after %d of %d boards: %v", r.Boards, r.Total, ctx.Err())
		r.Interrupted = true
		return r, nil
	}
	return r, err
}
