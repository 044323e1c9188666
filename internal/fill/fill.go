// Package fill creates the initial coloring of boards: random fills, fills from a list of
// stones, and the configuration of random boards.
package fill

import (
	"github.com/janpfeifer/goGroups/internal/parameters"
	"github.com/janpfeifer/goGroups/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"math/rand/v2"
)

// ColorFn returns the color for a point of the board.
type ColorFn func(p state.Point) state.Color

// Apply sets every point of the grid to the color returned by fn.
func Apply(grid *state.Grid, fn ColorFn) {
	for p := range grid.Points() {
		grid.Set(p, fn(p))
	}
}

// Uniform returns a ColorFn that picks Empty, Black or White with the same probability.
func Uniform(rng *rand.Rand) ColorFn {
	return func(_ state.Point) state.Color {
		return state.Color(rng.IntN(state.NumColors))
	}
}

// Weighted returns a ColorFn that picks Empty with probability emptyProb, and otherwise
// Black or White with the same probability.
func Weighted(rng *rand.Rand, emptyProb float64) ColorFn {
	return func(_ state.Point) state.Color {
		if rng.Float64() < emptyProb {
			return state.Empty
		}
		return state.Stones[rng.IntN(len(state.Stones))]
	}
}

// Stones returns a ColorFn with the colors of the given stones, and Empty everywhere else.
// If more than one stone is on the same point, the later one wins.
func Stones(stones []state.Stone) ColorFn {
	colors := make(map[state.Point]state.Color, len(stones))
	for _, stone := range stones {
		colors[stone.Point] = stone.Color
	}
	return func(p state.Point) state.Color {
		return colors[p]
	}
}

// RandomStones returns numStones random stones on a board of the given size.
//
// The stones are not guaranteed to be on different points: later stones may be placed on
// top of earlier ones.
func RandomStones(rng *rand.Rand, size state.Size, numStones int) []state.Stone {
	stones := make([]state.Stone, 0, numStones)
	for range numStones {
		stones = append(stones, state.Stone{
			Point: state.Point{X: rng.IntN(size.Width), Y: rng.IntN(size.Height)},
			Color: state.Stones[rng.IntN(len(state.Stones))],
		})
	}
	return stones
}

// Config of random boards.
type Config struct {
	Size state.Size

	// Seed of the random number generator. If 0, a random seed is used.
	Seed uint64

	// EmptyProb is the probability of each point being empty. If negative, Empty, Black and White
	// are picked with the same probability.
	EmptyProb float64
}

// DefaultConfig is a 9x9 board with random seed, and uniform colors.
func DefaultConfig() Config {
	return Config{
		Size:      state.Size{Width: 9, Height: 9},
		EmptyProb: -1,
	}
}

// NewConfig parses a configuration string like "width=9,height=11,seed=13,empty=0.4".
// The key "size" can be used instead of width/height, e.g. "size=9x11".
// Missing keys take the values from DefaultConfig, and unknown keys are an error.
func NewConfig(config string) (cfg Config, err error) {
	cfg = DefaultConfig()
	params := parameters.NewFromConfigString(config)
	if sizeStr, _ := parameters.PopParamOr(params, "size", ""); sizeStr != "" {
		cfg.Size, err = state.ParseSize(sizeStr)
		if err != nil {
			return
		}
	}
	if cfg.Size.Width, err = parameters.PopParamOr(params, "width", cfg.Size.Width); err != nil {
		return
	}
	if cfg.Size.Height, err = parameters.PopParamOr(params, "height", cfg.Size.Height); err != nil {
		return
	}
	var seed int
	if seed, err = parameters.PopParamOr(params, "seed", 0); err != nil {
		return
	}
	if seed < 0 {
		err = errors.Errorf("invalid seed=%d, it must be >= 0", seed)
		return
	}
	cfg.Seed = uint64(seed)
	if cfg.EmptyProb, err = parameters.PopParamOr(params, "empty", cfg.EmptyProb); err != nil {
		return
	}
	if cfg.EmptyProb > 1 {
		err = errors.Errorf("invalid empty=%g, it must be a probability <= 1", cfg.EmptyProb)
		return
	}
	err = parameters.CheckAllConsumed(params)
	if err != nil {
		err = errors.WithMessagef(err, "failed to parse fill configuration %q", config)
	}
	return
}

// WithSeed returns a copy of the configuration with the given seed.
func (cfg Config) WithSeed(seed uint64) Config {
	cfg.Seed = seed
	return cfg
}

// NewRand returns the random number generator for the configuration.
func (cfg Config) NewRand() *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// ColorFn returns the filling function for the configuration, using rng.
func (cfg Config) ColorFn(rng *rand.Rand) ColorFn {
	if cfg.EmptyProb < 0 {
		return Uniform(rng)
	}
	return Weighted(rng, cfg.EmptyProb)
}

// NewGrid creates a grid filled according to the configuration.
func (cfg Config) NewGrid() (*state.Grid, error) {
	grid, err := state.NewGrid(cfg.Size)
	if err != nil {
		return nil, err
	}
	Apply(grid, cfg.ColorFn(cfg.NewRand()))
	klog.V(2).Infof("Filled %s board (seed=%d): %d stones", cfg.Size, cfg.Seed, grid.NumStones())
	return grid, nil
}
