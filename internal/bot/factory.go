package bot

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/havenwood/vectorchess/internal/engine"
)

// EngineOption is a functional option for engine creation.
type EngineOption func(*engineConfig) error

// engineConfig holds the configuration options engine constructors apply.
type engineConfig struct {
	searchDepth int
	workers     int
}

// WithSearchDepth overrides the difficulty's default search depth.
func WithSearchDepth(depth int) EngineOption {
	return func(c *engineConfig) error {
		if depth < 1 || depth > 20 {
			return fmt.Errorf("bot: search depth must be 1-20, got %d", depth)
		}
		c.searchDepth = depth
		return nil
	}
}

// WithWorkers overrides how many root moves are searched concurrently. 0
// (the default) means runtime.NumCPU().
func WithWorkers(workers int) EngineOption {
	return func(c *engineConfig) error {
		if workers < 0 {
			return fmt.Errorf("bot: workers must be >= 0, got %d", workers)
		}
		c.workers = workers
		return nil
	}
}

// NewRandomEngine creates an Easy bot that plays uniformly random
// pseudo-legal moves without searching.
func NewRandomEngine() Engine {
	return &randomEngine{
		name: "Easy Bot",
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewNegamaxEngine creates a Medium or Hard bot backed by NegamaxMove.
// zobrist must outlive the returned Engine - it is shared read-only across
// every search call and every root-parallel worker.
func NewNegamaxEngine(difficulty Difficulty, zobrist *engine.ZobristTable, opts ...EngineOption) (Engine, error) {
	if difficulty != Medium && difficulty != Hard {
		return nil, fmt.Errorf("bot: invalid difficulty for negamax engine: %v (expected Medium or Hard)", difficulty)
	}

	cfg := &engineConfig{searchDepth: defaultDepth(difficulty)}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &negamaxEngine{
		name:       fmt.Sprintf("%s Bot", difficulty.String()),
		difficulty: difficulty,
		depth:      cfg.searchDepth,
		workers:    cfg.workers,
		zobrist:    zobrist,
	}, nil
}
