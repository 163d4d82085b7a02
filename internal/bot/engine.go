package bot

import (
	"context"
	"fmt"

	"github.com/havenwood/vectorchess/internal/engine"
)

// Engine is a chess bot that can select moves for the side to move.
type Engine interface {
	// SelectMove returns the bot's chosen move for the given position.
	SelectMove(ctx context.Context, board *engine.Board) (engine.Move, error)

	// Name returns a human-readable name for this engine.
	Name() string
}

// Difficulty selects how hard an Engine plays.
type Difficulty int

const (
	// Easy skips search entirely and plays a random pseudo-legal move.
	Easy Difficulty = iota
	// Medium searches a shallow fixed depth.
	Medium
	// Hard searches a deeper fixed depth.
	Hard
)

// String returns "Easy", "Medium", or "Hard".
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// defaultDepth returns the search depth a difficulty uses when the caller
// hasn't overridden it via WithSearchDepth.
func defaultDepth(d Difficulty) int {
	switch d {
	case Medium:
		return 3
	case Hard:
		return 5
	default:
		return 0
	}
}

// negamaxEngine is the Medium/Hard Engine implementation: full negamax
// search with alpha-beta pruning and root-level parallelism.
type negamaxEngine struct {
	name       string
	difficulty Difficulty
	depth      int
	workers    int
	zobrist    *engine.ZobristTable
}

func (e *negamaxEngine) Name() string { return e.name }

// SelectMove runs NegamaxMove at e.depth. ctx is accepted for interface
// symmetry with other Engine implementations but is not consulted - the
// search (NegamaxMove) has no cancellation points.
func (e *negamaxEngine) SelectMove(_ context.Context, board *engine.Board) (engine.Move, error) {
	result, ok := NegamaxMove(board, e.depth, e.zobrist, e.workers)
	if !ok {
		return engine.Move{}, fmt.Errorf("bot: no legal moves for %v", board.NextPlayer)
	}
	return result.Move, nil
}
