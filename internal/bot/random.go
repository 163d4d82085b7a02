package bot

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/havenwood/vectorchess/internal/engine"
)

// randomEngine implements Easy difficulty: it skips search entirely and
// plays a uniformly random pseudo-legal move.
type randomEngine struct {
	name string
	rng  *rand.Rand
}

func (e *randomEngine) Name() string { return e.name }

func (e *randomEngine) SelectMove(_ context.Context, board *engine.Board) (engine.Move, error) {
	moves := board.GenerateMoves(board.NextPlayer)
	if len(moves) == 0 {
		return engine.Move{}, fmt.Errorf("bot: no legal moves for %v", board.NextPlayer)
	}
	return moves[e.rng.Intn(len(moves))], nil
}
