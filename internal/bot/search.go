package bot

import (
	"runtime"
	"sync"

	"github.com/havenwood/vectorchess/internal/engine"
)

// OptimizationContext bundles the per-search mutable state threaded through
// negamax: a private transposition table. Each root-parallel worker gets its
// own context; the ZobristTable is shared read-only across all of them.
type OptimizationContext struct {
	TT *TranspositionTable
}

// NewOptimizationContext returns a context with a fresh transposition table.
func NewOptimizationContext() *OptimizationContext {
	return &OptimizationContext{TT: NewTranspositionTable()}
}

// RootResult pairs a root move with its negated child score.
type RootResult struct {
	Move  engine.Move
	Score float64
}

// NegamaxMove evaluates every pseudo-legal move for board.NextPlayer in
// parallel, one goroutine per root move each with its own fresh
// OptimizationContext (the source found sharing a table across workers
// "didn't seem to help"), and returns the move with the maximum score.
// ok is false iff no moves exist for the side to move.
//
// workers caps how many root moves are evaluated concurrently; 0 means
// runtime.NumCPU().
func NegamaxMove(board *engine.Board, depth int, zobrist *engine.ZobristTable, workers int) (RootResult, bool) {
	moves := board.GenerateMoves(board.NextPlayer)
	if len(moves) == 0 {
		return RootResult{}, false
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]RootResult, len(moves))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, move := range moves {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, move engine.Move) {
			defer wg.Done()
			defer func() { <-sem }()

			child := *board
			child.ExecuteMove(move, zobrist)
			ctx := NewOptimizationContext()
			score := -negamax(&child, depth-1, negInf, posInf, zobrist, ctx)
			results[i] = RootResult{Move: move, Score: score}
		}(i, move)
	}
	wg.Wait()

	best := results[0]
	for _, r := range results[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return best, true
}

const (
	negInf = -1e18
	posInf = 1e18
)

// negamax is the sequential, alpha-beta-pruned core. board is in negamax
// convention throughout: a node's score is always from the perspective of
// board.NextPlayer, and a child's score is negated before use.
func negamax(board *engine.Board, depth int, alpha, beta float64, zobrist *engine.ZobristTable, ctx *OptimizationContext) float64 {
	if score, entryType, ok := ctx.TT.Lookup(board.ZobristHash, depth); ok {
		switch entryType {
		case Exact:
			return score
		case UpperBound:
			if score >= beta {
				return score
			}
		case LowerBound:
			if score <= alpha {
				return score
			}
		}
	}

	if depth == 0 {
		score := evaluatePositionForCurrentPlayer(board)
		ctx.TT.Insert(board.ZobristHash, depth, score, Exact)
		return score
	}

	moves := OrderMoves(board.GenerateMoves(board.NextPlayer), board)
	origAlpha := alpha

	best := 0.0
	haveMove := false
	for _, move := range moves {
		if alpha >= beta {
			break
		}

		var score float64
		if move.IsCaptureKing(board) {
			score = kingCaptureScore
		} else {
			child := *board
			child.ExecuteMove(move, zobrist)
			score = -negamax(&child, depth-1, -beta, -alpha, zobrist, ctx)
		}

		if !haveMove || score > best {
			best = score
			haveMove = true
		}
		if score > alpha {
			alpha = score
		}
	}

	var entryType EntryType
	switch {
	case best <= origAlpha:
		entryType = UpperBound
	case best >= beta:
		entryType = LowerBound
	default:
		entryType = Exact
	}
	ctx.TT.Insert(board.ZobristHash, depth, best, entryType)

	return best
}
