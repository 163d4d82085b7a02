package bot

import (
	"math"
	"sort"

	"github.com/havenwood/vectorchess/internal/engine"
)

// orderScore scores a move for ordering purposes - lower sorts first. If
// board.LastMove exists and m lands on the same square, the move is a
// recapture candidate and is scored by the value of the piece making it
// (preferring the least-valuable attacker); all other moves sort last.
func orderScore(m engine.Move, board *engine.Board) float64 {
	if board.LastMove != nil && m.Dst == board.LastMove.Dst {
		attacker := board.PieceAt(m.Src)
		return pieceValues[attacker.Type()]
	}
	return math.Inf(1)
}

// OrderMoves returns a copy of moves sorted by orderScore. negamax calls it
// before iterating a node's moves so likely recaptures are searched first;
// unordered iteration would also be correct, just slower to prune.
func OrderMoves(moves []engine.Move, board *engine.Board) []engine.Move {
	ordered := make([]engine.Move, len(moves))
	copy(ordered, moves)
	sort.SliceStable(ordered, func(i, j int) bool {
		return orderScore(ordered[i], board) < orderScore(ordered[j], board)
	})
	return ordered
}
