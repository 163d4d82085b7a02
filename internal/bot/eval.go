// Package bot implements the static evaluator and the negamax/alpha-beta
// search that sits on top of internal/engine's pseudo-legal move generator.
package bot

import "github.com/havenwood/vectorchess/internal/engine"

// pieceValues gives the material worth of each piece type, in pawns. The
// king's value (200.0) is not "material" in the usual sense - it is the
// terminal score the search yields when a move captures it, standing in for
// legality checking (see negamax).
var pieceValues = map[engine.PieceType]float64{
	engine.Pawn:   1.0,
	engine.Knight: 3.05,
	engine.Bishop: 3.33,
	engine.Rook:   5.63,
	engine.Queen:  9.5,
	engine.King:   200.0,
}

const (
	mobilityWeight         = 0.1
	centerPawnBonus        = 0.6
	centerNotPushedPenalty = 0.2
	kingCaptureScore       = 200.0
)

// isCenterSquare reports whether coord is one of the four central squares.
func isCenterSquare(coord engine.Vector) bool {
	return (coord.X == 3 || coord.X == 4) && (coord.Y == 3 || coord.Y == 4)
}

// evaluatePosition returns a scalar position score, positive favoring White.
// It never considers whose turn it is - see evaluatePositionForCurrentPlayer
// for the negamax-convention variant.
func evaluatePosition(b *engine.Board) float64 {
	var score float64

	whiteMoves := len(b.GenerateMoves(engine.White))
	blackMoves := len(b.GenerateMoves(engine.Black))
	score += float64(whiteMoves-blackMoves) * mobilityWeight

	for _, coord := range b.CoordsWithPiece() {
		piece := b.PieceAt(coord)
		color := piece.Color()
		mult := color.Multiplier()

		score += pieceValues[piece.Type()] * mult

		if piece.Type() != engine.Pawn {
			continue
		}
		if isCenterSquare(coord) {
			score += centerPawnBonus * mult
		}
		if color == engine.White && (coord.X == 3 || coord.X == 4) && coord.Y == 6 {
			score -= centerNotPushedPenalty
		}
		if color == engine.Black && (coord.X == 3 || coord.X == 4) && coord.Y == 1 {
			score += centerNotPushedPenalty
		}
	}

	return score
}

// evaluatePositionForCurrentPlayer negates evaluatePosition's result when
// Black is to move, so every search node can be written in negamax
// convention: higher always means better for the side about to move.
func evaluatePositionForCurrentPlayer(b *engine.Board) float64 {
	score := evaluatePosition(b)
	if b.NextPlayer == engine.Black {
		return -score
	}
	return score
}
