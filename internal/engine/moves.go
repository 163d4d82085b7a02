package engine

// knightOffsets are the eight L-shaped knight jumps.
var knightOffsets = []Vector{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// kingOffsets are the eight single-step king moves.
var kingOffsets = []Vector{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// bishopRayDirs are the four diagonal slide directions.
var bishopRayDirs = []Vector{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// rookRayDirs are the four orthogonal slide directions.
var rookRayDirs = []Vector{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// promotionKinds maps a quiet push onto a promotion, in Knight/Bishop/Rook/
// Queen order.
var promotionKinds = []MoveKind{PromotionKnight, PromotionBishop, PromotionRook, PromotionQueen}

// capturePromotionKinds is promotionKinds' capturing counterpart.
var capturePromotionKinds = []MoveKind{
	CapturePromotionKnight, CapturePromotionBishop, CapturePromotionRook, CapturePromotionQueen,
}

// GenerateMoves returns the concatenation of GeneratePieceMoves for every
// coordinate owned by color. It does not consult b.NextPlayer - callers may
// generate a color's moves regardless of whose turn it actually is.
func (b *Board) GenerateMoves(color Color) []Move {
	var moves []Move
	for _, coord := range b.CoordsWithPieceOfColor(color) {
		moves = append(moves, b.GeneratePieceMoves(coord)...)
	}
	return moves
}

// GeneratePieceMoves returns the pseudo-legal moves available to the piece
// standing at coord. Precondition: coord.IsOnBoard() and the square is
// occupied; violating either is a programmer error.
//
// "Pseudo-legal" means these moves obey piece movement rules but may leave
// the mover's own king in check - the search substitutes king-capture
// detection for full legality checking (see bot.negamax).
func (b *Board) GeneratePieceMoves(coord Vector) []Move {
	piece := b.PieceAt(coord)
	switch piece.Type() {
	case Pawn:
		return b.generatePawnMoves(coord, piece.Color())
	case Knight:
		return b.generateOffsetMoves(coord, piece.Color(), knightOffsets)
	case Bishop:
		return b.generateSlidingMoves(coord, piece.Color(), bishopRayDirs)
	case Rook:
		return b.generateSlidingMoves(coord, piece.Color(), rookRayDirs)
	case Queen:
		moves := b.generateSlidingMoves(coord, piece.Color(), bishopRayDirs)
		return append(moves, b.generateSlidingMoves(coord, piece.Color(), rookRayDirs)...)
	case King:
		moves := b.generateOffsetMoves(coord, piece.Color(), kingOffsets)
		return append(moves, b.generateCastlingMoves(coord, piece.Color())...)
	default:
		return nil
	}
}

// generateOffsetMoves emits one move per offset landing on-board, Quiet on
// an empty destination and Capture on an opposite-color one. Used by
// knights and kings, which never slide.
func (b *Board) generateOffsetMoves(coord Vector, color Color, offsets []Vector) []Move {
	var moves []Move
	for _, off := range offsets {
		dst := coord.Add(off)
		if !dst.IsOnBoard() {
			continue
		}
		target := b.PieceAt(dst)
		switch {
		case target.IsEmpty():
			moves = append(moves, Move{Src: coord, Dst: dst, Kind: Quiet})
		case target.Color() != color:
			moves = append(moves, Move{Src: coord, Dst: dst, Kind: Capture})
		}
	}
	return moves
}

// generateSlidingMoves emits moves along each direction until the edge of
// the board, an occupied square, is reached. Used by bishops, rooks, and
// queens.
func (b *Board) generateSlidingMoves(coord Vector, color Color, dirs []Vector) []Move {
	var moves []Move
	for _, dir := range dirs {
		dst := coord.Add(dir)
		for dst.IsOnBoard() {
			target := b.PieceAt(dst)
			if target.IsEmpty() {
				moves = append(moves, Move{Src: coord, Dst: dst, Kind: Quiet})
				dst = dst.Add(dir)
				continue
			}
			if target.Color() != color {
				moves = append(moves, Move{Src: coord, Dst: dst, Kind: Capture})
			}
			break
		}
	}
	return moves
}

// pawnHomeRank returns the rank a color's pawns start on.
func pawnHomeRank(color Color) int {
	if color == White {
		return 6
	}
	return 1
}

// pawnForward returns the rank delta one square forward for color - White
// advances toward y=0, Black toward y=7.
func pawnForward(color Color) int {
	if color == White {
		return -1
	}
	return 1
}

func (b *Board) generatePawnMoves(coord Vector, color Color) []Move {
	var moves []Move
	forward := pawnForward(color)

	pushDst := Vector{coord.X, coord.Y + forward}
	if pushDst.IsOnBoard() && b.PieceAt(pushDst).IsEmpty() {
		moves = append(moves, pawnQuietOrPromotion(coord, pushDst)...)

		if coord.Y == pawnHomeRank(color) {
			doubleDst := Vector{coord.X, coord.Y + 2*forward}
			if b.PieceAt(doubleDst).IsEmpty() {
				moves = append(moves, Move{Src: coord, Dst: doubleDst, Kind: DoublePawnPush})
			}
		}
	}

	for _, dx := range []int{-1, 1} {
		attack := Vector{coord.X + dx, coord.Y + forward}
		if !attack.IsOnBoard() {
			continue
		}
		target := b.PieceAt(attack)
		if !target.IsEmpty() && target.Color() != color {
			moves = append(moves, pawnCaptureOrPromotion(coord, attack)...)
			continue
		}
		moves = append(moves, b.generateEnPassant(coord, attack, color)...)
	}

	return moves
}

// pawnQuietOrPromotion emits a Quiet push, or four Promotion* moves if dst
// lands on the back rank.
func pawnQuietOrPromotion(src, dst Vector) []Move {
	if dst.Y == 0 || dst.Y == 7 {
		moves := make([]Move, 0, 4)
		for _, kind := range promotionKinds {
			moves = append(moves, Move{Src: src, Dst: dst, Kind: kind})
		}
		return moves
	}
	return []Move{{Src: src, Dst: dst, Kind: Quiet}}
}

// pawnCaptureOrPromotion emits a Capture, or four CapturePromotion* moves if
// dst lands on the back rank.
func pawnCaptureOrPromotion(src, dst Vector) []Move {
	if dst.Y == 0 || dst.Y == 7 {
		moves := make([]Move, 0, 4)
		for _, kind := range capturePromotionKinds {
			moves = append(moves, Move{Src: src, Dst: dst, Kind: kind})
		}
		return moves
	}
	return []Move{{Src: src, Dst: dst, Kind: Capture}}
}

// generateEnPassant emits an EPCapture to the empty diagonal attack square
// when the last move was a double push landing on the square adjacent to
// src, on the attack's file.
func (b *Board) generateEnPassant(coord, attack Vector, color Color) []Move {
	if b.LastMove == nil || b.LastMove.Kind != DoublePawnPush {
		return nil
	}
	adjacent := Vector{attack.X, coord.Y}
	adjacentPiece := b.PieceAt(adjacent)
	if adjacentPiece.IsEmpty() || adjacentPiece.Type() != Pawn || adjacentPiece.Color() == color {
		return nil
	}
	if b.LastMove.Dst != adjacent {
		return nil
	}
	return []Move{{Src: coord, Dst: attack, Kind: EPCapture}}
}

// castlingHomeRank returns the rank a color's king and rooks start on.
func castlingHomeRank(color Color) int {
	if color == White {
		return 7
	}
	return 0
}

// generateCastlingMoves checks the fixed king/rook/empty-square pattern for
// both castling sides. It deliberately omits "king not in check; king does
// not pass through an attacked square" - consistent with pseudo-legal
// generation elsewhere in this package.
func (b *Board) generateCastlingMoves(coord Vector, color Color) []Move {
	y := castlingHomeRank(color)
	if coord.Y != y || coord.X != 4 {
		return nil
	}

	var moves []Move
	king := b.PieceAt(coord)
	if king.IsEmpty() || king.Type() != King || king.Color() != color {
		return nil
	}

	if b.squaresEmpty(y, 1, 3) {
		rook := b.PieceAt(Vector{0, y})
		if !rook.IsEmpty() && rook.Type() == Rook && rook.Color() == color {
			moves = append(moves, Move{Src: Vector{4, y}, Dst: Vector{2, y}, Kind: QueenCastle})
		}
	}

	if b.squaresEmpty(y, 5, 6) {
		rook := b.PieceAt(Vector{7, y})
		if !rook.IsEmpty() && rook.Type() == Rook && rook.Color() == color {
			moves = append(moves, Move{Src: Vector{4, y}, Dst: Vector{6, y}, Kind: KingCastle})
		}
	}

	return moves
}

// squaresEmpty reports whether every file in [fromX, toX] on rank y is
// empty.
func (b *Board) squaresEmpty(y, fromX, toX int) bool {
	for x := fromX; x <= toX; x++ {
		if !b.PieceAt(Vector{x, y}).IsEmpty() {
			return false
		}
	}
	return true
}
