package engine

// ExecuteMove applies a pseudo-legal move to the board, updating pieces,
// castling rights, LastMove, NextPlayer, and ZobristHash. The board is
// mutated in place - callers that need the prior position must clone first
// (Board is a plain value type, so `child := *b` suffices).
//
// Precondition: a piece exists at move.Src and belongs to b.NextPlayer.
// Violating it is a programmer error.
func (b *Board) ExecuteMove(move Move, zobrist *ZobristTable) {
	piece := b.PieceAt(move.Src)
	color := piece.Color()
	pieceType := piece.Type()
	hadMoved := piece.Moved()

	piece = piece.WithMoved()

	// Step 2: clear src.
	b.setPieceAt(move.Src, Piece(0))

	// Step 3: hash XOR - remove piece at src (pre-move color/type).
	b.ZobristHash ^= zobrist.PieceKey(move.Src, color, pieceType)

	// Step 4: if capture-with-target, XOR the victim off dst.
	if move.IsCaptureWithTarget() {
		victim := b.PieceAt(move.Dst)
		b.ZobristHash ^= zobrist.PieceKey(move.Dst, victim.Color(), victim.Type())
	}

	// Step 5: hash XOR - the moved piece onto dst.
	b.ZobristHash ^= zobrist.PieceKey(move.Dst, color, pieceType)

	// Step 6: castling-rights maintenance, only if the piece had not
	// previously moved.
	if !hadMoved {
		switch pieceType {
		case King:
			if b.LeftCastlingRights[color.Index()] {
				b.LeftCastlingRights[color.Index()] = false
				b.ZobristHash ^= zobrist.LeftCastleKey(color)
			}
			if b.RightCastlingRights[color.Index()] {
				b.RightCastlingRights[color.Index()] = false
				b.ZobristHash ^= zobrist.RightCastleKey(color)
			}
		case Rook:
			// Only src.x==0 is checked explicitly; any other first rook
			// move falls through to clearing the kingside right, even for
			// a rook that never stood on the h-file.
			if move.Src.X == 0 {
				if b.LeftCastlingRights[color.Index()] {
					b.LeftCastlingRights[color.Index()] = false
					b.ZobristHash ^= zobrist.LeftCastleKey(color)
				}
			} else if b.RightCastlingRights[color.Index()] {
				b.RightCastlingRights[color.Index()] = false
				b.ZobristHash ^= zobrist.RightCastleKey(color)
			}
		}
	}

	// Step 7: place the moved piece at dst.
	b.setPieceAt(move.Dst, piece)

	// Step 8: rook relocation for castling.
	switch move.Kind {
	case QueenCastle:
		rookSrc := Vector{0, move.Src.Y}
		rookDst := Vector{3, move.Src.Y}
		b.relocateCastlingRook(rookSrc, rookDst, color, zobrist)
	case KingCastle:
		rookSrc := Vector{7, move.Src.Y}
		rookDst := Vector{5, move.Src.Y}
		b.relocateCastlingRook(rookSrc, rookDst, color, zobrist)
	}

	// Step 9: en-passant capture removes the adjacent pawn.
	if move.Kind == EPCapture {
		var capturedAt Vector
		if move.Dst.Y == 5 {
			capturedAt = Vector{move.Dst.X, move.Dst.Y - 1}
		} else {
			capturedAt = Vector{move.Dst.X, move.Dst.Y + 1}
		}
		captured := b.PieceAt(capturedAt)
		b.ZobristHash ^= zobrist.PieceKey(capturedAt, captured.Color(), captured.Type())
		b.setPieceAt(capturedAt, Piece(0))
	}

	// Step 10: en-passant file hashing.
	if move.Kind == DoublePawnPush {
		b.ZobristHash ^= zobrist.EnPassantFileKey(move.Src.X)
	}
	if b.LastMove != nil && b.LastMove.Kind == DoublePawnPush {
		b.ZobristHash ^= zobrist.EnPassantFileKey(b.LastMove.Src.X)
	}

	// Step 11: promotion.
	if promotedType, ok := move.Kind.promotionType(); ok {
		b.ZobristHash ^= zobrist.PieceKey(move.Dst, color, pieceType)
		promoted := NewPiece(color, promotedType).WithMoved()
		b.setPieceAt(move.Dst, promoted)
		b.ZobristHash ^= zobrist.PieceKey(move.Dst, color, promotedType)
	}

	// Step 12: record last move.
	moveCopy := move
	b.LastMove = &moveCopy

	// Step 13: flip side to move.
	b.NextPlayer = b.NextPlayer.Other()
	b.ZobristHash ^= zobrist.BlackToMoveKey()
}

// relocateCastlingRook moves a castling rook from src to dst, sets its moved
// bit, and XORs both squares' rook keys.
func (b *Board) relocateCastlingRook(src, dst Vector, color Color, zobrist *ZobristTable) {
	rook := b.PieceAt(src).WithMoved()
	b.setPieceAt(src, Piece(0))
	b.setPieceAt(dst, rook)
	b.ZobristHash ^= zobrist.PieceKey(src, color, Rook)
	b.ZobristHash ^= zobrist.PieceKey(dst, color, Rook)
}
