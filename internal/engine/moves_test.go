package engine

import "testing"

// S1: opening moves count.
func TestInitialPositionMoveCounts(t *testing.T) {
	b := NewBoard()

	white := b.GenerateMoves(White)
	black := b.GenerateMoves(Black)

	if len(white) != 20 {
		t.Errorf("expected 20 White moves from the initial position, got %d", len(white))
	}
	if len(black) != 20 {
		t.Errorf("expected 20 Black moves from the initial position regardless of NextPlayer, got %d", len(black))
	}
}

// S2: white pawn push, Black's reply includes a double push, side flips.
func TestDoublePawnPushThenBlackReply(t *testing.T) {
	zobrist := NewZobristTable()
	b := NewBoard()

	b.ExecuteMove(Move{Src: Vector{4, 6}, Dst: Vector{4, 4}, Kind: DoublePawnPush}, zobrist)

	if b.NextPlayer != Black {
		t.Fatalf("expected Black to move, got %v", b.NextPlayer)
	}

	blackMoves := b.GenerateMoves(Black)
	want := Move{Src: Vector{4, 1}, Dst: Vector{4, 3}, Kind: DoublePawnPush}
	if !containsMove(blackMoves, want) {
		t.Errorf("expected Black double push %v among %v", want, blackMoves)
	}
}

// S3: en passant.
func TestEnPassantCapture(t *testing.T) {
	zobrist := NewZobristTable()
	b := NewBoard()

	b.ExecuteMove(Move{Src: Vector{4, 6}, Dst: Vector{4, 4}, Kind: DoublePawnPush}, zobrist) // e2e4
	b.ExecuteMove(Move{Src: Vector{0, 1}, Dst: Vector{0, 2}, Kind: Quiet}, zobrist)          // a7a6
	b.ExecuteMove(Move{Src: Vector{4, 4}, Dst: Vector{4, 3}, Kind: Quiet}, zobrist)          // e4e5
	b.ExecuteMove(Move{Src: Vector{3, 1}, Dst: Vector{3, 3}, Kind: DoublePawnPush}, zobrist) // d7d5

	moves := b.GeneratePieceMoves(Vector{4, 3})
	want := Move{Src: Vector{4, 3}, Dst: Vector{3, 2}, Kind: EPCapture}
	if !containsMove(moves, want) {
		t.Fatalf("expected en passant capture %v among %v", want, moves)
	}

	b.ExecuteMove(want, zobrist)

	if !b.PieceAt(Vector{3, 3}).IsEmpty() {
		t.Error("expected captured Black pawn removed from (3,3)")
	}
	if p := b.PieceAt(Vector{3, 2}); p.IsEmpty() || p.Type() != Pawn || p.Color() != White {
		t.Errorf("expected White pawn at (3,2), got %v", p)
	}
}

// S4: promotion.
func TestPawnPromotion(t *testing.T) {
	var b Board
	b.Squares[1][0] = NewPiece(White, Pawn)
	b.NextPlayer = White

	moves := b.GeneratePieceMoves(Vector{0, 1})

	wantKinds := []MoveKind{PromotionKnight, PromotionBishop, PromotionRook, PromotionQueen}
	if len(moves) != 4 {
		t.Fatalf("expected 4 promotion moves, got %d: %v", len(moves), moves)
	}
	for _, kind := range wantKinds {
		if !containsMove(moves, Move{Src: Vector{0, 1}, Dst: Vector{0, 0}, Kind: kind}) {
			t.Errorf("missing promotion kind %v among %v", kind, moves)
		}
	}
}

// S5: kingside castle.
func TestKingsideCastle(t *testing.T) {
	zobrist := NewZobristTable()
	b := NewBoard()
	b.Squares[7][5] = Piece(0)
	b.Squares[7][6] = Piece(0)

	moves := b.GeneratePieceMoves(Vector{4, 7})
	want := Move{Src: Vector{4, 7}, Dst: Vector{6, 7}, Kind: KingCastle}
	if !containsMove(moves, want) {
		t.Fatalf("expected kingside castle %v among %v", want, moves)
	}

	b.ExecuteMove(want, zobrist)

	king := b.PieceAt(Vector{6, 7})
	if king.IsEmpty() || king.Type() != King || king.Color() != White {
		t.Errorf("expected White king at (6,7), got %v", king)
	}
	rook := b.PieceAt(Vector{5, 7})
	if rook.IsEmpty() || rook.Type() != Rook || !rook.Moved() {
		t.Errorf("expected moved White rook at (5,7), got %v", rook)
	}
}

func containsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
