package engine

import "testing"

func TestNewBoardPiecePlacement(t *testing.T) {
	b := NewBoard()

	if b.NextPlayer != White {
		t.Errorf("expected White to move first, got %v", b.NextPlayer)
	}

	for x := 0; x < BoardSizeX; x++ {
		if p := b.PieceAt(Vector{x, 1}); p.Type() != Pawn || p.Color() != Black {
			t.Errorf("expected Black pawn at (%d,1), got %v", x, p)
		}
		if p := b.PieceAt(Vector{x, 6}); p.Type() != Pawn || p.Color() != White {
			t.Errorf("expected White pawn at (%d,6), got %v", x, p)
		}
	}

	king := b.PieceAt(Vector{4, 7})
	if king.Type() != King || king.Color() != White {
		t.Errorf("expected White king at (4,7), got %v", king)
	}

	if !b.LeftCastlingRights[White.Index()] || !b.RightCastlingRights[White.Index()] {
		t.Error("expected White to start with both castling rights")
	}
}

func TestCoordsWithPieceOfColorCounts(t *testing.T) {
	b := NewBoard()

	white := b.CoordsWithPieceOfColor(White)
	black := b.CoordsWithPieceOfColor(Black)

	if len(white) != 16 {
		t.Errorf("expected 16 White pieces, got %d", len(white))
	}
	if len(black) != 16 {
		t.Errorf("expected 16 Black pieces, got %d", len(black))
	}
}

func TestCoordsRowMajorOrder(t *testing.T) {
	b := NewBoard()
	coords := b.Coords()

	if len(coords) != BoardSizeX*BoardSizeY {
		t.Fatalf("expected %d coordinates, got %d", BoardSizeX*BoardSizeY, len(coords))
	}
	if coords[0] != (Vector{0, 0}) || coords[1] != (Vector{1, 0}) {
		t.Errorf("expected row-major order starting (0,0),(1,0); got %v,%v", coords[0], coords[1])
	}
}

func TestFENRoundTrip(t *testing.T) {
	zobrist := NewZobristTable()
	b := NewBoard()

	fen := b.FEN()
	parsed, err := ParseFEN(fen, zobrist)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}

	if parsed.FEN() != fen {
		t.Errorf("round-tripped FEN differs: %q vs %q", parsed.FEN(), fen)
	}
	if parsed.ZobristHash != b.ZobristHash {
		t.Errorf("round-tripped hash differs: %x vs %x", parsed.ZobristHash, b.ZobristHash)
	}
}
