package engine

import "testing"

func TestNewZobristTableIsDeterministic(t *testing.T) {
	t1 := NewZobristTable()
	t2 := NewZobristTable()

	if t1.BlackToMoveKey() != t2.BlackToMoveKey() {
		t.Errorf("black-to-move key differs across constructions: %x vs %x", t1.BlackToMoveKey(), t2.BlackToMoveKey())
	}

	for y := 0; y < BoardSizeY; y++ {
		for x := 0; x < BoardSizeX; x++ {
			for pt := Pawn; pt <= King; pt++ {
				for _, c := range []Color{White, Black} {
					coord := Vector{x, y}
					if t1.PieceKey(coord, c, pt) != t2.PieceKey(coord, c, pt) {
						t.Fatalf("piece key differs at %v/%v/%v", coord, c, pt)
					}
				}
			}
		}
	}
}

func TestZobristTableKeysAreDistinct(t *testing.T) {
	table := NewZobristTable()
	seen := make(map[uint64]bool)
	collisions := 0

	record := func(k uint64) {
		if seen[k] {
			collisions++
		}
		seen[k] = true
	}

	for y := 0; y < BoardSizeY; y++ {
		for x := 0; x < BoardSizeX; x++ {
			for pt := Pawn; pt <= King; pt++ {
				for _, c := range []Color{White, Black} {
					record(table.PieceKey(Vector{x, y}, c, pt))
				}
			}
		}
	}
	record(table.BlackToMoveKey())
	record(table.LeftCastleKey(White))
	record(table.LeftCastleKey(Black))
	record(table.RightCastleKey(White))
	record(table.RightCastleKey(Black))
	for x := 0; x < BoardSizeX; x++ {
		record(table.EnPassantFileKey(x))
	}

	if collisions > 0 {
		t.Errorf("expected 781 distinct keys, found %d collisions", collisions)
	}
	if len(seen) != 768+1+4+8 {
		t.Errorf("expected %d distinct keys, got %d", 768+1+4+8, len(seen))
	}
}

func TestNewBoardZobristHashIsZero(t *testing.T) {
	b := NewBoard()
	if b.ZobristHash != 0 {
		t.Errorf("expected initial position hash 0, got %x", b.ZobristHash)
	}
}

func TestHashDeterminismAcrossEqualMoveSequences(t *testing.T) {
	zobrist := NewZobristTable()

	play := func() uint64 {
		b := NewBoard()
		b.ExecuteMove(Move{Src: Vector{4, 6}, Dst: Vector{4, 4}, Kind: DoublePawnPush}, zobrist)
		b.ExecuteMove(Move{Src: Vector{4, 1}, Dst: Vector{4, 3}, Kind: DoublePawnPush}, zobrist)
		return b.ZobristHash
	}

	if play() != play() {
		t.Error("identical move sequences from the initial position produced different hashes")
	}
}

// Knights out and back reach the starting position again: same pieces, same
// rights, same side to move, no standing double push. The hash must return
// to the initial position's 0 - the moved bits on the knights don't count.
func TestKnightRoundTripRestoresHash(t *testing.T) {
	zobrist := NewZobristTable()
	b := NewBoard()

	b.ExecuteMove(Move{Src: Vector{6, 7}, Dst: Vector{5, 5}, Kind: Quiet}, zobrist) // Ng1-f3
	b.ExecuteMove(Move{Src: Vector{6, 0}, Dst: Vector{5, 2}, Kind: Quiet}, zobrist) // Ng8-f6
	b.ExecuteMove(Move{Src: Vector{5, 5}, Dst: Vector{6, 7}, Kind: Quiet}, zobrist) // Nf3-g1
	b.ExecuteMove(Move{Src: Vector{5, 2}, Dst: Vector{6, 0}, Kind: Quiet}, zobrist) // Nf6-g8

	if b.ZobristHash != 0 {
		t.Errorf("expected the restored initial position to hash to 0, got %x", b.ZobristHash)
	}
}

func TestHashChangesAfterMove(t *testing.T) {
	zobrist := NewZobristTable()
	b := NewBoard()
	initial := b.ZobristHash

	b.ExecuteMove(Move{Src: Vector{4, 6}, Dst: Vector{4, 4}, Kind: DoublePawnPush}, zobrist)

	if b.ZobristHash == initial {
		t.Error("expected hash to change after a move")
	}
}
