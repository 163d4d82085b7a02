package bot

import (
	"testing"

	"github.com/havenwood/vectorchess/internal/engine"
)

func TestEvaluateInitialPositionIsBalanced(t *testing.T) {
	b := engine.NewBoard()
	if score := evaluatePosition(&b); score != 0 {
		t.Errorf("expected a balanced initial position to score 0, got %v", score)
	}
}

func TestEvaluateMaterialSymmetry(t *testing.T) {
	zobrist := engine.NewZobristTable()

	white, err := engine.ParseFEN("8/8/8/8/8/8/4P3/4K3 w - -", zobrist)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	black, err := engine.ParseFEN("4k3/4p3/8/8/8/8/8/8 b - -", zobrist)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	whiteScore := evaluatePosition(&white)
	blackScore := evaluatePosition(&black)

	if whiteScore != -blackScore {
		t.Errorf("expected mirrored material to be additive inverses, got %v and %v", whiteScore, blackScore)
	}
}

func TestEvaluatePositionForCurrentPlayerNegatesForBlack(t *testing.T) {
	zobrist := engine.NewZobristTable()
	b, err := engine.ParseFEN("8/8/8/8/8/8/4P3/4K3 b - -", zobrist)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	white := evaluatePosition(&b)
	current := evaluatePositionForCurrentPlayer(&b)

	if current != -white {
		t.Errorf("expected Black-to-move score negated, got %v for %v", current, white)
	}
}
