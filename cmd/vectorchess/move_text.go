package main

import (
	"fmt"

	"github.com/havenwood/vectorchess/internal/engine"
)

// promotionLetters maps a trailing promotion letter to the matching
// Promotion*/CapturePromotion* pair, tried in that order against the moves
// generated for src.
var promotionLetters = map[byte][2]engine.MoveKind{
	'n': {engine.PromotionKnight, engine.CapturePromotionKnight},
	'b': {engine.PromotionBishop, engine.CapturePromotionBishop},
	'r': {engine.PromotionRook, engine.CapturePromotionRook},
	'q': {engine.PromotionQueen, engine.CapturePromotionQueen},
}

// parseSquare parses a two-character algebraic square like "e2".
func parseSquare(s string) (engine.Vector, error) {
	if len(s) != 2 {
		return engine.Vector{}, fmt.Errorf("invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '0')
	if file < 0 || file >= engine.BoardSizeX || rank < 1 || rank > engine.BoardSizeY {
		return engine.Vector{}, fmt.Errorf("invalid square %q", s)
	}
	return engine.Vector{X: file, Y: engine.BoardSizeY - rank}, nil
}

// parseMove parses a 4 or 5 character move string ("e2e4", "e7e8q") into one
// of the pseudo-legal moves GeneratePieceMoves(src) offers, matching on
// destination (and, for 5-character input, promotion piece).
func (m model) parseMove(text string) (engine.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return engine.Move{}, fmt.Errorf("expected a move like \"e2e4\", got %q", text)
	}

	src, err := parseSquare(text[0:2])
	if err != nil {
		return engine.Move{}, err
	}
	dst, err := parseSquare(text[2:4])
	if err != nil {
		return engine.Move{}, err
	}

	if m.board.PieceAt(src).IsEmpty() {
		return engine.Move{}, fmt.Errorf("no piece on %s", text[0:2])
	}

	candidates := m.board.GeneratePieceMoves(src)

	var promo byte
	if len(text) == 5 {
		promo = text[4]
	}

	for _, move := range candidates {
		if move.Dst != dst {
			continue
		}
		if promo == 0 {
			if !move.IsPromotion() {
				return move, nil
			}
			continue
		}
		kinds, ok := promotionLetters[promo]
		if !ok {
			return engine.Move{}, fmt.Errorf("unknown promotion letter %q", promo)
		}
		if move.Kind == kinds[0] || move.Kind == kinds[1] {
			return move, nil
		}
	}

	return engine.Move{}, fmt.Errorf("no pseudo-legal move %s -> %s", text[0:2], text[2:4])
}

// algebraicMove renders a move back into the "e2e4"-style text parseMove
// accepts, for status display.
func algebraicMove(m engine.Move) string {
	return squareText(m.Src) + squareText(m.Dst)
}

func squareText(v engine.Vector) string {
	file := byte('a' + v.X)
	rank := byte('0' + (engine.BoardSizeY - v.Y))
	return string([]byte{file, rank})
}
