package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// pieceLetters maps a piece type to its White (uppercase) FEN letter; Black
// uses the lowercase form of the same letter.
var pieceLetters = map[PieceType]byte{
	Pawn:   'P',
	Knight: 'N',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

var letterPieces = map[byte]PieceType{
	'P': Pawn, 'N': Knight, 'B': Bishop, 'R': Rook, 'Q': Queen, 'K': King,
}

// FEN renders the board as a reduced, FEN-like position string:
// "<placement> <active> <castling> <ep>". The core Board carries no
// half-move clock or full-move counter, so - unlike standard FEN - this
// format has four fields, not six. Piece placement is rank 8 down to rank
// 1, same as standard FEN; rank 8 is row 0 in Board.Squares.
func (b *Board) FEN() string {
	var ranks []string
	for y := 0; y < BoardSizeY; y++ {
		var sb strings.Builder
		empty := 0
		for x := 0; x < BoardSizeX; x++ {
			p := b.Squares[y][x]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := pieceLetters[p.Type()]
			if p.Color() == Black {
				letter = letter + ('a' - 'A')
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		ranks = append(ranks, sb.String())
	}
	placement := strings.Join(ranks, "/")

	active := "w"
	if b.NextPlayer == Black {
		active = "b"
	}

	castling := b.castlingField()
	ep := b.enPassantField()

	return fmt.Sprintf("%s %s %s %s", placement, active, castling, ep)
}

func (b *Board) castlingField() string {
	var sb strings.Builder
	if b.RightCastlingRights[White.Index()] {
		sb.WriteByte('K')
	}
	if b.LeftCastlingRights[White.Index()] {
		sb.WriteByte('Q')
	}
	if b.RightCastlingRights[Black.Index()] {
		sb.WriteByte('k')
	}
	if b.LeftCastlingRights[Black.Index()] {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// enPassantField returns the skipped-over square of the last double push in
// algebraic notation, or "-" if the last move wasn't one.
func (b *Board) enPassantField() string {
	if b.LastMove == nil || b.LastMove.Kind != DoublePawnPush {
		return "-"
	}
	skippedY := (b.LastMove.Src.Y + b.LastMove.Dst.Y) / 2
	return algebraic(Vector{b.LastMove.Src.X, skippedY})
}

func algebraic(v Vector) string {
	file := byte('a' + v.X)
	rank := byte('0' + (8 - v.Y))
	return string([]byte{file, rank})
}

// ParseFEN parses the reduced FEN-like format produced by Board.FEN into a
// Board, recomputing its Zobrist hash from scratch against zobrist (the
// incremental hash has no meaning for a position reached by parsing rather
// than by play).
func ParseFEN(fen string, zobrist *ZobristTable) (Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 4 {
		return Board{}, fmt.Errorf("engine: FEN must have 4 fields, got %d", len(parts))
	}

	var b Board
	if err := b.parsePlacement(parts[0]); err != nil {
		return Board{}, err
	}

	switch parts[1] {
	case "w":
		b.NextPlayer = White
	case "b":
		b.NextPlayer = Black
	default:
		return Board{}, fmt.Errorf("engine: invalid active color %q", parts[1])
	}

	if err := b.parseCastling(parts[2]); err != nil {
		return Board{}, err
	}

	if err := b.parseEnPassant(parts[3]); err != nil {
		return Board{}, err
	}

	b.ZobristHash = computeZobristHash(&b, zobrist)
	return b, nil
}

func (b *Board) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardSizeY {
		return fmt.Errorf("engine: FEN placement must have %d ranks, got %d", BoardSizeY, len(ranks))
	}
	for y, rank := range ranks {
		x := 0
		for _, ch := range []byte(rank) {
			if ch >= '1' && ch <= '8' {
				x += int(ch - '0')
				continue
			}
			if x >= BoardSizeX {
				return fmt.Errorf("engine: FEN rank %d overflows the board", y)
			}
			upper := ch
			color := White
			if ch >= 'a' && ch <= 'z' {
				color = Black
				upper = ch - ('a' - 'A')
			}
			pieceType, ok := letterPieces[upper]
			if !ok {
				return fmt.Errorf("engine: invalid FEN piece character %q", ch)
			}
			b.Squares[y][x] = NewPiece(color, pieceType)
			x++
		}
		if x != BoardSizeX {
			return fmt.Errorf("engine: FEN rank %d has %d squares, expected %d", y, x, BoardSizeX)
		}
	}
	return nil
}

func (b *Board) parseCastling(field string) error {
	if field == "-" {
		return nil
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			b.RightCastlingRights[White.Index()] = true
		case 'Q':
			b.LeftCastlingRights[White.Index()] = true
		case 'k':
			b.RightCastlingRights[Black.Index()] = true
		case 'q':
			b.LeftCastlingRights[Black.Index()] = true
		default:
			return fmt.Errorf("engine: invalid FEN castling character %q", ch)
		}
	}
	return nil
}

func (b *Board) parseEnPassant(field string) error {
	if field == "-" {
		return nil
	}
	if len(field) != 2 {
		return fmt.Errorf("engine: invalid FEN en-passant square %q", field)
	}
	x := int(field[0] - 'a')
	skippedY := 8 - int(field[1]-'0')
	if x < 0 || x >= BoardSizeX || skippedY < 0 || skippedY >= BoardSizeY {
		return fmt.Errorf("engine: invalid FEN en-passant square %q", field)
	}

	var srcY, dstY int
	switch skippedY {
	case 5:
		srcY, dstY = 6, 4
	case 2:
		srcY, dstY = 1, 3
	default:
		return fmt.Errorf("engine: FEN en-passant square %q is not a double-push skip square", field)
	}
	b.LastMove = &Move{Src: Vector{x, srcY}, Dst: Vector{x, dstY}, Kind: DoublePawnPush}
	return nil
}

// computeZobristHash recomputes b's hash from scratch, for positions (like a
// freshly parsed FEN) that weren't reached by incremental ExecuteMove calls.
// The incremental convention defines the initial position's hash as 0, with
// keys tracking deltas from there - so the from-scratch hash is the fold of
// b's features XORed against the fold of the initial position's, keeping
// parse-reached and play-reached boards of the same position hash-equal.
func computeZobristHash(b *Board, zobrist *ZobristTable) uint64 {
	initial := NewBoard()
	return featureFold(b, zobrist) ^ featureFold(&initial, zobrist)
}

// featureFold XORs the keys of every hashable feature present on b: pieces,
// side to move, castling rights still held, and a standing en-passant file.
func featureFold(b *Board, zobrist *ZobristTable) uint64 {
	var hash uint64
	for _, coord := range b.CoordsWithPiece() {
		p := b.PieceAt(coord)
		hash ^= zobrist.PieceKey(coord, p.Color(), p.Type())
	}
	if b.NextPlayer == Black {
		hash ^= zobrist.BlackToMoveKey()
	}
	for _, color := range []Color{White, Black} {
		if b.LeftCastlingRights[color.Index()] {
			hash ^= zobrist.LeftCastleKey(color)
		}
		if b.RightCastlingRights[color.Index()] {
			hash ^= zobrist.RightCastleKey(color)
		}
	}
	if b.LastMove != nil && b.LastMove.Kind == DoublePawnPush {
		hash ^= zobrist.EnPassantFileKey(b.LastMove.Src.X)
	}
	return hash
}
