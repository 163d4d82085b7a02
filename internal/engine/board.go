package engine

import "strings"

// Board is a value-typed, cheaply clonable chess position. It holds no
// pointers to external state (the ZobristTable used to mutate it is passed
// in by reference at call sites, never stored).
//
// Squares is row-major: row 0 is Black's back rank, row 7 is White's. File 0
// is the queenside.
type Board struct {
	Squares             [BoardSizeY][BoardSizeX]Piece
	LeftCastlingRights  [2]bool
	RightCastlingRights [2]bool
	LastMove            *Move
	NextPlayer          Color
	ZobristHash         uint64
}

// NewBoard returns the standard initial chess position. The initial
// position's Zobrist hash is defined as 0 - keys track deltas from there.
func NewBoard() Board {
	backRank := [BoardSizeX]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	var b Board
	for x := 0; x < BoardSizeX; x++ {
		b.Squares[0][x] = NewPiece(Black, backRank[x])
		b.Squares[1][x] = NewPiece(Black, Pawn)
		b.Squares[6][x] = NewPiece(White, Pawn)
		b.Squares[7][x] = NewPiece(White, backRank[x])
	}

	b.LeftCastlingRights = [2]bool{true, true}
	b.RightCastlingRights = [2]bool{true, true}
	b.NextPlayer = White
	return b
}

// PieceAt returns the piece occupying coord, or the zero Piece if empty.
// Precondition: coord.IsOnBoard(). Violating it is a programmer error.
func (b *Board) PieceAt(coord Vector) Piece {
	return b.Squares[coord.Y][coord.X]
}

// setPieceAt writes a piece (or the zero value, to clear) at coord.
// Precondition: coord.IsOnBoard().
func (b *Board) setPieceAt(coord Vector, p Piece) {
	b.Squares[coord.Y][coord.X] = p
}

// Coords returns every coordinate on the board in row-major order.
func (b *Board) Coords() []Vector {
	coords := make([]Vector, 0, BoardSizeX*BoardSizeY)
	for y := 0; y < BoardSizeY; y++ {
		for x := 0; x < BoardSizeX; x++ {
			coords = append(coords, Vector{x, y})
		}
	}
	return coords
}

// CoordsWithPiece returns every coordinate occupied by any piece.
func (b *Board) CoordsWithPiece() []Vector {
	var coords []Vector
	for y := 0; y < BoardSizeY; y++ {
		for x := 0; x < BoardSizeX; x++ {
			if !b.Squares[y][x].IsEmpty() {
				coords = append(coords, Vector{x, y})
			}
		}
	}
	return coords
}

// CoordsWithPieceOfColor returns every coordinate occupied by a piece of the
// given color.
func (b *Board) CoordsWithPieceOfColor(color Color) []Vector {
	var coords []Vector
	for y := 0; y < BoardSizeY; y++ {
		for x := 0; x < BoardSizeX; x++ {
			p := b.Squares[y][x]
			if !p.IsEmpty() && p.Color() == color {
				coords = append(coords, Vector{x, y})
			}
		}
	}
	return coords
}

// String renders the board as eight ranks of Unicode glyphs, one rank per
// line, matching the prototype's plain-text board dump. It is a debugging
// aid only - the presenter has its own lipgloss-based rendering.
func (b *Board) String() string {
	var rows []string
	for y := 0; y < BoardSizeY; y++ {
		var cells []string
		for x := 0; x < BoardSizeX; x++ {
			cells = append(cells, b.Squares[y][x].String())
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}
