// Package engine implements the chess core: board representation, pseudo-legal
// move generation, Zobrist hashing, and the move executor. It deliberately
// stops short of legality checking - see Board.GeneratePieceMoves.
package engine

// BoardSizeX is the number of files on the board.
const BoardSizeX = 8

// BoardSizeY is the number of ranks on the board.
const BoardSizeY = 8

// Vector is a 2D integer coordinate. X is the file (0=queenside), Y is the
// rank (0=Black's back rank, 7=White's back rank).
//
// Intermediate offsets are allowed to go negative or off the board; callers
// must check IsOnBoard before indexing a Board with a Vector.
type Vector struct {
	X, Y int
}

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied component-wise by a scalar.
func (v Vector) Scale(factor int) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// IsOnBoard reports whether v addresses a real square.
func (v Vector) IsOnBoard() bool {
	return v.X >= 0 && v.X < BoardSizeX && v.Y >= 0 && v.Y < BoardSizeY
}
