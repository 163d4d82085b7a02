package engine

// MoveKind tags what a Move does, beyond its src/dst squares: whether it is
// a capture, a pawn double push, a castle, an en-passant capture, or a
// promotion (plain or capturing).
type MoveKind uint8

const (
	// Quiet is a non-capturing move to an empty square.
	Quiet MoveKind = iota
	// DoublePawnPush is a pawn's two-square advance from its home rank.
	DoublePawnPush
	// KingCastle is kingside castling.
	KingCastle
	// QueenCastle is queenside castling.
	QueenCastle
	// Capture takes a piece standing on the destination square.
	Capture
	// EPCapture captures a pawn that just double-pushed past it.
	EPCapture
	// PromotionKnight pushes a pawn to the back rank, becoming a knight.
	PromotionKnight
	// PromotionBishop pushes a pawn to the back rank, becoming a bishop.
	PromotionBishop
	// PromotionRook pushes a pawn to the back rank, becoming a rook.
	PromotionRook
	// PromotionQueen pushes a pawn to the back rank, becoming a queen.
	PromotionQueen
	// CapturePromotionKnight captures on the back rank, becoming a knight.
	CapturePromotionKnight
	// CapturePromotionBishop captures on the back rank, becoming a bishop.
	CapturePromotionBishop
	// CapturePromotionRook captures on the back rank, becoming a rook.
	CapturePromotionRook
	// CapturePromotionQueen captures on the back rank, becoming a queen.
	CapturePromotionQueen
)

// isCaptureWithTarget reports whether this move kind removes a piece
// standing at the destination square. EPCapture is excluded - its victim is
// not on the destination square.
func (k MoveKind) isCaptureWithTarget() bool {
	switch k {
	case Capture, CapturePromotionKnight, CapturePromotionBishop, CapturePromotionRook, CapturePromotionQueen:
		return true
	default:
		return false
	}
}

// promotionType returns the piece type a promotion move turns the pawn
// into, and ok=false if k is not a promotion.
func (k MoveKind) promotionType() (PieceType, bool) {
	switch k {
	case PromotionKnight, CapturePromotionKnight:
		return Knight, true
	case PromotionBishop, CapturePromotionBishop:
		return Bishop, true
	case PromotionRook, CapturePromotionRook:
		return Rook, true
	case PromotionQueen, CapturePromotionQueen:
		return Queen, true
	default:
		return 0, false
	}
}

// Move is a single ply: a source square, a destination square, and a tag
// describing what kind of move it is.
type Move struct {
	Src, Dst Vector
	Kind     MoveKind
}

// IsCaptureWithTarget reports whether this move removes a piece standing at
// Dst (true for Capture and the four CapturePromotion* kinds).
func (m Move) IsCaptureWithTarget() bool {
	return m.Kind.isCaptureWithTarget()
}

// IsPromotion reports whether this move promotes a pawn (plain or
// capturing).
func (m Move) IsPromotion() bool {
	_, ok := m.Kind.promotionType()
	return ok
}

// IsCaptureKing reports whether this move, if played, would capture the
// opposing king. The search treats this as a terminal signal in place of
// full legality checking - see Board.GeneratePieceMoves.
func (m Move) IsCaptureKing(board *Board) bool {
	if !m.IsCaptureWithTarget() {
		return false
	}
	return board.PieceAt(m.Dst).Type() == King
}
