package engine

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// zobristSeed is the fixed 32-byte seed every ZobristTable is built from, so
// that identical seeds yield identical hashes across processes and ports.
var zobristSeed = [32]byte{
	0x38, 0xfc, 0xdd, 0xc3, 0xde, 0x1f, 0x00, 0x2a,
	0xe2, 0x48, 0x18, 0x69, 0xa0, 0x54, 0x25, 0x56,
	0xae, 0x8b, 0x51, 0x45, 0x91, 0xec, 0x8b, 0x6f,
	0x99, 0xe7, 0x6a, 0x71, 0x20, 0xaa, 0x72, 0xc4,
}

// ZobristTable holds a fixed set of random 64-bit keys, one per hashable
// board feature, drawn deterministically from zobristSeed. It is immutable
// after construction and safe to share by reference across goroutines.
type ZobristTable struct {
	// pieceKeys is indexed [y][x][pieceType.Index()][color.Index()].
	pieceKeys      [BoardSizeY][BoardSizeX][6][2]uint64
	blackToMoveKey uint64
	leftCastle     [2]uint64
	rightCastle    [2]uint64
	enPassantFile  [BoardSizeX]uint64
}

// zobristStream produces successive 64-bit little-endian words from a
// ChaCha20 keystream, seeded once and never reseeded - the reference
// generator is a stream-cipher CSPRNG, which ChaCha20 run over an all-zero
// plaintext emulates directly.
type zobristStream struct {
	cipher *chacha20.Cipher
}

func newZobristStream(seed [32]byte) *zobristStream {
	// ChaCha20 requires a nonce; the zero nonce is fine here since the key
	// (the seed) is never reused for any other purpose.
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		// Only possible if seed/nonce lengths are wrong, which they never are.
		panic(err)
	}
	return &zobristStream{cipher: cipher}
}

func (z *zobristStream) next() uint64 {
	var buf [8]byte
	z.cipher.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// NewZobristTable builds the single canonical ZobristTable, drawing all 781
// keys in the fixed order required for cross-implementation determinism:
// piece_keys row-major by y, then x, then piece-type index, then color
// index; then black-to-move; then left_castle[White], left_castle[Black];
// right_castle[White], right_castle[Black]; en_passant_file[0..8].
func NewZobristTable() *ZobristTable {
	stream := newZobristStream(zobristSeed)
	var t ZobristTable

	for y := 0; y < BoardSizeY; y++ {
		for x := 0; x < BoardSizeX; x++ {
			for pt := 0; pt < 6; pt++ {
				for c := 0; c < 2; c++ {
					t.pieceKeys[y][x][pt][c] = stream.next()
				}
			}
		}
	}

	t.blackToMoveKey = stream.next()

	t.leftCastle[White.Index()] = stream.next()
	t.leftCastle[Black.Index()] = stream.next()
	t.rightCastle[White.Index()] = stream.next()
	t.rightCastle[Black.Index()] = stream.next()

	for x := 0; x < BoardSizeX; x++ {
		t.enPassantFile[x] = stream.next()
	}

	return &t
}

// PieceKey returns the key for a piece of the given type and color standing
// at coord. The "moved" bit is never part of the hash.
func (t *ZobristTable) PieceKey(coord Vector, color Color, pieceType PieceType) uint64 {
	return t.pieceKeys[coord.Y][coord.X][pieceType.Index()][color.Index()]
}

// BlackToMoveKey returns the single key toggled whenever the side to move
// changes.
func (t *ZobristTable) BlackToMoveKey() uint64 {
	return t.blackToMoveKey
}

// LeftCastleKey returns the queenside castling-rights key for color.
func (t *ZobristTable) LeftCastleKey(color Color) uint64 {
	return t.leftCastle[color.Index()]
}

// RightCastleKey returns the kingside castling-rights key for color.
func (t *ZobristTable) RightCastleKey(color Color) uint64 {
	return t.rightCastle[color.Index()]
}

// EnPassantFileKey returns the key toggled while a double pawn push on the
// given file stands en-passant-capturable.
func (t *ZobristTable) EnPassantFileKey(file int) uint64 {
	return t.enPassantFile[file]
}
