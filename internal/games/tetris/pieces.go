package tetris

import "github.com/vovakirdan/neon-arcade/internal/core"

// Board size in cells.
const (
	Cols = 10
	Rows = 20
)

// PieceType is one of the seven tetrominoes. PieceNone marks an empty cell.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// AllPieces lists the seven tetrominoes in bag order before shuffling.
var AllPieces = [...]PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

func (p PieceType) String() string {
	return [...]string{"-", "I", "O", "T", "S", "Z", "J", "L"}[p]
}

// Color returns the piece's display color.
func (p PieceType) Color() core.Color {
	switch p {
	case PieceI:
		return core.ColorBrightCyan
	case PieceO:
		return core.ColorBrightYellow
	case PieceT:
		return core.ColorNeonPink
	case PieceS:
		return core.ColorNeonGreen
	case PieceZ:
		return core.ColorBrightRed
	case PieceJ:
		return core.ColorBrightBlue
	case PieceL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// cell is a (row, col) offset from a piece origin.
type cell struct {
	R, C int
}

// shapes holds the four SRS rotation states of every piece, indexed by
// PieceType-1.
var shapes = [7][4][4]cell{
	// I
	{
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	// O
	{
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
	},
	// T
	{
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
	},
	// S
	{
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	// Z
	{
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
	// J
	{
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	},
	// L
	{
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
}

// Cells returns the occupied offsets of a piece in a rotation state.
func (p PieceType) Cells(rotation int) [4]cell {
	return shapes[p-1][rotation&3]
}

// kick is an SRS offset: +X right, +Y up.
type kick struct {
	X, Y int
}

type rotationKey struct {
	from, to int
}

var jlstzKicks = map[rotationKey][]kick{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var iKicks = map[rotationKey][]kick{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

// wallKicks returns the ordered offsets to try for a rotation.
func wallKicks(p PieceType, from, to int) []kick {
	key := rotationKey{from, to}
	if p == PieceI {
		return iKicks[key]
	}
	return jlstzKicks[key]
}

// Piece is the falling tetromino.
type Piece struct {
	Type     PieceType
	Rotation int
	X, Y     int // origin column and row; Y may be negative above the board
}

// spawnX is the origin column for new pieces.
const spawnX = (Cols - 4) / 2

func spawnPiece(t PieceType) Piece {
	return Piece{Type: t, X: spawnX, Y: -1}
}
