// Package tetris implements the blockfall rule engine: the piece catalog,
// collision detection, board mutation, and the scoring/leveling state
// machine. It contains pure logic with no external dependencies so the
// rules stay deterministic and testable.
package tetris

import (
	"math/rand"

	"github.com/vselivanov/blockfall/internal/core"
)

// Kind identifies one of the seven piece kinds.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// kindCount is the number of piece kinds in the catalog.
const kindCount = 7

// shapes holds the canonical occupancy matrix for each kind.
// These are immutable for the game's lifetime; rotation produces new
// matrices and never writes through these.
var shapes = [kindCount]core.Matrix{
	KindI: {
		{1, 1, 1, 1},
	},
	KindO: {
		{1, 1},
		{1, 1},
	},
	KindT: {
		{1, 1, 1},
		{0, 1, 0},
	},
	KindS: {
		{0, 1, 1},
		{1, 1, 0},
	},
	KindZ: {
		{1, 1, 0},
		{0, 1, 1},
	},
	KindJ: {
		{1, 0, 0},
		{1, 1, 1},
	},
	KindL: {
		{0, 0, 1},
		{1, 1, 1},
	},
}

// colors holds the display color for each kind.
var colors = [kindCount]core.Color{
	KindI: core.ColorCyan,
	KindO: core.ColorBrightYellow,
	KindT: core.ColorMagenta,
	KindS: core.ColorGreen,
	KindZ: core.ColorRed,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
}

// String returns the conventional single-letter label for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Shape returns the kind's canonical occupancy matrix.
// The returned matrix is shared and must not be mutated.
func (k Kind) Shape() core.Matrix {
	return shapes[k]
}

// Color returns the kind's display color.
func (k Kind) Color() core.Color {
	return colors[k]
}

// Kinds returns all seven piece kinds.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

// RandomKind draws one kind uniformly at random from the caller's RNG.
// No bag fairness: identical kinds may appear consecutively.
func RandomKind(rng *rand.Rand) Kind {
	return Kind(rng.Intn(kindCount))
}
