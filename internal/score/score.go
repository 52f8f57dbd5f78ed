package score

import (
	"math/bits"

	"lettra/internal/domain"
)

// Matching returns the number of distinct letters shared by guess and
// target, independent of position. It is symmetric and bounded by the
// shorter word's length.
func Matching(guess, target domain.Word) int {
	return bits.OnesCount32(guess.Mask() & target.Mask())
}
