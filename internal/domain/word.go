package domain

import (
	"fmt"
	"math/bits"
	"strings"
)

// Alphabet lists the playable letters in display order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Word is an ordered sequence of distinct uppercase A-Z letters. Both the
// target and every accepted guess have this shape.
type Word string

// String returns the word as displayed to the player.
func (w Word) String() string { return string(w) }

// Size returns the number of letters in the word.
func (w Word) Size() int { return len(w) }

// Mask returns the word's letter set as a 26-bit mask (bit 0 = A).
func (w Word) Mask() uint32 {
	var m uint32
	for i := 0; i < len(w); i++ {
		m |= 1 << uint(w[i]-'A')
	}
	return m
}

// ParseWord normalizes raw to uppercase and validates that it contains only
// A-Z letters with no repeats. Length is not constrained.
func ParseWord(raw string) (Word, error) {
	up := strings.ToUpper(strings.TrimSpace(raw))
	var mask uint32
	for i := 0; i < len(up); i++ {
		if up[i] < 'A' || up[i] > 'Z' {
			return "", fmt.Errorf("%w: may only contain A-Z/a-z letters", ErrInvalidGuess)
		}
		mask |= 1 << uint(up[i]-'A')
	}
	if bits.OnesCount32(mask) != len(up) {
		return "", fmt.Errorf("%w: cannot have repeating letters", ErrInvalidGuess)
	}
	return Word(up), nil
}

// ParseGuess validates raw as a guess against a target of the given size.
// Checks run in order: letters only, exact length, no repeats.
func ParseGuess(raw string, size int) (Word, error) {
	up := strings.ToUpper(strings.TrimSpace(raw))
	for i := 0; i < len(up); i++ {
		if up[i] < 'A' || up[i] > 'Z' {
			return "", fmt.Errorf("%w: may only contain A-Z/a-z letters", ErrInvalidGuess)
		}
	}
	if len(up) != size {
		return "", fmt.Errorf("%w: must be %d letters long", ErrInvalidGuess, size)
	}
	return ParseWord(up)
}
