package domain

// WordSource supplies raw candidate words. Implementations are expected to
// discard entries with non-letter characters and normalize case before
// returning; length and repeated-letter filtering happen downstream.
type WordSource interface {
	Words() ([]string, error)
}

// Rand picks uniform ints for target selection. math/rand/v2 satisfies it in
// production; tests supply a fixed implementation.
type Rand interface {
	IntN(n int) int
}
