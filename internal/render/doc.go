// Package render draws the terminal view of a round: the belief-colored
// alphabet header, the guess grid with match counts, and the game messages.
// It consumes domain.RoundView snapshots and never mutates round state.
package render
