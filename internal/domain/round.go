package domain

// RoundState tracks where a round is in its lifecycle. Won and Revealed are
// terminal: once entered, the session never leaves them.
type RoundState int

const (
	RoundInProgress RoundState = iota
	RoundWon
	RoundRevealed
)

// String returns a coarse name for the state.
func (s RoundState) String() string {
	switch s {
	case RoundWon:
		return "won"
	case RoundRevealed:
		return "revealed"
	default:
		return "in progress"
	}
}

// Terminal reports whether the round has ended.
func (s RoundState) Terminal() bool { return s != RoundInProgress }

// Guess is one submitted word together with the match count it scored.
// The count is recorded once and never recomputed.
type Guess struct {
	Word     Word
	Matching int
}

// RoundView is the read-only snapshot a renderer consumes. Target is empty
// until the round reaches a terminal state.
type RoundView struct {
	State      RoundState
	Size       int
	Hash       string
	Candidates int
	Target     Word
	Beliefs    BeliefState
	Guesses    []Guess
}
