package session

import (
	"lettra/internal/domain"
	"lettra/internal/score"
	"lettra/internal/services/tracker"
	"lettra/internal/wordhash"
)

// Session drives a single round. It owns the target word and routes every
// guess and letter mark through the tracker while the round is in progress.
//
// All operations fail with domain.ErrRoundOver once the round reaches a
// terminal state; a session never leaves Won or Revealed.
type Session struct {
	target     domain.Word
	size       int
	hash       string
	candidates int
	state      domain.RoundState
	tracker    *tracker.Service
}

// New starts a round for the given target. candidates is the size of the
// pool the target was drawn from (display only). difficult disables the
// automatic deduction pass.
func New(target domain.Word, candidates int, difficult bool) *Session {
	return &Session{
		target:     target,
		size:       target.Size(),
		hash:       wordhash.Short(target),
		candidates: candidates,
		state:      domain.RoundInProgress,
		tracker:    tracker.New(target.Size(), !difficult),
	}
}

// State returns the current round state.
func (s *Session) State() domain.RoundState { return s.state }

// SubmitGuess validates raw, scores it against the target and records it.
// An exact match transitions the round to Won. Invalid guesses fail with
// domain.ErrInvalidGuess and leave all round state untouched.
func (s *Session) SubmitGuess(raw string) (domain.Guess, error) {
	if s.state.Terminal() {
		return domain.Guess{}, domain.ErrRoundOver
	}
	word, err := domain.ParseGuess(raw, s.size)
	if err != nil {
		return domain.Guess{}, err
	}
	g := domain.Guess{Word: word, Matching: score.Matching(word, s.target)}
	s.tracker.Record(g)
	if word == s.target {
		s.state = domain.RoundWon
		return g, nil
	}
	s.tracker.Deduce()
	return g, nil
}

// Mark applies a manual assertion for the given letters.
func (s *Session) Mark(letters string, status domain.LetterStatus) error {
	if s.state.Terminal() {
		return domain.ErrRoundOver
	}
	s.tracker.Assert(letters, status)
	return nil
}

// Reveal gives the round up, exposing the target.
func (s *Session) Reveal() (domain.Word, error) {
	if s.state.Terminal() {
		return "", domain.ErrRoundOver
	}
	s.state = domain.RoundRevealed
	return s.target, nil
}

// Snapshot returns the read-only view a renderer consumes. The target is
// included only once the round has ended.
func (s *Session) Snapshot() domain.RoundView {
	v := domain.RoundView{
		State:      s.state,
		Size:       s.size,
		Hash:       s.hash,
		Candidates: s.candidates,
		Beliefs:    s.tracker.Beliefs(),
		Guesses:    s.tracker.History(),
	}
	if s.state.Terminal() {
		v.Target = s.target
	}
	return v
}
