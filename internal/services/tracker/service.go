package tracker

import (
	"slices"

	"github.com/rs/zerolog/log"

	"lettra/internal/domain"
)

// Service maintains the per-letter belief state and the guess history it is
// deduced from. Manual assertions always apply; the automatic deduction pass
// only runs when auto is enabled (difficult mode disables it).
type Service struct {
	size    int
	auto    bool
	beliefs domain.BeliefState
	history []domain.Guess
}

// New returns a tracker for a target of the given size.
func New(size int, auto bool) *Service {
	return &Service{size: size, auto: auto}
}

// Assert unconditionally overwrites the status of each named letter, then
// re-deduces. The player is trusted: an assertion may contradict the
// accumulated evidence and is applied anyway.
func (s *Service) Assert(letters string, status domain.LetterStatus) {
	for i := 0; i < len(letters); i++ {
		s.beliefs.Set(letters[i], status)
	}
	s.Deduce()
}

// Record appends a scored guess to the history without deducing. The caller
// decides whether a deduction pass follows (not after a winning guess).
func (s *Service) Record(g domain.Guess) {
	s.history = append(s.history, g)
}

// Beliefs returns a copy of the current belief state.
func (s *Service) Beliefs() domain.BeliefState { return s.beliefs }

// History returns a copy of the ordered guess record.
func (s *Service) History() []domain.Guess { return slices.Clone(s.history) }

// Deduce re-evaluates every rule against the full guess history until a pass
// changes nothing. Earlier guesses can be resolved by information from later
// ones, so each pass rescans the whole record. Bounded at 26 passes per
// recorded guess; every productive pass flips at least one letter, so the
// bound can never cut a fixed point short.
func (s *Service) Deduce() {
	if !s.auto {
		return
	}
	maxPasses := 26 * len(s.history)
	if maxPasses == 0 {
		maxPasses = 1
	}
	passes := 0
	for ; passes < maxPasses; passes++ {
		changed := false
		for _, g := range s.history {
			word := string(g.Word)

			// No matching letters: all of them are incorrect.
			if g.Matching == 0 {
				for i := 0; i < len(word); i++ {
					changed = s.beliefs.Set(word[i], domain.StatusIncorrect) || changed
				}
			}

			// Every letter not ruled out must match: mark them correct.
			notIncorrect := s.filter(word, func(st domain.LetterStatus) bool {
				return st != domain.StatusIncorrect
			})
			if len(notIncorrect) == g.Matching {
				for _, l := range notIncorrect {
					changed = s.beliefs.Set(l, domain.StatusCorrect) || changed
				}
			}

			// All matches accounted for: the rest of the guess is incorrect.
			correct := s.filter(word, func(st domain.LetterStatus) bool {
				return st == domain.StatusCorrect
			})
			if len(correct) == g.Matching {
				for i := 0; i < len(word); i++ {
					if s.beliefs.Status(word[i]) != domain.StatusCorrect {
						changed = s.beliefs.Set(word[i], domain.StatusIncorrect) || changed
					}
				}
			}
		}

		// Full target accounted for: every unknown letter is incorrect.
		if s.beliefs.Count(domain.StatusCorrect) == s.size {
			for i := 0; i < 26; i++ {
				if s.beliefs.Status(byte('A'+i)) == domain.StatusUnknown {
					changed = s.beliefs.Set(byte('A'+i), domain.StatusIncorrect) || changed
				}
			}
		}

		if !changed {
			break
		}
	}
	log.Debug().Int("passes", passes).Int("guesses", len(s.history)).Msg("deduction pass complete")
}

// filter returns the letters of word whose current status satisfies keep.
func (s *Service) filter(word string, keep func(domain.LetterStatus) bool) []byte {
	var out []byte
	for i := 0; i < len(word); i++ {
		if keep(s.beliefs.Status(word[i])) {
			out = append(out, word[i])
		}
	}
	return out
}
