package selector

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"lettra/internal/domain"
	"lettra/internal/wordhash"
)

// Service filters the dictionary into playable candidates and picks the
// target word, either at random or by reproducing a previous round's
// resume hash.
type Service struct {
	src domain.WordSource
	rng domain.Rand
}

// New returns a selector over the given word source and random source.
func New(src domain.WordSource, rng domain.Rand) *Service {
	return &Service{src: src, rng: rng}
}

// Candidates returns every dictionary word of exactly size letters with no
// repeats. Fails with domain.ErrEmptyDictionary when nothing qualifies.
func (s *Service) Candidates(size int) ([]domain.Word, error) {
	raw, err := s.src.Words()
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	var out []domain.Word
	for _, r := range raw {
		if len(r) != size {
			continue
		}
		w, err := domain.ParseWord(r)
		if err != nil {
			continue
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no %d-letter words without repeats", domain.ErrEmptyDictionary, size)
	}
	log.Debug().Int("size", size).Int("candidates", len(out)).Msg("filtered dictionary")
	return out, nil
}

// Pick chooses a target uniformly at random from candidates.
// candidates must be non-empty.
func (s *Service) Pick(candidates []domain.Word) domain.Word {
	return candidates[s.rng.IntN(len(candidates))]
}

// PickByHash finds the candidate whose resume hash starts with prefix
// (case-insensitive). Zero matches fail with domain.ErrHashNotFound; more
// than one fails with domain.ErrAmbiguousHash rather than guessing.
func (s *Service) PickByHash(candidates []domain.Word, prefix string) (domain.Word, error) {
	var found []domain.Word
	for _, w := range candidates {
		if wordhash.HasPrefix(w, prefix) {
			found = append(found, w)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: prefix %q", domain.ErrHashNotFound, prefix)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: prefix %q matches %d words", domain.ErrAmbiguousHash, prefix, len(found))
	}
}
