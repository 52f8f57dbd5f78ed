package app

import (
	"math/rand/v2"

	"github.com/rs/zerolog/log"

	"lettra/internal/domain"
	"lettra/internal/services/selector"
	"lettra/internal/services/session"
	"lettra/internal/wordlist"
)

// App bundles the configuration and services the CLI commands share.
type App struct {
	Config   Config
	Words    domain.WordSource
	Selector *selector.Service
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	src := wordlist.NewFileSource(cfg.DictFile)
	return &App{
		Config:   cfg,
		Words:    src,
		Selector: selector.New(src, sysRand{}),
	}
}

// StartRound filters the dictionary, picks the target (resuming from a hash
// prefix when configured) and returns a fresh session. Any failure here
// aborts before a session exists.
func (a *App) StartRound() (*session.Session, error) {
	candidates, err := a.Selector.Candidates(a.Config.WordLength)
	if err != nil {
		return nil, err
	}
	var target domain.Word
	if a.Config.ResumeHash != "" {
		target, err = a.Selector.PickByHash(candidates, a.Config.ResumeHash)
		if err != nil {
			return nil, err
		}
	} else {
		target = a.Selector.Pick(candidates)
	}
	log.Info().
		Int("candidates", len(candidates)).
		Int("size", a.Config.WordLength).
		Bool("difficult", a.Config.Difficult).
		Msg("round started")
	return session.New(target, len(candidates), a.Config.Difficult), nil
}

// sysRand adapts the process-level random source to domain.Rand.
type sysRand struct{}

func (sysRand) IntN(n int) int { return rand.IntN(n) }

var _ domain.Rand = sysRand{}
