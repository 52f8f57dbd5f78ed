package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings recognized by the game. Values come
// from LETTRA_* environment variables (a .env file is honored by main);
// CLI flags override them afterwards.
type Config struct {
	// WordLength is the target word size N.
	WordLength int `env:"LETTRA_WORD_LENGTH" envDefault:"5"`
	// DictFile is the dictionary path, one word per line.
	// Defaults to ~/.config/lettra/words.txt.
	DictFile string `env:"LETTRA_DICT_FILE"`
	// ResumeHash, when set, reproduces the round whose resume hash
	// starts with this prefix instead of picking at random.
	ResumeHash string `env:"LETTRA_RESUME_HASH"`
	// Difficult disables the automatic deduction assist.
	Difficult bool `env:"LETTRA_DIFFICULT"`
	// LogLevel is a zerolog level name.
	LogLevel string `env:"LETTRA_LOG_LEVEL" envDefault:"info"`
}

// FromEnv loads configuration from environment variables and fills in the
// default dictionary location.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DictFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DictFile = filepath.Join(home, ".config", "lettra", "words.txt")
	}
	return cfg, nil
}
