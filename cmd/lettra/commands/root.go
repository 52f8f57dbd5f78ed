package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"lettra/internal/app"
)

var (
	wordLength int
	dictFile   string
	loadHash   string
	difficult  bool
	appCtx     *app.App
)

const rules = `rules:
- the computer chooses an N-letter word which contains no repeated characters
- each round, you guess a word that follows those same rules
- the computer tells you how many letters of your guess are also in the correct word (order is ignored)
- guess the correct word to win`

func Execute() error {
	root := &cobra.Command{
		Use:          "lettra",
		Short:        "Play a word guessing game in the terminal",
		Long:         "Play a word guessing game!\n\n" + rules,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("word-length") {
				cfg.WordLength = wordLength
			}
			if cmd.Flags().Changed("dict-file") {
				cfg.DictFile = dictFile
			}
			if cmd.Flags().Changed("load-hash") {
				cfg.ResumeHash = loadHash
			}
			if cmd.Flags().Changed("difficult") {
				cfg.Difficult = difficult
			}
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			appCtx = app.New(cfg)
			return nil
		},
	}

	root.PersistentFlags().IntVarP(&wordLength, "word-length", "n", 5, "length of the word you need to guess")
	root.PersistentFlags().StringVarP(&dictFile, "dict-file", "f", "", "path of a dictionary file containing one word per line (default ~/.config/lettra/words.txt)")
	root.PersistentFlags().StringVarP(&loadHash, "load-hash", "l", "", "load the word of a previous session by providing its word hash (does not restore guessed words)")
	root.PersistentFlags().BoolVarP(&difficult, "difficult", "d", false, "no automatic assist in evaluating the clues")

	root.AddCommand(playCmd(), hashCmd(), wordsCmd())
	return root.Execute()
}
