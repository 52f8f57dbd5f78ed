package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lettra/internal/domain"
)

func wordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Show dictionary stats for the configured word length",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := appCtx.Words.Words()
			if err != nil {
				return err
			}
			candidates, err := appCtx.Selector.Candidates(appCtx.Config.WordLength)
			if err != nil && !errors.Is(err, domain.ErrEmptyDictionary) {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d words in dictionary\n", len(all))
			fmt.Fprintf(cmd.OutOrStdout(), "%d playable %d-letter words\n", len(candidates), appCtx.Config.WordLength)
			return nil
		},
	}
}
