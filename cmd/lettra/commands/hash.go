package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lettra/internal/domain"
	"lettra/internal/wordhash"
)

func hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <word>",
		Short: "Print the resume hash of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := domain.ParseWord(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), wordhash.Short(word))
			return nil
		},
	}
}
