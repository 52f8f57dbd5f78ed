package commands

import (
	"bufio"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"lettra/internal/domain"
	"lettra/internal/render"
)

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive round",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := appCtx.StartRound()
			if err != nil {
				return err
			}
			r := render.New(cmd.OutOrStdout())
			r.Banner(sess.Snapshot(), appCtx.Config.ResumeHash != "")

			sc := bufio.NewScanner(cmd.InOrStdin())
			for {
				r.Header(sess.Snapshot())
				r.Prompt()
				if !sc.Scan() {
					break
				}
				raw := strings.TrimSpace(sc.Text())
				switch {
				case raw == "":
					continue
				case strings.EqualFold(raw, "_reveal"):
					word, err := sess.Reveal()
					if err != nil {
						return err
					}
					r.Revealed(word)
					return nil
				case raw[0] == '+' || raw[0] == '-' || raw[0] == '~':
					if err := sess.Mark(raw[1:], markStatus(raw[0])); err != nil {
						return err
					}
				default:
					g, err := sess.SubmitGuess(raw)
					if errors.Is(err, domain.ErrInvalidGuess) {
						r.Bad(err.Error())
						continue
					}
					if err != nil {
						return err
					}
					if sess.State() == domain.RoundWon {
						r.Won(sess.Snapshot())
						return nil
					}
					r.Result(g, sess.Snapshot())
				}
			}
			return sc.Err()
		},
	}
}

// markStatus maps a mark-command prefix to the letter status it applies.
func markStatus(prefix byte) domain.LetterStatus {
	switch prefix {
	case '+':
		return domain.StatusCorrect
	case '-':
		return domain.StatusIncorrect
	default:
		return domain.StatusUnknown
	}
}
