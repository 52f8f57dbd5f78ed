package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"lettra/internal/domain"
)

const gridDelimiter = "   "

// Renderer writes the player-facing view of a round. All output is colored
// by role: prompts magenta, information cyan, good news green, partial news
// yellow, bad news red.
type Renderer struct {
	out    io.Writer
	prompt *color.Color
	info   *color.Color
	good   *color.Color
	meh    *color.Color
	bad    *color.Color
}

// New returns a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		prompt: color.New(color.FgHiMagenta),
		info:   color.New(color.FgHiCyan),
		good:   color.New(color.FgHiGreen),
		meh:    color.New(color.FgHiYellow),
		bad:    color.New(color.FgHiRed),
	}
}

// Info prints an informational line.
func (r *Renderer) Info(msg string) { fmt.Fprintln(r.out, r.info.Sprint(msg)) }

// Good prints a positive line.
func (r *Renderer) Good(msg string) { fmt.Fprintln(r.out, r.good.Sprint(msg)) }

// Bad prints an error or failure line.
func (r *Renderer) Bad(msg string) { fmt.Fprintln(r.out, r.bad.Sprint(msg)) }

// Prompt writes the guess prompt without a trailing newline.
func (r *Renderer) Prompt() { fmt.Fprint(r.out, r.prompt.Sprint("Guess? > ")) }

// Banner prints the round-start summary and the how-to-play hint.
func (r *Renderer) Banner(v domain.RoundView, resumed bool) {
	if resumed {
		r.Good("Loaded word from hash")
	}
	r.Good(fmt.Sprintf("%d %d-letter words available, chose %s", v.Candidates, v.Size, v.Hash))
	r.Info("When prompted, enter a guess or a string of letters prefixed with +/-/~ to mark them as correct/incorrect/unknown")
	r.Info("Example: +abc would mark a, b, and c as correct letters and highlight them in the alphabet header")
	fmt.Fprintln(r.out)
}

// Header prints the belief-colored alphabet with status counts, the letters
// known correct, and the grid of previous guesses.
func (r *Renderer) Header(v domain.RoundView) {
	for i := 0; i < len(domain.Alphabet); i++ {
		fmt.Fprintf(r.out, "%s ", r.letterColor(v.Beliefs.Status(domain.Alphabet[i])).Sprintf("%c", domain.Alphabet[i]))
	}
	unknown := v.Beliefs.Count(domain.StatusUnknown)
	incorrect := v.Beliefs.Count(domain.StatusIncorrect)
	correct := v.Beliefs.Count(domain.StatusCorrect)
	fmt.Fprintf(r.out, "(%s", r.meh.Sprint(unknown))
	if incorrect > 0 {
		fmt.Fprintf(r.out, " %s", r.bad.Sprint(incorrect))
	}
	if correct > 0 {
		fmt.Fprintf(r.out, " %s", r.good.Sprint(correct))
	}
	fmt.Fprint(r.out, ")")
	if letters := v.Beliefs.CorrectLetters(); len(letters) > 0 {
		parts := make([]string, len(letters))
		for i, l := range letters {
			parts[i] = string(l)
		}
		fmt.Fprintf(r.out, " %s", r.good.Sprint(strings.Join(parts, " ")))
	}
	fmt.Fprint(r.out, "\n\n")
	r.grid(v)
}

// grid prints past guesses, letter-colored by current belief, each followed
// by its match count, wrapped to an 80-column terminal.
func (r *Renderer) grid(v domain.RoundView) {
	if len(v.Guesses) == 0 {
		return
	}
	perLine := 80 / (v.Size + 1 + len(strconv.Itoa(v.Size)) + len(gridDelimiter))
	if perLine < 1 {
		perLine = 1
	}
	for i, g := range v.Guesses {
		fmt.Fprintf(r.out, "%s %s%s", r.colorWord(g.Word, v.Beliefs), r.matchCount(g, v, true), gridDelimiter)
		if (i+1)%perLine == 0 && i+1 != len(v.Guesses) {
			fmt.Fprintln(r.out)
		}
	}
	fmt.Fprint(r.out, "\n\n")
}

// Result prints the match count for a guess that did not win the round.
func (r *Renderer) Result(g domain.Guess, v domain.RoundView) {
	suffix := ""
	if g.Matching == v.Size {
		suffix = " (in incorrect order)"
	}
	plural := "s"
	if g.Matching == 1 {
		plural = ""
	}
	fmt.Fprintf(r.out, "You guessed %s %s\n",
		r.matchCount(g, v, false),
		r.meh.Sprintf("letter%s correctly%s", plural, suffix))
	fmt.Fprintln(r.out)
}

// Won prints the congratulations line.
func (r *Renderer) Won(v domain.RoundView) {
	tries := "tries"
	if len(v.Guesses) == 1 {
		tries = "try"
	}
	r.Good(fmt.Sprintf("Congratulations! You guessed %s in %d %s!", v.Target, len(v.Guesses), tries))
}

// Revealed prints the target after the player gives up.
func (r *Renderer) Revealed(word domain.Word) {
	fmt.Fprintln(r.out, r.meh.Sprintf("The word is %s", word))
}

// colorWord colors each letter of a guess by its current belief.
func (r *Renderer) colorWord(w domain.Word, b domain.BeliefState) string {
	var sb strings.Builder
	for i := 0; i < len(w); i++ {
		sb.WriteString(r.letterColor(b.Status(w[i])).Sprintf("%c", w[i]))
	}
	return sb.String()
}

// matchCount colors a guess's match count. Plain mode: green for a full
// match, red for zero, yellow between. Smart mode (the grid) also goes
// green once every letter of the guess has been resolved, which covers the
// all-incorrect case too.
func (r *Renderer) matchCount(g domain.Guess, v domain.RoundView, smart bool) string {
	c := r.meh
	if g.Matching == v.Size {
		c = r.good
	}
	if smart {
		resolved := true
		for i := 0; i < len(g.Word); i++ {
			if v.Beliefs.Status(g.Word[i]) == domain.StatusUnknown {
				resolved = false
				break
			}
		}
		if resolved {
			c = r.good
		}
	} else if g.Matching == 0 {
		c = r.bad
	}
	return c.Sprint(g.Matching)
}

func (r *Renderer) letterColor(s domain.LetterStatus) *color.Color {
	switch s {
	case domain.StatusCorrect:
		return r.good
	case domain.StatusIncorrect:
		return r.bad
	default:
		return r.meh
	}
}
