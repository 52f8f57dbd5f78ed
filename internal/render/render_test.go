package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"lettra/internal/domain"
	"lettra/internal/render"
)

func plainRenderer(t *testing.T) (*render.Renderer, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	return render.New(&buf), &buf
}

func TestHeader_CountsAndCorrectLetters(t *testing.T) {
	r, buf := plainRenderer(t)
	var v domain.RoundView
	v.Size = 5
	v.Beliefs.Set('A', domain.StatusCorrect)
	v.Beliefs.Set('B', domain.StatusIncorrect)

	r.Header(v)
	out := buf.String()
	if !strings.Contains(out, "(24 1 1)") {
		t.Fatalf("missing status counts in header: %q", out)
	}
	if !strings.HasPrefix(out, "A B C ") {
		t.Fatalf("header does not start with the alphabet: %q", out)
	}
	if !strings.Contains(out, ") A") {
		t.Fatalf("correct letters not listed after counts: %q", out)
	}
}

func TestHeader_ListsGuessesWithCounts(t *testing.T) {
	r, buf := plainRenderer(t)
	v := domain.RoundView{
		Size: 5,
		Guesses: []domain.Guess{
			{Word: "GIRTH", Matching: 3},
			{Word: "BINGO", Matching: 0},
		},
	}

	r.Header(v)
	out := buf.String()
	if !strings.Contains(out, "GIRTH 3") || !strings.Contains(out, "BINGO 0") {
		t.Fatalf("guess grid missing entries: %q", out)
	}
}

func TestResult_Wording(t *testing.T) {
	r, buf := plainRenderer(t)
	v := domain.RoundView{Size: 5}

	r.Result(domain.Guess{Word: "STONE", Matching: 1}, v)
	if !strings.Contains(buf.String(), "You guessed 1 letter correctly") {
		t.Fatalf("singular wording wrong: %q", buf.String())
	}

	buf.Reset()
	r.Result(domain.Guess{Word: "HEART", Matching: 5}, v)
	out := buf.String()
	if !strings.Contains(out, "5 letters correctly (in incorrect order)") {
		t.Fatalf("full-match wording wrong: %q", out)
	}
}

func TestWon_TrySingular(t *testing.T) {
	r, buf := plainRenderer(t)
	v := domain.RoundView{
		Size:    5,
		Target:  "EARTH",
		Guesses: []domain.Guess{{Word: "EARTH", Matching: 5}},
	}
	r.Won(v)
	if !strings.Contains(buf.String(), "You guessed EARTH in 1 try!") {
		t.Fatalf("win wording wrong: %q", buf.String())
	}
}

func TestBanner_ShowsPoolAndHash(t *testing.T) {
	r, buf := plainRenderer(t)
	v := domain.RoundView{Size: 5, Hash: "ab12cd34", Candidates: 321}
	r.Banner(v, false)
	if !strings.Contains(buf.String(), "321 5-letter words available, chose ab12cd34") {
		t.Fatalf("banner wrong: %q", buf.String())
	}
	if strings.Contains(buf.String(), "Loaded word from hash") {
		t.Fatal("resume line printed for a fresh round")
	}

	buf.Reset()
	r.Banner(v, true)
	if !strings.Contains(buf.String(), "Loaded word from hash") {
		t.Fatal("resume line missing")
	}
}
