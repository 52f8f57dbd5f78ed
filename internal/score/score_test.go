package score_test

import (
	"testing"

	"lettra/internal/domain"
	"lettra/internal/score"
)

func mustWord(t *testing.T, raw string) domain.Word {
	t.Helper()
	w, err := domain.ParseWord(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return w
}

func TestMatching_SelfIsLength(t *testing.T) {
	for _, raw := range []string{"A", "EARTH", "GIRTH", "JUMBO", "BACKGROUND"} {
		w := mustWord(t, raw)
		if got := score.Matching(w, w); got != w.Size() {
			t.Fatalf("Matching(%s, %s) = %d, want %d", w, w, got, w.Size())
		}
	}
}

func TestMatching_KnownPairs(t *testing.T) {
	cases := []struct {
		guess, target string
		want          int
	}{
		{"GIRTH", "EARTH", 3},
		{"BIRTH", "EARTH", 3},
		{"BINGO", "EARTH", 0},
		{"HEART", "EARTH", 5},
		{"EARTH", "HEART", 5},
		{"JUMBO", "EARTH", 0},
		{"STONE", "EARTH", 2},
	}
	for _, c := range cases {
		got := score.Matching(mustWord(t, c.guess), mustWord(t, c.target))
		if got != c.want {
			t.Fatalf("Matching(%s, %s) = %d, want %d", c.guess, c.target, got, c.want)
		}
	}
}

func TestMatching_Symmetric(t *testing.T) {
	words := []string{"EARTH", "GIRTH", "BINGO", "TOE", "BACKGROUND"}
	for _, a := range words {
		for _, b := range words {
			g, tw := mustWord(t, a), mustWord(t, b)
			if score.Matching(g, tw) != score.Matching(tw, g) {
				t.Fatalf("Matching(%s, %s) != Matching(%s, %s)", a, b, b, a)
			}
		}
	}
}

func TestMatching_Bounds(t *testing.T) {
	words := []string{"A", "TOE", "EARTH", "BACKGROUND"}
	for _, a := range words {
		for _, b := range words {
			g, tw := mustWord(t, a), mustWord(t, b)
			got := score.Matching(g, tw)
			limit := g.Size()
			if tw.Size() < limit {
				limit = tw.Size()
			}
			if got < 0 || got > limit {
				t.Fatalf("Matching(%s, %s) = %d, out of [0, %d]", a, b, got, limit)
			}
		}
	}
}
