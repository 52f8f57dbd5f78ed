package wordhash_test

import (
	"strings"
	"testing"

	"lettra/internal/domain"
	"lettra/internal/wordhash"
)

func TestSum_StableAcrossCalls(t *testing.T) {
	if wordhash.Sum("EARTH") != wordhash.Sum("EARTH") {
		t.Fatal("same word hashed to different digests")
	}
}

func TestSum_OrderSensitive(t *testing.T) {
	// EARTH and HEART share a letter set but are different words.
	if wordhash.Sum("EARTH") == wordhash.Sum("HEART") {
		t.Fatal("anagrams produced the same digest")
	}
}

func TestShort_IsDigestPrefix(t *testing.T) {
	short := wordhash.Short("GIRTH")
	if len(short) != wordhash.ShortLen {
		t.Fatalf("short hash length = %d, want %d", len(short), wordhash.ShortLen)
	}
	if !strings.HasPrefix(wordhash.Sum("GIRTH"), short) {
		t.Fatal("short hash is not a prefix of the full digest")
	}
}

func TestHasPrefix_CaseInsensitive(t *testing.T) {
	w := domain.Word("EARTH")
	upper := strings.ToUpper(wordhash.Short(w))
	if !wordhash.HasPrefix(w, upper) {
		t.Fatalf("prefix %q did not match its own word", upper)
	}
	if wordhash.HasPrefix(w, "zz") {
		t.Fatal("impossible prefix matched")
	}
}
