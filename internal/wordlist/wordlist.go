package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"lettra/internal/domain"
)

// Small built-in list so the game plays before anyone installs a dictionary.
//
//go:embed default_words.txt
var defaultWords string

// FileSource reads a dictionary file with one word per line. Lines are
// trimmed, uppercased and deduplicated; entries with non-letter characters
// are discarded. Length and repeated-letter filtering are the selector's
// job, not ours.
type FileSource struct {
	path string
}

// NewFileSource returns a source backed by the file at path.
func NewFileSource(path string) *FileSource { return &FileSource{path: path} }

// Words loads and normalizes the dictionary. A missing file falls back to
// the embedded default list; any other I/O failure propagates.
func (s *FileSource) Words() ([]string, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", s.path).Msg("dictionary file not found, using built-in word list")
		return normalize(strings.NewReader(defaultWords))
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return normalize(f)
}

func normalize(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	seen := make(map[string]struct{})
	var out []string
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if w == "" || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Compile-time assertion that FileSource implements domain.WordSource.
var _ domain.WordSource = (*FileSource)(nil)
