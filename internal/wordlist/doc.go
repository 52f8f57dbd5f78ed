// Package wordlist loads candidate words from a dictionary file.
//
// It owns line-level normalization (trim, uppercase, letters-only,
// deduplicate) and nothing else; game-shape filtering belongs to the
// selector. When the configured file does not exist the package falls back
// to a small embedded list so the binary is playable out of the box.
package wordlist
