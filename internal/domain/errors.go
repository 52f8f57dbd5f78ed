package domain

import "errors"

var (
	// ErrEmptyDictionary means no candidate words survived filtering.
	// Fatal at session start.
	ErrEmptyDictionary = errors.New("no playable words in dictionary")

	// ErrHashNotFound means no candidate's resume hash matched the
	// requested prefix. Fatal at session start.
	ErrHashNotFound = errors.New("no word matches the given hash")

	// ErrAmbiguousHash means more than one candidate matched the
	// requested prefix. Resolved by asking for a longer prefix, never by
	// picking one silently. Fatal at session start.
	ErrAmbiguousHash = errors.New("hash matches more than one word")

	// ErrInvalidGuess marks a malformed guess. Recoverable: the round is
	// unchanged and the caller re-prompts.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrRoundOver is returned for operations attempted after the round
	// reached a terminal state.
	ErrRoundOver = errors.New("round is over")
)
