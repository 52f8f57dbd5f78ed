// Package wordhash derives the resume hash of a word.
//
// The hash lets a player restart a round with the same target in a later
// process run by passing a prefix of the digest printed at round start. It is
// a stable identifier, not a security measure.
package wordhash
