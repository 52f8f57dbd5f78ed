// Package selector chooses the target word for a round.
//
// It filters raw dictionary words down to the playable shape (exact length,
// all-distinct letters) and then picks one, either uniformly at random or by
// matching a resume-hash prefix from an earlier round.
package selector
