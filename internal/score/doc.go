// Package score evaluates guesses against the target word.
//
// The only operation is Matching, a pure function over letter-set bitmasks.
// It holds no state and performs no I/O.
package score
