// Package session is the round state machine.
//
// A session moves from InProgress to exactly one of Won (the target was
// guessed) or Revealed (the player gave up) and then refuses further
// operations. Per-guess errors are local: a rejected guess changes nothing.
package session
