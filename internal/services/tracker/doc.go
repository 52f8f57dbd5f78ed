// Package tracker maintains what the player knows about each letter.
//
// It combines explicit player assertions with automatic inference from the
// recorded match counts. Deduction runs to a fixed point over the whole
// guess history, because resolving one letter can retroactively unlock a
// rule for an earlier guess.
package tracker
