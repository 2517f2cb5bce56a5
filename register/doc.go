// Package register holds the working state of one confirmation run.
//
// The state is three registers, r0, r1 and r7, and a pending-call stack
// of saved r0 values. r7 is fixed for a run; r0 and r1 are rewritten by
// every reduction step. Values are arbitrary precision, and are only
// bounded when the caller reduces them by a modulus.
package register
