// Package evaluator reduces the three-register confirmation function.
//
// Given r0, r1 and a fixed r7, the function is
//
//	f(0, n)     = n + 1
//	f(m, 0)     = f(m-1, r7)
//	f(m, n)     = f(m-1, f(m, n-1))
//
// which is Ackermann's function when r7 is 1. The evaluator runs the
// reduction as an explicit work stack of continuation frames, so depth
// is bounded by memory rather than the goroutine stack. It counts one
// step per invocation, can abort on a step budget, can replace small r0
// with closed forms, and can memoize calls that return at the
// pending-call depth they entered at.
package evaluator
