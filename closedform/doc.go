// Package closedform computes the confirmation function directly for
// small r0, replacing recursion whose depth grows with r1 and r7.
//
// For r0 = 1 and r0 = 2 the result is linear in r1. For r0 = 3 the
// result is a polynomial in r7 of degree r1+2 whose coefficients are
// binomials of r1+3; Third builds it incrementally with exact division.
package closedform
