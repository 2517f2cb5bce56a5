package closedform

import (
	"math/big"

	"github.com/ezrec/teleporter/translate"
)

var f = translate.From

// ErrInexact is the panic value raised when a coefficient division
// leaves a remainder. It indicates a defect, never bad input.
type ErrInexact struct {
	Dividend *big.Int
	Divisor  *big.Int
}

func (err *ErrInexact) Error() string {
	return f("inexact division %v / %v", err.Dividend, err.Divisor)
}

// ErrForm is the panic value for a request outside r0 1..3.
type ErrForm int

func (err ErrForm) Error() string {
	return f("no closed form for r0 = %d", int(err))
}
