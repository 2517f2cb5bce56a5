package sweep

import (
	"errors"

	"github.com/ezrec/teleporter/translate"
)

var f = translate.From

var (
	// Range errors
	ErrRangeSyntax   = errors.New(f("expected start:stop"))
	ErrRangeNumber   = errors.New(f("not an integer"))
	ErrRangeNegative = errors.New(f("negative register value"))

	// Sweep errors
	ErrSweepRegister = errors.New(f("sweep register invalid"))
	ErrMatchResult   = errors.New(f("match has no result"))
)

// ErrRange indicates an unparseable range.
type ErrRange struct {
	Text string
	Err  error
}

func (err *ErrRange) Error() string {
	return f("range '%v' %v", err.Text, err.Err)
}

func (err *ErrRange) Unwrap() error {
	return err.Err
}

// ErrMatch indicates a failure to compile or run a match expression.
type ErrMatch struct {
	Expr string
	Err  error
}

func (err *ErrMatch) Error() string {
	return f("match $(%v) %v", err.Expr, err.Err)
}

func (err *ErrMatch) Unwrap() error {
	return err.Err
}
