package evaluator

import (
	"errors"

	"github.com/ezrec/teleporter/translate"
)

var f = translate.From

var (
	// Run errors
	ErrStepBudget = errors.New(f("step budget exceeded"))
	ErrStackEmpty = errors.New(f("pending-call stack empty"))

	// Configuration errors
	ErrShortcutRange = errors.New(f("shortcut threshold out of range"))
	ErrModulus       = errors.New(f("modulus negative"))
)

// ErrConfig wraps a configuration error with the offending value.
type ErrConfig struct {
	Field string
	Value any
	Err   error
}

func (err *ErrConfig) Error() string {
	return f("%v %v: %v", err.Field, err.Value, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
