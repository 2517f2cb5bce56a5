package sweep

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/teleporter/evaluator"
)

// Match is a starlark predicate over an evaluation result.
//
// The expression sees r0, r1 and r7 (the result registers), steps,
// and aborted. For example, "r0 == 6 and not aborted".
type Match struct {
	Expr string

	thread starlark.Thread
}

// NewMatch checks the syntax of expr and returns its predicate.
func NewMatch(expr string) (m *Match, err error) {
	opts := syntax.FileOptions{}
	_, err = opts.ParseExpr("match", expr, 0)
	if err != nil {
		err = &ErrMatch{Expr: expr, Err: err}
		return
	}

	m = &Match{Expr: expr}
	return
}

// Test evaluates the predicate for a result.
func (m *Match) Test(res evaluator.Result) (ok bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrMatch{Expr: m.Expr, Err: err}
		}
	}()

	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"r0":      starlark.MakeBigInt(res.R0),
		"r1":      starlark.MakeBigInt(res.R1),
		"r7":      starlark.MakeBigInt(res.R7),
		"steps":   starlark.MakeInt(res.Steps),
		"aborted": starlark.Bool(res.Aborted),
	}

	prog := "rc=" + m.Expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &m.thread, "match", prog, pred)
	if err != nil {
		return
	}

	rc, found := dict["rc"]
	if !found {
		err = ErrMatchResult
		return
	}

	ok = bool(rc.Truth())
	return
}
