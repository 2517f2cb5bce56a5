package evaluator

import (
	"math/big"
)

// Rule is the reduction rule taken by an invocation.
type Rule int

//go:generate go tool stringer -linecomment -type=Rule
const (
	RULE_BASE     = Rule(iota) // base
	RULE_TAIL                  // tail
	RULE_NEST                  // nest
	RULE_SHORTCUT              // shortcut
)

// classify picks the rule for r0, r1 given a shortcut threshold.
// It returns the closed form to use for RULE_SHORTCUT.
func classify(r0, r1 *big.Int, shortcut int) (rule Rule, form int) {
	if r0.Sign() == 0 {
		rule = RULE_BASE
		return
	}

	if r0.IsInt64() && r0.Int64() <= int64(shortcut) {
		rule = RULE_SHORTCUT
		form = int(r0.Int64())
		return
	}

	if r1.Sign() == 0 {
		rule = RULE_TAIL
		return
	}

	rule = RULE_NEST
	return
}
