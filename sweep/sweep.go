// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package sweep drives evaluations across a range of r1 or r7.
package sweep

import (
	"iter"
	"math/big"

	"github.com/ezrec/teleporter/evaluator"
	"github.com/ezrec/teleporter/register"
)

// Register selects the swept register.
type Register int

const (
	SWEEP_NONE = Register(iota) // Single evaluation.
	SWEEP_R1                    // Sweep r1.
	SWEEP_R7                    // Sweep r7.
)

func (reg Register) String() string {
	switch reg {
	case SWEEP_NONE:
		return "none"
	case SWEEP_R1:
		return "r1"
	case SWEEP_R7:
		return "r7"
	}
	return f("Register(%d)", int(reg))
}

// Report of a single evaluation.
type Report struct {
	evaluator.Result
}

// String formats the report as a single line.
func (rep Report) String() (text string) {
	text = f("%3d steps,  %v --> r0:%2v  r1:%2v  r7:%2v",
		rep.Steps, rep.Input, rep.R0, rep.R1, rep.R7)
	if rep.Aborted {
		text += f(" (aborted)")
	}
	return
}

// Sweep runs independent evaluations, one per swept value.
type Sweep struct {
	Evaluator *evaluator.Evaluator
	Register  Register // Swept register.
	Range     Range    // Swept values, when Register is not SWEEP_NONE.
	Match     *Match   // If set, only matching results are reported.
}

// Inputs iterates the input triples of the sweep.
func (sw *Sweep) Inputs(r0, r1, r7 *big.Int) iter.Seq2[register.Triple, error] {
	return func(yield func(register.Triple, error) bool) {
		var values iter.Seq[*big.Int]
		switch sw.Register {
		case SWEEP_NONE:
			yield(register.Triple{R0: r0, R1: r1, R7: r7}, nil)
			return
		case SWEEP_R1, SWEEP_R7:
			values = sw.Range.Values()
		default:
			yield(register.Triple{}, ErrSweepRegister)
			return
		}

		for val := range values {
			input := register.Triple{R0: r0, R1: r1, R7: r7}
			if sw.Register == SWEEP_R1 {
				input.R1 = val
			} else {
				input.R7 = val
			}
			if !yield(input, nil) {
				return
			}
		}
	}
}

// Run evaluates every input of the sweep, yielding reports in order.
// An error stops the sweep.
func (sw *Sweep) Run(r0, r1, r7 *big.Int) iter.Seq2[Report, error] {
	return func(yield func(Report, error) bool) {
		for input, err := range sw.Inputs(r0, r1, r7) {
			if err != nil {
				yield(Report{}, err)
				return
			}

			res := sw.Evaluator.Evaluate(input.R0, input.R1, input.R7)

			if sw.Match != nil {
				ok, err := sw.Match.Test(res)
				if err != nil {
					yield(Report{}, err)
					return
				}
				if !ok {
					continue
				}
			}

			if !yield(Report{Result: res}, nil) {
				return
			}
		}
	}
}
