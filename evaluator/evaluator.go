// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package evaluator

import (
	"errors"
	"log"
	"math/big"

	"github.com/ezrec/teleporter/register"
)

// Evaluator runs confirmation evaluations for one configuration.
// It holds no run state, and may be shared between goroutines.
type Evaluator struct {
	Config
}

// Result of one evaluation.
type Result struct {
	Input register.Triple // Registers at entry.

	R0 *big.Int // Final r0, the answer.
	R1 *big.Int // Final r1.
	R7 *big.Int // Hidden register.

	Steps   int  // Invocations counted, excluding cache hits.
	Aborted bool // Step budget was exceeded; R0 and R1 are partial.

	CacheHits    int // Invocations answered from the cache.
	CacheEntries int // Memoized calls at exit.
	MaxDepth     int // Deepest pending-call stack.
}

// NewEvaluator creates an evaluator for a validated configuration.
func NewEvaluator(cfg Config) (ev *Evaluator, err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	ev = &Evaluator{Config: cfg}
	return
}

// Evaluate reduces (r0, r1, r7) to completion, or until the step budget
// is exceeded. On abort the registers at the moment of abort are
// returned, with Aborted set.
func (ev *Evaluator) Evaluate(r0, r1, r7 *big.Int) (res Result) {
	mach := newMachine(&ev.Config, r0, r1, r7)

	if ev.Verbose {
		log.Printf("evaluate: %v", mach.regs.Triple())
	}

	err := mach.Run()

	res = Result{
		Input:    register.Triple{R0: new(big.Int).Set(r0), R1: new(big.Int).Set(r1), R7: new(big.Int).Set(r7)},
		R0:       mach.regs.R0,
		R1:       mach.regs.R1,
		R7:       mach.regs.R7,
		Steps:    mach.steps,
		Aborted:  errors.Is(err, ErrStepBudget),
		MaxDepth: mach.maxDepth,
	}

	if mach.cache != nil {
		res.CacheHits = mach.hits
		res.CacheEntries = mach.cache.Len()
	}

	if ev.Verbose {
		log.Printf("evaluate: %v steps, %v hits, %v cached, depth %v, aborted %v",
			res.Steps, res.CacheHits, res.CacheEntries, res.MaxDepth, res.Aborted)
	}

	return
}
