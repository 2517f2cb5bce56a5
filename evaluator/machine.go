package evaluator

import (
	"log"
	"math/big"

	"github.com/ezrec/teleporter/closedform"
	"github.com/ezrec/teleporter/register"
)

type phase int

const (
	PHASE_ENTER  = phase(iota) // Invocation not yet started.
	PHASE_RESUME               // Inner call of a nest returned; run the outer call.
	PHASE_FINISH               // Last call returned; reduce and memoize.
)

// frame is a suspended invocation.
type frame struct {
	phase phase
	key   register.Triple // Entry registers, when caching.
}

// machine is the state of a single evaluation.
type machine struct {
	cfg  *Config
	regs *register.Registers

	work  []frame
	cache *Cache

	steps    int
	hits     int
	maxDepth int
}

func newMachine(cfg *Config, r0, r1, r7 *big.Int) (mach *machine) {
	mach = &machine{
		cfg:  cfg,
		regs: register.NewRegisters(r0, r1, r7),
	}

	if cfg.Cache {
		mach.cache = &Cache{}
	}

	return
}

// call pushes a new invocation with the current registers.
func (mach *machine) call() {
	mach.work = append(mach.work, frame{phase: PHASE_ENTER})
}

// ret discards the current invocation.
func (mach *machine) ret() {
	mach.work = mach.work[:len(mach.work)-1]
}

// Run the machine until the outermost invocation returns.
func (mach *machine) Run() (err error) {
	mach.call()
	for len(mach.work) > 0 {
		err = mach.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Tick advances the innermost frame by one phase.
func (mach *machine) Tick() (err error) {
	regs := mach.regs
	modulus := mach.cfg.Modulus
	one := big.NewInt(1)
	fr := &mach.work[len(mach.work)-1]

	switch fr.phase {
	case PHASE_ENTER:
		if mach.cache != nil {
			fr.key = regs.Triple()
			if entry, ok := mach.cache.Lookup(fr.key); ok {
				regs.R0.Set(entry.R0)
				regs.R1.Set(entry.R1)
				mach.hits++
				mach.ret()
				return
			}
		}

		mach.steps++
		if mach.cfg.MaxStep > 0 && mach.steps > mach.cfg.MaxStep {
			err = ErrStepBudget
			return
		}

		depth := regs.Stack.Depth()
		mach.maxDepth = max(mach.maxDepth, depth)
		if mach.cache != nil {
			mach.cache.Seen(fr.key, depth)
		}

		rule, form := classify(regs.R0, regs.R1, mach.cfg.Shortcut)

		if mach.cfg.Verbose {
			log.Printf("%3d: [%v]  %v", mach.steps, rule, regs)
		}

		switch rule {
		case RULE_SHORTCUT:
			regs.R1 = closedform.Apply(form, regs.R1, regs.R7, modulus)
			regs.R0.Add(regs.R1, one)
			regs.Reduce(modulus)
			mach.ret()
		case RULE_BASE:
			regs.R0.Add(regs.R1, one)
			fr.phase = PHASE_FINISH
		case RULE_TAIL:
			regs.R0.Sub(regs.R0, one)
			regs.R1.Set(regs.R7)
			fr.phase = PHASE_FINISH
			mach.call()
		case RULE_NEST:
			regs.Stack.Push(regs.R0)
			regs.R1.Sub(regs.R1, one)
			fr.phase = PHASE_RESUME
			mach.call()
		}
	case PHASE_RESUME:
		saved, ok := regs.Stack.Pop()
		if !ok {
			panic(ErrStackEmpty)
		}
		regs.R1.Set(regs.R0)
		regs.R0.Sub(saved, one)
		fr.phase = PHASE_FINISH
		mach.call()
	case PHASE_FINISH:
		regs.Reduce(modulus)
		if mach.cache != nil {
			entry := Entry{R0: regs.R0, R1: regs.R1, Step: mach.steps}
			if mach.cache.Store(fr.key, regs.Stack.Depth(), entry) && mach.cfg.Verbose {
				log.Printf("%v -> r0=%v, r1=%v", fr.key, regs.R0, regs.R1)
			}
		}
		mach.ret()
	}

	return
}
