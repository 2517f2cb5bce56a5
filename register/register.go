package register

import (
	"fmt"
	"math/big"

	"github.com/ezrec/teleporter/internal"
)

// Registers is the state owned by a single evaluation.
type Registers struct {
	R0 *big.Int // Working value, and the result.
	R1 *big.Int // Working value.
	R7 *big.Int // Hidden register, constant for a run.

	Stack Stack // Pending calls.
}

// NewRegisters creates registers holding copies of the inputs.
func NewRegisters(r0, r1, r7 *big.Int) (regs *Registers) {
	regs = &Registers{}
	regs.Reset(r0, r1, r7)
	return
}

// Reset loads new inputs and empties the stack.
func (regs *Registers) Reset(r0, r1, r7 *big.Int) {
	regs.R0 = new(big.Int).Set(r0)
	regs.R1 = new(big.Int).Set(r1)
	regs.R7 = new(big.Int).Set(r7)
	regs.Stack.Reset()
}

// Reduce brings r0 and r1 into [0, modulus).
// A nil or zero modulus is unbounded arithmetic.
func (regs *Registers) Reduce(modulus *big.Int) {
	internal.Reduce(regs.R0, modulus)
	internal.Reduce(regs.R1, modulus)
}

// Triple is a snapshot of (r0, r1, r7).
func (regs *Registers) Triple() Triple {
	return Triple{
		R0: new(big.Int).Set(regs.R0),
		R1: new(big.Int).Set(regs.R1),
		R7: new(big.Int).Set(regs.R7),
	}
}

// String returns the registers and stack on a single line.
func (regs *Registers) String() string {
	return fmt.Sprintf("r0:%v  r1:%v  r7:%v  s: %v", regs.R0, regs.R1, regs.R7, &regs.Stack)
}

// Triple is an immutable register triple, used as an input key.
type Triple struct {
	R0, R1, R7 *big.Int
}

// Equal compares two triples by value.
func (t Triple) Equal(o Triple) bool {
	return t.R0.Cmp(o.R0) == 0 && t.R1.Cmp(o.R1) == 0 && t.R7.Cmp(o.R7) == 0
}

func (t Triple) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.R0, t.R1, t.R7)
}
