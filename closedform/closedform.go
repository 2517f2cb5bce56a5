package closedform

import (
	"math/big"

	"github.com/ezrec/teleporter/internal"
)

const (
	FORM_MAX = 3 // Highest r0 with a closed form.
)

// First is the result for r0 = 1: r7 + n.
func First(n, r7 *big.Int) *big.Int {
	return new(big.Int).Add(r7, n)
}

// Second is the result for r0 = 2: r7 * (n + 2) + n.
func Second(n, r7 *big.Int) *big.Int {
	val := new(big.Int).Add(n, big.NewInt(2))
	val.Mul(val, r7)
	return val.Add(val, n)
}

// Third is the result for r0 = 3.
//
// The running result is reduced by modulus, if one is given. The
// binomial coefficient is always exact, and is never reduced.
func Third(n, r7 *big.Int, modulus *big.Int) *big.Int {
	one := big.NewInt(1)

	// result = r7 * (r7 + n + 3)
	n3 := new(big.Int).Add(n, big.NewInt(3))
	result := new(big.Int).Add(r7, n3)
	result.Mul(result, r7)
	internal.Reduce(result, modulus)

	coef := new(big.Int).Set(n3)
	n4 := new(big.Int).Add(n3, one)
	last := new(big.Int).Add(n, one)

	term := &big.Int{}
	rem := &big.Int{}
	for i := big.NewInt(2); i.Cmp(last) <= 0; i.Add(i, one) {
		// coef = coef * (n + 4 - i) / i
		term.Sub(n4, i)
		term.Mul(coef, term)
		coef.QuoRem(term, i, rem)
		if rem.Sign() != 0 {
			panic(&ErrInexact{
				Dividend: new(big.Int).Set(term),
				Divisor:  new(big.Int).Set(i),
			})
		}

		// result = r7 * (result + coef)
		result.Add(result, coef)
		result.Mul(result, r7)
		internal.Reduce(result, modulus)
	}

	result.Add(result, n)
	return internal.Reduce(result, modulus)
}

// Apply computes the new r1 for r0 = form, given r1 = n.
// The result of First and Second is not reduced; the caller reduces
// it along with r0.
func Apply(form int, n, r7 *big.Int, modulus *big.Int) *big.Int {
	switch form {
	case 1:
		return First(n, r7)
	case 2:
		return Second(n, r7)
	case 3:
		return Third(n, r7, modulus)
	}

	panic(ErrForm(form))
}
