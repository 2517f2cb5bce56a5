package internal

import (
	"math/big"
)

// Modular reports if modulus selects bounded arithmetic.
func Modular(modulus *big.Int) bool {
	return modulus != nil && modulus.Sign() > 0
}

// Reduce reduces v into [0, modulus) in place, and returns v.
// A nil or zero modulus leaves v unchanged.
func Reduce(v *big.Int, modulus *big.Int) *big.Int {
	if Modular(modulus) {
		v.Mod(v, modulus)
	}
	return v
}
