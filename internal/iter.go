package internal

import (
	"iter"
	"math/big"
)

// IterRange iterates over the closed range [start, stop].
// Each yielded value is a fresh copy, safe to retain.
func IterRange(start, stop *big.Int) iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		one := big.NewInt(1)
		for val := new(big.Int).Set(start); val.Cmp(stop) <= 0; val.Add(val, one) {
			if !yield(new(big.Int).Set(val)) {
				return // Stop if the consumer stops
			}
		}
	}
}
