package sweep

import (
	"iter"
	"math/big"
	"strings"

	"github.com/ezrec/teleporter/internal"
)

// Range is a closed integer range.
type Range struct {
	Start *big.Int
	Stop  *big.Int
}

// ParseRange parses 'start:stop', both ends inclusive.
func ParseRange(text string) (rng Range, err error) {
	defer func() {
		if err != nil {
			err = &ErrRange{Text: text, Err: err}
		}
	}()

	start, stop, ok := strings.Cut(text, ":")
	if !ok || strings.Contains(stop, ":") {
		err = ErrRangeSyntax
		return
	}

	ends := [2]*big.Int{}
	for n, word := range [2]string{start, stop} {
		val, ok := new(big.Int).SetString(strings.TrimSpace(word), 0)
		if !ok {
			err = ErrRangeNumber
			return
		}
		if val.Sign() < 0 {
			err = ErrRangeNegative
			return
		}
		ends[n] = val
	}

	rng = Range{Start: ends[0], Stop: ends[1]}
	return
}

// Values iterates the range. A range with Stop before Start is empty.
func (rng Range) Values() iter.Seq[*big.Int] {
	return internal.IterRange(rng.Start, rng.Stop)
}

func (rng Range) String() string {
	return rng.Start.String() + ":" + rng.Stop.String()
}
