package evaluator

import (
	"math/big"

	"github.com/ezrec/teleporter/closedform"
)

const (
	MODULUS_15BIT = 0x8000 // Modulus of the 15-bit machine the routine came from.
)

// Config for an evaluator. The zero value is a plain unbounded
// evaluation with no budget, no shortcuts and no cache.
type Config struct {
	MaxStep  int      // Step budget; 0 is unlimited.
	Shortcut int      // Closed forms replace r0 in 1..Shortcut; 0 disables.
	Cache    bool     // Memoize depth-neutral calls.
	Modulus  *big.Int // Bounded arithmetic if positive; nil or 0 is unbounded.
	Verbose  bool     // Trace every invocation.
}

// Validate checks the configuration.
func (cfg *Config) Validate() (err error) {
	if cfg.Shortcut < 0 || cfg.Shortcut > closedform.FORM_MAX {
		err = &ErrConfig{Field: "shortcut", Value: cfg.Shortcut, Err: ErrShortcutRange}
		return
	}

	if cfg.Modulus != nil && cfg.Modulus.Sign() < 0 {
		err = &ErrConfig{Field: "modulus", Value: cfg.Modulus, Err: ErrModulus}
		return
	}

	return
}
