package sweep

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/teleporter/evaluator"
)

func newSweep(t *testing.T, cfg evaluator.Config, reg Register, rng string) *Sweep {
	ev, err := evaluator.NewEvaluator(cfg)
	if err != nil {
		t.Fatalf("%v", err)
	}

	sw := &Sweep{Evaluator: ev, Register: reg}
	if len(rng) != 0 {
		sw.Range, err = ParseRange(rng)
		if err != nil {
			t.Fatalf("%v", err)
		}
	}
	return sw
}

func TestSweep_Single(t *testing.T) {
	assert := assert.New(t)

	sw := newSweep(t, evaluator.Config{}, SWEEP_NONE, "")

	var reports []Report
	for rep, err := range sw.Run(big.NewInt(0), big.NewInt(5), big.NewInt(7)) {
		assert.NoError(err)
		reports = append(reports, rep)
	}

	assert.Equal(1, len(reports))
	assert.Equal(int64(6), reports[0].R0.Int64())
	assert.Equal(1, reports[0].Steps)
	assert.Contains(reports[0].String(), "(0, 5, 7)")
	assert.NotContains(reports[0].String(), f(" (aborted)"))
}

func TestSweep_R7(t *testing.T) {
	assert := assert.New(t)

	sw := newSweep(t, evaluator.Config{Shortcut: 2}, SWEEP_R7, "0:5")

	var r7s []int64
	for rep, err := range sw.Run(big.NewInt(2), big.NewInt(3), big.NewInt(99)) {
		assert.NoError(err)
		r7s = append(r7s, rep.R7.Int64())
		assert.Equal(int64(3), rep.Input.R1.Int64())
		// f(2, n) = r7 * (n + 2) + n + 1
		assert.Equal(rep.R7.Int64()*5+4, rep.R0.Int64())
	}
	assert.Equal([]int64{0, 1, 2, 3, 4, 5}, r7s)
}

func TestSweep_R1(t *testing.T) {
	assert := assert.New(t)

	sw := newSweep(t, evaluator.Config{}, SWEEP_R1, "2:4")

	var r1s []int64
	for rep, err := range sw.Run(big.NewInt(1), big.NewInt(99), big.NewInt(3)) {
		assert.NoError(err)
		r1s = append(r1s, rep.Input.R1.Int64())
		assert.Equal(int64(3), rep.R7.Int64())
		assert.Equal(rep.Input.R1.Int64()+4, rep.R0.Int64())
	}
	assert.Equal([]int64{2, 3, 4}, r1s)
}

func TestSweep_Match(t *testing.T) {
	assert := assert.New(t)

	sw := newSweep(t, evaluator.Config{}, SWEEP_R1, "0:9")

	var err error
	sw.Match, err = NewMatch("r0 % 2 == 0 and not aborted")
	assert.NoError(err)

	var r1s []int64
	for rep, err := range sw.Run(big.NewInt(1), big.NewInt(0), big.NewInt(3)) {
		assert.NoError(err)
		r1s = append(r1s, rep.Input.R1.Int64())
	}
	assert.Equal([]int64{0, 2, 4, 6, 8}, r1s)
}

func TestSweep_MatchTeleporter(t *testing.T) {
	assert := assert.New(t)

	cfg := evaluator.Config{Shortcut: 3, Cache: true, Modulus: big.NewInt(evaluator.MODULUS_15BIT)}
	sw := newSweep(t, cfg, SWEEP_R7, "25730:25740")

	var err error
	sw.Match, err = NewMatch("r0 == 6")
	assert.NoError(err)

	var found []int64
	for rep, err := range sw.Run(big.NewInt(4), big.NewInt(1), big.NewInt(0)) {
		assert.NoError(err)
		found = append(found, rep.R7.Int64())
	}
	assert.Equal([]int64{25734}, found)
}

func TestSweep_Aborted(t *testing.T) {
	assert := assert.New(t)

	sw := newSweep(t, evaluator.Config{MaxStep: 10}, SWEEP_R7, "1:2")

	count := 0
	for rep, err := range sw.Run(big.NewInt(4), big.NewInt(1), big.NewInt(0)) {
		assert.NoError(err)
		assert.True(rep.Aborted)
		assert.Equal(11, rep.Steps)
		assert.Contains(rep.String(), f(" (aborted)"))
		count++
	}
	assert.Equal(2, count)
}

func TestSweep_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := NewMatch("r0 ==")
	assert.Error(err)
	var merr *ErrMatch
	assert.ErrorAs(err, &merr)
	assert.Equal("r0 ==", merr.Expr)

	sw := newSweep(t, evaluator.Config{}, SWEEP_R1, "0:3")
	sw.Match, err = NewMatch("r0 // 0")
	assert.NoError(err)

	count := 0
	for _, err := range sw.Run(big.NewInt(0), big.NewInt(0), big.NewInt(0)) {
		assert.ErrorAs(err, &merr)
		count++
	}
	assert.Equal(1, count)

	sw = newSweep(t, evaluator.Config{}, Register(7), "0:3")
	for _, err := range sw.Run(big.NewInt(0), big.NewInt(0), big.NewInt(0)) {
		assert.ErrorIs(err, ErrSweepRegister)
	}
}

func TestSweep_Break(t *testing.T) {
	assert := assert.New(t)

	sw := newSweep(t, evaluator.Config{}, SWEEP_R1, "0:100")

	count := 0
	for range sw.Run(big.NewInt(0), big.NewInt(0), big.NewInt(1)) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}

func TestRegister_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("none", SWEEP_NONE.String())
	assert.Equal("r1", SWEEP_R1.String())
	assert.Equal("r7", SWEEP_R7.String())
}
