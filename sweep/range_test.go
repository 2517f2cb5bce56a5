package sweep

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text        string
		start, stop int64
		err         error
	}){
		{"1:5", 1, 5, nil},
		{"0:0", 0, 0, nil},
		{" 2 : 7 ", 2, 7, nil},
		{"0x10:0x20", 16, 32, nil},
		{"5:1", 5, 1, nil},
		{"5", 0, 0, ErrRangeSyntax},
		{"1:2:3", 0, 0, ErrRangeSyntax},
		{"a:3", 0, 0, ErrRangeNumber},
		{"3:", 0, 0, ErrRangeNumber},
		{"-1:3", 0, 0, ErrRangeNegative},
	}

	for _, entry := range table {
		rng, err := ParseRange(entry.text)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.text)
			var rerr *ErrRange
			assert.True(errors.As(err, &rerr), entry.text)
			assert.Equal(entry.text, rerr.Text)
			continue
		}
		assert.NoError(err, entry.text)
		assert.Equal(entry.start, rng.Start.Int64(), entry.text)
		assert.Equal(entry.stop, rng.Stop.Int64(), entry.text)
	}
}

func TestRange_Values(t *testing.T) {
	assert := assert.New(t)

	rng, err := ParseRange("3:6")
	assert.NoError(err)
	assert.Equal("3:6", rng.String())

	var got []int64
	for val := range rng.Values() {
		got = append(got, val.Int64())
	}
	assert.Equal([]int64{3, 4, 5, 6}, got)

	rng, err = ParseRange("6:3")
	assert.NoError(err)
	assert.Empty(slices.Collect(rng.Values()))

	// Early exit.
	rng, _ = ParseRange("0:1000")
	count := 0
	for range rng.Values() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}
