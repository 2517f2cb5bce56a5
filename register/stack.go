package register

import (
	"math/big"
	"strings"
)

// Stack of saved r0 values for suspended calls.
type Stack struct {
	Data []*big.Int
}

// Push saves a copy of value.
func (s *Stack) Push(value *big.Int) {
	s.Data = append(s.Data, new(big.Int).Set(value))
}

func (s *Stack) Pop() (value *big.Int, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data[len(s.Data)-1] = nil
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

// Depth is the number of pending calls.
func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Peek() (value *big.Int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		clear(s.Data)
		s.Data = s.Data[:0]
	}
}

// String lists the stack bottom first, space separated.
func (s *Stack) String() string {
	words := make([]string, len(s.Data))
	for n, val := range s.Data {
		words[n] = val.String()
	}
	return strings.Join(words, " ")
}
