package host

import (
	"fmt"

	"txkernel/pkg/constants"
	"txkernel/pkg/types"
)

// Stack is the operand stack of a process. Element 0 is the top.
type Stack struct {
	elements []types.Felt // top is the last element
}

func NewStack(elements ...types.Felt) *Stack {
	s := &Stack{}
	for i := len(elements) - 1; i >= 0; i-- {
		s.Push(elements[i])
	}
	return s
}

func (s *Stack) Push(f types.Felt) {
	s.elements = append(s.elements, f)
}

// PushWord pushes w so that w[0] ends up on top.
func (s *Stack) PushWord(w types.Word) {
	for i := len(w) - 1; i >= 0; i-- {
		s.Push(w[i])
	}
}

func (s *Stack) Pop() (types.Felt, error) {
	if len(s.elements) == 0 {
		return 0, fmt.Errorf("stack underflow")
	}
	top := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return top, nil
}

func (s *Stack) Depth() int {
	return len(s.elements)
}

// Get returns the i-th element from the top, or zero past the bottom.
func (s *Stack) Get(i int) types.Felt {
	if i < 0 || i >= len(s.elements) {
		return 0
	}
	return s.elements[len(s.elements)-1-i]
}

// Word returns the i-th word from the top. Missing elements read as zero.
func (s *Stack) Word(i int) types.Word {
	var w types.Word
	for j := range w {
		w[j] = s.Get(i*constants.WordSize + j)
	}
	return w
}
