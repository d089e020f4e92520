package intcalc

// stack is a plain LIFO. The zero value is an empty stack.
type stack[T any] struct {
	v []T
}

func (s *stack[T]) push(x T) {
	s.v = append(s.v, x)
}

// pop removes and returns the top element. Panics on an empty stack;
// callers check empty first or rely on arity guaranteed by validation.
func (s *stack[T]) pop() T {
	x := s.v[len(s.v)-1]
	s.v = s.v[:len(s.v)-1]
	return x
}

// peek returns the top element without removing it. Panics on an empty
// stack.
func (s *stack[T]) peek() T {
	return s.v[len(s.v)-1]
}

func (s *stack[T]) empty() bool {
	return len(s.v) == 0
}
