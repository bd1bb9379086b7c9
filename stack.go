package calc

// stack is a LIFO backed by a slice.
type stack[T any] []T

func (s *stack[T]) push(v T) {
	*s = append(*s, v)
}

// pop removes and returns the top of the stack. The second result is false if
// the stack is empty.
func (s *stack[T]) pop() (T, bool) {
	var r T
	if len(*s) == 0 {
		return r, false
	}
	r = (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r, true
}

// top is a shortcut to get the top element of the stack without removing it.
func (s stack[T]) top() (T, bool) {
	var r T
	if len(s) == 0 {
		return r, false
	}
	return s[len(s)-1], true
}
