package pancake

import (
	"fmt"
	"strconv"
	"strings"
)

// Stack is an immutable pancake stack. Each byte holds one pancake size,
// top first; the final byte is the plate, which no flip may move. A valid
// stack is a permutation of 1..len(s), so stacks compare by value and copy
// for free.
type Stack string

const (
	// minLen is the smallest meaningful stack: one pancake on the plate.
	minLen = 2
	// maxLen keeps every size representable in a single byte.
	maxLen = 255
)

// NewStack builds a Stack from top-to-bottom sizes and validates that they
// form a permutation of 1..n.
func NewStack(values []int) (Stack, error) {
	n := len(values)
	if n < minLen {
		return "", ErrStackTooShort
	}
	if n > maxLen {
		return "", ErrStackTooLong
	}
	b := make([]byte, n)
	seen := make([]bool, n+1)
	for i, v := range values {
		if v < 1 || v > n || seen[v] {
			return "", fmt.Errorf("%w: value %d at index %d", ErrNotPermutation, v, i)
		}
		seen[v] = true
		b[i] = byte(v)
	}
	return Stack(b), nil
}

// Sorted returns the ascending stack of n elements (plate = n), the goal
// shape of every instance.
func Sorted(n int) (Stack, error) {
	if n < minLen {
		return "", ErrStackTooShort
	}
	if n > maxLen {
		return "", ErrStackTooLong
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i + 1)
	}
	return Stack(b), nil
}

// Ints returns the stack as a fresh int slice, top first.
func (s Stack) Ints() []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i])
	}
	return out
}

// String renders the stack as space-separated sizes, top first.
func (s Stack) String() string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(s[i])))
	}
	return sb.String()
}

// Flip reverses the top k+1 pancakes. Valid k is 1..len(s)-2: flipping a
// single pancake is a no-op and the plate may not move. An out-of-range k
// panics; flip indices are generated by the expansion loop, never taken
// from user input.
func (s Stack) Flip(k int) Stack {
	if k < 1 || k > len(s)-2 {
		panic(fmt.Sprintf("pancake: flip index %d out of range [1,%d]", k, len(s)-2))
	}
	b := []byte(s)
	for i, j := 0, k; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return Stack(b)
}

// validate re-checks the permutation contract for an arbitrary Stack value.
func (s Stack) validate() error {
	n := len(s)
	if n < minLen {
		return ErrStackTooShort
	}
	seen := make([]bool, n+1)
	for i := 0; i < n; i++ {
		v := int(s[i])
		if v < 1 || v > n || seen[v] {
			return fmt.Errorf("%w: value %d at index %d", ErrNotPermutation, v, i)
		}
		seen[v] = true
	}
	return nil
}

// isSorted reports whether s is the ascending canonical stack.
func (s Stack) isSorted() bool {
	for i := 0; i < len(s); i++ {
		if s[i] != byte(i+1) {
			return false
		}
	}
	return true
}
