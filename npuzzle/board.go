package npuzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Board is an immutable sliding-tile position: dim*dim bytes row-major,
// values 0..dim*dim-1 with 0 as the blank. Boards compare by value and
// serve directly as map keys.
type Board string

const (
	// minDim is the smallest meaningful board.
	minDim = 2
	// maxDim keeps every tile representable in a single byte.
	maxDim = 15
)

// NewBoard builds a Board from row-major tile values and validates that
// they form a permutation of 0..dim*dim-1 for a dim in [2, 15].
func NewBoard(values []int) (Board, error) {
	dim, err := dimOf(len(values))
	if err != nil {
		return "", err
	}
	n := dim * dim
	b := make([]byte, n)
	seen := make([]bool, n)
	for i, v := range values {
		if v < 0 || v >= n || seen[v] {
			return "", fmt.Errorf("%w: value %d at index %d", ErrNotPermutation, v, i)
		}
		seen[v] = true
		b[i] = byte(v)
	}
	return Board(b), nil
}

// Solved returns the canonical goal for dim: tiles 1..dim*dim-1 in order,
// blank last.
func Solved(dim int) (Board, error) {
	if dim < minDim || dim > maxDim {
		return "", ErrDimOutOfRange
	}
	n := dim * dim
	b := make([]byte, n)
	for i := 0; i < n-1; i++ {
		b[i] = byte(i + 1)
	}
	b[n-1] = 0
	return Board(b), nil
}

// Dim returns the side length of the board.
func (b Board) Dim() int {
	dim, err := dimOf(len(b))
	if err != nil {
		panic(fmt.Sprintf("npuzzle: malformed board of length %d", len(b)))
	}
	return dim
}

// Ints returns the tiles as a fresh row-major int slice.
func (b Board) Ints() []int {
	out := make([]int, len(b))
	for i := 0; i < len(b); i++ {
		out[i] = int(b[i])
	}
	return out
}

// String renders the tiles row-major, space-separated, blank as 0.
func (b Board) String() string {
	var sb strings.Builder
	for i := 0; i < len(b); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(b[i])))
	}
	return sb.String()
}

// Solvable reports whether g is reachable from s by blank moves. The
// boards must be well-formed and share one dim. For odd dims the tile
// inversion parities must match; even dims fold the blank's row into the
// invariant.
func Solvable(s, g Board) (bool, error) {
	sd, err := validateBoard(s)
	if err != nil {
		return false, fmt.Errorf("board: %w", err)
	}
	gd, err := validateBoard(g)
	if err != nil {
		return false, fmt.Errorf("goal: %w", err)
	}
	if sd != gd {
		return false, ErrDimMismatch
	}
	return parityInvariant(s, sd) == parityInvariant(g, gd), nil
}

// dimOf returns the side length for a byte length, or an error when the
// length is not the square of a dim in [2, 15].
func dimOf(n int) (int, error) {
	for d := minDim; d <= maxDim; d++ {
		if d*d == n {
			return d, nil
		}
	}
	if n > maxDim*maxDim {
		return 0, ErrDimOutOfRange
	}
	return 0, ErrNotSquare
}

// validateBoard re-checks the permutation contract for an arbitrary Board
// value and returns its dim.
func validateBoard(b Board) (int, error) {
	dim, err := dimOf(len(b))
	if err != nil {
		return 0, err
	}
	n := dim * dim
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := int(b[i])
		if v >= n || seen[v] {
			return 0, fmt.Errorf("%w: value %d at index %d", ErrNotPermutation, v, i)
		}
		seen[v] = true
	}
	return dim, nil
}

// blankIndex locates the blank tile.
func blankIndex(b Board) int {
	for i := 0; i < len(b); i++ {
		if b[i] == 0 {
			return i
		}
	}
	panic("npuzzle: board has no blank")
}

// inversions counts tile pairs out of order, blank excluded.
func inversions(b Board) int {
	inv := 0
	for i := 0; i < len(b); i++ {
		if b[i] == 0 {
			continue
		}
		for j := i + 1; j < len(b); j++ {
			if b[j] != 0 && b[j] < b[i] {
				inv++
			}
		}
	}
	return inv
}

// parityInvariant is the quantity blank moves preserve mod 2.
func parityInvariant(b Board, dim int) int {
	inv := inversions(b)
	if dim%2 == 0 {
		inv += blankIndex(b) / dim
	}
	return inv % 2
}

// swap returns b with positions i and j exchanged.
func (b Board) swap(i, j int) Board {
	bs := []byte(b)
	bs[i], bs[j] = bs[j], bs[i]
	return Board(bs)
}
