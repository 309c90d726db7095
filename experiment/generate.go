package experiment

import (
	"math/rand"

	"github.com/awgu/gbfhs/npuzzle"
	"github.com/awgu/gbfhs/pancake"
	"github.com/awgu/gbfhs/search"
)

// shuffleIntsInPlace performs an in-place Fisher-Yates shuffle of a using
// rng. If rng==nil, the default deterministic stream is used (seed==0
// policy).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var (
		r *rand.Rand
		i int
		j int
	)
	r = rng
	if r == nil {
		r = search.NewRNG(0)
	}

	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// RandomStack draws a pancake stack of total length n: values 1..n-1
// shuffled uniformly with the plate n fixed last. Every draw is solvable
// toward the ascending goal.
func RandomStack(n int, rng *rand.Rand) (pancake.Stack, error) {
	if n < 2 {
		return "", pancake.ErrStackTooShort
	}
	vals := make([]int, n)
	for i := 0; i < n-1; i++ {
		vals[i] = i + 1
	}
	shuffleIntsInPlace(vals[:n-1], rng)
	vals[n-1] = n
	return pancake.NewStack(vals)
}

// RandomBoard draws a dim*dim sliding-tile board uniformly among the
// permutations reachable from goal, resampling draws whose parity puts them
// in the unreachable half.
func RandomBoard(dim int, goal npuzzle.Board, rng *rand.Rand) (npuzzle.Board, error) {
	if dim < 2 {
		return "", npuzzle.ErrDimOutOfRange
	}
	vals := make([]int, dim*dim)
	for i := range vals {
		vals[i] = i
	}
	for {
		shuffleIntsInPlace(vals, rng)
		b, err := npuzzle.NewBoard(vals)
		if err != nil {
			return "", err
		}
		ok, err := npuzzle.Solvable(b, goal)
		if err != nil {
			return "", err
		}
		if ok {
			return b, nil
		}
	}
}
