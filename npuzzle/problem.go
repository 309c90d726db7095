package npuzzle

import (
	"fmt"

	"github.com/awgu/gbfhs/search"
)

// Problem binds one sliding-tile instance: an initial board, a goal board,
// and the discount applied to the Manhattan heuristic. It implements
// search.Domain[Board] and search.PairValidator.
//
// An unsolvable pair is a legitimate Problem; engines detect it by
// exhausting the frontier. Use Solvable to screen instances up front.
type Problem struct {
	initial  Board
	goal     Board
	dim      int
	discount int

	// tile value -> board index, precomputed for both heuristic anchors.
	initPos []int
	goalPos []int
}

// NewProblem validates the instance and returns it as a search domain.
// discount in [0, dim*dim) drops tiles below it from the Manhattan sum;
// 0 and 1 both keep the full heuristic (the blank never counts).
func NewProblem(initial, goal Board, discount int) (*Problem, error) {
	idim, err := validateBoard(initial)
	if err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}
	gdim, err := validateBoard(goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	if idim != gdim {
		return nil, ErrDimMismatch
	}
	if discount < 0 || discount >= idim*idim {
		return nil, ErrDiscountOutOfRange
	}
	return &Problem{
		initial:  initial,
		goal:     goal,
		dim:      idim,
		discount: discount,
		initPos:  tilePositions(initial),
		goalPos:  tilePositions(goal),
	}, nil
}

// Initial returns the bound initial board.
func (p *Problem) Initial() Board { return p.initial }

// Goal returns the bound goal board.
func (p *Problem) Goal() Board { return p.goal }

// Dim returns the side length of the instance.
func (p *Problem) Dim() int { return p.dim }

// Successors returns every board reachable by sliding one tile into the
// blank. Moves are their own inverses, so the move set is identical in
// both directions.
func (p *Problem) Successors(b Board, _ search.Direction) []Board {
	blank := blankIndex(b)
	row, col := blank/p.dim, blank%p.dim

	succs := make([]Board, 0, 4)
	if row > 0 {
		succs = append(succs, b.swap(blank, blank-p.dim)) // blank up
	}
	if row < p.dim-1 {
		succs = append(succs, b.swap(blank, blank+p.dim)) // blank down
	}
	if col > 0 {
		succs = append(succs, b.swap(blank, blank-1)) // blank left
	}
	if col < p.dim-1 {
		succs = append(succs, b.swap(blank, blank+1)) // blank right
	}
	return succs
}

// Heuristic returns the discounted Manhattan distance to the goal for
// Forward and to the initial board for Backward.
func (p *Problem) Heuristic(b Board, dir search.Direction) int {
	switch dir {
	case search.Forward:
		return p.manhattan(b, p.goalPos)
	case search.Backward:
		return p.manhattan(b, p.initPos)
	default:
		panic(fmt.Sprintf("npuzzle: invalid direction %d", dir))
	}
}

// manhattan sums |row delta| + |col delta| over tiles from max(1,discount)
// on; smaller tiles and the blank are ignored. Each move displaces one
// tile by one cell, so the sum is admissible.
func (p *Problem) manhattan(b Board, anchor []int) int {
	first := p.discount
	if first < 1 {
		first = 1
	}
	h := 0
	for idx := 0; idx < len(b); idx++ {
		v := int(b[idx])
		if v < first {
			continue
		}
		at := anchor[v]
		h += absInt(idx/p.dim-at/p.dim) + absInt(idx%p.dim-at%p.dim)
	}
	return h
}

// ValidatePair vets the exact pair a search was invoked with: both boards
// must be well-formed and must be this instance's own endpoints, since the
// heuristic anchors are precomputed from them.
func (p *Problem) ValidatePair(initial, goal Board) error {
	if _, err := validateBoard(initial); err != nil {
		return fmt.Errorf("initial: %w", err)
	}
	if _, err := validateBoard(goal); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	if initial != p.initial || goal != p.goal {
		return ErrPairMismatch
	}
	return nil
}

// tilePositions inverts a board: value -> index.
func tilePositions(b Board) []int {
	pos := make([]int, len(b))
	for i := 0; i < len(b); i++ {
		pos[b[i]] = i
	}
	return pos
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
