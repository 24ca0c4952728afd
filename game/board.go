package game

import (
	"errors"
	"fmt"
)

// Cell is the content of one board square.
type Cell int

const (
	Empty Cell = iota
	PlayerA     // moves first
	PlayerB
)

func (c Cell) String() string {
	switch c {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "_"
	}
}

// Other returns the opposing mark. Other(Empty) is Empty.
func (c Cell) Other() Cell {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

// Result is the terminal status of a board.
type Result int

const (
	Ongoing Result = iota
	WinA
	WinB
	Draw
)

func (r Result) String() string {
	switch r {
	case WinA:
		return "PlayerA"
	case WinB:
		return "PlayerB"
	case Draw:
		return "Draw"
	default:
		return "Ongoing"
	}
}

// ErrIllegalMove reports a move onto an occupied or out-of-range cell.
var ErrIllegalMove = errors.New("illegal move")

// Board is a 3x3 grid in row-major order. The zero value is the empty
// board. Boards are values: Apply returns a new copy, the receiver is
// never modified.
type Board [9]Cell

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// lines are the 8 winning triples: 3 rows, 3 columns, 2 diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// ValidMoves returns the indices of empty cells in ascending order.
func (b Board) ValidMoves() []int {
	moves := make([]int, 0, 9)
	for i, c := range b {
		if c == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// Apply places mark at index and returns the resulting board.
func (b Board) Apply(index int, mark Cell) (Board, error) {
	if index < 0 || index >= len(b) {
		return b, fmt.Errorf("%w: index %d out of range", ErrIllegalMove, index)
	}
	if b[index] != Empty {
		return b, fmt.Errorf("%w: cell %d is occupied", ErrIllegalMove, index)
	}
	if mark != PlayerA && mark != PlayerB {
		return b, fmt.Errorf("%w: cannot place %q", ErrIllegalMove, mark.String())
	}
	b[index] = mark
	return b, nil
}

// Result checks the 8 winning lines, then fullness.
func (b Board) Result() Result {
	for _, l := range lines {
		if b[l[0]] != Empty && b[l[0]] == b[l[1]] && b[l[1]] == b[l[2]] {
			if b[l[0]] == PlayerA {
				return WinA
			}
			return WinB
		}
	}
	for _, c := range b {
		if c == Empty {
			return Ongoing
		}
	}
	return Draw
}

// Occupied returns the number of non-empty cells.
func (b Board) Occupied() int {
	n := 0
	for _, c := range b {
		if c != Empty {
			n++
		}
	}
	return n
}

// Turn returns the 1-based turn number: 1 on the empty board, 9 when a
// single cell remains.
func (b Board) Turn() int {
	return 1 + b.Occupied()
}

// ToMove returns whose turn it is. Marks alternate starting with PlayerA.
func (b Board) ToMove() Cell {
	if b.Occupied()%2 == 0 {
		return PlayerA
	}
	return PlayerB
}

// Encode serializes the board to a 9-character string over '_', 'A', 'B'.
func (b Board) Encode() string {
	buf := make([]byte, len(b))
	for i, c := range b {
		buf[i] = c.String()[0]
	}
	return string(buf)
}

// Decode parses the Encode format.
func Decode(s string) (Board, error) {
	var b Board
	if len(s) != len(b) {
		return b, fmt.Errorf("board encoding must be %d characters, got %d", len(b), len(s))
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '_':
			b[i] = Empty
		case 'A':
			b[i] = PlayerA
		case 'B':
			b[i] = PlayerB
		default:
			return Board{}, fmt.Errorf("invalid cell %q at index %d", s[i], i)
		}
	}
	return b, nil
}

func (b Board) String() string {
	return b.Encode()
}
