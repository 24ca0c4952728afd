// Package engine drives complete games between two players and feeds
// terminal results back into learning agents.
package engine

import (
	"fmt"

	"menace/game"
)

// Engine runs one game between two players holding opposite marks.
type Engine struct {
	players map[game.Cell]Player
}

// NewEngine pairs two players. Panics unless one plays PlayerA and the
// other PlayerB.
func NewEngine(first, second Player) *Engine {
	if first.Mark() == second.Mark() || first.Mark() == game.Empty || second.Mark() == game.Empty {
		panic("engine needs one player per mark")
	}
	return &Engine{
		players: map[game.Cell]Player{
			first.Mark():  first,
			second.Mark(): second,
		},
	}
}

// Run plays from the empty board to a terminal state and returns the
// result. PlayerA always moves first; a full game is at most 9 moves.
func (e *Engine) Run() (game.Result, error) {
	board := game.NewBoard()
	for board.Result() == game.Ongoing {
		mark := board.ToMove()
		move, err := e.players[mark].ChooseMove(board)
		if err != nil {
			return game.Ongoing, fmt.Errorf("player %s failed to move: %w", mark, err)
		}
		board, err = board.Apply(move, mark)
		if err != nil {
			return game.Ongoing, fmt.Errorf("player %s played an illegal move: %w", mark, err)
		}
	}
	return board.Result(), nil
}
