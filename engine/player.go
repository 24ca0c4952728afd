package engine

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"menace/agent"
	"menace/game"
	"menace/policy"
)

// Player is one side of a game.
type Player interface {
	Mark() game.Cell
	ChooseMove(board game.Board) (int, error)
}

// RandomPlayer plays a uniformly random legal move.
type RandomPlayer struct {
	mark game.Cell
	rng  *rand.Rand
}

func NewRandomPlayer(mark game.Cell) *RandomPlayer {
	return &RandomPlayer{
		mark: mark,
		rng:  rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (p *RandomPlayer) Mark() game.Cell {
	return p.mark
}

func (p *RandomPlayer) ChooseMove(board game.Board) (int, error) {
	moves := board.ValidMoves()
	if len(moves) == 0 {
		return 0, policy.ErrNoLegalMove
	}
	return moves[p.rng.Intn(len(moves))], nil
}

// HeuristicPlayer takes an immediate win when one exists, otherwise
// blocks the opponent's immediate win, otherwise plays randomly.
type HeuristicPlayer struct {
	mark game.Cell
	rng  *rand.Rand
}

func NewHeuristicPlayer(mark game.Cell) *HeuristicPlayer {
	return &HeuristicPlayer{
		mark: mark,
		rng:  rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (p *HeuristicPlayer) Mark() game.Cell {
	return p.mark
}

func (p *HeuristicPlayer) ChooseMove(board game.Board) (int, error) {
	moves := board.ValidMoves()
	if len(moves) == 0 {
		return 0, policy.ErrNoLegalMove
	}
	if m, ok := winningMove(board, moves, p.mark); ok {
		return m, nil
	}
	if m, ok := winningMove(board, moves, p.mark.Other()); ok {
		return m, nil
	}
	return moves[p.rng.Intn(len(moves))], nil
}

// winningMove returns a move in moves that completes a line for mark.
func winningMove(board game.Board, moves []int, mark game.Cell) (int, bool) {
	want := game.WinA
	if mark == game.PlayerB {
		want = game.WinB
	}
	for _, m := range moves {
		next, err := board.Apply(m, mark)
		if err != nil {
			panic(err)
		}
		if next.Result() == want {
			return m, true
		}
	}
	return 0, false
}

// LearnerPlayer adapts an agent to the Player interface, pinning the
// selection mode for the whole game.
type LearnerPlayer struct {
	Agent *agent.Agent
	Mode  policy.Mode
}

func (p *LearnerPlayer) Mark() game.Cell {
	return p.Agent.Mark()
}

func (p *LearnerPlayer) ChooseMove(board game.Board) (int, error) {
	return p.Agent.Decide(board, p.Mode)
}

// Opponent builds a non-learning player by name, for CLI wiring.
func Opponent(name string, mark game.Cell) (Player, error) {
	switch name {
	case "random":
		return NewRandomPlayer(mark), nil
	case "heuristic":
		return NewHeuristicPlayer(mark), nil
	default:
		return nil, fmt.Errorf("unknown opponent %q", name)
	}
}
