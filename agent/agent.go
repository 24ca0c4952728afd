// Package agent ties the pieces of a single decision together: reduce
// the live board to canonical form, draw a move from the matchbox
// memory, map it back onto the live board, and keep the audit trail the
// training update consumes at game end.
package agent

import (
	"sort"

	"github.com/rs/zerolog/log"

	"menace/game"
	"menace/policy"
	"menace/symmetry"
)

// Decision is one recorded move: the canonical state visited, the move
// chosen in canonical space, its image on the live board, and the
// transform linking the two. Kept only until Train or ResetHistory.
type Decision struct {
	State         string
	CanonicalMove int
	ActualMove    int
	Transform     int
}

// Agent is a learner assigned one mark for its lifetime. It owns its
// matchbox store and per-game decision history. Not safe for concurrent
// use: callers driving simulations in parallel need one agent each, or
// an external lock.
type Agent struct {
	mark    game.Cell
	store   *policy.Store
	history []Decision
}

// Option configures an Agent.
type Option func(*Agent)

// WithStore supplies a pre-built store, e.g. one restored from an
// exported blob or shared between the two sides of a self-play loop.
func WithStore(store *policy.Store) Option {
	return func(a *Agent) {
		a.store = store
	}
}

// New creates an agent playing the given mark. Without options it gets
// an empty store with the default learning constants.
func New(mark game.Cell, options ...Option) *Agent {
	a := &Agent{mark: mark}
	for _, option := range options {
		option(a)
	}
	if a.store == nil {
		a.store = policy.NewStore(policy.DefaultConfig())
	}
	return a
}

// Mark returns the agent's assigned mark.
func (a *Agent) Mark() game.Cell {
	return a.mark
}

// Decide picks a move for the live board and records it for training.
// The returned index is always an empty cell of board. Fails with
// policy.ErrNoLegalMove when the board is terminal or full.
func (a *Agent) Decide(board game.Board, mode policy.Mode) (int, error) {
	if board.Result() != game.Ongoing {
		return 0, policy.ErrNoLegalMove
	}
	id, transform := symmetry.Canonicalize(board)

	moves := board.ValidMoves()
	legal := make([]int, len(moves))
	for i, m := range moves {
		legal[i] = symmetry.ToCanonical(m, transform)
	}
	sort.Ints(legal)

	// Seeding reads occupancy off the canonical board itself, not the
	// legal set passed to selection.
	box := a.store.GetOrCreate(id, symmetry.Apply(board, transform))

	canonicalMove, err := a.store.SelectMove(box, legal, mode)
	if err != nil {
		return 0, err
	}
	actualMove := symmetry.ToActual(canonicalMove, transform)

	a.history = append(a.history, Decision{
		State:         id,
		CanonicalMove: canonicalMove,
		ActualMove:    actualMove,
		Transform:     transform,
	})
	return actualMove, nil
}

// Train feeds the final result back into every decision of the current
// game, then clears the history. Updates are best-effort per record: a
// failure is logged and the remaining records still train, so one bad
// record cannot poison subsequent games.
func (a *Agent) Train(result game.Result) {
	defer a.ResetHistory()
	outcome, ok := a.outcome(result)
	if !ok {
		log.Warn().Stringer("result", result).Msg("cannot train on a non-terminal result")
		return
	}
	for _, d := range a.history {
		if err := a.store.Update(d.State, d.CanonicalMove, outcome); err != nil {
			log.Warn().Err(err).Str("state", d.State).Int("move", d.CanonicalMove).
				Msg("skipping decision during training")
		}
	}
}

// outcome translates a terminal result to the agent's own perspective.
func (a *Agent) outcome(result game.Result) (policy.Outcome, bool) {
	switch result {
	case game.Draw:
		return policy.Draw, true
	case game.WinA:
		if a.mark == game.PlayerA {
			return policy.Win, true
		}
		return policy.Loss, true
	case game.WinB:
		if a.mark == game.PlayerB {
			return policy.Win, true
		}
		return policy.Loss, true
	default:
		return 0, false
	}
}

// ResetHistory drops the current game's decisions without training.
func (a *Agent) ResetHistory() {
	a.history = a.history[:0]
}

// ResetMemory forgets everything: the whole store and the history.
func (a *Agent) ResetMemory() {
	a.store.Reset()
	a.history = a.history[:0]
}

// ExportMemory serializes the learned memory.
func (a *Agent) ExportMemory() (string, error) {
	return a.store.Export()
}

// ImportMemory replaces the learned memory from an exported blob. On
// failure the prior memory is kept.
func (a *Agent) ImportMemory(blob string) error {
	return a.store.Import(blob)
}

// MemorySize returns the number of canonical states learned so far.
func (a *Agent) MemorySize() int {
	return a.store.Size()
}
