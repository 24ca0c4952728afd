package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"menace/agent"
	"menace/game"
	"menace/policy"
)

// Stats tallies game results from the learner's perspective.
type Stats struct {
	Games  int
	Wins   int
	Draws  int
	Losses int
}

func (s *Stats) add(result game.Result, mark game.Cell) {
	s.Games++
	switch {
	case result == game.Draw:
		s.Draws++
	case result == game.WinA && mark == game.PlayerA,
		result == game.WinB && mark == game.PlayerB:
		s.Wins++
	default:
		s.Losses++
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("%d games: %d wins, %d draws, %d losses", s.Games, s.Wins, s.Draws, s.Losses)
}

const logEvery = 500 // games between progress lines

// Trainer plays a learner against a fixed opponent in a tight
// synchronous loop, training after every game. There is no cancellation
// point inside a game: each game is fully trained or not played at all.
type Trainer struct {
	learner  *agent.Agent
	opponent Player
}

// NewTrainer pairs a learner with an opponent. Panics if they hold the
// same mark.
func NewTrainer(learner *agent.Agent, opponent Player) *Trainer {
	if learner.Mark() == opponent.Mark() {
		panic("learner and opponent must hold opposite marks")
	}
	return &Trainer{learner: learner, opponent: opponent}
}

// Train plays the given number of games probabilistically and feeds
// every terminal result back into the learner.
func (t *Trainer) Train(games int) (Stats, error) {
	stats := Stats{}
	learner := &LearnerPlayer{Agent: t.learner, Mode: policy.Probabilistic}
	for i := 0; i < games; i++ {
		e := NewEngine(learner, t.opponent)
		result, err := e.Run()
		if err != nil {
			t.learner.ResetHistory()
			return stats, fmt.Errorf("training game %d: %w", i+1, err)
		}
		t.learner.Train(result)
		stats.add(result, t.learner.Mark())
		if (i+1)%logEvery == 0 {
			log.Info().Int("games", i+1).Int("states", t.learner.MemorySize()).
				Msg("training progress")
		}
	}
	return stats, nil
}

// Evaluate plays the given number of games in greedy mode without
// training, discarding the decision history after each game.
func (t *Trainer) Evaluate(games int) (Stats, error) {
	stats := Stats{}
	learner := &LearnerPlayer{Agent: t.learner, Mode: policy.Greedy}
	for i := 0; i < games; i++ {
		e := NewEngine(learner, t.opponent)
		result, err := e.Run()
		t.learner.ResetHistory()
		if err != nil {
			return stats, fmt.Errorf("evaluation game %d: %w", i+1, err)
		}
		stats.add(result, t.learner.Mark())
	}
	return stats, nil
}

// SelfPlay trains two learners against each other, each receiving the
// same terminal result translated to its own perspective. The loop is
// single-threaded, so the agents may share one store without extra
// locking.
func SelfPlay(a, b *agent.Agent, games int) (Stats, error) {
	if a.Mark() == b.Mark() {
		panic("self-play learners must hold opposite marks")
	}
	stats := Stats{}
	first := &LearnerPlayer{Agent: a, Mode: policy.Probabilistic}
	second := &LearnerPlayer{Agent: b, Mode: policy.Probabilistic}
	for i := 0; i < games; i++ {
		e := NewEngine(first, second)
		result, err := e.Run()
		if err != nil {
			a.ResetHistory()
			b.ResetHistory()
			return stats, fmt.Errorf("self-play game %d: %w", i+1, err)
		}
		a.Train(result)
		b.Train(result)
		stats.add(result, a.Mark())
		if (i+1)%logEvery == 0 {
			log.Info().Int("games", i+1).Int("states", a.MemorySize()).
				Msg("self-play progress")
		}
	}
	return stats, nil
}
