// Package experiments measures how quickly the learner improves:
// training runs interleaved with frozen greedy evaluations, results
// written out as CSV for plotting.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"menace/agent"
	"menace/engine"
	"menace/experiments/metrics"
	"menace/game"
	"menace/policy"
)

const EvalGames = 200 // per checkpoint and opponent

// checkpoints are the cumulative training game counts at which the
// learner is frozen and evaluated.
var checkpoints = []int{0, 100, 500, 1000, 2500, 5000, 10000}

// RunLearningCurve trains a fresh learner against the named opponent
// and records greedy win/draw/loss rates against both the random and
// the heuristic opponent at each checkpoint.
func RunLearningCurve(cfg policy.Config, trainOpponent string) error {
	log.Info().Str("opponent", trainOpponent).Msg("starting learning curve experiment...")

	learner := agent.New(game.PlayerA, agent.WithStore(policy.NewStore(cfg)))
	opponent, err := engine.Opponent(trainOpponent, game.PlayerB)
	if err != nil {
		return err
	}
	trainer := engine.NewTrainer(learner, opponent)

	checkpointRecords := []metrics.CheckpointRecord{}
	trainingRecords := []metrics.TrainingRecord{}

	trained := 0
	for _, checkpoint := range checkpoints {
		if batch := checkpoint - trained; batch > 0 {
			stats, err := trainer.Train(batch)
			if err != nil {
				return fmt.Errorf("training to checkpoint %d: %w", checkpoint, err)
			}
			trainingRecords = append(trainingRecords, metrics.TrainingRecord{
				FromGame: trained + 1,
				ToGame:   checkpoint,
				Opponent: trainOpponent,
				Wins:     stats.Wins,
				Draws:    stats.Draws,
				Losses:   stats.Losses,
			})
			trained = checkpoint
		}

		for _, evalOpponent := range []string{"random", "heuristic"} {
			record, err := evaluate(learner, evalOpponent, trained)
			if err != nil {
				return fmt.Errorf("evaluating at checkpoint %d: %w", checkpoint, err)
			}
			checkpointRecords = append(checkpointRecords, record)
			log.Info().Int("trained", trained).Str("opponent", evalOpponent).
				Int("wins", record.Wins).Int("draws", record.Draws).Int("losses", record.Losses).
				Msg("checkpoint evaluated")
		}
	}

	log.Info().Msg("completed learning curve experiment")

	writer, err := metrics.NewWriter("learning_curve")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteTrainingRecords(trainingRecords); err != nil {
		return fmt.Errorf("failed to store training records: %w", err)
	}
	if err := writer.WriteCheckpointRecords(checkpointRecords); err != nil {
		return fmt.Errorf("failed to store checkpoint records: %w", err)
	}
	log.Info().Msg("stored experiment records")
	return nil
}

// evaluate runs frozen greedy games against one opponent.
func evaluate(learner *agent.Agent, opponentName string, trained int) (metrics.CheckpointRecord, error) {
	opponent, err := engine.Opponent(opponentName, learner.Mark().Other())
	if err != nil {
		return metrics.CheckpointRecord{}, err
	}
	stats, err := engine.NewTrainer(learner, opponent).Evaluate(EvalGames)
	if err != nil {
		return metrics.CheckpointRecord{}, err
	}
	return metrics.CheckpointRecord{
		TrainedGames: trained,
		Opponent:     opponentName,
		Games:        stats.Games,
		Wins:         stats.Wins,
		Draws:        stats.Draws,
		Losses:       stats.Losses,
		States:       learner.MemorySize(),
	}, nil
}
