package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"menace/agent"
	"menace/engine"
	"menace/experiments"
	"menace/game"
	"menace/policy"
)

func main() {
	games := flag.Int("games", 5000, "number of training games")
	opponent := flag.String("opponent", "random", "training opponent: random, heuristic or self")
	configPath := flag.String("config", "", "optional YAML file with learning constants")
	loadPath := flag.String("load", "", "memory blob to load before training")
	savePath := flag.String("save", "", "write the learned memory blob here")
	curve := flag.Bool("curve", false, "run the learning curve experiment instead of plain training")
	flag.Parse()

	cfg := policy.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg, err = policy.LoadConfig(data)
		if err != nil {
			fatal(err)
		}
	}

	if *curve {
		if err := experiments.RunLearningCurve(cfg, *opponent); err != nil {
			fatal(err)
		}
		return
	}

	store := policy.NewStore(cfg)
	learner := agent.New(game.PlayerA, agent.WithStore(store))
	if *loadPath != "" {
		blob, err := os.ReadFile(*loadPath)
		if err != nil {
			fatal(err)
		}
		if err := learner.ImportMemory(string(blob)); err != nil {
			fatal(err)
		}
		log.Info().Int("states", learner.MemorySize()).Msg("loaded memory")
	}

	stats, err := train(learner, store, *opponent, *games)
	if err != nil {
		fatal(err)
	}
	log.Info().Stringer("stats", stats).Int("states", learner.MemorySize()).Msg("training finished")

	if *savePath != "" {
		blob, err := learner.ExportMemory()
		if err != nil {
			fatal(err)
		}
		if err := os.WriteFile(*savePath, []byte(blob), 0644); err != nil {
			fatal(err)
		}
		log.Info().Str("path", *savePath).Msg("saved memory")
	}
}

func train(learner *agent.Agent, store *policy.Store, opponent string, games int) (engine.Stats, error) {
	if opponent == "self" {
		// Both sides learn from the shared store; the loop is
		// single-threaded so no locking is needed.
		partner := agent.New(game.PlayerB, agent.WithStore(store))
		return engine.SelfPlay(learner, partner, games)
	}
	player, err := engine.Opponent(opponent, learner.Mark().Other())
	if err != nil {
		return engine.Stats{}, err
	}
	return engine.NewTrainer(learner, player).Train(games)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
