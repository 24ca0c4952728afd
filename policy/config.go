package policy

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable learning constants. The defaults follow the
// classic matchbox setup: generous seeding on early turns tapering to a
// single bead late, reward 3 for a win, 1 for a draw, forfeit 1 bead on
// a loss.
type Config struct {
	// SeedWeights[t-1] is the initial weight given to every empty cell
	// of a state first visited on turn t. Must be non-increasing.
	SeedWeights [9]int `yaml:"seed_weights"`
	WinReward   int    `yaml:"win_reward"`
	DrawReward  int    `yaml:"draw_reward"`
	LossPenalty int    `yaml:"loss_penalty"`
}

// DefaultConfig returns the standard schedule and rewards.
func DefaultConfig() Config {
	return Config{
		SeedWeights: [9]int{4, 4, 3, 3, 2, 2, 1, 1, 1},
		WinReward:   3,
		DrawReward:  1,
		LossPenalty: 1,
	}
}

// Validate checks the hard contract: non-negative integer weights and a
// seed schedule that never increases with turn number.
func (c Config) Validate() error {
	for t, w := range c.SeedWeights {
		if w < 0 {
			return fmt.Errorf("seed weight for turn %d is negative: %d", t+1, w)
		}
		if t > 0 && w > c.SeedWeights[t-1] {
			return fmt.Errorf("seed schedule must be non-increasing: turn %d has %d after %d", t+1, w, c.SeedWeights[t-1])
		}
	}
	if c.WinReward <= 0 {
		return fmt.Errorf("win reward must be positive, got %d", c.WinReward)
	}
	if c.DrawReward < 0 {
		return fmt.Errorf("draw reward must be non-negative, got %d", c.DrawReward)
	}
	if c.LossPenalty < 0 {
		return fmt.Errorf("loss penalty must be non-negative, got %d", c.LossPenalty)
	}
	return nil
}

// LoadConfig parses a YAML blob on top of the defaults, so omitted
// fields keep their default values.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// seedWeight returns the initial per-cell weight for a state first seen
// on the given 1-based turn.
func (c Config) seedWeight(turn int) int {
	if turn < 1 {
		turn = 1
	}
	if turn > len(c.SeedWeights) {
		turn = len(c.SeedWeights)
	}
	return c.SeedWeights[turn-1]
}
