package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 4, cfg.seedWeight(1))
	require.Equal(t, 3, cfg.seedWeight(4))
	require.Equal(t, 1, cfg.seedWeight(9))
	require.Equal(t, 1, cfg.seedWeight(42), "turns past the table clamp to the last entry")
}

func TestConfigValidate(t *testing.T) {
	t.Run("rejects an increasing seed schedule", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.SeedWeights = [9]int{1, 2, 1, 1, 1, 1, 1, 1, 1}
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects negative seeds", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.SeedWeights[8] = -1
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects a non-positive win reward", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.WinReward = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects a negative loss penalty", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LossPenalty = -2
		require.Error(t, cfg.Validate())
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("overrides on top of defaults", func(t *testing.T) {
		cfg, err := LoadConfig([]byte("win_reward: 5\n"))
		require.NoError(t, err)
		require.Equal(t, 5, cfg.WinReward)
		require.Equal(t, 1, cfg.DrawReward, "omitted fields keep their defaults")
		require.Equal(t, DefaultConfig().SeedWeights, cfg.SeedWeights)
	})

	t.Run("parses a full schedule", func(t *testing.T) {
		cfg, err := LoadConfig([]byte("seed_weights: [8, 8, 4, 4, 2, 2, 1, 1, 1]\n"))
		require.NoError(t, err)
		require.Equal(t, 8, cfg.seedWeight(2))
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := LoadConfig([]byte("seed_weights: [not a number"))
		require.Error(t, err)
	})

	t.Run("rejects schedules that fail validation", func(t *testing.T) {
		_, err := LoadConfig([]byte("seed_weights: [1, 4, 1, 1, 1, 1, 1, 1, 1]\n"))
		require.Error(t, err)
	})
}
