package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"menace/game"
)

func decode(t *testing.T, encoded string) game.Board {
	t.Helper()
	b, err := game.Decode(encoded)
	require.NoError(t, err)
	return b
}

func TestRandomPlayer(t *testing.T) {
	t.Run("always plays a legal move", func(t *testing.T) {
		p := NewRandomPlayer(game.PlayerA)
		b := decode(t, "AB_AB____")
		for i := 0; i < 50; i++ {
			move, err := p.ChooseMove(b)
			require.NoError(t, err)
			require.Equal(t, game.Empty, b[move])
		}
	})

	t.Run("fails on a full board", func(t *testing.T) {
		p := NewRandomPlayer(game.PlayerA)
		_, err := p.ChooseMove(decode(t, "ABABBABAB"))
		require.Error(t, err)
	})
}

func TestHeuristicPlayer(t *testing.T) {
	t.Run("takes an immediate win", func(t *testing.T) {
		p := NewHeuristicPlayer(game.PlayerA)
		b := decode(t, "AA__B_B__")
		move, err := p.ChooseMove(b)
		require.NoError(t, err)
		require.Equal(t, 2, move, "completing the top row wins")
	})

	t.Run("blocks the opponent's immediate win", func(t *testing.T) {
		p := NewHeuristicPlayer(game.PlayerB)
		b := decode(t, "AA_B_____")
		move, err := p.ChooseMove(b)
		require.NoError(t, err)
		require.Equal(t, 2, move, "cell 2 is the only block")
	})

	t.Run("prefers winning over blocking", func(t *testing.T) {
		p := NewHeuristicPlayer(game.PlayerB)
		// A threatens cell 2, but B can win at cell 5 right now.
		b := decode(t, "AA_BB_A__")
		move, err := p.ChooseMove(b)
		require.NoError(t, err)
		require.Equal(t, 5, move)
	})
}

func TestOpponent(t *testing.T) {
	for _, name := range []string{"random", "heuristic"} {
		p, err := Opponent(name, game.PlayerB)
		require.NoError(t, err)
		require.Equal(t, game.PlayerB, p.Mark())
	}

	_, err := Opponent("minimax", game.PlayerB)
	require.Error(t, err)
}
