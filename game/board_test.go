package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, encoded string) Board {
	t.Helper()
	b, err := Decode(encoded)
	require.NoError(t, err)
	return b
}

func TestValidMoves(t *testing.T) {
	t.Run("empty board offers all nine cells", func(t *testing.T) {
		moves := NewBoard().ValidMoves()
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, moves)
	})

	t.Run("occupied cells are excluded, order ascending", func(t *testing.T) {
		b := mustBoard(t, "A___B___A")
		require.Equal(t, []int{1, 2, 3, 5, 6, 7}, b.ValidMoves())
	})

	t.Run("full board offers nothing", func(t *testing.T) {
		b := mustBoard(t, "ABABABABA")
		require.Empty(t, b.ValidMoves())
	})
}

func TestApply(t *testing.T) {
	t.Run("returns a new board, original untouched", func(t *testing.T) {
		original := NewBoard()
		next, err := original.Apply(4, PlayerA)
		require.NoError(t, err)
		require.Equal(t, PlayerA, next[4])
		require.Equal(t, Empty, original[4], "Apply must not mutate the receiver")
	})

	t.Run("rejects occupied cells", func(t *testing.T) {
		b := mustBoard(t, "A________")
		_, err := b.Apply(0, PlayerB)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("rejects out-of-range indices", func(t *testing.T) {
		b := NewBoard()
		_, err := b.Apply(9, PlayerA)
		require.ErrorIs(t, err, ErrIllegalMove)
		_, err = b.Apply(-1, PlayerA)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("rejects placing an empty mark", func(t *testing.T) {
		_, err := NewBoard().Apply(0, Empty)
		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestResult(t *testing.T) {
	t.Run("empty board is ongoing", func(t *testing.T) {
		require.Equal(t, Ongoing, NewBoard().Result())
	})

	t.Run("detects each winning line", func(t *testing.T) {
		wins := []string{
			"AAA______", "___AAA___", "______AAA", // rows
			"A__A__A__", "_A__A__A_", "__A__A__A", // columns
			"A___A___A", "__A_A_A__", // diagonals
		}
		for _, encoded := range wins {
			require.Equal(t, WinA, mustBoard(t, encoded).Result(), "board %s", encoded)
		}
	})

	t.Run("detects wins for the second player", func(t *testing.T) {
		require.Equal(t, WinB, mustBoard(t, "B___B___B").Result())
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		require.Equal(t, Draw, mustBoard(t, "ABABBABAB").Result())
	})

	t.Run("two in a row is still ongoing until completed", func(t *testing.T) {
		b := mustBoard(t, "AA__B____")
		require.Equal(t, Ongoing, b.Result())

		next, err := b.Apply(2, PlayerA)
		require.NoError(t, err)
		require.Equal(t, WinA, next.Result(), "completing the top row should win for PlayerA")
	})
}

func TestTurnAndToMove(t *testing.T) {
	b := NewBoard()
	require.Equal(t, 1, b.Turn())
	require.Equal(t, PlayerA, b.ToMove())

	b, err := b.Apply(0, PlayerA)
	require.NoError(t, err)
	require.Equal(t, 2, b.Turn())
	require.Equal(t, PlayerB, b.ToMove())
}

func TestEncodeDecode(t *testing.T) {
	t.Run("round trips", func(t *testing.T) {
		encoded := "A_B_A_B_A"
		b, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, encoded, b.Encode())
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := Decode("A_B")
		require.Error(t, err)
	})

	t.Run("rejects unknown characters", func(t *testing.T) {
		_, err := Decode("A_B_X_B_A")
		require.Error(t, err)
	})
}
