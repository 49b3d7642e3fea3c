package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot(t *testing.T, cells ...entity.Marker) (*BotPlayer, *entity.Grid) {
	t.Helper()

	grid := entity.NewGrid()
	for pos, marker := range cells {
		require.NoError(t, grid.Set(pos, marker))
	}

	return NewBotPlayer(entity.MarkerO, entity.NewPlayer(entity.MarkerX), grid), grid
}

func TestBotPlayer_NextMove(t *testing.T) {
	const (
		e = entity.Empty
		x = entity.MarkerX
		o = entity.MarkerO
	)

	t.Run("Takes the center on an empty board", func(t *testing.T) {
		// Given: a bot on an empty board
		bot, _ := newTestBot(t)

		// When: asking for the next move
		move, err := bot.NextMove()

		// Then: the center should be played
		require.NoError(t, err)
		assert.Equal(t, 4, move)
	})

	t.Run("Wins before blocking", func(t *testing.T) {
		// Given: both the bot and the opponent are one move away from a line
		bot, _ := newTestBot(t, x, x, e, o, o, e, e, e, e)

		// When: asking for the next move
		move, err := bot.NextMove()

		// Then: the winning cell should be played
		require.NoError(t, err)
		assert.Equal(t, 5, move)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: the opponent is one move away from the top row
		bot, _ := newTestBot(t, x, x, e, e, o, e, e, e, e)

		// When: asking for the next move
		move, err := bot.NextMove()

		// Then: the blocking cell should be played
		require.NoError(t, err)
		assert.Equal(t, 2, move)
	})

	t.Run("Prefers corners when the center is taken", func(t *testing.T) {
		// Given: only the center is occupied
		bot, _ := newTestBot(t, e, e, e, e, x, e, e, e, e)

		// When: asking for the next move
		move, err := bot.NextMove()

		// Then: the first corner should be played
		require.NoError(t, err)
		assert.Equal(t, 0, move)
	})

	t.Run("Takes the next free corner", func(t *testing.T) {
		// Given: the center and the first corner are occupied
		bot, _ := newTestBot(t, o, e, e, e, x, e, e, e, e)

		// When: asking for the next move
		move, err := bot.NextMove()

		// Then: the second corner should be played
		require.NoError(t, err)
		assert.Equal(t, 2, move)
	})

	t.Run("Falls back to an edge", func(t *testing.T) {
		// Given: only an edge is left and nobody can win on it
		bot, _ := newTestBot(t, x, e, o, o, x, x, x, o, o)

		// When: asking for the next move
		move, err := bot.NextMove()

		// Then: the edge should be played
		require.NoError(t, err)
		assert.Equal(t, 1, move)
	})

	t.Run("Full board is an error", func(t *testing.T) {
		// Given: a full board
		bot, _ := newTestBot(t, x, o, x, x, o, o, o, x, x)

		// When: asking for the next move
		move, err := bot.NextMove()

		// Then: ErrNoAvailableMoves should be returned
		require.ErrorIs(t, err, ErrNoAvailableMoves)
		require.ErrorIs(t, err, apperror.ErrBoardFull)
		assert.Equal(t, -1, move)
	})

	t.Run("Sees the live grid", func(t *testing.T) {
		// Given: a bot created before any move was made
		bot, grid := newTestBot(t)

		// When: the opponent moves on the shared grid afterwards
		require.NoError(t, grid.Set(3, x))
		require.NoError(t, grid.Set(4, o))
		require.NoError(t, grid.Set(6, x))

		move, err := bot.NextMove()

		// Then: the bot should block the new threat
		require.NoError(t, err)
		assert.Equal(t, 0, move)
	})

	t.Run("Does not change the grid", func(t *testing.T) {
		// Given: a board with threats for both sides
		bot, grid := newTestBot(t, x, x, e, o, o, e, e, e, e)
		before := grid.Copy()

		// When: asking for the next move
		_, err := bot.NextMove()
		require.NoError(t, err)

		// Then: the grid should be unchanged
		assert.Equal(t, before, grid.Copy())
	})
}

func TestBotPlayer_Marker(t *testing.T) {
	bot, _ := newTestBot(t)

	assert.Equal(t, entity.MarkerO, bot.Marker())
	assert.Equal(t, "o", bot.String())
}
