package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

const playersCount = 2

// GameController owns the grid of one match and the order in which the participants move.
type GameController struct {
	grid    *entity.Grid
	players [playersCount]entity.Participant
	turn    int
}

// NewGameController creates a match between two players, X moves first.
func NewGameController() *GameController {
	return &GameController{
		grid: entity.NewGrid(),
		players: [playersCount]entity.Participant{
			entity.NewPlayer(entity.MarkerX),
			entity.NewPlayer(entity.MarkerO),
		},
	}
}

// UseAI replaces the second player with a bot playing against the first one on the live grid.
// It only affects moves made after the call.
func (that *GameController) UseAI() {
	that.players[1] = service.NewBotPlayer(that.players[1].Marker(), that.players[0], that.grid)
}

// Board returns a copy of the grid, mutating it does not affect the match.
func (that *GameController) Board() entity.Grid {
	return that.grid.Copy()
}

func (that *GameController) CurrentPlayer() entity.Participant {
	return that.players[that.turn]
}

// Set places the marker of the current player at position and passes the turn.
// Occupancy is not checked, callers validate moves beforehand.
func (that *GameController) Set(position int) error {
	if err := that.grid.Set(position, that.CurrentPlayer().Marker()); err != nil {
		return fmt.Errorf("failed to set marker: %w", err)
	}

	that.nextPlayer()

	return nil
}

func (that *GameController) nextPlayer() {
	that.turn = (that.turn + 1) % len(that.players)
}

// IsEmpty reports whether position is on the grid and unoccupied.
func (that *GameController) IsEmpty(position int) bool {
	marker, err := that.grid.Get(position)

	return err == nil && marker == entity.Empty
}

func (that *GameController) HasEmpty() bool {
	return that.grid.HasEmpty()
}

// EvaluateWinner returns the player owning a completed line, if any.
func (that *GameController) EvaluateWinner() (entity.Participant, bool) {
	marker, ok := that.grid.SameInLine()
	if !ok {
		return nil, false
	}

	for _, player := range that.players {
		if player.Marker() == marker {
			return player, true
		}
	}

	return nil, false
}
