package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrNoAvailableMoves = fmt.Errorf("no available moves: %w", apperror.ErrBoardFull)

// cellPriorities is the order in which the bot picks a cell when it can neither win nor block:
// the center, then the corners, then the edges.
var cellPriorities = [entity.CellCount]int{4, 0, 2, 6, 8, 1, 3, 5, 7}

// BotPlayer is a participant that computes its moves from the live grid.
type BotPlayer struct {
	mark     entity.Marker
	opponent entity.Participant
	grid     *entity.Grid
}

// NewBotPlayer binds the bot to the grid the match is played on. The grid is shared, not copied.
func NewBotPlayer(mark entity.Marker, opponent entity.Participant, grid *entity.Grid) *BotPlayer {
	return &BotPlayer{
		mark:     mark,
		opponent: opponent,
		grid:     grid,
	}
}

func (that *BotPlayer) Marker() entity.Marker {
	return that.mark
}

func (that *BotPlayer) String() string {
	return that.mark.String()
}

// NextMove returns the cell the bot plays: its own winning cell, else the cell blocking the opponent,
// else the first empty cell by priority. Asking for a move on a full board is a caller bug.
func (that *BotPlayer) NextMove() (int, error) {
	if winningIndex, ok := that.grid.WinningIndex(that.mark); ok {
		return winningIndex, nil
	}

	if preventionIndex, ok := that.grid.WinningIndex(that.opponent.Marker()); ok {
		return preventionIndex, nil
	}

	for _, cell := range cellPriorities {
		marker, err := that.grid.Get(cell)
		if err != nil {
			return -1, fmt.Errorf("failed to read cell: %w", err)
		}

		if marker == entity.Empty {
			return cell, nil
		}
	}

	return -1, ErrNoAvailableMoves
}
