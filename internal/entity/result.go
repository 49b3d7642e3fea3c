package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ModePvP = "pvp"
	ModeAI  = "ai"

	// WinnerTie is recorded as the winner of a drawn match.
	WinnerTie = "-"
)

// IsKnownMode reports whether mode selects a game: ModePvP or ModeAI.
func IsKnownMode(mode string) bool {
	return mode == ModePvP || mode == ModeAI
}

// Result is the recorded outcome of one finished match.
type Result struct {
	ID         string    `json:"id"`
	Mode       string    `json:"mode"`
	Winner     string    `json:"winner"`
	Moves      []int     `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

// NewResult builds a result for a finished match. A nil winner means a draw.
func NewResult(mode string, winner Participant, moves []int) *Result {
	result := &Result{
		ID:         uuid.NewString(),
		Mode:       mode,
		Winner:     WinnerTie,
		Moves:      append([]int(nil), moves...),
		FinishedAt: time.Now().UTC(),
	}

	if winner != nil {
		result.Winner = winner.String()
	}

	return result
}

func (that *Result) IsTie() bool {
	return that.Winner == WinnerTie
}
