package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	inputRequestFormat = "%d. move: %s\n"
	winnerFormat       = "Winner: %s\n"
	noWinnerText       = "No winner"
	scoreFormat        = "Score: x %d, o %d, draws %d\n"
)

var ErrInputClosed = errors.New("input closed before the game ended")

type game interface {
	Board() entity.Grid
	CurrentPlayer() entity.Participant
	Set(position int) error
	IsEmpty(position int) bool
	HasEmpty() bool
	EvaluateWinner() (entity.Participant, bool)
}

type resultRecorder interface {
	Save(ctx context.Context, result *entity.Result) error
	Stats(ctx context.Context) (map[string]int64, error)
}

// Handler plays one game on a text stream: it prints the board, asks for moves and announces the result.
type Handler struct {
	logger *slog.Logger

	game     game
	mode     string
	in       io.Reader
	out      io.Writer
	recorder resultRecorder

	lines    chan inputLine
	readOnce sync.Once
}

type inputLine struct {
	text string
	err  error
}

// New creates a handler. recorder may be nil, then finished games are not recorded.
func New(logger *slog.Logger, game game, mode string, in io.Reader, out io.Writer, recorder resultRecorder) *Handler {
	return &Handler{
		logger:   logger.With("component", "console"),
		game:     game,
		mode:     mode,
		in:       in,
		out:      out,
		recorder: recorder,
		lines:    make(chan inputLine),
	}
}

// Interact runs the game until a player wins, the board is full or ctx is done.
// A canceled ctx stops the game even while it waits for input.
func (that *Handler) Interact(ctx context.Context) error {
	that.printBoard()

	moves := make([]int, 0, entity.CellCount)
	for move := 1; ; move++ {
		position, err := that.readMove(ctx, move)
		if err != nil {
			return err
		}

		if err = that.game.Set(position); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		moves = append(moves, position)
		that.printBoard()

		if winner, ok := that.game.EvaluateWinner(); ok {
			fmt.Fprintf(that.out, winnerFormat, winner)
			that.finish(ctx, winner, moves)

			return nil
		}

		if !that.game.HasEmpty() {
			fmt.Fprintln(that.out, noWinnerText)
			that.finish(ctx, nil, moves)

			return nil
		}
	}
}

// readMove asks the current player until it supplies a valid move.
func (that *Handler) readMove(ctx context.Context, move int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return -1, fmt.Errorf("game interrupted: %w", err)
		}

		player := that.game.CurrentPlayer()
		fmt.Fprintf(that.out, inputRequestFormat, move, player)

		position, ok, err := that.nextPosition(ctx, player)
		if err != nil {
			return -1, err
		}

		if !ok {
			continue
		}

		if err = that.validateMove(position); err != nil {
			if _, isBot := player.(entity.Mover); isBot {
				return -1, fmt.Errorf("bot made invalid move: %w", err)
			}

			that.logger.Debug("move rejected", "player", player.String(), "position", position, "error", err)

			continue
		}

		// a line may win the race against cancellation, it must not reach the board
		if err = ctx.Err(); err != nil {
			return -1, fmt.Errorf("game interrupted: %w", err)
		}

		return position, nil
	}
}

func (that *Handler) nextPosition(ctx context.Context, player entity.Participant) (int, bool, error) {
	if bot, ok := player.(entity.Mover); ok {
		position, err := bot.NextMove()
		if err != nil {
			return -1, false, fmt.Errorf("bot failed to make turn: %w", err)
		}

		return position, true, nil
	}

	that.readOnce.Do(func() {
		go that.readLines(ctx)
	})

	select {
	case <-ctx.Done():
		return -1, false, fmt.Errorf("game interrupted: %w", ctx.Err())
	case line, ok := <-that.lines:
		if err := ctx.Err(); err != nil {
			return -1, false, fmt.Errorf("game interrupted: %w", err)
		}

		if !ok {
			return -1, false, ErrInputClosed
		}

		if line.err != nil {
			return -1, false, line.err
		}

		position, parsed := ParsePosition(line.text)

		return position, parsed, nil
	}
}

// readLines feeds input lines to the handler until the input ends or ctx is done.
// The last value sent carries the reason the input ended.
func (that *Handler) readLines(ctx context.Context) {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		select {
		case that.lines <- inputLine{text: scanner.Text()}:
		case <-ctx.Done():
			return
		}
	}

	err := ErrInputClosed
	if scanErr := scanner.Err(); scanErr != nil {
		err = fmt.Errorf("failed to read input: %w", scanErr)
	}

	select {
	case that.lines <- inputLine{err: err}:
	case <-ctx.Done():
	}
}

// validateMove - checks if the move is valid.
func (that *Handler) validateMove(position int) error {
	if position < 0 || position >= entity.CellCount {
		return apperror.ErrInvalidCell
	}

	if !that.game.IsEmpty(position) {
		return apperror.ErrCellOccupied
	}

	return nil
}

func (that *Handler) finish(ctx context.Context, winner entity.Participant, moves []int) {
	if that.recorder == nil {
		return
	}

	result := entity.NewResult(that.mode, winner, moves)
	log := that.logger.With("resultID", result.ID)

	if err := that.recorder.Save(ctx, result); err != nil {
		log.Error("failed to record result", "error", err)

		return
	}

	stats, err := that.recorder.Stats(ctx)
	if err != nil {
		log.Error("failed to get score", "error", err)

		return
	}

	fmt.Fprintf(that.out, scoreFormat,
		stats[entity.MarkerX.String()], stats[entity.MarkerO.String()], stats[entity.WinnerTie])
}

func (that *Handler) printBoard() {
	fmt.Fprintln(that.out, that.game.Board())
}

// ParsePosition converts one line of input to a cell index. The bool is false when the line is not a number.
func ParsePosition(line string) (int, bool) {
	position, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, false
	}

	return position, true
}
