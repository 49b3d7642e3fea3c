package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - runs one game in the given mode on the standard streams.
func RunApp(logger *slog.Logger, conf *config.Config, mode string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, mode, os.Stdin, os.Stdout)
}

// Run plays one game. Modes other than entity.ModePvP and entity.ModeAI do nothing.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, mode string, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app", "mode", mode)

	if !entity.IsKnownMode(mode) {
		log.Debug("Unknown mode, nothing to do")
		return nil
	}

	game := tictactoe.NewGameController()
	if mode == entity.ModeAI {
		game.UseAI()
	}

	var handler *console.Handler

	if conf.Results.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		resultRepo := repository.NewResultRepository(redisStorage)
		handler = console.New(logger, game, mode, in, out, resultRepo)
	} else {
		handler = console.New(logger, game, mode, in, out, nil)
	}

	log.Info("Starting game")

	if err := handler.Interact(ctx); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("Game finished")

	return nil
}
