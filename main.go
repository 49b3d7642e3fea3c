package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// main - is the entry point of the application. It takes a single mode argument: "pvp" or "ai".
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	mode, ok := modeFromArgs(os.Args[1:])
	if !ok {
		return
	}

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, mode); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// modeFromArgs accepts exactly one known mode. Anything else does nothing, not even reading the config.
func modeFromArgs(args []string) (string, bool) {
	if len(args) != 1 || !entity.IsKnownMode(args[0]) {
		return "", false
	}

	return args[0], true
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. Logs go to stderr, stdout belongs to the game.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
