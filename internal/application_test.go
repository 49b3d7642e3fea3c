package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		LogLevel: "debug",
		Redis: config.Redis{
			Host: "localhost",
			Port: "6379",
		},
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Two players", func(t *testing.T) {
		// Given: moves where X completes the left column
		out := &bytes.Buffer{}

		// When: running in pvp mode
		err := Run(ctx, logger, newTestConfig(), entity.ModePvP, strings.NewReader("0\n1\n3\n2\n6\n"), out)

		// Then: X should win
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "Winner: x\n"))
	})

	t.Run("Against the bot", func(t *testing.T) {
		// Given: a human who keeps playing the lowest free cell
		out := &bytes.Buffer{}

		// When: running in ai mode with too few moves to finish
		err := Run(ctx, logger, newTestConfig(), entity.ModeAI, strings.NewReader("0\n"), out)

		// Then: the bot answers with the center before input runs out
		require.ErrorIs(t, err, console.ErrInputClosed)
		assert.Contains(t, out.String(), "2. move: o\nx--\n-o-\n---\n")
	})

	t.Run("Unknown mode does nothing", func(t *testing.T) {
		out := &bytes.Buffer{}

		err := Run(ctx, logger, newTestConfig(), "chess", strings.NewReader("0\n"), out)

		require.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("Results without redis host", func(t *testing.T) {
		// Given: results enabled without a redis host
		conf := newTestConfig()
		conf.Results.Enabled = true
		conf.Redis.Host = ""

		// When: running a game
		err := Run(ctx, logger, conf, entity.ModePvP, strings.NewReader(""), &bytes.Buffer{})

		// Then: ErrAddrNotFound should be returned
		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}
