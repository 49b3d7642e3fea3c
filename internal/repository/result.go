package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	resultKeyPrefix = "result:"
	resultsListKey  = "results"
	resultsStatsKey = "results:stats"
)

var ErrResultNotFound = errors.New("result not found")

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	Stats(ctx context.Context) (map[string]int64, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save stores the result, appends it to the history and counts it in the score, all in one transaction.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
		pipe.LPush(ctx, resultsListKey, result.ID)
		pipe.HIncrBy(ctx, resultsStatsKey, result.Winner, 1)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Result{}, ErrResultNotFound
	}

	if err != nil {
		return &entity.Result{}, fmt.Errorf("failed to get result by ID: %w", err)
	}

	var existingResult entity.Result
	if err = json.Unmarshal([]byte(response), &existingResult); err != nil {
		return &entity.Result{}, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &existingResult, nil
}

// Stats returns the number of recorded games per winner token, draws are counted under entity.WinnerTie.
func (that *dbResult) Stats(ctx context.Context) (map[string]int64, error) {
	response, err := that.client.HGetAll(ctx, resultsStatsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := make(map[string]int64, len(response))
	for winner, count := range response {
		value, err := strconv.ParseInt(count, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid count for %q: %w", winner, err)
		}
		stats[winner] = value
	}

	return stats, nil
}
