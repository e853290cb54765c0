package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"catalogbuilder/internal/model"
)

const SummaryKey = "catalog:last_summary"

// SummaryCache keeps the last run summary in Redis for other services.
type SummaryCache struct {
	Client *redis.Client
}

func (c *SummaryCache) Save(ctx context.Context, s model.RunSummary) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, SummaryKey, b, 0).Err()
}

// Last returns the cached summary; ok is false when nothing was stored yet.
func (c *SummaryCache) Last(ctx context.Context) (s model.RunSummary, ok bool, err error) {
	val, err := c.Client.Get(ctx, SummaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return s, false, nil
	}
	if err != nil {
		return s, false, err
	}
	if err := json.Unmarshal(val, &s); err != nil {
		return s, false, err
	}
	return s, true, nil
}
