package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"endoguard/internal/model"

	"github.com/redis/go-redis/v9"
)

// ResultCache handles Redis operations for completed assessment results.
// Anonymous results live only here for the session TTL; authenticated
// results are additionally persisted to MongoDB.
type ResultCache interface {
	Set(ctx context.Context, assessmentID string, result *model.AssessmentResult) error
	Get(ctx context.Context, assessmentID string) (*model.AssessmentResult, error)
}

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a new result cache
func NewResultCache(client *redis.Client) ResultCache {
	return &resultCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *resultCache) key(assessmentID string) string {
	return fmt.Sprintf("assessment:%s:result", assessmentID)
}

func (c *resultCache) Set(ctx context.Context, assessmentID string, result *model.AssessmentResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(assessmentID), data, c.ttl).Err()
}

func (c *resultCache) Get(ctx context.Context, assessmentID string) (*model.AssessmentResult, error) {
	data, err := c.client.Get(ctx, c.key(assessmentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result model.AssessmentResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
