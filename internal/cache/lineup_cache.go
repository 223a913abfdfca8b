// Package cache keeps recently generated lineups in Redis so duplicate entries
// can be spotted across runs and the API can replay its recent output. Lineups
// themselves are never the source of truth; losing the cache loses nothing.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/dk-lineup/internal/types"
)

const (
	recentKey  = "dklineup:recent"
	defaultTTL = 24 * time.Hour
	maxRecent  = 50
)

// LineupCache handles Redis storage of recently generated lineups
type LineupCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Entry
}

// NewLineupCache connects to Redis and verifies the connection
func NewLineupCache(redisURL string, log *logrus.Logger) (*LineupCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &LineupCache{
		client: client,
		ttl:    defaultTTL,
		logger: log.WithField("component", "lineup_cache"),
	}, nil
}

// Store pushes a lineup onto the recent list, trimming it to the cap
func (c *LineupCache) Store(ctx context.Context, lineup *types.Lineup) error {
	data, err := json.Marshal(lineup)
	if err != nil {
		return fmt.Errorf("failed to marshal lineup %s: %w", lineup.ID, err)
	}

	pipe := c.client.TxPipeline()
	pipe.LPush(ctx, recentKey, data)
	pipe.LTrim(ctx, recentKey, 0, maxRecent-1)
	pipe.Expire(ctx, recentKey, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache lineup %s: %w", lineup.ID, err)
	}

	c.logger.WithField("lineup_id", lineup.ID).Debug("Lineup cached")
	return nil
}

// Recent returns up to limit recently generated lineups, newest first
func (c *LineupCache) Recent(ctx context.Context, limit int) ([]types.Lineup, error) {
	if limit <= 0 || limit > maxRecent {
		limit = maxRecent
	}
	raw, err := c.client.LRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recent lineups: %w", err)
	}

	lineups := make([]types.Lineup, 0, len(raw))
	for _, item := range raw {
		var lineup types.Lineup
		if err := json.Unmarshal([]byte(item), &lineup); err != nil {
			c.logger.WithError(err).Warn("Skipping unreadable cached lineup")
			continue
		}
		lineups = append(lineups, lineup)
	}
	return lineups, nil
}

// Close releases the Redis connection
func (c *LineupCache) Close() error {
	return c.client.Close()
}
