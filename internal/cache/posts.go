// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// posts.go provides a Valkey-backed cache for the engine's post list and
// dashboard stats. The calendar and overview both read the full post
// collection on every visit; caching those reads keeps module switches fast
// without hammering the engine. TTLs are short because scheduling a post must
// show up promptly, and every schedule invalidates the brand's entries
// anyway.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"instamedia/internal/models"
)

const (
	postsKeyPrefix = "posts:"
	statsKeyPrefix = "stats:"

	// DefaultPostTTL is how long cached post data stays valid.
	DefaultPostTTL = time.Minute
)

// PostCache caches engine post reads per brand.
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPostCache creates a post cache backed by the given Valkey client.
func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	if ttl == 0 {
		ttl = DefaultPostTTL
	}
	return &PostCache{client: client, ttl: ttl}
}

// Posts returns the cached post list for a brand. Misses and decode failures
// both report false; cache trouble never surfaces to the caller.
func (pc *PostCache) Posts(ctx context.Context, brandID string) ([]models.ScheduledPost, bool) {
	val, err := pc.client.Get(ctx, postsKeyPrefix+brandID).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("post cache get error", "brand", brandID, "error", err)
		return nil, false
	}
	var posts []models.ScheduledPost
	if err := json.Unmarshal(val, &posts); err != nil {
		slog.Warn("post cache decode error", "brand", brandID, "error", err)
		return nil, false
	}
	return posts, true
}

// SetPosts stores the post list for a brand with the configured TTL.
func (pc *PostCache) SetPosts(ctx context.Context, brandID string, posts []models.ScheduledPost) {
	payload, err := json.Marshal(posts)
	if err != nil {
		slog.Warn("post cache encode error", "brand", brandID, "error", err)
		return
	}
	if err := pc.client.Set(ctx, postsKeyPrefix+brandID, payload, pc.ttl).Err(); err != nil {
		slog.Warn("post cache set error", "brand", brandID, "error", err)
	}
}

// Stats returns the cached dashboard stats for a brand.
func (pc *PostCache) Stats(ctx context.Context, brandID string) (models.DashboardStats, bool) {
	val, err := pc.client.Get(ctx, statsKeyPrefix+brandID).Bytes()
	if err == redis.Nil {
		return models.DashboardStats{}, false
	}
	if err != nil {
		slog.Warn("stats cache get error", "brand", brandID, "error", err)
		return models.DashboardStats{}, false
	}
	var stats models.DashboardStats
	if err := json.Unmarshal(val, &stats); err != nil {
		slog.Warn("stats cache decode error", "brand", brandID, "error", err)
		return models.DashboardStats{}, false
	}
	return stats, true
}

// SetStats stores the dashboard stats for a brand with the configured TTL.
func (pc *PostCache) SetStats(ctx context.Context, brandID string, stats models.DashboardStats) {
	payload, err := json.Marshal(stats)
	if err != nil {
		slog.Warn("stats cache encode error", "brand", brandID, "error", err)
		return
	}
	if err := pc.client.Set(ctx, statsKeyPrefix+brandID, payload, pc.ttl).Err(); err != nil {
		slog.Warn("stats cache set error", "brand", brandID, "error", err)
	}
}

// Invalidate removes a brand's cached posts and stats. Called after every
// successful schedule so the calendar reflects the new post immediately.
func (pc *PostCache) Invalidate(ctx context.Context, brandID string) {
	if err := pc.client.Del(ctx, postsKeyPrefix+brandID, statsKeyPrefix+brandID).Err(); err != nil {
		slog.Warn("post cache invalidate error", "brand", brandID, "error", err)
	}
	slog.Debug("post cache invalidated", "brand", brandID)
}
