// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"sync"
	"time"

	"instamedia/internal/calendar"
	"instamedia/internal/models"
	"instamedia/internal/score"
)

const recentLimit = 5

// Overview aggregates the dashboard: stat tiles, recent activity, upcoming
// posts, and engine health. The four loads run concurrently and fail
// independently; a missing piece renders as its zero value instead of
// failing the whole dashboard.
func (h *Workstation) Overview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		wg sync.WaitGroup

		stats    models.DashboardStats
		recent   []models.ScheduledPost
		upcoming []models.ScheduledPost
		health   models.EngineHealth
		healthy  bool
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		s, err := h.cachedStats(ctx)
		if err != nil {
			slog.Warn("overview stats load failed", "error", err)
			return
		}
		stats = s
	}()
	go func() {
		defer wg.Done()
		posts, err := h.eng.RecentPosts(ctx, h.brandID, recentLimit)
		if err != nil {
			slog.Warn("overview recent posts load failed", "error", err)
			return
		}
		recent = posts
	}()
	go func() {
		defer wg.Done()
		posts, err := h.cachedPosts(ctx)
		if err != nil {
			slog.Warn("overview upcoming load failed", "error", err)
			return
		}
		upcoming = calendar.Upcoming(posts, time.Now(), recentLimit)
	}()
	go func() {
		defer wg.Done()
		eh, err := h.eng.Health(ctx)
		if err != nil {
			slog.Warn("overview health load failed", "error", err)
			return
		}
		health = eh
		healthy = true
	}()
	wg.Wait()

	writeJSON(w, http.StatusOK, map[string]any{
		"stats":         stats,
		"avg_rating":    score.Classify(int(math.Round(stats.AvgResonanceScore))),
		"recent":        ratePosts(recent),
		"upcoming":      ratePosts(upcoming),
		"engine":        health,
		"engine_online": healthy,
	})
}
