// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the workstation's JSON API: brand vault,
// ideation, studio, calendar, and overview endpoints consumed by the
// single-page interface. Handlers hold no domain state of their own; they
// orchestrate the engine client, the per-session pipeline controllers, and
// the navigation state stored in the session.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"instamedia/internal/cache"
	"instamedia/internal/engine"
	"instamedia/internal/models"
	"instamedia/internal/pipeline"
	"instamedia/internal/session"
)

// EngineAPI is the engine surface the handlers use. *engine.Client satisfies
// it; tests substitute a fake.
type EngineAPI interface {
	BrandDNA(ctx context.Context, brandID string) (models.BrandDNA, error)
	SaveBrandDNA(ctx context.Context, dna models.BrandDNA) error
	Ideate(ctx context.Context, brandID, focusArea string) ([]models.ContentIdea, error)
	StudioGenerate(ctx context.Context, req engine.GenerateRequest) (models.GeneratedPost, error)
	Analyze(ctx context.Context, draft, brandID string) (models.Analysis, error)
	SchedulePost(ctx context.Context, req engine.ScheduleRequest) (models.ScheduledPost, error)
	CalendarPosts(ctx context.Context, brandID string) ([]models.ScheduledPost, error)
	RecentPosts(ctx context.Context, brandID string, limit int) ([]models.ScheduledPost, error)
	PostStats(ctx context.Context, brandID string) (models.DashboardStats, error)
	Health(ctx context.Context) (models.EngineHealth, error)
	Seed(ctx context.Context) (engine.SeedResult, error)
}

// Workstation bundles the handler dependencies.
type Workstation struct {
	eng       EngineAPI
	sessions  *session.Store
	posts     *cache.PostCache
	pipelines *pipeline.Manager
	validate  *validator.Validate
	brandID   string
}

// New creates the handler set. posts may be nil to disable caching.
func New(eng EngineAPI, sessions *session.Store, posts *cache.PostCache, pipelines *pipeline.Manager, brandID string) *Workstation {
	return &Workstation{
		eng:       eng,
		sessions:  sessions,
		posts:     posts,
		pipelines: pipelines,
		validate:  validator.New(),
		brandID:   brandID,
	}
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError writes the API's error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeEngineError maps an engine failure to a 502 carrying the engine's
// message, so the interface can show it in the error banner.
func writeEngineError(w http.ResponseWriter, err error) {
	slog.Error("engine call failed", "error", err)
	writeError(w, http.StatusBadGateway, err.Error())
}

// decodeBody decodes and validates a JSON request body. Returns false after
// writing an error response when the body is malformed or invalid.
func (h *Workstation) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// cachedPosts fetches the brand's post collection, serving from cache when
// possible. Cache trouble degrades to a direct engine read.
func (h *Workstation) cachedPosts(ctx context.Context) ([]models.ScheduledPost, error) {
	if h.posts != nil {
		if posts, ok := h.posts.Posts(ctx, h.brandID); ok {
			return posts, nil
		}
	}
	posts, err := h.eng.CalendarPosts(ctx, h.brandID)
	if err != nil {
		return nil, err
	}
	if h.posts != nil {
		h.posts.SetPosts(ctx, h.brandID, posts)
	}
	return posts, nil
}

// cachedStats fetches dashboard stats, serving from cache when possible.
func (h *Workstation) cachedStats(ctx context.Context) (models.DashboardStats, error) {
	if h.posts != nil {
		if stats, ok := h.posts.Stats(ctx, h.brandID); ok {
			return stats, nil
		}
	}
	stats, err := h.eng.PostStats(ctx, h.brandID)
	if err != nil {
		return models.DashboardStats{}, err
	}
	if h.posts != nil {
		h.posts.SetStats(ctx, h.brandID, stats)
	}
	return stats, nil
}

// Health reports the workstation's own liveness plus the engine's status.
// The engine being down degrades the payload, not the status code.
func (h *Workstation) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"status": "ok"}
	if health, err := h.eng.Health(r.Context()); err == nil {
		resp["engine"] = health
	} else {
		resp["engine_error"] = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// Seed asks the engine to load its reference post corpus.
func (h *Workstation) Seed(w http.ResponseWriter, r *http.Request) {
	res, err := h.eng.Seed(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if h.posts != nil {
		h.posts.Invalidate(r.Context(), h.brandID)
	}
	writeJSON(w, http.StatusOK, res)
}
