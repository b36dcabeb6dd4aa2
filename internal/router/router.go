// Package router sets up all HTTP routes and middleware chains for the
// workstation server. Routes are grouped by module; the AI-backed endpoints
// carry their own rate limit since each one fans out to an LLM call.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"

	"instamedia/internal/handlers"
	"instamedia/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(h *handlers.Workstation) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	// AI-backed endpoints are expensive upstream; keep the limit low.
	aiLimiter := middleware.NewRateLimiter(20, time.Minute)

	// Health check.
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		// Brand vault
		r.Route("/brand-dna", func(r chi.Router) {
			r.Get("/", h.GetBrand)
			r.Post("/", h.SaveBrand)
			r.Get("/template", h.BrandTemplate)
			r.Get("/tones", h.ToneSuggestions)
		})

		// Ideation
		r.Get("/ideation/options", h.FocusOptions)
		r.Post("/ideas/select", h.SelectIdea)
		r.Group(func(r chi.Router) {
			r.Use(aiLimiter.Middleware)
			r.Post("/ideate", h.Ideate)
		})

		// Navigation
		r.Get("/nav", h.GetNav)
		r.Post("/nav", h.Navigate)

		// Studio
		r.Route("/studio", func(r chi.Router) {
			r.Get("/", h.StudioState)
			r.Post("/draft", h.SetDraft)
			r.Post("/inputs", h.SetInputs)
			r.Post("/rewrite", h.ApplyRewrite)
			r.Post("/schedule", h.Schedule)

			r.Group(func(r chi.Router) {
				r.Use(aiLimiter.Middleware)
				r.Post("/generate", h.Generate)
				r.Post("/analyze", h.AnalyzeDraft)
			})
		})

		// Calendar
		r.Get("/calendar", h.CalendarMonth)
		r.Get("/calendar/upcoming", h.Upcoming)

		// Overview
		r.Get("/overview", h.Overview)

		// Engine memory store
		r.Post("/seed", h.Seed)
	})

	return r
}
