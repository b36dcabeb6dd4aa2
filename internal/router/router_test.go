// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration by walking the
// registered route table. No network or Valkey involved.
package router

import (
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"instamedia/internal/handlers"
	"instamedia/internal/pipeline"
)

func routeSet(t *testing.T) map[string]bool {
	t.Helper()

	h := handlers.New(nil, nil, nil, pipeline.NewManager(nil, "default"), "default")
	r := New(h)

	routes := make(map[string]bool)
	walker := func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes[method+" "+route] = true
		return nil
	}
	if err := chi.Walk(r, walker); err != nil {
		t.Fatalf("walk routes: %v", err)
	}
	return routes
}

func TestRoutesRegistered(t *testing.T) {
	routes := routeSet(t)

	want := []string{
		"GET /health",
		"GET /api/brand-dna/",
		"POST /api/brand-dna/",
		"GET /api/brand-dna/template",
		"GET /api/brand-dna/tones",
		"POST /api/ideate",
		"GET /api/ideation/options",
		"POST /api/ideas/select",
		"GET /api/nav",
		"POST /api/nav",
		"GET /api/studio/",
		"POST /api/studio/draft",
		"POST /api/studio/inputs",
		"POST /api/studio/generate",
		"POST /api/studio/analyze",
		"POST /api/studio/rewrite",
		"POST /api/studio/schedule",
		"GET /api/calendar",
		"GET /api/calendar/upcoming",
		"GET /api/overview",
		"POST /api/seed",
	}
	for _, route := range want {
		if !routes[route] {
			t.Errorf("route %q not registered", route)
		}
	}
}

func TestNoLeftoverAdminRoutes(t *testing.T) {
	for route := range routeSet(t) {
		if strings.Contains(route, "/admin") {
			t.Errorf("unexpected admin route %q", route)
		}
	}
}
