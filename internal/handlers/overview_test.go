// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"instamedia/internal/models"
	"instamedia/internal/score"
)

func TestOverview(t *testing.T) {
	h := newTestWorkstation(&fakeEngine{
		stats: models.DashboardStats{
			TotalContent:      10,
			Scheduled:         4,
			Published:         6,
			AvgResonanceScore: 81.2,
			MemoryPostCount:   150,
		},
		posts: []models.ScheduledPost{
			{ID: "up", ScheduledTime: "2999-01-01T09:00:00", Status: models.StatusScheduled},
		},
		health: models.EngineHealth{Status: "operational", LLMProvider: "groq"},
	})

	rr := doJSON(t, h.Overview, http.MethodGet, "/api/overview", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}

	var resp struct {
		Stats        models.DashboardStats `json:"stats"`
		AvgRating    score.Rating          `json:"avg_rating"`
		Recent       []json.RawMessage     `json:"recent"`
		Upcoming     []json.RawMessage     `json:"upcoming"`
		Engine       models.EngineHealth   `json:"engine"`
		EngineOnline bool                  `json:"engine_online"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Stats.TotalContent != 10 {
		t.Errorf("stats: got %+v", resp.Stats)
	}
	if resp.AvgRating.Bucket != score.BucketExcellent {
		t.Errorf("avg 81.2 should rate excellent, got %q", resp.AvgRating.Bucket)
	}
	if len(resp.Upcoming) != 1 {
		t.Errorf("upcoming: got %d entries", len(resp.Upcoming))
	}
	if !resp.EngineOnline || resp.Engine.LLMProvider != "groq" {
		t.Errorf("engine health: got %+v online=%v", resp.Engine, resp.EngineOnline)
	}
}

// TestOverviewEngineDown verifies the dashboard degrades per-section instead
// of failing: every load errors, yet the response is a 200 of zero values.
func TestOverviewEngineDown(t *testing.T) {
	h := newTestWorkstation(&fakeEngine{fail: true})

	rr := doJSON(t, h.Overview, http.MethodGet, "/api/overview", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 despite engine being down", rr.Code)
	}

	var resp struct {
		Stats        models.DashboardStats `json:"stats"`
		EngineOnline bool                  `json:"engine_online"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Stats.TotalContent != 0 {
		t.Errorf("stats should zero out, got %+v", resp.Stats)
	}
	if resp.EngineOnline {
		t.Error("engine should report offline")
	}
}
