// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package engine is the HTTP client for the remote AI engine: the opaque
// service that owns idea generation, draft generation, emotional analysis,
// and post/brand storage. The workstation never duplicates engine logic
// locally — it only classifies and presents what the engine returns.
//
// All calls are fire-once request/response. The engine reports failures as a
// JSON body with an "error" field; that message is surfaced verbatim so the
// interface can show it in an error banner.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"instamedia/internal/models"
)

// DefaultTimeout accommodates LLM-backed endpoints, which routinely take
// 10-30s and occasionally more.
const DefaultTimeout = 60 * time.Second

// Client talks to one engine instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the engine at baseURL (no trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// errorBody is the engine's failure envelope.
type errorBody struct {
	Error string `json:"error"`
}

// do performs one request and decodes the response into out. Non-2xx
// responses are turned into an error carrying the engine's message when one
// is present.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("engine marshal: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("engine request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("engine http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("engine read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if json.Unmarshal(respBody, &eb) == nil && eb.Error != "" {
			return fmt.Errorf("engine: %s", eb.Error)
		}
		return fmt.Errorf("engine: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("engine unmarshal: %w", err)
	}
	return nil
}

// BrandDNA fetches the stored brand record. Array-valued fields may arrive
// JSON-encoded as strings; models.StringList normalizes them, defaulting to
// empty lists. A brand with no record yet comes back as an empty template.
func (c *Client) BrandDNA(ctx context.Context, brandID string) (models.BrandDNA, error) {
	var resp struct {
		Success bool            `json:"success"`
		Data    models.BrandDNA `json:"data"`
	}
	path := "/api/brand-dna?brand_id=" + url.QueryEscape(brandID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return models.BrandDNA{}, err
	}
	if resp.Data.BrandID == "" {
		return models.EmptyBrandDNA(brandID), nil
	}
	return resp.Data, nil
}

// SaveBrandDNA persists the full brand record.
func (c *Client) SaveBrandDNA(ctx context.Context, dna models.BrandDNA) error {
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/brand-dna", dna, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("engine: brand dna save rejected")
	}
	return nil
}

// Ideate asks the engine for content ideas conditioned on the brand's DNA
// and its emotional memory.
func (c *Client) Ideate(ctx context.Context, brandID, focusArea string) ([]models.ContentIdea, error) {
	payload := map[string]string{"brand_id": brandID, "focus_area": focusArea}
	var resp struct {
		Success bool `json:"success"`
		Result  struct {
			Ideas []models.ContentIdea `json:"ideas"`
		} `json:"result"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/ideate", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Result.Ideas, nil
}

// GenerateRequest carries the studio generation inputs.
type GenerateRequest struct {
	IdeaTitle string `json:"idea_title"`
	IdeaHook  string `json:"idea_hook"`
	Angle     string `json:"angle"`
	Platform  string `json:"platform"`
	BrandID   string `json:"brand_id"`
}

// StudioGenerate produces a full post from an idea.
func (c *Client) StudioGenerate(ctx context.Context, req GenerateRequest) (models.GeneratedPost, error) {
	var resp struct {
		Success bool                 `json:"success"`
		Result  models.GeneratedPost `json:"result"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/studio/generate", req, &resp); err != nil {
		return models.GeneratedPost{}, err
	}
	return resp.Result, nil
}

// Analyze scores a draft against the brand's emotional register. The engine
// rejects drafts shorter than 10 characters; callers validate first so that
// never happens in practice.
func (c *Client) Analyze(ctx context.Context, draft, brandID string) (models.Analysis, error) {
	payload := map[string]string{"draft": draft, "brand_id": brandID}
	var resp struct {
		Success bool `json:"success"`
		models.Analysis
	}
	if err := c.do(ctx, http.MethodPost, "/api/analyze", payload, &resp); err != nil {
		return models.Analysis{}, err
	}
	return resp.Analysis, nil
}

// ScheduleRequest carries a draft onto the calendar.
type ScheduleRequest struct {
	Content        string   `json:"content"`
	Platform       string   `json:"platform"`
	ScheduledTime  string   `json:"scheduled_time"`
	BrandID        string   `json:"brand_id"`
	ResonanceScore int      `json:"resonance_score"`
	ImageStyle     string   `json:"image_style"`
	Hashtags       []string `json:"hashtags"`
	Status         string   `json:"status"`
}

// SchedulePost persists an approved draft and returns the stored record.
func (c *Client) SchedulePost(ctx context.Context, req ScheduleRequest) (models.ScheduledPost, error) {
	var resp struct {
		Success bool                 `json:"success"`
		Post    models.ScheduledPost `json:"post"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/posts/schedule", req, &resp); err != nil {
		return models.ScheduledPost{}, err
	}
	return resp.Post, nil
}

// CalendarPosts lists every post for the calendar view.
func (c *Client) CalendarPosts(ctx context.Context, brandID string) ([]models.ScheduledPost, error) {
	var resp struct {
		Success bool                   `json:"success"`
		Posts   []models.ScheduledPost `json:"posts"`
	}
	path := "/api/posts/calendar?brand_id=" + url.QueryEscape(brandID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// RecentPosts lists the latest posts for the overview activity feed.
func (c *Client) RecentPosts(ctx context.Context, brandID string, limit int) ([]models.ScheduledPost, error) {
	var resp struct {
		Success bool                   `json:"success"`
		Posts   []models.ScheduledPost `json:"posts"`
	}
	path := "/api/posts/recent?brand_id=" + url.QueryEscape(brandID) + "&limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// PostStats returns the overview dashboard tiles.
func (c *Client) PostStats(ctx context.Context, brandID string) (models.DashboardStats, error) {
	var stats models.DashboardStats
	path := "/api/posts/stats?brand_id=" + url.QueryEscape(brandID)
	if err := c.do(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}

// Health returns the engine's self-reported status.
func (c *Client) Health(ctx context.Context) (models.EngineHealth, error) {
	var health models.EngineHealth
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &health); err != nil {
		return models.EngineHealth{}, err
	}
	return health, nil
}

// SeedResult reports an engine memory-store seeding run.
type SeedResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// Seed loads the engine's reference post corpus into its memory store.
func (c *Client) Seed(ctx context.Context) (SeedResult, error) {
	var resp struct {
		Success bool `json:"success"`
		SeedResult
	}
	if err := c.do(ctx, http.MethodPost, "/api/seed", map[string]string{}, &resp); err != nil {
		return SeedResult{}, err
	}
	return resp.SeedResult, nil
}
