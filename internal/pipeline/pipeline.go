// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pipeline drives the studio's draft lifecycle: generate, edit,
// analyze, rewrite, schedule. Each controller serializes state access behind a
// mutex while engine calls run unlocked, and every request slot carries a
// sequence number so a response that arrives after a newer request on the
// same slot is discarded instead of clobbering fresher state.
package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"instamedia/internal/engine"
	"instamedia/internal/handoff"
	"instamedia/internal/models"
)

// MinDraftLength is the engine's floor for analyzable drafts.
const MinDraftLength = 10

// confirmationWindow is how long the "scheduled" confirmation stays visible.
const confirmationWindow = 4 * time.Second

// Engine is the subset of the engine client the pipeline calls. Narrowed to
// an interface so tests can substitute a controllable fake.
type Engine interface {
	StudioGenerate(ctx context.Context, req engine.GenerateRequest) (models.GeneratedPost, error)
	Analyze(ctx context.Context, draft, brandID string) (models.Analysis, error)
	SchedulePost(ctx context.Context, req engine.ScheduleRequest) (models.ScheduledPost, error)
}

// Controller holds one session's studio state. All exported methods are safe
// for concurrent use.
type Controller struct {
	mu    sync.Mutex
	eng   Engine
	brand string
	now   func() time.Time

	topic    string
	platform string
	angle    string
	draft    string

	generated *models.GeneratedPost
	analysis  *models.Analysis
	errMsg    string

	genSeq   uint64
	anaSeq   uint64
	schedSeq uint64

	generating bool
	analyzing  bool
	scheduling bool

	scheduledUntil time.Time
}

// NewController returns a controller with the studio's defaults: Instagram
// platform and the storytelling angle.
func NewController(eng Engine, brandID string) *Controller {
	return &Controller{
		eng:      eng,
		brand:    brandID,
		now:      time.Now,
		platform: "Instagram",
		angle:    "storytelling",
	}
}

// Snapshot is a read-only copy of the controller state for rendering.
type Snapshot struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform"`
	Angle    string `json:"angle"`
	Draft    string `json:"draft"`

	Generated *models.GeneratedPost `json:"generated,omitempty"`
	Analysis  *models.Analysis      `json:"analysis,omitempty"`
	Error     string                `json:"error,omitempty"`

	Generating bool `json:"generating"`
	Analyzing  bool `json:"analyzing"`
	Scheduling bool `json:"scheduling"`

	// JustScheduled stays true for a few seconds after a successful
	// schedule, backing the transient confirmation banner.
	JustScheduled bool `json:"just_scheduled"`
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Topic:         c.topic,
		Platform:      c.platform,
		Angle:         c.angle,
		Draft:         c.draft,
		Generated:     c.generated,
		Analysis:      c.analysis,
		Error:         c.errMsg,
		Generating:    c.generating,
		Analyzing:     c.analyzing,
		Scheduling:    c.scheduling,
		JustScheduled: c.now().Before(c.scheduledUntil),
	}
}

// SetDraft replaces the editable draft. Existing analysis stays visible until
// the next analyze run replaces it.
func (c *Controller) SetDraft(draft string) {
	c.mu.Lock()
	c.draft = draft
	c.mu.Unlock()
}

// SetInputs updates the studio form fields. Empty values leave the
// corresponding field untouched.
func (c *Controller) SetInputs(topic, platform, angle string) {
	c.mu.Lock()
	if topic != "" {
		c.topic = topic
	}
	if platform != "" {
		c.platform = platform
	}
	if angle != "" {
		c.angle = angle
	}
	c.mu.Unlock()
}

// ApplyIdea seeds the studio from an ideation handoff: topic, platform,
// starting draft, and angle all come from the selected idea. Any previous
// generation or analysis belongs to the old topic and is dropped.
func (c *Controller) ApplyIdea(p handoff.Prefill) {
	c.mu.Lock()
	c.topic = p.Topic
	c.platform = p.Platform
	c.draft = p.Draft
	if p.Angle != "" {
		c.angle = p.Angle
	}
	c.generated = nil
	c.analysis = nil
	c.errMsg = ""
	c.mu.Unlock()
}

// Generate asks the engine for a full post from the current topic. A blank
// topic is a silent no-op. On success the generated text replaces the draft.
func (c *Controller) Generate(ctx context.Context) {
	c.mu.Lock()
	topic := strings.TrimSpace(c.topic)
	if topic == "" {
		c.mu.Unlock()
		return
	}
	c.genSeq++
	seq := c.genSeq
	c.generating = true
	c.errMsg = ""
	req := engine.GenerateRequest{
		IdeaTitle: topic,
		IdeaHook:  c.draft,
		Angle:     c.angle,
		Platform:  c.platform,
		BrandID:   c.brand,
	}
	c.mu.Unlock()

	post, err := c.eng.StudioGenerate(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.genSeq {
		return // a newer generate superseded this one
	}
	c.generating = false
	if err != nil {
		c.errMsg = err.Error()
		return
	}
	c.generated = &post
	c.draft = post.PostText
	c.analysis = nil
}

// Analyze scores the current draft. Drafts under MinDraftLength after
// trimming are a silent no-op. A response landing after a newer analyze
// request is discarded, so the analysis shown always belongs to the most
// recently requested draft.
func (c *Controller) Analyze(ctx context.Context) {
	c.mu.Lock()
	draft := c.draft
	if len(strings.TrimSpace(draft)) < MinDraftLength {
		c.mu.Unlock()
		return
	}
	c.anaSeq++
	seq := c.anaSeq
	c.analyzing = true
	c.errMsg = ""
	c.mu.Unlock()

	analysis, err := c.eng.Analyze(ctx, draft, c.brand)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.anaSeq {
		return
	}
	c.analyzing = false
	if err != nil {
		c.errMsg = err.Error()
		return
	}
	c.analysis = &analysis
}

// ApplyRewrite replaces the draft with the analysis rewrite suggestion, when
// one exists. The old analysis is kept on screen; it describes the draft the
// rewrite was derived from.
func (c *Controller) ApplyRewrite() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.analysis == nil || c.analysis.Result.RewriteSuggestion == "" {
		return false
	}
	c.draft = c.analysis.Result.RewriteSuggestion
	return true
}

// Schedule persists the current draft at the given time. An empty draft or
// time is a silent no-op. The score comes from the latest analysis when one
// exists, hashtags and image style from the latest generation.
func (c *Controller) Schedule(ctx context.Context, when string) (models.ScheduledPost, bool) {
	c.mu.Lock()
	draft := strings.TrimSpace(c.draft)
	if draft == "" || strings.TrimSpace(when) == "" {
		c.mu.Unlock()
		return models.ScheduledPost{}, false
	}
	c.schedSeq++
	seq := c.schedSeq
	c.scheduling = true
	c.errMsg = ""
	req := engine.ScheduleRequest{
		Content:       draft,
		Platform:      strings.ToLower(c.platform),
		ScheduledTime: when,
		BrandID:       c.brand,
		Status:        string(models.StatusScheduled),
	}
	if c.analysis != nil {
		req.ResonanceScore = c.analysis.Result.ResonanceScore
	}
	if c.generated != nil {
		req.Hashtags = c.generated.Hashtags
		req.ImageStyle = c.generated.ImageStylePrompt
	}
	if req.Hashtags == nil {
		req.Hashtags = []string{}
	}
	c.mu.Unlock()

	post, err := c.eng.SchedulePost(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.schedSeq {
		return models.ScheduledPost{}, false
	}
	c.scheduling = false
	if err != nil {
		c.errMsg = err.Error()
		return models.ScheduledPost{}, false
	}
	c.scheduledUntil = c.now().Add(confirmationWindow)
	return post, true
}

// Manager maps session IDs to their controllers. Controllers live for the
// process lifetime; sessions are few (one per active browser) and the state
// is small.
type Manager struct {
	mu    sync.Mutex
	eng   Engine
	brand string
	byID  map[string]*Controller
}

// NewManager returns an empty manager backed by the given engine.
func NewManager(eng Engine, brandID string) *Manager {
	return &Manager{
		eng:   eng,
		brand: brandID,
		byID:  make(map[string]*Controller),
	}
}

// Get returns the controller for a session, creating it on first use.
func (m *Manager) Get(sessionID string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[sessionID]
	if !ok {
		c = NewController(m.eng, m.brand)
		m.byID[sessionID] = c
	}
	return c
}

// Drop discards a session's controller, used when the session itself ends.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.byID, sessionID)
	m.mu.Unlock()
}
