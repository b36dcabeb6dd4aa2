// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"instamedia/internal/pipeline"
	"instamedia/internal/score"
)

// studioView is a pipeline snapshot decorated with presentation hints: the
// score rating, the human verdict label, and the angle chip color.
type studioView struct {
	pipeline.Snapshot
	Rating       *score.Rating `json:"rating,omitempty"`
	VerdictLabel string        `json:"verdict_label,omitempty"`
	AngleColor   string        `json:"angle_color"`
}

func decorate(snap pipeline.Snapshot) studioView {
	view := studioView{
		Snapshot:   snap,
		AngleColor: score.AngleColor(snap.Angle),
	}
	if snap.Analysis != nil {
		rating := score.Classify(snap.Analysis.Result.ResonanceScore)
		view.Rating = &rating
		view.VerdictLabel = score.VerdictLabel(snap.Analysis.Result.Verdict)
	}
	return view
}

// controller resolves the request's session and returns its pipeline
// controller. Writes an error response and reports false on session trouble.
func (h *Workstation) controller(w http.ResponseWriter, r *http.Request) (*pipeline.Controller, bool) {
	id, _, err := h.sessions.Ensure(r.Context(), w, r, h.brandID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session unavailable")
		return nil, false
	}
	return h.pipelines.Get(id), true
}

// StudioState returns the session's current studio snapshot.
func (h *Workstation) StudioState(w http.ResponseWriter, r *http.Request) {
	c, ok := h.controller(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, decorate(c.Snapshot()))
}

// SetDraft replaces the editable draft text.
func (h *Workstation) SetDraft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	c, ok := h.controller(w, r)
	if !ok {
		return
	}
	c.SetDraft(req.Draft)
	writeJSON(w, http.StatusOK, decorate(c.Snapshot()))
}

// SetInputs updates the topic, platform, and angle form fields.
func (h *Workstation) SetInputs(w http.ResponseWriter, r *http.Request) {
	var req studioInputsRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	c, ok := h.controller(w, r)
	if !ok {
		return
	}
	c.SetInputs(req.Topic, req.Platform, req.Angle)
	writeJSON(w, http.StatusOK, decorate(c.Snapshot()))
}

// Generate produces a full post from the current topic. A blank topic leaves
// the state untouched; the returned snapshot reflects whatever happened.
func (h *Workstation) Generate(w http.ResponseWriter, r *http.Request) {
	c, ok := h.controller(w, r)
	if !ok {
		return
	}
	c.Generate(r.Context())
	writeJSON(w, http.StatusOK, decorate(c.Snapshot()))
}

// AnalyzeDraft scores the current draft against the brand's emotional
// register. Drafts under the minimum length are a no-op.
func (h *Workstation) AnalyzeDraft(w http.ResponseWriter, r *http.Request) {
	c, ok := h.controller(w, r)
	if !ok {
		return
	}
	c.Analyze(r.Context())
	writeJSON(w, http.StatusOK, decorate(c.Snapshot()))
}

// ApplyRewrite swaps the draft for the analysis rewrite suggestion.
func (h *Workstation) ApplyRewrite(w http.ResponseWriter, r *http.Request) {
	c, ok := h.controller(w, r)
	if !ok {
		return
	}
	if !c.ApplyRewrite() {
		writeError(w, http.StatusConflict, "no rewrite suggestion available")
		return
	}
	writeJSON(w, http.StatusOK, decorate(c.Snapshot()))
}

// Schedule persists the current draft at the requested time and invalidates
// the cached post collection so the calendar picks it up immediately.
func (h *Workstation) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	c, ok := h.controller(w, r)
	if !ok {
		return
	}

	post, scheduled := c.Schedule(r.Context(), req.ScheduledTime)
	snap := c.Snapshot()
	if !scheduled {
		if snap.Error != "" {
			writeError(w, http.StatusBadGateway, snap.Error)
			return
		}
		writeError(w, http.StatusBadRequest, "nothing to schedule")
		return
	}

	if h.posts != nil {
		h.posts.Invalidate(r.Context(), h.brandID)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"post":   post,
		"studio": decorate(snap),
	})
}
