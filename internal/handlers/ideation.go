// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"instamedia/internal/models"
	"instamedia/internal/score"
)

// focusOptions are the quick-pick focus areas offered above the free-text
// field on the ideation module.
var focusOptions = []string{
	"Audience growth",
	"Product launch",
	"Community building",
	"Thought leadership",
	"Behind the scenes",
}

// ratedIdea is a content idea decorated with its presentation hints: the
// predicted-score rating and the angle chip color.
type ratedIdea struct {
	models.ContentIdea
	Rating     score.Rating `json:"rating"`
	AngleColor string       `json:"angle_color"`
}

func rateIdea(idea models.ContentIdea) ratedIdea {
	return ratedIdea{
		ContentIdea: idea,
		Rating:      score.ClassifyPredicted(idea.PredictedERS),
		AngleColor:  score.AngleColor(idea.Angle),
	}
}

// Ideate asks the engine for fresh content ideas, optionally steered by a
// focus area. Each idea comes back decorated for rendering.
func (h *Workstation) Ideate(w http.ResponseWriter, r *http.Request) {
	var req ideateRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	ideas, err := h.eng.Ideate(r.Context(), h.brandID, req.FocusArea)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	rated := make([]ratedIdea, len(ideas))
	for i, idea := range ideas {
		rated[i] = rateIdea(idea)
	}
	writeJSON(w, http.StatusOK, map[string]any{"ideas": rated})
}

// FocusOptions returns the ideation focus quick-picks.
func (h *Workstation) FocusOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"options": focusOptions})
}

// SelectIdea hands an idea off to the studio: the session's navigation jumps
// to the studio view and the session's pipeline is seeded from the idea.
func (h *Workstation) SelectIdea(w http.ResponseWriter, r *http.Request) {
	var req selectIdeaRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	ctx := r.Context()
	id, data, err := h.sessions.Ensure(ctx, w, r, h.brandID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	idea := models.ContentIdea{
		ID:           req.ID,
		Title:        req.Title,
		Hook:         req.Hook,
		Angle:        req.Angle,
		Platform:     req.Platform,
		PredictedERS: req.PredictedERS,
	}

	data.Nav = data.Nav.SelectIdea(idea)
	if err := h.sessions.Save(ctx, id, data); err != nil {
		writeError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	if prefill, ok := data.Nav.StudioPrefill(); ok {
		h.pipelines.Get(id).ApplyIdea(prefill)
	}

	writeJSON(w, http.StatusOK, navPayload(data))
}
