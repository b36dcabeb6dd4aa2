// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"instamedia/internal/handoff"
	"instamedia/internal/session"
)

// navPayload shapes the navigation state for the sidebar: the active view,
// the carried idea, and the derived affordances.
func navPayload(data *session.Data) map[string]any {
	return map[string]any{
		"active_view":       data.Nav.ActiveView,
		"selected_idea":     data.Nav.Selected,
		"ideation_badge":    data.Nav.IdeationBadge(),
		"can_resume_studio": data.Nav.CanResumeStudio(),
		"views":             handoff.Views,
	}
}

// GetNav returns the session's navigation state, creating a session on first
// contact.
func (h *Workstation) GetNav(w http.ResponseWriter, r *http.Request) {
	_, data, err := h.sessions.Ensure(r.Context(), w, r, h.brandID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session unavailable")
		return
	}
	writeJSON(w, http.StatusOK, navPayload(data))
}

// Navigate switches the active view. Unknown views are rejected rather than
// silently ignored, since the client controls its own view names.
func (h *Workstation) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	view := handoff.View(req.View)
	if !view.Valid() {
		writeError(w, http.StatusBadRequest, "unknown view")
		return
	}

	ctx := r.Context()
	id, data, err := h.sessions.Ensure(ctx, w, r, h.brandID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	data.Nav = data.Nav.Navigate(view)
	if err := h.sessions.Save(ctx, id, data); err != nil {
		writeError(w, http.StatusInternalServerError, "session unavailable")
		return
	}
	writeJSON(w, http.StatusOK, navPayload(data))
}
