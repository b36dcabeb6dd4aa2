// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handoff models the workstation's navigation state: which module is
// active and which ideation idea, if any, has been carried into the studio.
// State values are immutable; transitions return a new State, which keeps
// them unit-testable without any rendering or session machinery.
package handoff

import "instamedia/internal/models"

// View identifies one of the workstation modules.
type View string

const (
	ViewOverview   View = "overview"
	ViewBrandVault View = "brand-vault"
	ViewIdeation   View = "ideation"
	ViewStudio     View = "studio"
	ViewCalendar   View = "calendar"
)

// Views lists every valid view, in sidebar order.
var Views = []View{ViewOverview, ViewBrandVault, ViewIdeation, ViewStudio, ViewCalendar}

// Valid reports whether v names a real module.
func (v View) Valid() bool {
	for _, known := range Views {
		if v == known {
			return true
		}
	}
	return false
}

// State is the navigation state carried for the lifetime of a workstation
// session. There is no terminal state; it resets only when the session does.
type State struct {
	ActiveView View                `json:"active_view"`
	Selected   *models.ContentIdea `json:"selected_idea,omitempty"`
}

// NewState returns the initial state: overview active, nothing selected.
func NewState() State {
	return State{ActiveView: ViewOverview}
}

// SelectIdea records the selection and moves to the studio. This is the only
// transition that changes selection and navigation together.
func (s State) SelectIdea(idea models.ContentIdea) State {
	copied := idea
	s.Selected = &copied
	s.ActiveView = ViewStudio
	return s
}

// Navigate changes the active view only; the selection survives so the user
// can come back to the studio later. Invalid views leave the state unchanged.
func (s State) Navigate(v View) State {
	if !v.Valid() {
		return s
	}
	s.ActiveView = v
	return s
}

// IdeationBadge reports whether the ideation nav entry should carry a badge,
// which it does for as long as a selection exists.
func (s State) IdeationBadge() bool {
	return s.Selected != nil
}

// CanResumeStudio reports whether a "resume studio" affordance should be
// offered: a selection exists and the user is elsewhere.
func (s State) CanResumeStudio() bool {
	return s.Selected != nil && s.ActiveView != ViewStudio
}

// Prefill is the studio form state seeded by a handoff.
type Prefill struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform"`
	Draft    string `json:"draft"`
	Angle    string `json:"angle"`
}

// StudioPrefill derives the studio's initial fields from the selected idea:
// the title becomes the topic, the hook becomes the starting draft, and the
// "Both" platform placeholder resolves to Instagram. ok is false when no
// selection exists.
func (s State) StudioPrefill() (Prefill, bool) {
	if s.Selected == nil {
		return Prefill{}, false
	}
	platform := s.Selected.Platform
	if platform == "Both" {
		platform = "Instagram"
	}
	return Prefill{
		Topic:    s.Selected.Title,
		Platform: platform,
		Draft:    s.Selected.Hook,
		Angle:    s.Selected.Angle,
	}, true
}
