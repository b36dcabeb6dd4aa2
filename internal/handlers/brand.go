// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"instamedia/internal/models"
	"instamedia/internal/tagset"
)

// toneSuggestions are the quick-add chips offered under the tone field.
var toneSuggestions = []string{
	"Authentic", "Bold", "Playful", "Empathetic",
	"Direct", "Inspiring", "Witty", "Warm",
}

// GetBrand returns the stored Brand DNA, or an empty template when the brand
// has no record yet.
func (h *Workstation) GetBrand(w http.ResponseWriter, r *http.Request) {
	dna, err := h.eng.BrandDNA(r.Context(), h.brandID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dna)
}

// SaveBrand persists the full Brand DNA record. Tag-valued fields are
// normalized the same way the tag editors normalize keystrokes, so a record
// saved through the API obeys the same uniqueness and cleanliness rules.
func (h *Workstation) SaveBrand(w http.ResponseWriter, r *http.Request) {
	var req saveBrandRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	dna := models.BrandDNA{
		BrandID:         h.brandID,
		BrandName:       req.BrandName,
		Mission:         req.Mission,
		ToneDescriptors: models.StringList(tagset.New(req.ToneDescriptors...).Values()),
		HexColors:       models.StringList(tagset.New(req.HexColors...).Values()),
		BannedWords:     models.StringList(tagset.New(req.BannedWords...).Values()),
		Typography:      req.Typography,
		LogoURL:         req.LogoURL,
	}

	if err := h.eng.SaveBrandDNA(r.Context(), dna); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dna)
}

// BrandTemplate returns a blank Brand DNA form for the reset action. Nothing
// is persisted; the stored record survives until the next save.
func (h *Workstation) BrandTemplate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.EmptyBrandDNA(h.brandID))
}

// ToneSuggestions returns the quick-add tone chips.
func (h *Workstation) ToneSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": toneSuggestions})
}
