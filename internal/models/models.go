// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data types exchanged with the AI engine and
// shared across the workstation modules: the Brand DNA record, content ideas,
// generated drafts, emotional analysis results, and scheduled posts.
package models

import (
	"encoding/json"
	"time"
)

// StringList is a []string that tolerates the engine's storage quirks: the
// backing store persists array columns as JSON-encoded strings, so a field may
// arrive either as a real JSON array or as a string containing one. Decode
// failures yield an empty list rather than an error.
type StringList []string

// UnmarshalJSON accepts `["a","b"]`, `"[\"a\",\"b\"]"`, or null.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var direct []string
	if err := json.Unmarshal(data, &direct); err == nil {
		*l = direct
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		var inner []string
		if encoded == "" || json.Unmarshal([]byte(encoded), &inner) != nil {
			*l = StringList{}
			return nil
		}
		*l = inner
		return nil
	}

	*l = StringList{}
	return nil
}

// BrandDNA is the brand's voice and constraint profile. One record per brand;
// this workstation operates on a single default brand.
type BrandDNA struct {
	BrandID         string     `json:"brand_id"`
	BrandName       string     `json:"brand_name"`
	Mission         string     `json:"mission"`
	ToneDescriptors StringList `json:"tone_descriptors"`
	HexColors       StringList `json:"hex_colors"`
	BannedWords     StringList `json:"banned_words"`
	Typography      string     `json:"typography"`
	LogoURL         string     `json:"logo_url"`
	UpdatedAt       string     `json:"updated_at,omitempty"`
}

// EmptyBrandDNA returns a blank template for the given brand, used by the
// vault's reset action. No network call involved.
func EmptyBrandDNA(brandID string) BrandDNA {
	return BrandDNA{
		BrandID:         brandID,
		ToneDescriptors: StringList{},
		HexColors:       StringList{},
		BannedWords:     StringList{},
	}
}

// ContentIdea is one AI-proposed idea from the ideation endpoint. Ideas are
// ephemeral: only the one the user selects survives the handoff into the
// studio.
type ContentIdea struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Hook         string `json:"hook"`
	Angle        string `json:"angle"`
	Platform     string `json:"platform"` // "Instagram", "LinkedIn", or "Both"
	PredictedERS int    `json:"predicted_ers"`
}

// GeneratedPost is the studio generation result that seeds the editable draft.
type GeneratedPost struct {
	PostText         string   `json:"post_text"`
	Hashtags         []string `json:"hashtags"`
	ImageStylePrompt string   `json:"image_style_prompt"`
	CTA              string   `json:"cta"`
	WordCount        int      `json:"word_count"`
}

// Verdict classifies a resonance score into match quality.
type Verdict string

const (
	VerdictStrongMatch Verdict = "STRONG_MATCH"
	VerdictGoodMatch   Verdict = "GOOD_MATCH"
	VerdictWeakMatch   Verdict = "WEAK_MATCH"
	VerdictMismatch    Verdict = "MISMATCH"

	// VerdictParseError signals the engine could not parse its own LLM output.
	VerdictParseError Verdict = "PARSE_ERROR"
)

// AnalysisResult is the emotional-alignment verdict for a draft.
type AnalysisResult struct {
	ResonanceScore     int      `json:"resonance_score"`
	Verdict            Verdict  `json:"verdict"`
	EmotionalArchetype string   `json:"emotional_archetype"`
	WhatWorks          string   `json:"what_works"`
	WhatIsMissing      string   `json:"what_is_missing"`
	MissingSignals     []string `json:"missing_signals"`
	RewriteSuggestion  string   `json:"rewrite_suggestion"`
	BannedWordsFound   []string `json:"banned_words_found"`
	Confidence         string   `json:"confidence"` // HIGH, MEDIUM, LOW
	Error              string   `json:"error,omitempty"`
}

// ReferencePost is one of the memory-store posts the engine compared the
// draft against.
type ReferencePost struct {
	Text        string  `json:"text"`
	ERS         float64 `json:"ers"`
	SemanticSim float64 `json:"semantic_sim"`
	Platform    string  `json:"platform"`
}

// Analysis is the full analyze envelope: the verdict plus the context the
// engine used to reach it.
type Analysis struct {
	Draft             string          `json:"draft"`
	Result            AnalysisResult  `json:"analysis"`
	ReferencePosts    []ReferencePost `json:"reference_posts"`
	ProcessingSeconds float64         `json:"processing_time_seconds"`
	MemoryPosts       int             `json:"db_size"`
	BannedWordsFound  []string        `json:"banned_words_found"`
}

// PostStatus is the lifecycle state of a scheduled post.
type PostStatus string

const (
	StatusScheduled PostStatus = "scheduled"
	StatusPublished PostStatus = "published"
	StatusDraft     PostStatus = "draft"
)

// ScheduledPost is the workstation's view of a post persisted by the engine.
// Hashtags may arrive as a JSON array or as an encoded string; StringList
// normalizes both. ScheduledTime is kept as the raw ISO string the engine
// stored and is parsed defensively on read.
type ScheduledPost struct {
	ID             string     `json:"id"`
	Content        string     `json:"content"`
	Platform       string     `json:"platform"` // instagram, linkedin, twitter, tiktok, both
	ScheduledTime  string     `json:"scheduled_time"`
	BrandID        string     `json:"brand_id"`
	ResonanceScore int        `json:"resonance_score"`
	ImageStyle     string     `json:"image_style"`
	Hashtags       StringList `json:"hashtags"`
	Status         PostStatus `json:"status"`
	CreatedAt      string     `json:"created_at"`
}

// scheduledTimeLayouts covers the formats the engine has been observed to
// store: full RFC 3339, and the browser's datetime-local values with and
// without seconds.
var scheduledTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParsedTime parses ScheduledTime in local time. A post with an unparseable
// timestamp reports ok=false and is excluded from calendar buckets and
// upcoming projections rather than causing a fault.
func (p ScheduledPost) ParsedTime() (time.Time, bool) {
	s := p.ScheduledTime
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range scheduledTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DashboardStats backs the overview metric tiles.
type DashboardStats struct {
	TotalContent      int     `json:"total_content"`
	Scheduled         int     `json:"scheduled"`
	Published         int     `json:"published"`
	AvgResonanceScore float64 `json:"avg_resonance_score"`
	MemoryPostCount   int     `json:"db_post_count"`
}

// EngineHealth is the engine's self-reported status.
type EngineHealth struct {
	Status           string `json:"status"`
	MemoryPosts      int    `json:"posts_in_chromadb"`
	LLMProvider      string `json:"llm_provider"`
	StorageConnected bool   `json:"supabase_connected"`
}
