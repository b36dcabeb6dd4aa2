// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package score maps numeric resonance scores and analysis verdicts to the
// presentation buckets used across the studio, ideation, and overview
// modules. Two threshold policies exist: the studio score ring uses 80/60/40
// and ideation's predicted-score coloring uses 75/60/45. They drifted apart
// in the product and are kept as separate named policies rather than unified.
package score

import "instamedia/internal/models"

// Bucket names a score band.
type Bucket string

const (
	BucketExcellent Bucket = "excellent"
	BucketGood      Bucket = "good"
	BucketFair      Bucket = "fair"
	BucketPoor      Bucket = "poor"
)

// Shared palette. The same four colors back both policies.
const (
	colorExcellent = "#34d399"
	colorGood      = "#00d4b8"
	colorFair      = "#f5a623"
	colorPoor      = "#ff5757"

	// colorNeutral is used for values outside any fixed vocabulary.
	colorNeutral = "#9ca3af"
)

// Rating is a classified score ready for display.
type Rating struct {
	Bucket Bucket `json:"bucket"`
	Color  string `json:"color"`
}

// Classify applies the studio policy: >=80 excellent, 60-79 good, 40-59 fair,
// below 40 poor. Each bucket is inclusive on its lower cut point.
func Classify(score int) Rating {
	switch {
	case score >= 80:
		return Rating{BucketExcellent, colorExcellent}
	case score >= 60:
		return Rating{BucketGood, colorGood}
	case score >= 40:
		return Rating{BucketFair, colorFair}
	default:
		return Rating{BucketPoor, colorPoor}
	}
}

// ClassifyPredicted applies the ideation policy (75/60/45) used for
// predicted-ERS coloring on idea cards.
func ClassifyPredicted(score int) Rating {
	switch {
	case score >= 75:
		return Rating{BucketExcellent, colorExcellent}
	case score >= 60:
		return Rating{BucketGood, colorGood}
	case score >= 45:
		return Rating{BucketFair, colorFair}
	default:
		return Rating{BucketPoor, colorPoor}
	}
}

// verdictLabels maps engine verdicts to user-facing strings.
var verdictLabels = map[models.Verdict]string{
	models.VerdictStrongMatch: "Strong Match",
	models.VerdictGoodMatch:   "Good Match",
	models.VerdictWeakMatch:   "Needs Work",
	models.VerdictMismatch:    "Misaligned",
}

// VerdictLabel returns the display label for a verdict. Unrecognized values
// (including future verdicts the engine may introduce) fall through to the
// raw value.
func VerdictLabel(v models.Verdict) string {
	if label, ok := verdictLabels[v]; ok {
		return label
	}
	return string(v)
}

// angleColors maps the fixed rhetorical-angle vocabulary to card accents.
var angleColors = map[string]string{
	"Vulnerability": "#ff5757",
	"Authority":     "#00d4b8",
	"Community":     "#a78bfa",
	"Aspiration":    "#f5a623",
	"Education":     "#38bdf8",
	"Honesty":       "#34d399",
}

// AngleColor returns the accent color for a rhetorical angle, neutral for
// anything outside the known vocabulary.
func AngleColor(angle string) string {
	if c, ok := angleColors[angle]; ok {
		return c
	}
	return colorNeutral
}
