// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Request bodies for the JSON API. Validation tags enforce the structural
// rules; semantic rules (draft length floors, silent no-ops) live in the
// pipeline.

type saveBrandRequest struct {
	BrandName       string   `json:"brand_name" validate:"max=200"`
	Mission         string   `json:"mission" validate:"max=2000"`
	ToneDescriptors []string `json:"tone_descriptors" validate:"max=50,dive,max=100"`
	HexColors       []string `json:"hex_colors" validate:"max=20,dive,max=30"`
	BannedWords     []string `json:"banned_words" validate:"max=200,dive,max=100"`
	Typography      string   `json:"typography" validate:"max=200"`
	LogoURL         string   `json:"logo_url" validate:"omitempty,max=2000"`
}

type ideateRequest struct {
	FocusArea string `json:"focus_area" validate:"max=500"`
}

type selectIdeaRequest struct {
	ID           string `json:"id" validate:"max=100"`
	Title        string `json:"title" validate:"required,max=300"`
	Hook         string `json:"hook" validate:"max=1000"`
	Angle        string `json:"angle" validate:"max=100"`
	Platform     string `json:"platform" validate:"max=50"`
	PredictedERS int    `json:"predicted_ers" validate:"min=0,max=100"`
}

type navRequest struct {
	View string `json:"view" validate:"required,max=50"`
}

type draftRequest struct {
	Draft string `json:"draft" validate:"max=10000"`
}

type studioInputsRequest struct {
	Topic    string `json:"topic" validate:"max=300"`
	Platform string `json:"platform" validate:"max=50"`
	Angle    string `json:"angle" validate:"max=100"`
}

type scheduleRequest struct {
	ScheduledTime string `json:"scheduled_time" validate:"required,max=50"`
}

// validationMessage turns a validator error into a single human-readable
// message naming the first offending field.
func validationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "max":
			return fmt.Sprintf("%s is too long", fe.Field())
		case "min":
			return fmt.Sprintf("%s is too small", fe.Field())
		}
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
	return "invalid request"
}
