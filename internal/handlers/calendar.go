// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"instamedia/internal/calendar"
	"instamedia/internal/models"
	"instamedia/internal/score"
)

// ratedPost decorates a scheduled post with its score rating for the
// calendar chips and upcoming list.
type ratedPost struct {
	models.ScheduledPost
	Rating score.Rating `json:"rating"`
}

func ratePosts(posts []models.ScheduledPost) []ratedPost {
	out := make([]ratedPost, len(posts))
	for i, p := range posts {
		out[i] = ratedPost{ScheduledPost: p, Rating: score.Classify(p.ResonanceScore)}
	}
	return out
}

// calendarCursor reads the year/month query parameters, defaulting to the
// current month. Months are zero-based. An out-of-range month is rejected.
func calendarCursor(r *http.Request) (calendar.Cursor, bool) {
	cur := calendar.CursorFor(time.Now())
	q := r.URL.Query()
	if y := q.Get("year"); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil {
			return cur, false
		}
		cur.Year = n
	}
	if m := q.Get("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil {
			return cur, false
		}
		cur.Month = n
	}
	return cur, cur.Valid()
}

// CalendarMonth returns the month grid: per-day post buckets, grid geometry,
// status counts, and the neighboring cursors for navigation.
func (h *Workstation) CalendarMonth(w http.ResponseWriter, r *http.Request) {
	cur, ok := calendarCursor(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid year or month")
		return
	}

	posts, err := h.cachedPosts(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	buckets := calendar.BucketByDay(posts, cur.Year, cur.Month)
	days := make([][]ratedPost, len(buckets))
	for day := range buckets {
		days[day] = ratePosts(buckets[day])
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cursor":        cur,
		"prev":          cur.Prev(),
		"next":          cur.Next(),
		"first_weekday": calendar.FirstWeekday(cur.Year, cur.Month),
		"days_in_month": calendar.DaysInMonth(cur.Year, cur.Month),
		"total_cells":   calendar.GridSize(cur.Year, cur.Month),
		"days":          days,
		"counts":        calendar.MonthCounts(posts, cur.Year, cur.Month),
	})
}

// Upcoming returns the next scheduled posts after now, soonest first.
func (h *Workstation) Upcoming(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	posts, err := h.cachedPosts(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"upcoming": ratePosts(calendar.Upcoming(posts, time.Now(), limit)),
	})
}
