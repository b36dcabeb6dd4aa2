// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package calendar derives the month grid and day buckets the calendar and
// overview modules render. All functions are pure transformations over a post
// collection plus a (year, zero-based month) cursor; months are zero-based
// throughout to match the rest of the workstation, and weekday 0 is Sunday.
package calendar

import (
	"sort"
	"time"

	"instamedia/internal/models"
)

// DaysInMonth returns the number of days in the given month (0 = January).
func DaysInMonth(year, month int) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday (0 = Sunday) of the first of the month.
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// GridSize returns the total cell count of the month grid: the smallest
// multiple of 7 that fits the leading filler cells plus every day of the
// month, so the grid is always rectangular.
func GridSize(year, month int) int {
	used := FirstWeekday(year, month) + DaysInMonth(year, month)
	return ((used + 6) / 7) * 7
}

// BucketByDay groups posts by calendar day. The returned slice is indexed by
// day number (index 0 is unused); a post lands in the bucket whose local-time
// year/month/day matches its scheduled time. Posts with unparseable
// timestamps are excluded from every bucket.
func BucketByDay(posts []models.ScheduledPost, year, month int) [][]models.ScheduledPost {
	buckets := make([][]models.ScheduledPost, DaysInMonth(year, month)+1)
	for _, p := range posts {
		t, ok := p.ParsedTime()
		if !ok {
			continue
		}
		if t.Year() != year || int(t.Month())-1 != month {
			continue
		}
		day := t.Day()
		buckets[day] = append(buckets[day], p)
	}
	return buckets
}

// PostsOnDay returns the posts scheduled on one specific day of the month.
func PostsOnDay(posts []models.ScheduledPost, year, month, day int) []models.ScheduledPost {
	var out []models.ScheduledPost
	for _, p := range posts {
		t, ok := p.ParsedTime()
		if !ok {
			continue
		}
		if t.Year() == year && int(t.Month())-1 == month && t.Day() == day {
			out = append(out, p)
		}
	}
	return out
}

// Upcoming returns the scheduled posts strictly after now, ascending by
// scheduled time, truncated to limit. A limit below zero means no truncation.
func Upcoming(posts []models.ScheduledPost, now time.Time, limit int) []models.ScheduledPost {
	type timed struct {
		post models.ScheduledPost
		at   time.Time
	}

	var future []timed
	for _, p := range posts {
		if p.Status != models.StatusScheduled {
			continue
		}
		t, ok := p.ParsedTime()
		if !ok || !t.After(now) {
			continue
		}
		future = append(future, timed{p, t})
	}

	sort.Slice(future, func(i, j int) bool { return future[i].at.Before(future[j].at) })

	if limit >= 0 && len(future) > limit {
		future = future[:limit]
	}
	out := make([]models.ScheduledPost, len(future))
	for i, f := range future {
		out[i] = f.post
	}
	return out
}

// Counts holds per-status post counts for one month, for the stat tiles
// above the calendar grid.
type Counts struct {
	Scheduled int `json:"scheduled"`
	Published int `json:"published"`
	Draft     int `json:"draft"`
	Total     int `json:"total"`
}

// MonthCounts tallies posts whose parsed scheduled time falls in the given
// month, by status.
func MonthCounts(posts []models.ScheduledPost, year, month int) Counts {
	var c Counts
	for _, p := range posts {
		t, ok := p.ParsedTime()
		if !ok {
			continue
		}
		if t.Year() != year || int(t.Month())-1 != month {
			continue
		}
		c.Total++
		switch p.Status {
		case models.StatusScheduled:
			c.Scheduled++
		case models.StatusPublished:
			c.Published++
		case models.StatusDraft:
			c.Draft++
		}
	}
	return c
}

// Cursor is a (year, zero-based month) pair with wrapping navigation.
type Cursor struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// CursorFor returns the cursor for the month containing t.
func CursorFor(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: int(t.Month()) - 1}
}

// Prev steps back one month, wrapping December of the previous year.
func (c Cursor) Prev() Cursor {
	if c.Month == 0 {
		return Cursor{Year: c.Year - 1, Month: 11}
	}
	return Cursor{Year: c.Year, Month: c.Month - 1}
}

// Next steps forward one month, wrapping January of the next year.
func (c Cursor) Next() Cursor {
	if c.Month == 11 {
		return Cursor{Year: c.Year + 1, Month: 0}
	}
	return Cursor{Year: c.Year, Month: c.Month + 1}
}

// Valid reports whether the cursor's month is in range.
func (c Cursor) Valid() bool {
	return c.Month >= 0 && c.Month <= 11
}
