// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calendar

import (
	"testing"
	"time"

	"instamedia/internal/models"
)

func scheduledAt(when string) models.ScheduledPost {
	return models.ScheduledPost{
		Content:       "post at " + when,
		ScheduledTime: when,
		Status:        models.StatusScheduled,
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 1, 29}, // leap-year February
		{2023, 1, 28},
		{2024, 0, 31},
		{2024, 3, 30},
		{2024, 11, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d): got %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestGridSize(t *testing.T) {
	for month := 0; month < 12; month++ {
		size := GridSize(2024, month)
		if size%7 != 0 {
			t.Errorf("month %d: grid size %d is not a multiple of 7", month, size)
		}
		min := FirstWeekday(2024, month) + DaysInMonth(2024, month)
		if size < min {
			t.Errorf("month %d: grid size %d < first weekday + days (%d)", month, size, min)
		}
		if size-min >= 7 {
			t.Errorf("month %d: grid size %d has a full trailing empty week", month, size)
		}
	}
}

func TestBucketByDay(t *testing.T) {
	posts := []models.ScheduledPost{
		scheduledAt("2024-02-01T09:00:00"),
		scheduledAt("2024-02-01T23:00:00"),
		scheduledAt("2024-03-01T00:00:00"),
		scheduledAt("not a timestamp"),
	}

	buckets := BucketByDay(posts, 2024, 1)
	if len(buckets) != 30 { // index 0 unused + 29 days
		t.Fatalf("bucket count: got %d, want 30", len(buckets))
	}
	if len(buckets[1]) != 2 {
		t.Errorf("day 1: got %d posts, want 2", len(buckets[1]))
	}
	for day := 2; day <= 29; day++ {
		if len(buckets[day]) != 0 {
			t.Errorf("day %d: got %d posts, want 0", day, len(buckets[day]))
		}
	}
}

func TestBucketByDayMatchesPerDayFilter(t *testing.T) {
	posts := []models.ScheduledPost{
		scheduledAt("2024-02-03T08:00:00"),
		scheduledAt("2024-02-03T19:30:00"),
		scheduledAt("2024-02-14T12:00:00"),
		scheduledAt("2024-01-31T23:59:00"),
	}

	buckets := BucketByDay(posts, 2024, 1)
	for day := 1; day <= 29; day++ {
		filtered := PostsOnDay(posts, 2024, 1, day)
		if len(filtered) != len(buckets[day]) {
			t.Errorf("day %d: bucket has %d, filter has %d", day, len(buckets[day]), len(filtered))
		}
	}
}

func TestCursorWraparound(t *testing.T) {
	prev := Cursor{Year: 2024, Month: 0}.Prev()
	if prev.Year != 2023 || prev.Month != 11 {
		t.Errorf("Prev from Jan 2024: got %+v, want 2023/11", prev)
	}

	next := Cursor{Year: 2024, Month: 11}.Next()
	if next.Year != 2025 || next.Month != 0 {
		t.Errorf("Next from Dec 2024: got %+v, want 2025/0", next)
	}

	mid := Cursor{Year: 2024, Month: 5}
	if got := mid.Prev(); got.Year != 2024 || got.Month != 4 {
		t.Errorf("Prev from Jun 2024: got %+v", got)
	}
	if got := mid.Next(); got.Year != 2024 || got.Month != 6 {
		t.Errorf("Next from Jun 2024: got %+v", got)
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.Local)

	past := scheduledAt("2024-02-01T09:00:00")
	soon := scheduledAt("2024-02-11T09:00:00")
	later := scheduledAt("2024-02-20T09:00:00")
	published := scheduledAt("2024-02-15T09:00:00")
	published.Status = models.StatusPublished
	broken := scheduledAt("someday")

	posts := []models.ScheduledPost{later, published, past, broken, soon}

	got := Upcoming(posts, now, 10)
	if len(got) != 2 {
		t.Fatalf("upcoming: got %d posts, want 2", len(got))
	}
	if got[0].ScheduledTime != soon.ScheduledTime {
		t.Errorf("first upcoming: got %q, want soonest", got[0].ScheduledTime)
	}
	if got[1].ScheduledTime != later.ScheduledTime {
		t.Errorf("second upcoming: got %q", got[1].ScheduledTime)
	}

	if limited := Upcoming(posts, now, 1); len(limited) != 1 {
		t.Errorf("limit 1: got %d posts", len(limited))
	}
}

func TestMonthCounts(t *testing.T) {
	draft := scheduledAt("2024-02-05T10:00:00")
	draft.Status = models.StatusDraft
	published := scheduledAt("2024-02-06T10:00:00")
	published.Status = models.StatusPublished

	posts := []models.ScheduledPost{
		scheduledAt("2024-02-01T09:00:00"),
		scheduledAt("2024-02-02T09:00:00"),
		draft,
		published,
		scheduledAt("2024-03-01T09:00:00"), // outside the month
		scheduledAt("bogus"),
	}

	c := MonthCounts(posts, 2024, 1)
	if c.Scheduled != 2 || c.Published != 1 || c.Draft != 1 || c.Total != 4 {
		t.Errorf("counts: got %+v", c)
	}
}

func TestCursorFor(t *testing.T) {
	c := CursorFor(time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC))
	if c.Year != 2024 || c.Month != 11 {
		t.Errorf("cursor: got %+v, want 2024/11", c)
	}
	if !c.Valid() {
		t.Error("cursor should be valid")
	}
	if (Cursor{Year: 2024, Month: 12}).Valid() {
		t.Error("month 12 should be invalid")
	}
}
