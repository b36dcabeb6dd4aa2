// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package tagset implements the ordered-unique string collections behind the
// Brand DNA vault's tag fields (tone descriptors, hex colors, banned words),
// together with the keystroke semantics of their paired text inputs.
package tagset

import "strings"

// Set is an ordered collection of unique, non-empty strings. Insertion order
// is preserved and is the display order. Matching is case-sensitive: two tags
// differing only by case are distinct. There is no size limit.
type Set struct {
	values []string
}

// New builds a set from the given values, applying the same cleaning and
// deduplication rules as Add. Useful for normalizing lists loaded from the
// engine, which does not enforce the invariant itself.
func New(values ...string) *Set {
	s := &Set{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// clean trims surrounding whitespace and strips embedded separator commas.
func clean(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
}

// Add cleans raw and appends it at the end. Empty results and exact
// duplicates are no-ops. Reports whether the set changed.
func (s *Set) Add(raw string) bool {
	v := clean(raw)
	if v == "" || s.Contains(v) {
		return false
	}
	s.values = append(s.values, v)
	return true
}

// Remove deletes the first occurrence of v. No-op if absent.
func (s *Set) Remove(v string) bool {
	for i, existing := range s.values {
		if existing == v {
			s.values = append(s.values[:i], s.values[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveLast pops the most-recently-added tag.
func (s *Set) RemoveLast() (string, bool) {
	if len(s.values) == 0 {
		return "", false
	}
	last := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return last, true
}

// Contains reports whether v is present (exact match).
func (s *Set) Contains(v string) bool {
	for _, existing := range s.values {
		if existing == v {
			return true
		}
	}
	return false
}

// Values returns a copy of the tags in insertion order.
func (s *Set) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Len returns the number of tags.
func (s *Set) Len() int { return len(s.values) }

// Key identifies a keystroke relevant to the tag input contract. Values
// mirror DOM KeyboardEvent.key.
type Key string

const (
	KeyEnter     Key = "Enter"
	KeyComma     Key = ","
	KeyBackspace Key = "Backspace"
)

// Editor pairs a Set with the text input buffer next to it. Enter or comma
// commits the buffer as a new tag; backspace on an empty buffer walks back
// the most recent tag, letting a user undo entries without pointing at a
// specific chip.
type Editor struct {
	set    *Set
	buffer string
}

// NewEditor wraps an existing set. The set may already hold tags.
func NewEditor(set *Set) *Editor {
	return &Editor{set: set}
}

// Buffer returns the current uncommitted input text.
func (e *Editor) Buffer() string { return e.buffer }

// SetBuffer replaces the input text, as if the user had typed it.
func (e *Editor) SetBuffer(text string) { e.buffer = text }

// Set returns the underlying tag set.
func (e *Editor) Set() *Set { return e.set }

// Keypress applies one keystroke. Unrecognized keys are ignored; plain text
// entry goes through SetBuffer.
func (e *Editor) Keypress(k Key) {
	switch k {
	case KeyEnter, KeyComma:
		e.set.Add(e.buffer)
		e.buffer = ""
	case KeyBackspace:
		if e.buffer == "" {
			e.set.RemoveLast()
			return
		}
		runes := []rune(e.buffer)
		e.buffer = string(runes[:len(runes)-1])
	}
}
