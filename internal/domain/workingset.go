package domain

import (
	"fmt"
	"slices"
)

// WorkingSet holds the courses of one load while it is being validated.
// Iteration follows first-seen order so passes report deterministically.
type WorkingSet struct {
	courses map[Identifier]*Course
	order   []Identifier
}

// NewWorkingSet creates an empty working set
func NewWorkingSet() *WorkingSet {
	return &WorkingSet{courses: make(map[Identifier]*Course)}
}

// Add stores c unless its number is already present. The first occurrence
// wins; a repeat bumps Duplicates and records a diagnostic at lineNo.
func (w *WorkingSet) Add(c Course, lineNo int, summary *LoadSummary) bool {
	if _, exists := w.courses[c.ID]; exists {
		summary.Duplicates++
		summary.Add(lineNo, KindDuplicate, fmt.Sprintf("Duplicate course number: %s", c.ID))
		return false
	}
	stored := c.Clone()
	w.courses[c.ID] = &stored
	w.order = append(w.order, c.ID)
	summary.ParsedCourses++
	return true
}

// Contains reports whether id is in the set
func (w *WorkingSet) Contains(id Identifier) bool {
	_, ok := w.courses[id]
	return ok
}

// Get returns the course for id
func (w *WorkingSet) Get(id Identifier) (*Course, bool) {
	c, ok := w.courses[id]
	return c, ok
}

// IDs returns a copy of the identifiers in first-seen order
func (w *WorkingSet) IDs() []Identifier {
	return slices.Clone(w.order)
}

// Len returns the number of courses in the set
func (w *WorkingSet) Len() int {
	return len(w.order)
}
