package domain

import "time"

// LoadSummary reports what a single load did. Counters and diagnostics are
// final once the load returns.
type LoadSummary struct {
	LinesRead      int
	ParsedCourses  int
	Inserted       int
	Duplicates     int
	UnknownPrereqs int
	SelfPrereqs    int
	Cycles         int
	CycleExcluded  int
	Elapsed        time.Duration
	Diagnostics    []Diagnostic
}

// Add appends a diagnostic in discovery order
func (s *LoadSummary) Add(line int, kind DiagnosticKind, detail string) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{Line: line, Kind: kind, Detail: detail})
}

// Count returns the number of diagnostics of the given kind
func (s *LoadSummary) Count(kind DiagnosticKind) int {
	n := 0
	for _, d := range s.Diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// SourceFailed reports whether the input could not be read
func (s *LoadSummary) SourceFailed() bool {
	return s.Count(KindSourceError) > 0
}
