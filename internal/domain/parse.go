package domain

import (
	"fmt"
	"strings"
)

// Delimiter separates fields on a catalog line: number,title[,prereq]*
const Delimiter = ","

// ParseLine turns one raw catalog line into a candidate course.
// Blank lines yield ok=false without a diagnostic. Malformed lines yield
// ok=false and a MissingField diagnostic at lineNo. Prerequisite existence
// and duplicate numbers are checked by later passes.
func ParseLine(line string, lineNo int, summary *LoadSummary) (Course, bool) {
	if strings.TrimSpace(line) == "" {
		return Course{}, false
	}

	fields := strings.Split(line, Delimiter)
	if len(fields) < 2 {
		summary.Add(lineNo, KindMissingField, "Missing course number or title")
		return Course{}, false
	}

	id := Normalize(fields[0])
	if id.IsEmpty() {
		summary.Add(lineNo, KindMissingField, "Empty course number")
		return Course{}, false
	}

	title := strings.TrimSpace(fields[1])
	if title == "" {
		summary.Add(lineNo, KindMissingField, fmt.Sprintf("Empty course title for %s", id))
		return Course{}, false
	}

	var prereqs []Identifier
	for _, f := range fields[2:] {
		if p := Normalize(f); !p.IsEmpty() {
			prereqs = append(prereqs, p)
		}
	}

	return Course{ID: id, Title: title, Prerequisites: prereqs}, true
}
