// Package report renders load summaries, schedules and course details as
// plain text for the CLI, TUI and MCP surfaces.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"courseplanner/internal/domain"
)

// WriteSummary writes the load summary block
func WriteSummary(w io.Writer, s domain.LoadSummary) {
	fmt.Fprintln(w, "=== Load Summary ===")
	fmt.Fprintf(w, "Lines read:        %d\n", s.LinesRead)
	fmt.Fprintf(w, "Courses parsed:    %d\n", s.ParsedCourses)
	fmt.Fprintf(w, "Inserted:          %d\n", s.Inserted)
	fmt.Fprintf(w, "Duplicates:        %d\n", s.Duplicates)
	fmt.Fprintf(w, "Unknown prereqs:   %d\n", s.UnknownPrereqs)
	fmt.Fprintf(w, "Self prereqs:      %d\n", s.SelfPrereqs)
	fmt.Fprintf(w, "Cycles detected:   %d\n", s.Cycles)
	for _, d := range s.Diagnostics {
		fmt.Fprintf(w, "* %s\n", DiagnosticLine(d))
	}
	fmt.Fprintln(w, "====================")
}

// DiagnosticLine formats one diagnostic. Timing entries show only their detail.
func DiagnosticLine(d domain.Diagnostic) string {
	if d.Kind == domain.KindTiming {
		return d.Detail
	}
	return d.String()
}

// WriteSchedule writes the sorted course list followed by how long the
// listing took to build
func WriteSchedule(w io.Writer, courses []domain.Course, elapsed time.Duration) {
	if len(courses) == 0 {
		fmt.Fprintln(w, "No courses loaded.")
		return
	}
	fmt.Fprintln(w, "Here is a sample schedule:")
	fmt.Fprintln(w)
	for _, c := range courses {
		fmt.Fprintf(w, "%s, %s\n", c.ID, c.Title)
	}
	fmt.Fprintf(w, "\n(List generated in %d ms)\n", elapsed.Milliseconds())
}

// WriteCourse writes a course with its prerequisites and their titles
func WriteCourse(w io.Writer, d *domain.CourseDetail) {
	fmt.Fprintf(w, "%s, %s\n", d.Course.ID, d.Course.Title)
	if len(d.Prerequisites) == 0 {
		fmt.Fprintln(w, "Prerequisites: None")
		return
	}

	ids := make([]string, len(d.Prerequisites))
	for i, p := range d.Prerequisites {
		if p.Found {
			ids[i] = string(p.ID)
		} else {
			ids[i] = string(p.ID) + " (Not found)"
		}
	}
	fmt.Fprintf(w, "Prerequisites: %s\n", strings.Join(ids, ", "))

	for _, p := range d.Prerequisites {
		if p.Found {
			fmt.Fprintf(w, "  - %s: %s\n", p.ID, p.Title)
		} else {
			fmt.Fprintf(w, "  - %s: [Title not found]\n", p.ID)
		}
	}
}

// Summary renders the load summary to a string
func Summary(s domain.LoadSummary) string {
	var sb strings.Builder
	WriteSummary(&sb, s)
	return sb.String()
}

// Schedule renders the course list to a string
func Schedule(courses []domain.Course, elapsed time.Duration) string {
	var sb strings.Builder
	WriteSchedule(&sb, courses, elapsed)
	return sb.String()
}

// Course renders a course detail to a string
func Course(d *domain.CourseDetail) string {
	var sb strings.Builder
	WriteCourse(&sb, d)
	return sb.String()
}
