package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"courseplanner/internal/application"
	"courseplanner/internal/ctxlog"
	"courseplanner/internal/domain"
	"courseplanner/internal/ports"
)

// maxLineBytes bounds a single catalog line
const maxLineBytes = 1 << 20

// LoadCommand reads a catalog file, validates it and publishes the result
type LoadCommand struct {
	source  ports.CourseSource
	session *application.Session
	Path    string
}

// NewLoadCommand creates a new LoadCommand
func NewLoadCommand(source ports.CourseSource, session *application.Session, path string) *LoadCommand {
	return &LoadCommand{
		source:  source,
		session: session,
		Path:    path,
	}
}

// Execute runs parse -> prune -> cycle detection -> insert and returns the
// summary. Malformed data never fails the load; it is reported in the
// summary. When the source can't be read the summary holds a single
// SourceError diagnostic and the session keeps its previous catalog.
func (c *LoadCommand) Execute(ctx context.Context) domain.LoadSummary {
	logger := ctxlog.FromContext(ctx).With("path", c.Path)
	done := c.session.BeginLoad()
	defer done()

	start := time.Now()

	catalog, summary, err := c.build(ctx)
	if err != nil {
		logger.Warn("catalog source unreadable", "error", err)
		failed := domain.LoadSummary{}
		failed.Add(0, domain.KindSourceError, fmt.Sprintf("Cannot open file: %s", c.Path))
		return failed
	}

	summary.Elapsed = time.Since(start)
	summary.Add(0, domain.KindTiming, fmt.Sprintf("Load completed in %d ms", summary.Elapsed.Milliseconds()))

	c.session.Replace(catalog)

	logger.Info("catalog loaded",
		"lines", summary.LinesRead,
		"parsed", summary.ParsedCourses,
		"inserted", summary.Inserted,
		"duplicates", summary.Duplicates,
		"unknown_prereqs", summary.UnknownPrereqs,
		"self_prereqs", summary.SelfPrereqs,
		"cycles", summary.Cycles,
		"elapsed", summary.Elapsed,
	)
	return summary
}

func (c *LoadCommand) build(ctx context.Context) (*domain.Catalog, domain.LoadSummary, error) {
	var summary domain.LoadSummary

	rc, err := c.source.Open(c.Path)
	if err != nil {
		return nil, summary, &application.SourceError{Path: c.Path, Err: err}
	}
	defer rc.Close()

	ws, err := parseSource(ctx, rc, &summary)
	if err != nil {
		return nil, summary, &application.SourceError{Path: c.Path, Err: err}
	}

	catalog := validateAndInsert(ctx, ws, &summary)
	return catalog, summary, nil
}

// parseSource runs the line parser and the working-set builder over every line
func parseSource(ctx context.Context, r io.Reader, summary *domain.LoadSummary) (*domain.WorkingSet, error) {
	ws := domain.NewWorkingSet()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		summary.LinesRead++

		course, ok := domain.ParseLine(scanner.Text(), lineNo, summary)
		if !ok {
			continue
		}
		ws.Add(course, lineNo, summary)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", lineNo+1, err)
	}

	ctxlog.FromContext(ctx).Debug("parse pass finished",
		"lines", summary.LinesRead, "courses", ws.Len(), "duplicates", summary.Duplicates)
	return ws, nil
}

// validateAndInsert repairs the working set and copies every course that is
// not on a cycle into a fresh catalog.
func validateAndInsert(ctx context.Context, ws *domain.WorkingSet, summary *domain.LoadSummary) *domain.Catalog {
	logger := ctxlog.FromContext(ctx)

	domain.PrunePrerequisites(ws, summary)
	logger.Debug("prerequisite pass finished",
		"unknown", summary.UnknownPrereqs, "self", summary.SelfPrereqs)

	inCycle := domain.DetectCycles(ws, summary)
	summary.CycleExcluded = len(inCycle)
	logger.Debug("cycle pass finished", "cycles", summary.Cycles, "excluded", len(inCycle))

	catalog := domain.NewCatalog()
	for _, id := range ws.IDs() {
		if _, skip := inCycle[id]; skip {
			continue
		}
		course, _ := ws.Get(id)
		if catalog.Insert(*course) {
			summary.Inserted++
		} else {
			summary.Duplicates++
		}
	}
	return catalog
}
