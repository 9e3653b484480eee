package commands

import (
	"context"
	"sort"
	"strings"

	"courseplanner/internal/application"
	"courseplanner/internal/domain"
)

// SearchResult wraps a course with a relevance score
type SearchResult struct {
	domain.Course
	Score int
}

// SearchCoursesCommand searches loaded courses by number or title with fuzzy matching
type SearchCoursesCommand struct {
	session *application.Session
	Query   string
}

// NewSearchCoursesCommand creates a new SearchCoursesCommand
func NewSearchCoursesCommand(session *application.Session, query string) *SearchCoursesCommand {
	return &SearchCoursesCommand{
		session: session,
		Query:   query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCoursesCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	catalog := c.session.Catalog()
	if catalog.Len() == 0 {
		return nil, application.ErrNotLoaded
	}

	query := strings.TrimSpace(c.Query)
	if len(query) < 2 {
		return nil, nil
	}

	return FuzzySort(catalog.AllSorted(), query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring match ranks highest
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '-') {
				score += 10 // after separator
			}
			score++
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores courses against the query and orders them by relevance.
// Ties keep course-number order.
func FuzzySort(courses []domain.Course, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(courses))

	for _, c := range courses {
		best := max(FuzzyScore(string(c.ID), query), FuzzyScore(c.Title, query))
		if best > 0 {
			scored = append(scored, SearchResult{
				Course: c,
				Score:  best,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
