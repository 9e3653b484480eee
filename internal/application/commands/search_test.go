package commands

import (
	"context"
	"testing"

	"courseplanner/internal/domain"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int // use this for relative comparisons
	}{
		{
			name:      "exact match",
			target:    "Algorithms",
			query:     "Algorithms",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "substring match",
			target:    "Introduction to Algorithms",
			query:     "Algorithms",
			wantScore: 100,
		},
		{
			name:    "fuzzy match in order",
			target:  "Data Structures",
			query:   "dstr",
			wantMin: 1,
		},
		{
			name:      "no match",
			target:    "Data Structures",
			query:     "xyz",
			wantScore: 0,
		},
		{
			name:      "empty query",
			target:    "Data Structures",
			query:     "",
			wantScore: 0,
		},
		{
			name:    "course number",
			target:  "CSCI200",
			query:   "csci2",
			wantMin: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)

			if tt.wantScore > 0 {
				if score != tt.wantScore {
					t.Errorf("expected score %d, got %d", tt.wantScore, score)
				}
			} else if tt.wantMin > 0 {
				if score < tt.wantMin {
					t.Errorf("expected score >= %d, got %d", tt.wantMin, score)
				}
			} else if score != 0 {
				t.Errorf("expected score 0, got %d", score)
			}
		})
	}
}

func TestFuzzySort(t *testing.T) {
	courses := []domain.Course{
		{ID: "CSCI100", Title: "Introduction to Computer Science"},
		{ID: "CSCI300", Title: "Introduction to Algorithms"},
		{ID: "MATH201", Title: "Discrete Mathematics"},
		{ID: "CSCI400", Title: "Algorithms II"},
	}

	sorted := FuzzySort(courses, "algorithms")

	if len(sorted) != 2 {
		t.Fatalf("expected 2 results, got %d", len(sorted))
	}
	if sorted[0].ID != "CSCI400" {
		t.Errorf("expected prefix match CSCI400 first, got %s", sorted[0].ID)
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Score > sorted[i-1].Score {
			t.Errorf("results not sorted by score at index %d", i)
		}
	}
}

func TestSearchCoursesCommand(t *testing.T) {
	session := loadedSession(t)

	results, err := NewSearchCoursesCommand(session, "struct").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(results) == 0 || results[0].ID != "CSCI200" {
		t.Errorf("expected CSCI200 first, got %+v", results)
	}

	short, err := NewSearchCoursesCommand(session, "s").Execute(context.Background())
	if err != nil || short != nil {
		t.Errorf("expected no results for one-character query, got %v, %v", short, err)
	}
}
