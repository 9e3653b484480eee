package commands

import (
	"context"
	"time"

	"courseplanner/internal/application"
	"courseplanner/internal/domain"
)

// ListCoursesCommand lists every loaded course in course-number order
type ListCoursesCommand struct {
	session *application.Session
}

// NewListCoursesCommand creates a new ListCoursesCommand
func NewListCoursesCommand(session *application.Session) *ListCoursesCommand {
	return &ListCoursesCommand{session: session}
}

// CourseList is the sorted catalog and how long sorting it took
type CourseList struct {
	Courses []domain.Course
	Elapsed time.Duration
}

// Execute runs the list courses command
func (c *ListCoursesCommand) Execute(ctx context.Context) (*CourseList, error) {
	catalog := c.session.Catalog()
	if catalog.Len() == 0 {
		return nil, application.ErrNotLoaded
	}

	start := time.Now()
	courses := catalog.AllSorted()
	return &CourseList{Courses: courses, Elapsed: time.Since(start)}, nil
}
