package commands

import (
	"context"
	"fmt"

	"courseplanner/internal/application"
	"courseplanner/internal/domain"
)

// ShowCourseCommand looks up one course and resolves its prerequisites
type ShowCourseCommand struct {
	session  *application.Session
	CourseID string
}

// NewShowCourseCommand creates a new ShowCourseCommand
func NewShowCourseCommand(session *application.Session, courseID string) *ShowCourseCommand {
	return &ShowCourseCommand{
		session:  session,
		CourseID: courseID,
	}
}

// Validate checks the command parameters
func (c *ShowCourseCommand) Validate() error {
	return application.ValidateCourseID(c.CourseID)
}

// Execute runs the show course command
func (c *ShowCourseCommand) Execute(ctx context.Context) (*domain.CourseDetail, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	catalog := c.session.Catalog()
	if catalog.Len() == 0 {
		return nil, application.ErrNotLoaded
	}

	detail, ok := catalog.Resolve(c.CourseID)
	if !ok {
		return nil, fmt.Errorf("course %s: %w", domain.Normalize(c.CourseID), application.ErrNotFound)
	}
	return detail, nil
}
