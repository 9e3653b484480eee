package domain

// Course is a single catalog record
type Course struct {
	ID            Identifier
	Title         string
	Prerequisites []Identifier
}

// Clone returns a copy whose prerequisite slice is not shared with c
func (c Course) Clone() Course {
	out := c
	if c.Prerequisites != nil {
		out.Prerequisites = append([]Identifier(nil), c.Prerequisites...)
	}
	return out
}

// PrerequisiteRef is a prerequisite resolved against the catalog.
// Title is empty when Found is false.
type PrerequisiteRef struct {
	ID    Identifier
	Title string
	Found bool
}

// CourseDetail is a course together with its resolved prerequisites
type CourseDetail struct {
	Course        Course
	Prerequisites []PrerequisiteRef
}
