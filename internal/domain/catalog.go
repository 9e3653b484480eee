package domain

import "sort"

// SmallSortThreshold is the size below which AllSorted uses insertion sort
const SmallSortThreshold = 50

// Catalog is the store of validated, cycle-free courses keyed by number.
// A Catalog is filled once by a load and then only read.
type Catalog struct {
	courses map[Identifier]Course
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{courses: make(map[Identifier]Course)}
}

// Insert stores c. It returns false, leaving the catalog unchanged, when the
// course number is already present.
func (cat *Catalog) Insert(c Course) bool {
	if _, exists := cat.courses[c.ID]; exists {
		return false
	}
	cat.courses[c.ID] = c.Clone()
	return true
}

// Lookup normalizes raw and returns the matching course
func (cat *Catalog) Lookup(raw string) (Course, bool) {
	c, ok := cat.courses[Normalize(raw)]
	if !ok {
		return Course{}, false
	}
	return c.Clone(), true
}

// Len returns the number of stored courses
func (cat *Catalog) Len() int {
	return len(cat.courses)
}

// AllSorted returns every course ordered by ascending number without
// touching the catalog.
func (cat *Catalog) AllSorted() []Course {
	out := make([]Course, 0, len(cat.courses))
	for _, c := range cat.courses {
		out = append(out, c.Clone())
	}

	if len(out) < SmallSortThreshold {
		insertionSort(out)
	} else {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID < out[j].ID
		})
	}
	return out
}

// Resolve looks up a course and each of its prerequisites
func (cat *Catalog) Resolve(raw string) (*CourseDetail, bool) {
	c, ok := cat.Lookup(raw)
	if !ok {
		return nil, false
	}

	detail := &CourseDetail{Course: c}
	for _, p := range c.Prerequisites {
		ref := PrerequisiteRef{ID: p}
		if pc, found := cat.courses[p]; found {
			ref.Title = pc.Title
			ref.Found = true
		}
		detail.Prerequisites = append(detail.Prerequisites, ref)
	}
	return detail, true
}

func insertionSort(courses []Course) {
	for i := 1; i < len(courses); i++ {
		key := courses[i]
		j := i
		for j > 0 && courses[j-1].ID > key.ID {
			courses[j] = courses[j-1]
			j--
		}
		courses[j] = key
	}
}
