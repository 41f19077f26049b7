package model

// Instructor holds one row of the Instructors table. QualifiedRaw and
// PreferredRaw carry the comma separated id lists as they appear in the
// source file; the loader parses them into the lookup sets.
type Instructor struct {
	ID           string          `csv:"InstructorID"`
	Name         string          `csv:"Name"`
	QualifiedRaw string          `csv:"QualifiedCourses"`
	PreferredRaw string          `csv:"preferred_slots"`
	Qualified    map[string]bool `csv:"-"`
	Preferred    map[string]bool `csv:"-"`
}

// IsQualified reports whether the instructor may teach the given course.
func (i *Instructor) IsQualified(courseID string) bool {
	return i.Qualified[courseID]
}

// Prefers reports whether the timeslot is one of the instructor's preferred slots.
func (i *Instructor) Prefers(timeslotID string) bool {
	return i.Preferred[timeslotID]
}
