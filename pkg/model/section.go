package model

// Section is one raw per-section enrollment record from the Sections table,
// before sections are combined into lecture groups.
type Section struct {
	Year       int      `csv:"Level"`
	Group      string   `csv:"Group"`
	SectionID  string   `csv:"SectionID"`
	Students   int      `csv:"StudentCount"`
	CoursesRaw string   `csv:"Courses"`
	Courses    []string `csv:"-"`
}

// GroupID returns the identifier used to partition sections into lecture
// groups. Files without a Group column fall back to the section id, which
// leaves every section in its own group.
func (s *Section) GroupID() string {
	if s.Group != "" {
		return s.Group
	}
	return s.SectionID
}

// LectureGroup is the scheduling unit for all students of one year/group
// cohort. Key drives clash detection; DisplayName is presentation only and
// must never feed into equality or lookups.
type LectureGroup struct {
	Key         string
	Year        int
	Students    int
	Courses     []string
	SectionIDs  []string
	DisplayName string
}
