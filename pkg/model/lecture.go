package model

// Option is one candidate (timeslot, room, instructor) placement for a
// lecture. Qualified is true for every option that survives domain
// construction; Preferred marks options in the instructor's preferred
// timeslots and only influences ordering, never feasibility.
type Option struct {
	Timeslot   string
	Room       string
	Instructor string
	Qualified  bool
	Preferred  bool
}

// Lecture is one scheduling unit: a course taught to a lecture group.
// Built once during domain construction and read-only afterwards.
type Lecture struct {
	Course       string
	Group        string // LectureGroup key, used for clash checks
	Year         int
	Students     int
	Name         string // Course + "_" + Group
	GroupDisplay string
}
