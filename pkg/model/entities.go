package model

// EntitySet is the normalized, read-only entity data the scheduling pipeline
// consumes. Instructors, rooms and timeslots keep their source order; courses
// are keyed by id.
type EntitySet struct {
	Courses     map[string]*Course
	Instructors []*Instructor
	Rooms       []*Room
	Timeslots   []*Timeslot
}

func NewEntitySet() *EntitySet {
	return &EntitySet{Courses: make(map[string]*Course)}
}

// AddCourse records a course. When the same id appears more than once, an
// existing "lecture" categorization wins and later conflicting entries are
// discarded; any other duplicate is overwritten by the newcomer.
func (e *EntitySet) AddCourse(c *Course) {
	if existing, ok := e.Courses[c.ID]; ok && existing.Type == "lecture" {
		return
	}
	e.Courses[c.ID] = c
}

// InstructorByID returns the instructor with the given id, or nil.
func (e *EntitySet) InstructorByID(id string) *Instructor {
	for _, i := range e.Instructors {
		if i.ID == id {
			return i
		}
	}
	return nil
}

// RoomByID returns the room with the given id, or nil.
func (e *EntitySet) RoomByID(id string) *Room {
	for _, r := range e.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// TimeslotByID returns the timeslot with the given id, or nil.
func (e *EntitySet) TimeslotByID(id string) *Timeslot {
	for _, t := range e.Timeslots {
		if t.ID == id {
			return t
		}
	}
	return nil
}
