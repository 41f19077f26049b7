package scheduler

import (
	"fmt"

	"github.com/csit-scheduler/go-timetable/pkg/model"
)

// Validate re-checks a finished result against the input lectures and entity
// data: every lecture classified exactly once, no double-booked rooms,
// instructors or groups, and capacity, qualification and room compatibility
// honored by every commitment. Returns false and a report for invalid
// results.
func Validate(result *model.Result, lectures []*model.Lecture, entities *model.EntitySet) (bool, string) {
	var message string
	valid := true
	covered := true
	hasClash := false
	hasConstraintBreach := false

	seen := make(map[*model.Lecture]int)
	for _, a := range result.Assigned {
		seen[a.Lecture]++
	}
	for _, f := range result.Failed {
		seen[f]++
	}
	for _, l := range lectures {
		if seen[l] != 1 {
			valid = false
			covered = false
			message += fmt.Sprintf("- Lecture %s classified %d times\n", l.Name, seen[l])
		}
	}

	usedRooms := make(map[resourceKey]bool)
	usedInstructors := make(map[resourceKey]bool)
	usedGroups := make(map[resourceKey]bool)
	for _, a := range result.Assigned {
		rk := resourceKey{a.Option.Timeslot, a.Option.Room}
		ik := resourceKey{a.Option.Timeslot, a.Option.Instructor}
		gk := resourceKey{a.Option.Timeslot, a.Lecture.Group}
		if usedRooms[rk] {
			valid = false
			hasClash = true
			message += fmt.Sprintf("- Room %s booked twice at %s\n", a.Option.Room, a.Option.Timeslot)
		}
		if usedInstructors[ik] {
			valid = false
			hasClash = true
			message += fmt.Sprintf("- Instructor %s booked twice at %s\n", a.Option.Instructor, a.Option.Timeslot)
		}
		if usedGroups[gk] {
			valid = false
			hasClash = true
			message += fmt.Sprintf("- Group %s booked twice at %s\n", a.Lecture.Group, a.Option.Timeslot)
		}
		usedRooms[rk] = true
		usedInstructors[ik] = true
		usedGroups[gk] = true
	}

	for _, a := range result.Assigned {
		course := entities.Courses[a.Lecture.Course]
		room := entities.RoomByID(a.Option.Room)
		instructor := entities.InstructorByID(a.Option.Instructor)
		if room == nil || course == nil || instructor == nil {
			valid = false
			hasConstraintBreach = true
			message += fmt.Sprintf("- Assignment %s references unknown entities\n", a.Lecture.Name)
			continue
		}
		if room.Capacity < a.Lecture.Students {
			valid = false
			hasConstraintBreach = true
			message += fmt.Sprintf("- Room %s (capacity %d) too small for %s (%d students)\n", room.ID, room.Capacity, a.Lecture.Name, a.Lecture.Students)
		}
		if !instructor.IsQualified(a.Lecture.Course) {
			valid = false
			hasConstraintBreach = true
			message += fmt.Sprintf("- Instructor %s not qualified for %s\n", instructor.ID, a.Lecture.Course)
		}
		if !CompatibleRoom(course.Type, room.Type) {
			valid = false
			hasConstraintBreach = true
			message += fmt.Sprintf("- Room %s (%s) incompatible with course %s (%s)\n", room.ID, room.Type, course.ID, course.Type)
		}
	}

	if hasConstraintBreach {
		message = "[FAIL]: Capacity, qualification and compatibility check.\n" + message
	} else {
		message = "[  OK]: Capacity, qualification and compatibility check.\n" + message
	}
	if hasClash {
		message = "[FAIL]: Double booking check.\n" + message
	} else {
		message = "[  OK]: Double booking check.\n" + message
	}
	if !covered {
		message = "[FAIL]: Lecture coverage check.\n" + message
	} else {
		message = "[  OK]: Lecture coverage check.\n" + message
	}

	return valid, message
}
