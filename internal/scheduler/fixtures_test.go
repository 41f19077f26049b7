package scheduler

import (
	"github.com/csit-scheduler/go-timetable/pkg/model"
)

func testInstructor(id string, name string, quals []string, prefs []string) *model.Instructor {
	q := make(map[string]bool)
	for _, c := range quals {
		q[c] = true
	}
	p := make(map[string]bool)
	for _, t := range prefs {
		p[t] = true
	}
	return &model.Instructor{ID: id, Name: name, Qualified: q, Preferred: p}
}

func testEntities(courses []*model.Course, instructors []*model.Instructor, rooms []*model.Room, timeslots []*model.Timeslot) *model.EntitySet {
	entities := model.NewEntitySet()
	for _, c := range courses {
		entities.AddCourse(c)
	}
	entities.Instructors = instructors
	entities.Rooms = rooms
	entities.Timeslots = timeslots
	return entities
}
