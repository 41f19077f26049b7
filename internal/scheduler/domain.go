package scheduler

import (
	"fmt"

	"github.com/csit-scheduler/go-timetable/pkg/model"
)

// BuildDomains creates one Lecture per (course, group) pair and eagerly
// enumerates its candidate options over every timeslot, room and instructor.
// Room compatibility, room capacity and instructor qualification are hard
// filters; a timeslot being preferred by the instructor is only recorded on
// the surviving option. A course id missing from the entity set produces a
// warning instead of a lecture. Empty domains are kept as-is and reported as
// failures by Solve.
func BuildDomains(entities *model.EntitySet, groups []*model.LectureGroup) ([]*model.Lecture, map[*model.Lecture][]model.Option, []string) {
	lectures := []*model.Lecture{}
	domains := make(map[*model.Lecture][]model.Option)
	warnings := []string{}

	for _, group := range groups {
		for _, cid := range group.Courses {
			course, ok := entities.Courses[cid]
			if !ok {
				warnings = append(warnings, fmt.Sprintf("course %s for group %s is not in the Courses table, skipping", cid, group.Key))
				continue
			}

			lecture := &model.Lecture{
				Course:       cid,
				Group:        group.Key,
				Year:         group.Year,
				Students:     group.Students,
				Name:         cid + "_" + group.Key,
				GroupDisplay: group.DisplayName,
			}
			lectures = append(lectures, lecture)

			dom := []model.Option{}
			for _, t := range entities.Timeslots {
				for _, room := range entities.Rooms {
					if !CompatibleRoom(course.Type, room.Type) {
						continue
					}
					// Capacity is checked against the whole group, not a single section
					if room.Capacity < group.Students {
						continue
					}
					for _, instructor := range entities.Instructors {
						if !instructor.IsQualified(cid) {
							continue
						}
						dom = append(dom, model.Option{
							Timeslot:   t.ID,
							Room:       room.ID,
							Instructor: instructor.ID,
							Qualified:  true,
							Preferred:  instructor.Prefers(t.ID),
						})
					}
				}
			}
			domains[lecture] = dom
		}
	}

	return lectures, domains, warnings
}
