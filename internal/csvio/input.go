package csvio

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/csit-scheduler/go-timetable/pkg/model"
)

// datasetDocument mirrors the workbook layout as a single JSON document:
// one array per sheet. Comma separated id lists keep the same shape they
// have in the CSV files.
type datasetDocument struct {
	Courses []struct {
		ID   string `mapstructure:"courseID"`
		Name string `mapstructure:"courseName"`
		Type string `mapstructure:"type"`
	} `mapstructure:"courses"`
	Instructors []struct {
		ID        string `mapstructure:"instructorID"`
		Name      string `mapstructure:"name"`
		Qualified string `mapstructure:"qualifiedCourses"`
		Preferred string `mapstructure:"preferredSlots"`
	} `mapstructure:"instructors"`
	Rooms []struct {
		ID       string `mapstructure:"roomID"`
		Type     string `mapstructure:"type"`
		Capacity int    `mapstructure:"capacity"`
	} `mapstructure:"rooms"`
	Timeslots []struct {
		ID    string `mapstructure:"timeSlotID"`
		Day   string `mapstructure:"day"`
		Start string `mapstructure:"startTime"`
		End   string `mapstructure:"endTime"`
	} `mapstructure:"timeslots"`
	Sections []struct {
		Year      int    `mapstructure:"level"`
		Group     string `mapstructure:"group"`
		SectionID string `mapstructure:"sectionID"`
		Students  int    `mapstructure:"studentCount"`
		Courses   string `mapstructure:"courses"`
	} `mapstructure:"sections"`
}

// DatasetFromJSON loads all five entity tables from one JSON document,
// applying the same normalization as the CSV loaders.
func DatasetFromJSON(file string) (*model.EntitySet, []*model.Section, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, nil, err
	}

	var doc datasetDocument
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, nil, err
	}

	courses := make([]*model.Course, 0, len(doc.Courses))
	for _, c := range doc.Courses {
		courses = append(courses, &model.Course{ID: c.ID, Name: c.Name, Type: c.Type})
	}
	instructors := make([]*model.Instructor, 0, len(doc.Instructors))
	for _, i := range doc.Instructors {
		instructors = append(instructors, &model.Instructor{
			ID:           i.ID,
			Name:         i.Name,
			QualifiedRaw: i.Qualified,
			PreferredRaw: i.Preferred,
		})
	}
	rooms := make([]*model.Room, 0, len(doc.Rooms))
	for _, r := range doc.Rooms {
		rooms = append(rooms, &model.Room{ID: r.ID, Type: r.Type, Capacity: r.Capacity})
	}
	timeslots := make([]*model.Timeslot, 0, len(doc.Timeslots))
	for _, t := range doc.Timeslots {
		timeslots = append(timeslots, &model.Timeslot{ID: t.ID, Day: t.Day, Start: t.Start, End: t.End})
	}
	sections := make([]*model.Section, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		sections = append(sections, &model.Section{
			Year:       s.Year,
			Group:      s.Group,
			SectionID:  s.SectionID,
			Students:   s.Students,
			CoursesRaw: s.Courses,
		})
	}

	entities := buildEntitySet(courses, instructors, rooms, timeslots)
	normalizeSections(sections)
	return entities, sections, nil
}
