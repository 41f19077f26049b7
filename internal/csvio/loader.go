package csvio

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/csit-scheduler/go-timetable/internal/scheduler"
	"github.com/csit-scheduler/go-timetable/pkg/model"
)

// LoadDataset reads the five entity files named in the configuration and
// assembles the normalized entity set plus the raw section records. File
// errors are accumulated into the returned report so the caller can show
// every problem at once; when any file fails the dataset is unusable and
// the solver must not run.
func LoadDataset(cfg *scheduler.Configuration) (*model.EntitySet, []*model.Section, bool, string) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = cfg.Delimiter
		return r
	})

	var failed bool
	var report string

	courses := []*model.Course{}
	loadFile(cfg.CoursesFile, &courses, &failed, &report)

	instructors := []*model.Instructor{}
	loadFile(cfg.InstructorsFile, &instructors, &failed, &report)

	rooms := []*model.Room{}
	loadFile(cfg.RoomsFile, &rooms, &failed, &report)

	timeslots := []*model.Timeslot{}
	loadFile(cfg.TimeslotsFile, &timeslots, &failed, &report)

	sections := []*model.Section{}
	loadFile(cfg.SectionsFile, &sections, &failed, &report)

	if failed {
		return nil, nil, true, report
	}

	entities := buildEntitySet(courses, instructors, rooms, timeslots)
	normalizeSections(sections)
	return entities, sections, false, report
}

func loadFile(path string, out interface{}, failed *bool, report *string) {
	f, err := os.Open(path)
	if err != nil {
		*failed = true
		*report += "Failed to open " + path + " file. Please make sure the file exists.\n"
		return
	}
	defer f.Close()
	if err := gocsv.UnmarshalFile(f, out); err != nil {
		*failed = true
		*report += "Failed to parse data from " + path + " file. Please check the data integrity and format.\n"
	}
}

// buildEntitySet normalizes raw records: ids and names are trimmed, records
// with empty ids are dropped, category strings are lowercased and the comma
// separated id lists are parsed into sets. Duplicate course ids follow the
// lecture-wins rule of EntitySet.AddCourse.
func buildEntitySet(courses []*model.Course, instructors []*model.Instructor, rooms []*model.Room, timeslots []*model.Timeslot) *model.EntitySet {
	entities := model.NewEntitySet()

	for _, c := range courses {
		c.ID = strings.TrimSpace(c.ID)
		if c.ID == "" {
			continue
		}
		c.Name = strings.TrimSpace(c.Name)
		c.Type = strings.ToLower(strings.TrimSpace(c.Type))
		entities.AddCourse(c)
	}

	for _, i := range instructors {
		i.ID = strings.TrimSpace(i.ID)
		if i.ID == "" {
			continue
		}
		i.Name = strings.TrimSpace(i.Name)
		i.Qualified = toSet(splitList(i.QualifiedRaw))
		i.Preferred = toSet(splitList(i.PreferredRaw))
		entities.Instructors = append(entities.Instructors, i)
	}

	for _, r := range rooms {
		r.ID = strings.TrimSpace(r.ID)
		if r.ID == "" {
			continue
		}
		r.Type = strings.ToLower(strings.TrimSpace(r.Type))
		entities.Rooms = append(entities.Rooms, r)
	}

	for _, t := range timeslots {
		t.ID = strings.TrimSpace(t.ID)
		if t.ID == "" {
			continue
		}
		t.Day = strings.TrimSpace(t.Day)
		t.Start = strings.TrimSpace(t.Start)
		t.End = strings.TrimSpace(t.End)
		entities.Timeslots = append(entities.Timeslots, t)
	}

	return entities
}

func normalizeSections(sections []*model.Section) {
	for _, s := range sections {
		s.Group = strings.TrimSpace(s.Group)
		s.SectionID = strings.TrimSpace(s.SectionID)
		s.Courses = splitList(s.CoursesRaw)
	}
}

// splitList parses a comma separated id list, dropping empty entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := []string{}
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
