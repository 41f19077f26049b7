package csvio

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"github.com/csit-scheduler/go-timetable/pkg/model"
)

// FormatSolution flattens committed assignments into export rows, resolving
// timeslot labels, instructor display names and course types. Ids that no
// longer resolve fall back to "N/A" labels rather than failing the export.
func FormatSolution(result *model.Result, entities *model.EntitySet) []*model.SolutionCSVRow {
	rows := make([]*model.SolutionCSVRow, 0, len(result.Assigned))
	for _, a := range result.Assigned {
		day, start, end := "N/A", "N/A", "N/A"
		if t := entities.TimeslotByID(a.Option.Timeslot); t != nil {
			day, start, end = t.Day, t.Start, t.End
		}
		instructorName := "N/A"
		if i := entities.InstructorByID(a.Option.Instructor); i != nil {
			instructorName = i.Name
		}
		courseType := "unknown"
		if c, ok := entities.Courses[a.Lecture.Course]; ok {
			courseType = c.Type
		}
		rows = append(rows, &model.SolutionCSVRow{
			Course:     a.Lecture.Course,
			Group:      a.Lecture.GroupDisplay,
			Year:       a.Lecture.Year,
			Students:   a.Lecture.Students,
			Day:        day,
			Start:      start,
			End:        end,
			Room:       a.Option.Room,
			Instructor: instructorName,
			Qualified:  a.Option.Qualified,
			Preferred:  a.Option.Preferred,
			Type:       courseType,
		})
	}
	return rows
}

func FormatFailures(result *model.Result) []*model.FailureCSVRow {
	return lo.Map(result.Failed, func(l *model.Lecture, _ int) *model.FailureCSVRow {
		return &model.FailureCSVRow{
			Course:   l.Course,
			Group:    l.GroupDisplay,
			Year:     l.Year,
			Students: l.Students,
		}
	})
}

// ExportSolution writes the successful assignments to the CSV file at the
// given path, replacing any previous file.
func ExportSolution(result *model.Result, entities *model.EntitySet, path string) string {
	rows := FormatSolution(result, entities)
	writeCSV(&rows, path)
	return path
}

// ExportSolutionString renders the successful assignments as CSV text.
func ExportSolutionString(result *model.Result, entities *model.EntitySet) string {
	rows := FormatSolution(result, entities)
	str, err := gocsv.MarshalString(&rows)
	if err != nil {
		fmt.Println("Err03")
		panic(err)
	}
	return str
}

// ExportFailures writes the failed assignments to the CSV file at the given
// path, replacing any previous file.
func ExportFailures(result *model.Result, path string) string {
	rows := FormatFailures(result)
	writeCSV(&rows, path)
	return path
}

// ExportFailuresString renders the failed assignments as CSV text.
func ExportFailuresString(result *model.Result) string {
	rows := FormatFailures(result)
	str, err := gocsv.MarshalString(&rows)
	if err != nil {
		fmt.Println("Err03")
		panic(err)
	}
	return str
}

func writeCSV(rows interface{}, path string) {
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, os.ModePerm)
	if err != nil {
		fmt.Println("Err02")
		panic(err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(rows, out); err != nil {
		fmt.Println("Err03")
		panic(err)
	}
}

// PrintTimetable prints the weekly timetable as one grid per year level,
// days ordered Sunday through Thursday, rows ordered by start label.
func PrintTimetable(result *model.Result, entities *model.EntitySet) {
	rows := FormatSolution(result, entities)
	if len(rows) == 0 {
		fmt.Println("No assignments to display")
		return
	}

	dayOrder := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"}
	slots := orderedSlotLabels(entities)
	years := lo.Uniq(lo.Map(rows, func(r *model.SolutionCSVRow, _ int) int { return r.Year }))
	sort.Ints(years)

	for _, year := range years {
		fmt.Printf("\n%s Year %d %s\n", strings.Repeat("-", 24), year, strings.Repeat("-", 24))
		for _, slot := range slots {
			for _, day := range dayOrder {
				var cells []string
				for _, r := range rows {
					if r.Year == year && r.Day == day && r.Start == slot.Start {
						cells = append(cells, fmt.Sprintf("%s %s @ %s [%s]", r.Course, r.Group, r.Room, r.Instructor))
					}
				}
				if len(cells) > 0 {
					fmt.Printf("%-12s %-12s %s\n", day, slot.Start+"-"+slot.End, strings.Join(cells, " | "))
				}
			}
		}
	}
	fmt.Printf("Printed rows: %d\n", len(rows))
}

type slotLabel struct {
	Start string
	End   string
}

func orderedSlotLabels(entities *model.EntitySet) []slotLabel {
	var labels []slotLabel
	seen := make(map[string]bool)
	for _, t := range entities.Timeslots {
		if seen[t.Start] {
			continue
		}
		seen[t.Start] = true
		labels = append(labels, slotLabel{Start: t.Start, End: t.End})
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].Start < labels[j].Start })
	return labels
}
