package main

import (
	"log"

	"github.com/csit-scheduler/go-timetable/internal/csvio"
	"github.com/csit-scheduler/go-timetable/internal/scheduler"
)

func createAndExportTimetable(coursesFile string, instructorsFile string, roomsFile string,
	timeslotsFile string, sectionsFile string, solutionFile string, failuresFile string) {
	cfg := &scheduler.Configuration{
		CoursesFile:     coursesFile,
		InstructorsFile: instructorsFile,
		RoomsFile:       roomsFile,
		TimeslotsFile:   timeslotsFile,
		SectionsFile:    sectionsFile,
		SolutionFile:    solutionFile,
		FailuresFile:    failuresFile,
		Delimiter:       ',',
	}

	entities, sections, failed, report := csvio.LoadDataset(cfg)
	if failed {
		log.Println(report)
		return
	}

	groups := scheduler.GroupSections(sections)
	lectures, domains, warnings := scheduler.BuildDomains(entities, groups)
	for _, w := range warnings {
		log.Println("warning:", w)
	}

	result := scheduler.Solve(lectures, domains, scheduler.NewLedger())
	if valid, msg := scheduler.Validate(result, lectures, entities); !valid {
		log.Println(msg)
	}

	csvio.ExportSolution(result, entities, solutionFile)
	csvio.ExportFailures(result, failuresFile)
}
