package main

import (
	"fmt"
	"time"

	"github.com/csit-scheduler/go-timetable/internal/csvio"
	"github.com/csit-scheduler/go-timetable/internal/scheduler"
)

func main() {
	cfg := scheduler.NewDefaultConfiguration()

	entities, sections, failed, report := csvio.LoadDataset(cfg)
	if failed {
		fmt.Println(report)
		return
	}
	fmt.Printf("Data ready: %d courses, %d instructors, %d rooms, %d timeslots\n",
		len(entities.Courses), len(entities.Instructors), len(entities.Rooms), len(entities.Timeslots))

	groups := scheduler.GroupSections(sections)
	fmt.Printf("Combined %d sections into %d lecture groups\n", len(sections), len(groups))

	lectures, domains, warnings := scheduler.BuildDomains(entities, groups)
	for _, w := range warnings {
		fmt.Println("Warning:", w)
	}
	fmt.Printf("Created %d lectures to schedule\n", len(lectures))
	if len(lectures) == 0 {
		fmt.Println("No lectures were created. Check the Sections and Courses data.")
		return
	}

	start := time.Now().UnixNano()
	result := scheduler.Solve(lectures, domains, scheduler.NewLedger())
	end := time.Now().UnixNano()

	valid, msg := scheduler.Validate(result, lectures, entities)
	if valid {
		fmt.Println("Passed all tests")
	} else {
		fmt.Println("Invalid timetable:")
	}
	fmt.Println(msg)

	csvio.ExportSolution(result, entities, cfg.SolutionFile)
	if len(result.Failed) > 0 {
		csvio.ExportFailures(result, cfg.FailuresFile)
		fmt.Printf("Exported %d failed assignments to %s\n", len(result.Failed), cfg.FailuresFile)
	}
	csvio.PrintTimetable(result, entities)

	fmt.Printf("Assigned: %d / %d\n", len(result.Assigned), len(lectures))
	fmt.Printf("Timer: %f ms\n", float64(end-start)/1000000.0)
}
