package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/samber/lo"

	"github.com/csit-scheduler/go-timetable/internal/csvio"
	"github.com/csit-scheduler/go-timetable/internal/scheduler"
	"github.com/csit-scheduler/go-timetable/pkg/model"
)

// Same pipeline as TimetableSolver but fed from a single JSON dataset
// document instead of the five CSV files.
func main() {
	cfg := scheduler.NewDefaultConfiguration()
	file := cfg.DatasetFile
	if len(os.Args) > 1 {
		file = os.Args[1]
	}

	entities, sections, err := csvio.DatasetFromJSON(file)
	if err != nil {
		log.Fatalf("cannot parse dataset file: %v", err)
	}

	groups := scheduler.GroupSections(sections)
	lectures, domains, warnings := scheduler.BuildDomains(entities, groups)
	for _, w := range warnings {
		log.Println("warning:", w)
	}
	if len(lectures) == 0 {
		fmt.Println("No lectures were created. Check the sections and courses data.")
		return
	}

	result := scheduler.Solve(lectures, domains, scheduler.NewLedger())

	valid, msg := scheduler.Validate(result, lectures, entities)
	fmt.Println(msg)
	if !valid {
		fmt.Println("Invalid timetable")
	}

	csvio.ExportSolution(result, entities, cfg.SolutionFile)
	csvio.PrintTimetable(result, entities)

	if len(result.Failed) > 0 {
		csvio.ExportFailures(result, cfg.FailuresFile)
		failed := lo.Map(result.Failed, func(l *model.Lecture, _ int) string {
			return fmt.Sprintf("%s (%d students)", l.Name, l.Students)
		})
		sort.Strings(failed)
		fmt.Printf("Unscheduled lectures (%d):\n", len(failed))
		for _, f := range failed {
			fmt.Println("  " + f)
		}
	}
}
