package scheduler

// Configuration holds the file locations and parsing options for one
// scheduling run.
type Configuration struct {
	CoursesFile     string
	InstructorsFile string
	RoomsFile       string
	TimeslotsFile   string
	SectionsFile    string
	DatasetFile     string // single JSON document, alternative to the five CSV files
	SolutionFile    string
	FailuresFile    string
	Delimiter       rune
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		CoursesFile:     "./res/courses.csv",
		InstructorsFile: "./res/instructors.csv",
		RoomsFile:       "./res/rooms.csv",
		TimeslotsFile:   "./res/timeslots.csv",
		SectionsFile:    "./res/sections.csv",
		DatasetFile:     "./res/dataset.json",
		SolutionFile:    "timetable_solution.csv",
		FailuresFile:    "timetable_failures.csv",
		Delimiter:       ',',
	}
}
