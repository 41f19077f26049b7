package model

// Assignment pairs a lecture with its committed option.
type Assignment struct {
	Lecture *Lecture
	Option  Option
}

// Result of one solving pass. Assigned holds commitments in commit order;
// Failed holds every lecture that received no option. Each input lecture
// lands in exactly one of the two.
type Result struct {
	Assigned []Assignment
	Failed   []*Lecture
}

type SolutionCSVRow struct {
	Course     string `csv:"Course"`
	Group      string `csv:"Group"`
	Year       int    `csv:"Year"`
	Students   int    `csv:"Students"`
	Day        string `csv:"Day"`
	Start      string `csv:"Start"`
	End        string `csv:"End"`
	Room       string `csv:"Room"`
	Instructor string `csv:"Instructor"`
	Qualified  bool   `csv:"InstructorQualified"`
	Preferred  bool   `csv:"TimeslotIsPreferred"`
	Type       string `csv:"Type"`
}

type FailureCSVRow struct {
	Course   string `csv:"Course"`
	Group    string `csv:"Group"`
	Year     int    `csv:"Year"`
	Students int    `csv:"Students"`
}
