package model

// Timeslot is one row of the TimeSlots table. Start and End are opaque
// labels, kept as written in the source and never parsed as clock times.
type Timeslot struct {
	ID    string `csv:"TimeSlotID"`
	Day   string `csv:"Day"`
	Start string `csv:"StartTime"`
	End   string `csv:"EndTime"`
}
