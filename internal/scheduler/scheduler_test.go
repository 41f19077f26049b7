package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csit-scheduler/go-timetable/pkg/model"
)

func TestSolve(t *testing.T) {
	t.Run("single lecture gets the only option", func(t *testing.T) {
		entities := testEntities(
			[]*model.Course{{ID: "CS101", Name: "Intro", Type: "lecture"}},
			[]*model.Instructor{testInstructor("I1", "Dr. One", []string{"CS101"}, nil)},
			[]*model.Room{{ID: "R1", Type: "classroom", Capacity: 40}},
			[]*model.Timeslot{{ID: "T1", Day: "Monday", Start: "08:00", End: "09:00"}},
		)
		groups := []*model.LectureGroup{{Key: "1_1", Year: 1, Students: 30, Courses: []string{"CS101"}}}
		lectures, domains, _ := BuildDomains(entities, groups)

		result := Solve(lectures, domains, NewLedger())

		assert.Len(t, result.Assigned, 1)
		assert.Empty(t, result.Failed)
		assert.Equal(t, lectures[0], result.Assigned[0].Lecture)
		assert.Equal(t, model.Option{Timeslot: "T1", Room: "R1", Instructor: "I1", Qualified: true}, result.Assigned[0].Option)
	})

	t.Run("empty domain fails immediately", func(t *testing.T) {
		lecture := &model.Lecture{Course: "CS101", Group: "1_1", Students: 30, Name: "CS101_1_1"}
		domains := map[*model.Lecture][]model.Option{lecture: {}}

		result := Solve([]*model.Lecture{lecture}, domains, NewLedger())

		assert.Empty(t, result.Assigned)
		assert.Equal(t, []*model.Lecture{lecture}, result.Failed)
	})

	t.Run("larger class wins the contested slot", func(t *testing.T) {
		entities := testEntities(
			[]*model.Course{{ID: "CS101", Name: "Intro", Type: "lecture"}},
			[]*model.Instructor{testInstructor("I1", "Dr. One", []string{"CS101"}, nil)},
			[]*model.Room{{ID: "R1", Type: "classroom", Capacity: 100}},
			[]*model.Timeslot{{ID: "T1", Day: "Monday", Start: "08:00", End: "09:00"}},
		)
		groups := []*model.LectureGroup{
			{Key: "1_1", Year: 1, Students: 30, Courses: []string{"CS101"}},
			{Key: "1_2", Year: 1, Students: 40, Courses: []string{"CS101"}},
		}
		lectures, domains, _ := BuildDomains(entities, groups)

		result := Solve(lectures, domains, NewLedger())

		assert.Len(t, result.Assigned, 1)
		assert.Equal(t, "1_2", result.Assigned[0].Lecture.Group)
		assert.Len(t, result.Failed, 1)
		assert.Equal(t, "1_1", result.Failed[0].Group)
	})

	t.Run("preferred timeslot is tried first", func(t *testing.T) {
		entities := testEntities(
			[]*model.Course{{ID: "CS101", Name: "Intro", Type: "lecture"}},
			[]*model.Instructor{testInstructor("I1", "Dr. One", []string{"CS101"}, []string{"T2"})},
			[]*model.Room{{ID: "R1", Type: "classroom", Capacity: 40}},
			[]*model.Timeslot{
				{ID: "T1", Day: "Monday", Start: "08:00", End: "09:00"},
				{ID: "T2", Day: "Monday", Start: "09:00", End: "10:00"},
			},
		)
		groups := []*model.LectureGroup{{Key: "1_1", Year: 1, Students: 30, Courses: []string{"CS101"}}}
		lectures, domains, _ := BuildDomains(entities, groups)

		result := Solve(lectures, domains, NewLedger())

		assert.Len(t, result.Assigned, 1)
		assert.Equal(t, "T2", result.Assigned[0].Option.Timeslot)
		assert.True(t, result.Assigned[0].Option.Preferred)
	})

	t.Run("larger domain breaks the student count tie", func(t *testing.T) {
		a := &model.Lecture{Course: "CS101", Group: "1_1", Students: 30, Name: "CS101_1_1"}
		b := &model.Lecture{Course: "CS101", Group: "1_2", Students: 30, Name: "CS101_1_2"}
		shared := model.Option{Timeslot: "T1", Room: "R1", Instructor: "I1", Qualified: true}
		spare := model.Option{Timeslot: "T2", Room: "R1", Instructor: "I1", Qualified: true}
		domains := map[*model.Lecture][]model.Option{
			a: {shared},
			b: {shared, spare},
		}

		result := Solve([]*model.Lecture{a, b}, domains, NewLedger())

		// b goes first and takes the shared slot; a has nowhere left
		assert.Len(t, result.Assigned, 1)
		assert.Equal(t, b, result.Assigned[0].Lecture)
		assert.Equal(t, []*model.Lecture{a}, result.Failed)
	})

	t.Run("a failed lecture does not consume resources", func(t *testing.T) {
		blocked := &model.Lecture{Course: "CS101", Group: "1_2", Students: 40, Name: "CS101_1_2"}
		first := &model.Lecture{Course: "CS101", Group: "1_1", Students: 50, Name: "CS101_1_1"}
		last := &model.Lecture{Course: "MA101", Group: "1_3", Students: 30, Name: "MA101_1_3"}
		contested := model.Option{Timeslot: "T1", Room: "R1", Instructor: "I1", Qualified: true}
		free := model.Option{Timeslot: "T2", Room: "R1", Instructor: "I1", Qualified: true}
		domains := map[*model.Lecture][]model.Option{
			first:   {contested},
			blocked: {contested},
			last:    {free},
		}

		result := Solve([]*model.Lecture{blocked, first, last}, domains, NewLedger())

		assert.Len(t, result.Assigned, 2)
		assert.Equal(t, []*model.Lecture{blocked}, result.Failed)
		assert.Equal(t, last, result.Assigned[1].Lecture)
		assert.Equal(t, "T2", result.Assigned[1].Option.Timeslot)
	})

	t.Run("every lecture is classified exactly once", func(t *testing.T) {
		entities := testEntities(
			[]*model.Course{
				{ID: "CS101", Name: "Intro", Type: "lecture"},
				{ID: "MA101", Name: "Calculus", Type: "lecture"},
				{ID: "PH101", Name: "Physics Lab", Type: "lab"},
			},
			[]*model.Instructor{
				testInstructor("I1", "Dr. One", []string{"CS101", "MA101"}, []string{"T1"}),
				testInstructor("I2", "Dr. Two", []string{"PH101"}, nil),
			},
			[]*model.Room{
				{ID: "R1", Type: "classroom", Capacity: 60},
				{ID: "L1", Type: "lab", Capacity: 30},
			},
			[]*model.Timeslot{
				{ID: "T1", Day: "Sunday", Start: "08:00", End: "09:00"},
				{ID: "T2", Day: "Monday", Start: "09:00", End: "10:00"},
			},
		)
		groups := []*model.LectureGroup{
			{Key: "1_1", Year: 1, Students: 50, Courses: []string{"CS101", "MA101", "PH101"}},
			{Key: "1_2", Year: 1, Students: 25, Courses: []string{"CS101", "PH101"}},
		}
		lectures, domains, _ := BuildDomains(entities, groups)

		result := Solve(lectures, domains, NewLedger())

		assert.Equal(t, len(lectures), len(result.Assigned)+len(result.Failed))
		valid, msg := Validate(result, lectures, entities)
		assert.True(t, valid, msg)
	})

	t.Run("independent runs do not share state", func(t *testing.T) {
		entities := testEntities(
			[]*model.Course{{ID: "CS101", Name: "Intro", Type: "lecture"}},
			[]*model.Instructor{testInstructor("I1", "Dr. One", []string{"CS101"}, nil)},
			[]*model.Room{{ID: "R1", Type: "classroom", Capacity: 40}},
			[]*model.Timeslot{{ID: "T1", Day: "Monday", Start: "08:00", End: "09:00"}},
		)
		groups := []*model.LectureGroup{{Key: "1_1", Year: 1, Students: 30, Courses: []string{"CS101"}}}
		lectures, domains, _ := BuildDomains(entities, groups)

		first := Solve(lectures, domains, NewLedger())
		second := Solve(lectures, domains, NewLedger())

		assert.Equal(t, first, second)
		assert.Len(t, second.Assigned, 1)
	})
}
