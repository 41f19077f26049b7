package scheduler

import (
	"log"
	"slices"
	"sort"

	"github.com/csit-scheduler/go-timetable/pkg/model"
)

type resourceKey struct {
	Timeslot string
	ID       string
}

// Ledger tracks the resources consumed by committed assignments during one
// solving pass: each (timeslot, room), (timeslot, instructor) and
// (timeslot, group) pair may be used at most once. A fresh ledger per pass
// keeps independent runs from contaminating each other.
type Ledger struct {
	roomSlots       map[resourceKey]bool
	instructorSlots map[resourceKey]bool
	groupSlots      map[resourceKey]bool
}

func NewLedger() *Ledger {
	return &Ledger{
		roomSlots:       make(map[resourceKey]bool),
		instructorSlots: make(map[resourceKey]bool),
		groupSlots:      make(map[resourceKey]bool),
	}
}

// Conflicts reports whether committing the option for the lecture would
// double-book a room, an instructor or the lecture's student group.
func (l *Ledger) Conflicts(lecture *model.Lecture, opt model.Option) bool {
	if l.roomSlots[resourceKey{opt.Timeslot, opt.Room}] {
		return true
	}
	if l.instructorSlots[resourceKey{opt.Timeslot, opt.Instructor}] {
		return true
	}
	if l.groupSlots[resourceKey{opt.Timeslot, lecture.Group}] {
		return true
	}
	return false
}

func (l *Ledger) commit(lecture *model.Lecture, opt model.Option) {
	l.roomSlots[resourceKey{opt.Timeslot, opt.Room}] = true
	l.instructorSlots[resourceKey{opt.Timeslot, opt.Instructor}] = true
	l.groupSlots[resourceKey{opt.Timeslot, lecture.Group}] = true
}

// Solve assigns each lecture to its first non-conflicting option in a single
// greedy pass over the ledger. Lectures are visited largest class first, with
// domain size as the tie break, so hard-to-place cohorts claim resources
// before the long tail starves them. Within a domain, preferred timeslots are
// tried first.
//
// A commitment is irrevocable: a lecture whose options are all consumed is
// recorded as failed and nothing is rolled back, so one failure never
// disturbs earlier or later lectures. The pass always classifies every input
// lecture as either assigned or failed.
func Solve(lectures []*model.Lecture, domains map[*model.Lecture][]model.Option, ledger *Ledger) *model.Result {
	ordered := make([]*model.Lecture, len(lectures))
	copy(ordered, lectures)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Students != ordered[j].Students {
			return ordered[i].Students > ordered[j].Students
		}
		return len(domains[ordered[i]]) > len(domains[ordered[j]])
	})

	result := &model.Result{}
	for _, lecture := range ordered {
		dom := domains[lecture]
		if len(dom) == 0 {
			log.Printf("failed to schedule %s (%d students): no qualified instructor or fitting room", lecture.Name, lecture.Students)
			result.Failed = append(result.Failed, lecture)
			continue
		}

		// Qualified is true for every surviving option, so this ordering
		// effectively puts preferred timeslots first.
		options := slices.Clone(dom)
		sort.SliceStable(options, func(i, j int) bool {
			if options[i].Qualified != options[j].Qualified {
				return options[i].Qualified
			}
			return options[i].Preferred && !options[j].Preferred
		})

		committed := false
		for _, opt := range options {
			if ledger.Conflicts(lecture, opt) {
				continue
			}
			ledger.commit(lecture, opt)
			result.Assigned = append(result.Assigned, model.Assignment{Lecture: lecture, Option: opt})
			committed = true
			break
		}
		if !committed {
			log.Printf("failed to schedule %s (%d students): all slots clashed", lecture.Name, lecture.Students)
			result.Failed = append(result.Failed, lecture)
		}
	}

	return result
}
