package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/csit-scheduler/go-timetable/pkg/model"
)

type cohortKey struct {
	Year  int
	Group string
}

// GroupSections combines per-section enrollment records into one lecture
// group per (year, group identifier) pair. Student counts are summed across
// member sections; the course list comes from the first member record, since
// sections of one group are expected to share a curriculum. Groups are
// emitted sorted by (year, group identifier).
func GroupSections(sections []*model.Section) []*model.LectureGroup {
	partitions := make(map[cohortKey][]*model.Section)
	for _, s := range sections {
		k := cohortKey{Year: s.Year, Group: s.GroupID()}
		partitions[k] = append(partitions[k], s)
	}

	keys := lo.Keys(partitions)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Group < keys[j].Group
	})

	groups := make([]*model.LectureGroup, 0, len(keys))
	for _, k := range keys {
		members := partitions[k]
		students := 0
		for _, s := range members {
			students += s.Students
		}
		sectionIDs := lo.Map(members, func(s *model.Section, _ int) string { return s.SectionID })
		groups = append(groups, &model.LectureGroup{
			Key:         fmt.Sprintf("%d_%s", k.Year, k.Group),
			Year:        k.Year,
			Students:    students,
			Courses:     members[0].Courses,
			SectionIDs:  sectionIDs,
			DisplayName: fmt.Sprintf("(Sec %s)", strings.Join(sectionIDs, ", ")),
		})
	}
	return groups
}
