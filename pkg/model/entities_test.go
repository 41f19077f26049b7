package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddCourse(t *testing.T) {
	t.Run("lecture categorization survives a later duplicate", func(t *testing.T) {
		e := NewEntitySet()
		e.AddCourse(&Course{ID: "CNC311", Name: "Networks", Type: "lecture"})
		e.AddCourse(&Course{ID: "CNC311", Name: "Networks Lab", Type: "lab"})

		assert.Equal(t, "lecture", e.Courses["CNC311"].Type)
		assert.Equal(t, "Networks", e.Courses["CNC311"].Name)
	})

	t.Run("non-lecture entry is overwritten by a later duplicate", func(t *testing.T) {
		e := NewEntitySet()
		e.AddCourse(&Course{ID: "CNC311", Name: "Networks Lab", Type: "lab"})
		e.AddCourse(&Course{ID: "CNC311", Name: "Networks", Type: "lecture"})

		assert.Equal(t, "lecture", e.Courses["CNC311"].Type)
	})
}

func TestSectionGroupID(t *testing.T) {
	assert.Equal(t, "A", (&Section{Group: "A", SectionID: "1"}).GroupID())
	assert.Equal(t, "1", (&Section{SectionID: "1"}).GroupID())
}
