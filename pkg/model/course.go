package model

// Course is one course offering from the Courses table. Type is a free-text
// category such as "lecture" or "lab", lowercased at load time.
type Course struct {
	ID   string `csv:"CourseID"`
	Name string `csv:"CourseName"`
	Type string `csv:"Type"`
}
