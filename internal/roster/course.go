package roster

// Course is an offered course and the students enrolled in it.
// Students holds student IDs in enrolment order, without duplicates.
type Course struct {
	Code     string
	Name     string
	Students []string
}

// HasStudent reports whether the student is enrolled in this course.
func (c *Course) HasStudent(id string) bool {
	for _, s := range c.Students {
		if s == id {
			return true
		}
	}
	return false
}

func (c *Course) addStudent(id string) {
	if !c.HasStudent(id) {
		c.Students = append(c.Students, id)
	}
}

func (c *Course) removeStudent(id string) {
	out := c.Students[:0]
	for _, s := range c.Students {
		if s != id {
			out = append(out, s)
		}
	}
	c.Students = out
}
