// Package report builds fixed-format reports from a roster and writes them
// as CSV or XLSX files.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/danishazizi96/campus/internal/roster"
)

// Section is one header-plus-rows block of a report.
type Section struct {
	Columns []string
	Rows    [][]string
}

// Report is a titled sequence of sections. Course reports have a single
// section; student reports have an identity section followed by the
// enrolled-course section.
type Report struct {
	Title    string
	Name     string // file stem, e.g. the course code or student ID
	Sections []Section
}

// ForCourse builds the enrolment report for a course: one row per enrolled
// student, in enrolment order.
func ForCourse(r *roster.Roster, code string) (*Report, error) {
	c := r.Course(code)
	if c == nil {
		return nil, fmt.Errorf("%s: %w", code, roster.ErrCourseNotFound)
	}

	section := Section{Columns: []string{"StudentID", "Name", "Type"}}
	for _, id := range c.Students {
		s := r.Student(id)
		if s == nil {
			continue
		}
		section.Rows = append(section.Rows, []string{s.ID, s.Name, string(s.Type)})
	}

	return &Report{
		Title:    fmt.Sprintf("Course Report for %s", code),
		Name:     code,
		Sections: []Section{section},
	}, nil
}

// ForStudent builds the transcript report for a student: their identity
// followed by one row per enrolled course, in enrolment order.
func ForStudent(r *roster.Roster, id string) (*Report, error) {
	s := r.Student(id)
	if s == nil {
		return nil, fmt.Errorf("%s: %w", id, roster.ErrStudentNotFound)
	}

	identity := Section{
		Columns: []string{"StudentID", "Name", "Type"},
		Rows:    [][]string{{s.ID, s.Name, string(s.Type)}},
	}

	courses := Section{Columns: []string{"CourseCode", "CourseName"}}
	for _, code := range s.Courses {
		c := r.Course(code)
		if c == nil {
			continue
		}
		courses.Rows = append(courses.Rows, []string{c.Code, c.Name})
	}

	return &Report{
		Title:    fmt.Sprintf("Student Report for %s", id),
		Name:     id,
		Sections: []Section{identity, courses},
	}, nil
}

// WriteCSV writes the report sections as CSV, separated by a blank line.
func (rep *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	for i, sec := range rep.Sections {
		if i > 0 {
			if err := cw.Write([]string{""}); err != nil {
				return err
			}
		}
		if err := cw.Write(sec.Columns); err != nil {
			return err
		}
		for _, row := range sec.Rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
