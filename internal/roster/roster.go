// Package roster holds the in-memory student and course collections and
// keeps their enrolment lists mutually consistent: a student's course list
// and a course's student list always reference each other.
package roster

import (
	"fmt"
	"strings"
)

// Roster is the full set of students and courses for a campus.
// Collections preserve insertion order; lookups are linear scans, which is
// fine at the scale this tool targets.
type Roster struct {
	students []*Student
	courses  []*Course
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{}
}

// Student returns the student with the given ID, or nil.
func (r *Roster) Student(id string) *Student {
	for _, s := range r.students {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Course returns the course with the given code, or nil.
func (r *Roster) Course(code string) *Course {
	for _, c := range r.courses {
		if c.Code == code {
			return c
		}
	}
	return nil
}

// Students returns a snapshot of all students in insertion order.
func (r *Roster) Students() []*Student {
	return append([]*Student(nil), r.students...)
}

// Courses returns a snapshot of all courses in insertion order.
func (r *Roster) Courses() []*Course {
	return append([]*Course(nil), r.courses...)
}

// AddStudent registers a new student. The ID must match the Sxxx format and
// must not already be in use.
func (r *Roster) AddStudent(name, id string, typ StudentType) (*Student, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("student: %w", ErrEmptyName)
	}
	if !ValidStudentID(id) {
		return nil, fmt.Errorf("%q: %w", id, ErrInvalidStudentID)
	}
	if typ != Undergraduate && typ != Postgraduate {
		return nil, fmt.Errorf("%q: %w", typ, ErrInvalidStudentType)
	}
	if r.Student(id) != nil {
		return nil, fmt.Errorf("%s: %w", id, ErrStudentExists)
	}
	s := &Student{ID: id, Name: name, Type: typ}
	r.students = append(r.students, s)
	return s, nil
}

// RemoveStudent deletes a student and removes them from every course they
// were enrolled in.
func (r *Roster) RemoveStudent(id string) error {
	s := r.Student(id)
	if s == nil {
		return fmt.Errorf("%s: %w", id, ErrStudentNotFound)
	}
	for _, c := range r.courses {
		c.removeStudent(id)
	}
	out := r.students[:0]
	for _, st := range r.students {
		if st.ID != id {
			out = append(out, st)
		}
	}
	r.students = out
	return nil
}

// AddCourse registers a new course under a unique code. Codes are uppercased
// single tokens: cse101 and CSE101 name the same course.
func (r *Roster) AddCourse(code, name string) (*Course, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("course: %w", ErrEmptyCourseCode)
	}
	if len(strings.Fields(code)) != 1 {
		return nil, fmt.Errorf("%q: %w", code, ErrInvalidCourseCode)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("course %s: %w", code, ErrEmptyName)
	}
	if r.Course(code) != nil {
		return nil, fmt.Errorf("%s: %w", code, ErrCourseExists)
	}
	c := &Course{Code: code, Name: name}
	r.courses = append(r.courses, c)
	return c, nil
}

// RemoveCourse deletes a course and removes it from every student's
// enrolment list.
func (r *Roster) RemoveCourse(code string) error {
	c := r.Course(code)
	if c == nil {
		return fmt.Errorf("%s: %w", code, ErrCourseNotFound)
	}
	for _, s := range r.students {
		s.removeCourse(code)
	}
	out := r.courses[:0]
	for _, crs := range r.courses {
		if crs.Code != code {
			out = append(out, crs)
		}
	}
	r.courses = out
	return nil
}

// Enroll records the student in the course, updating both sides.
func (r *Roster) Enroll(studentID, courseCode string) error {
	s := r.Student(studentID)
	if s == nil {
		return fmt.Errorf("%s: %w", studentID, ErrStudentNotFound)
	}
	c := r.Course(courseCode)
	if c == nil {
		return fmt.Errorf("%s: %w", courseCode, ErrCourseNotFound)
	}
	if s.EnrolledIn(courseCode) {
		return fmt.Errorf("%s in %s: %w", studentID, courseCode, ErrAlreadyEnrolled)
	}
	s.addCourse(courseCode)
	c.addStudent(studentID)
	return nil
}

// Unenroll removes the student from the course, updating both sides.
func (r *Roster) Unenroll(studentID, courseCode string) error {
	s := r.Student(studentID)
	if s == nil {
		return fmt.Errorf("%s: %w", studentID, ErrStudentNotFound)
	}
	c := r.Course(courseCode)
	if c == nil {
		return fmt.Errorf("%s: %w", courseCode, ErrCourseNotFound)
	}
	if !s.EnrolledIn(courseCode) {
		return fmt.Errorf("%s in %s: %w", studentID, courseCode, ErrNotEnrolled)
	}
	s.removeCourse(courseCode)
	c.removeStudent(studentID)
	return nil
}

// SearchStudents returns students whose name, ID, or any enrolled course
// code contains the keyword (case-insensitive).
func (r *Roster) SearchStudents(keyword string) []*Student {
	kw := strings.ToLower(keyword)
	var matches []*Student
	for _, s := range r.students {
		if strings.Contains(strings.ToLower(s.Name), kw) ||
			strings.Contains(strings.ToLower(s.ID), kw) {
			matches = append(matches, s)
			continue
		}
		for _, code := range s.Courses {
			if strings.Contains(strings.ToLower(code), kw) {
				matches = append(matches, s)
				break
			}
		}
	}
	return matches
}

// Prune drops enrolment references that point at missing students or
// courses, returning a description of each dropped reference. Hand-edited
// CSV files can introduce these; load stays tolerant and reports them.
func (r *Roster) Prune() []string {
	var dropped []string
	for _, s := range r.students {
		kept := s.Courses[:0]
		for _, code := range s.Courses {
			if r.Course(code) == nil {
				dropped = append(dropped, fmt.Sprintf("student %s references unknown course %s", s.ID, code))
				continue
			}
			kept = append(kept, code)
		}
		s.Courses = kept
	}
	for _, c := range r.courses {
		kept := c.Students[:0]
		for _, id := range c.Students {
			if r.Student(id) == nil {
				dropped = append(dropped, fmt.Sprintf("course %s references unknown student %s", c.Code, id))
				continue
			}
			kept = append(kept, id)
		}
		c.Students = kept
	}
	return dropped
}

// Reconcile adds the missing side of any one-sided enrolment reference
// between entities that both exist, returning a description of each repair.
// Together with Prune this restores the bidirectional invariant after
// loading hand-edited CSV files.
func (r *Roster) Reconcile() []string {
	var repaired []string
	for _, s := range r.students {
		for _, code := range s.Courses {
			if c := r.Course(code); c != nil && !c.HasStudent(s.ID) {
				c.addStudent(s.ID)
				repaired = append(repaired, fmt.Sprintf("student %s lists %s but the course did not list the student", s.ID, code))
			}
		}
	}
	for _, c := range r.courses {
		for _, id := range c.Students {
			if s := r.Student(id); s != nil && !s.EnrolledIn(c.Code) {
				s.addCourse(c.Code)
				repaired = append(repaired, fmt.Sprintf("course %s lists %s but the student did not list the course", c.Code, id))
			}
		}
	}
	return repaired
}

// Validate checks the bidirectional enrolment invariant and returns every
// violation found. An empty result means the roster is consistent.
func (r *Roster) Validate() []string {
	var problems []string
	for _, s := range r.students {
		for _, code := range s.Courses {
			c := r.Course(code)
			if c == nil {
				problems = append(problems, fmt.Sprintf("student %s references unknown course %s", s.ID, code))
				continue
			}
			if !c.HasStudent(s.ID) {
				problems = append(problems, fmt.Sprintf("student %s lists %s but the course does not list the student", s.ID, code))
			}
		}
	}
	for _, c := range r.courses {
		for _, id := range c.Students {
			s := r.Student(id)
			if s == nil {
				problems = append(problems, fmt.Sprintf("course %s references unknown student %s", c.Code, id))
				continue
			}
			if !s.EnrolledIn(c.Code) {
				problems = append(problems, fmt.Sprintf("course %s lists %s but the student does not list the course", c.Code, id))
			}
		}
	}
	return problems
}
