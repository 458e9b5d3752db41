package roster

import (
	"fmt"
	"regexp"
	"strings"
)

// StudentType distinguishes undergraduate from postgraduate students.
type StudentType string

const (
	Undergraduate StudentType = "Undergraduate"
	Postgraduate  StudentType = "Postgraduate"
)

// ParseStudentType parses a student type case-insensitively.
func ParseStudentType(s string) (StudentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "undergraduate", "ug":
		return Undergraduate, nil
	case "postgraduate", "pg":
		return Postgraduate, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidStudentType)
	}
}

// studentIDPattern is the required student ID format: S followed by three digits.
var studentIDPattern = regexp.MustCompile(`^S\d{3}$`)

// ValidStudentID reports whether id matches the Sxxx format (e.g. S001).
func ValidStudentID(id string) bool {
	return studentIDPattern.MatchString(id)
}

// Student is a registered student and the courses they are enrolled in.
// Courses holds course codes in enrolment order, without duplicates.
type Student struct {
	ID      string
	Name    string
	Type    StudentType
	Courses []string
}

// EnrolledIn reports whether the student is enrolled in the given course.
func (s *Student) EnrolledIn(code string) bool {
	for _, c := range s.Courses {
		if c == code {
			return true
		}
	}
	return false
}

func (s *Student) addCourse(code string) {
	if !s.EnrolledIn(code) {
		s.Courses = append(s.Courses, code)
	}
}

func (s *Student) removeCourse(code string) {
	out := s.Courses[:0]
	for _, c := range s.Courses {
		if c != code {
			out = append(out, c)
		}
	}
	s.Courses = out
}
