package roster

import "errors"

// Sentinel errors returned by roster operations. Callers match with errors.Is.
var (
	ErrStudentExists      = errors.New("student already exists")
	ErrStudentNotFound    = errors.New("student not found")
	ErrCourseExists       = errors.New("course already exists")
	ErrCourseNotFound     = errors.New("course not found")
	ErrAlreadyEnrolled    = errors.New("student already enrolled in course")
	ErrNotEnrolled        = errors.New("student not enrolled in course")
	ErrInvalidStudentID   = errors.New("invalid student ID (expected format Sxxx, e.g. S001)")
	ErrInvalidStudentType = errors.New("invalid student type (expected Undergraduate or Postgraduate)")
	ErrEmptyName          = errors.New("name must not be empty")
	ErrEmptyCourseCode    = errors.New("course code must not be empty")
	ErrInvalidCourseCode  = errors.New("invalid course code (must be a single token, e.g. CSE101)")
)
