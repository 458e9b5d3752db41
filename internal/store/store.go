// Package store persists the roster to CSV flat files in a data directory.
//
// Layout:
//
//	<data-dir>/students.csv  StudentID,Name,Type,EnrolledCourses
//	<data-dir>/courses.csv   CourseCode,CourseName,EnrolledStudents
//
// The EnrolledCourses and EnrolledStudents columns join references with ";".
// Writes are atomic: each file is written to a temp file in the same
// directory and renamed into place.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/danishazizi96/campus/internal/roster"
)

const (
	studentsFile = "students.csv"
	coursesFile  = "courses.csv"

	refSeparator = ";"
)

var (
	studentsHeader = []string{"StudentID", "Name", "Type", "EnrolledCourses"}
	coursesHeader  = []string{"CourseCode", "CourseName", "EnrolledStudents"}
)

// Store reads and writes rosters under a single data directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates a store for the given data directory. A nil logger discards
// log output.
func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{dir: dir, logger: logger}
}

// Dir returns the data directory this store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads both CSV files into a roster. Missing files are not an error:
// a first run starts from an empty roster. Malformed rows are skipped with a
// warning. After both files load, enrolment references that do not resolve
// are pruned, one-sided references are mirrored onto the missing side, and
// the roster is validated, each with a warning per repair.
func (s *Store) Load() (*roster.Roster, error) {
	r := roster.New()

	if err := s.loadStudents(r); err != nil {
		return nil, err
	}
	if err := s.loadCourses(r); err != nil {
		return nil, err
	}

	for _, dropped := range r.Prune() {
		s.logger.Warn("pruned dangling enrolment reference", "detail", dropped)
	}
	for _, repaired := range r.Reconcile() {
		s.logger.Warn("repaired one-sided enrolment reference", "detail", repaired)
	}
	for _, problem := range r.Validate() {
		s.logger.Warn("roster inconsistent after load", "detail", problem)
	}
	return r, nil
}

func (s *Store) loadStudents(r *roster.Roster) error {
	path := filepath.Join(s.dir, studentsFile)
	rows, err := s.readCSV(path, len(studentsHeader))
	if err != nil {
		return err
	}

	for _, row := range rows {
		id, name, typStr, refs := row[0], row[1], row[2], row[3]
		typ, err := roster.ParseStudentType(typStr)
		if err != nil {
			s.logger.Warn("skipping student row with unknown type", "id", id, "type", typStr)
			continue
		}
		st, err := r.AddStudent(name, id, typ)
		if err != nil {
			s.logger.Warn("skipping student row", "id", id, "error", err)
			continue
		}
		st.Courses = splitRefs(refs)
	}
	return nil
}

func (s *Store) loadCourses(r *roster.Roster) error {
	path := filepath.Join(s.dir, coursesFile)
	rows, err := s.readCSV(path, len(coursesHeader))
	if err != nil {
		return err
	}

	for _, row := range rows {
		code, name, refs := row[0], row[1], row[2]
		c, err := r.AddCourse(code, name)
		if err != nil {
			s.logger.Warn("skipping course row", "code", code, "error", err)
			continue
		}
		c.Students = splitRefs(refs)
	}
	return nil
}

// readCSV reads all data rows from path, skipping the header and any row
// that does not have the expected field count.
func (s *Store) readCSV(path string, fields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var rows [][]string
	for i, rec := range records {
		if i == 0 {
			// Header row.
			continue
		}
		if len(rec) != fields {
			s.logger.Warn("skipping malformed row", "file", filepath.Base(path), "line", i+1, "fields", len(rec))
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// Save writes the full roster to both CSV files, creating the data
// directory if needed.
func (s *Store) Save(r *roster.Roster) error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	students := [][]string{studentsHeader}
	for _, st := range r.Students() {
		students = append(students, []string{st.ID, st.Name, string(st.Type), joinRefs(st.Courses)})
	}
	if err := writeCSVAtomic(filepath.Join(s.dir, studentsFile), students); err != nil {
		return err
	}

	courses := [][]string{coursesHeader}
	for _, c := range r.Courses() {
		courses = append(courses, []string{c.Code, c.Name, joinRefs(c.Students)})
	}
	if err := writeCSVAtomic(filepath.Join(s.dir, coursesFile), courses); err != nil {
		return err
	}

	s.logger.Debug("roster saved", "dir", s.dir,
		"students", len(r.Students()), "courses", len(r.Courses()))
	return nil
}

// writeCSVAtomic writes records to a temp file in the target directory and
// renames it into place.
func writeCSVAtomic(path string, records [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(records); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// splitRefs parses a ";"-joined reference cell, dropping blanks and
// duplicates while preserving first-occurrence order.
func splitRefs(s string) []string {
	if s == "" {
		return nil
	}
	var refs []string
	seen := make(map[string]bool)
	for _, ref := range strings.Split(s, refSeparator) {
		ref = strings.TrimSpace(ref)
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true
		refs = append(refs, ref)
	}
	return refs
}

func joinRefs(refs []string) string {
	return strings.Join(refs, refSeparator)
}
