package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/danishazizi96/campus/internal/roster"
)

// WriteXLSX writes the report as a single-sheet Excel workbook at path.
func (rep *Report) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"
	row := 1
	for i, sec := range rep.Sections {
		if i > 0 {
			row++
		}
		if err := writeRow(f, sheet, row, sec.Columns); err != nil {
			return err
		}
		row++
		for _, r := range sec.Rows {
			if err := writeRow(f, sheet, row, r); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// WriteWorkbook writes the whole roster as an Excel workbook with a
// Students sheet and a Courses sheet. Reference lists are joined with ";",
// matching the CSV export format.
func WriteWorkbook(r *roster.Roster, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const studentsSheet = "Students"
	if err := f.SetSheetName("Sheet1", studentsSheet); err != nil {
		return err
	}
	if err := writeRow(f, studentsSheet, 1, []string{"StudentID", "Name", "Type", "EnrolledCourses"}); err != nil {
		return err
	}
	for i, s := range r.Students() {
		row := []string{s.ID, s.Name, string(s.Type), joinSemicolon(s.Courses)}
		if err := writeRow(f, studentsSheet, i+2, row); err != nil {
			return err
		}
	}

	const coursesSheet = "Courses"
	if _, err := f.NewSheet(coursesSheet); err != nil {
		return err
	}
	if err := writeRow(f, coursesSheet, 1, []string{"CourseCode", "CourseName", "EnrolledStudents"}); err != nil {
		return err
	}
	for i, c := range r.Courses() {
		row := []string{c.Code, c.Name, joinSemicolon(c.Students)}
		if err := writeRow(f, coursesSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func joinSemicolon(refs []string) string {
	return strings.Join(refs, ";")
}
