package commands

import (
	"fmt"
	"strings"

	"github.com/danishazizi96/campus/internal/cli/output"
	"github.com/danishazizi96/campus/internal/report"
	"github.com/danishazizi96/campus/internal/roster"
)

// Shared rendering helpers used by the subcommands and the interactive
// shell. Each adapts to the renderer's effective mode.

func studentInfos(students []*roster.Student) []output.StudentInfo {
	infos := make([]output.StudentInfo, 0, len(students))
	for _, s := range students {
		infos = append(infos, output.StudentInfo{
			ID:      s.ID,
			Name:    s.Name,
			Type:    string(s.Type),
			Courses: append([]string{}, s.Courses...),
		})
	}
	return infos
}

func courseInfos(courses []*roster.Course) []output.CourseInfo {
	infos := make([]output.CourseInfo, 0, len(courses))
	for _, c := range courses {
		infos = append(infos, output.CourseInfo{
			Code:     c.Code,
			Name:     c.Name,
			Students: append([]string{}, c.Students...),
		})
	}
	return infos
}

func renderStudents(r *output.Renderer, title string, students []*roster.Student) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.StudentListOutput{
			Students: studentInfos(students),
			Total:    len(students),
		})
	}

	r.Header(1, fmt.Sprintf("%s (%d total)", title, len(students)))
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{s.ID, s.Name, string(s.Type), strings.Join(s.Courses, ", ")})
	}
	r.Table([]string{"StudentID", "Name", "Type", "Courses"}, rows)
	return nil
}

func renderCourses(r *output.Renderer, title string, courses []*roster.Course) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.CourseListOutput{
			Courses: courseInfos(courses),
			Total:   len(courses),
		})
	}

	r.Header(1, fmt.Sprintf("%s (%d total)", title, len(courses)))
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{c.Code, c.Name, fmt.Sprintf("%d", len(c.Students)), strings.Join(c.Students, ", ")})
	}
	r.Table([]string{"CourseCode", "CourseName", "Enrolled", "Students"}, rows)
	return nil
}

func renderStudent(r *output.Renderer, s *roster.Student) error {
	if r.EffectiveMode() == output.ModeJSON {
		infos := studentInfos([]*roster.Student{s})
		return r.JSON(infos[0])
	}

	r.Header(1, fmt.Sprintf("Student %s", s.ID))
	r.KeyValue("Name", s.Name)
	r.KeyValue("Type", string(s.Type))
	r.KeyValue("Courses", strings.Join(s.Courses, ", "))
	return nil
}

func renderCourse(r *output.Renderer, c *roster.Course) error {
	if r.EffectiveMode() == output.ModeJSON {
		infos := courseInfos([]*roster.Course{c})
		return r.JSON(infos[0])
	}

	r.Header(1, fmt.Sprintf("Course %s", c.Code))
	r.KeyValue("Name", c.Name)
	r.KeyValue("Enrolled", fmt.Sprintf("%d", len(c.Students)))
	r.KeyValue("Students", strings.Join(c.Students, ", "))
	return nil
}

func renderReport(r *output.Renderer, rep *report.Report, file string) error {
	if r.EffectiveMode() == output.ModeJSON {
		out := output.ReportOutput{
			Title: rep.Title,
			Name:  rep.Name,
			File:  file,
		}
		for _, sec := range rep.Sections {
			out.Sections = append(out.Sections, output.ReportSection{
				Columns: sec.Columns,
				Rows:    sec.Rows,
			})
		}
		return r.JSON(out)
	}

	r.Header(1, rep.Title)
	for i, sec := range rep.Sections {
		if i > 0 {
			r.Println("")
		}
		r.Table(sec.Columns, sec.Rows)
	}
	if file != "" {
		r.Println("")
		r.Success("Report saved to " + file)
	}
	return nil
}
