package output

// JSON output structs shared by commands. Field names are stable; scripts
// depend on them.

// StudentInfo describes one student in JSON output.
type StudentInfo struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Courses []string `json:"courses"`
}

// CourseInfo describes one course in JSON output.
type CourseInfo struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Students []string `json:"students"`
}

// StudentListOutput is the JSON shape of `student list` and `student search`.
type StudentListOutput struct {
	Students []StudentInfo `json:"students"`
	Total    int           `json:"total"`
}

// CourseListOutput is the JSON shape of `course list`.
type CourseListOutput struct {
	Courses []CourseInfo `json:"courses"`
	Total   int          `json:"total"`
}

// ReportSection is one block of a rendered report.
type ReportSection struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ReportOutput is the JSON shape of `report student` and `report course`.
type ReportOutput struct {
	Title    string          `json:"title"`
	Name     string          `json:"name"`
	Sections []ReportSection `json:"sections"`
	File     string          `json:"file,omitempty"`
}

// ExportOutput is the JSON shape of `export`.
type ExportOutput struct {
	Files    []string `json:"files"`
	Students int      `json:"students"`
	Courses  int      `json:"courses"`
}

// SeedOutput is the JSON shape of `seed`.
type SeedOutput struct {
	Students   int `json:"students"`
	Courses    int `json:"courses"`
	Enrolments int `json:"enrolments"`
}
