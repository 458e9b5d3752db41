package roster

// sample data used by `campus seed` and `campus init --example`.
var (
	sampleStudents = []struct {
		Name string
		ID   string
		Type StudentType
	}{
		{"Alice Johnson", "S001", Undergraduate},
		{"Bob Smith", "S002", Postgraduate},
		{"Charlie Brown", "S003", Undergraduate},
		{"David Williams", "S004", Undergraduate},
		{"Eve Davis", "S005", Postgraduate},
	}

	sampleCourses = []struct {
		Code string
		Name string
	}{
		{"CSE101", "Introduction to Programming"},
		{"CSE102", "Data Structures"},
		{"CSE103", "Algorithms"},
		{"CSE104", "Operating Systems"},
	}

	sampleEnrolments = []struct {
		StudentID  string
		CourseCode string
	}{
		{"S001", "CSE101"},
		{"S001", "CSE102"},
		{"S002", "CSE101"},
		{"S003", "CSE103"},
		{"S004", "CSE104"},
		{"S005", "CSE101"},
		{"S005", "CSE102"},
		{"S005", "CSE104"},
	}
)

// Seed populates the roster with sample students, courses, and enrolments.
// It is idempotent: entries that already exist are left alone.
func (r *Roster) Seed() {
	for _, s := range sampleStudents {
		_, _ = r.AddStudent(s.Name, s.ID, s.Type)
	}
	for _, c := range sampleCourses {
		_, _ = r.AddCourse(c.Code, c.Name)
	}
	for _, e := range sampleEnrolments {
		_ = r.Enroll(e.StudentID, e.CourseCode)
	}
}
