package repositories

// ===== SHARED FILTER STRUCTS =====

type CourseFilters struct {
	Category     *string `json:"category"`
	InstructorID *uint   `json:"instructor_id"`
	Level        *string `json:"level"`
	Limit        int     `json:"limit"`
	Offset       int     `json:"offset"`
	SortBy       string  `json:"sort_by"`    // "created_at", "title", "price"
	SortOrder    string  `json:"sort_order"` // "asc", "desc"
}

type JobFilters struct {
	JobType  *string `json:"job_type"`
	Location *string `json:"location"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
}

// ===== SHARED STATISTICS STRUCTS =====

// TeacherStats are the derived teacher counters, recomputed on demand.
type TeacherStats struct {
	TotalCourses       int     `json:"total_courses"`
	TotalStudents      int     `json:"total_students"`
	StudentProgressAvg float64 `json:"student_progress_avg"`
}

// CourseEnrollment pairs a course with its enrollment count; courses with no
// enrollment rows report zero.
type CourseEnrollment struct {
	CourseID      uint  `json:"course_id"`
	EnrolledCount int64 `json:"enrolled_count"`
}
