package catalog

// Roles used in the users table.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

// User is a person known to the campus.
type User struct {
	ID     string `toml:"id"`
	Name   string `toml:"name"`
	Email  string `toml:"email"`
	Role   string `toml:"role"`
	Status string `toml:"status"`
	Joined string `toml:"joined"`
}

// Course is a course offering. InstructorName and Enrolled are filled in by
// queries.
type Course struct {
	Code           string `toml:"code"`
	Title          string `toml:"title"`
	InstructorID   string `toml:"instructor"`
	Category       string `toml:"category"`
	Capacity       int    `toml:"capacity"`
	Credits        int    `toml:"credits"`
	Status         string `toml:"status"`
	InstructorName string `toml:"-"`
	Enrolled       int    `toml:"-"`
}

// Enrollment links a student to a course.
type Enrollment struct {
	StudentID  string `toml:"student"`
	CourseCode string `toml:"course"`
	Progress   int    `toml:"progress"`
	Grade      string `toml:"grade"`
}

// StudentProgress is one enrollment joined with its student.
type StudentProgress struct {
	StudentID  string
	Name       string
	Email      string
	CourseCode string
	Progress   int
	Grade      string
}

// Assignment is coursework with a due date. Enrolled is filled in by queries.
type Assignment struct {
	ID         string `toml:"id"`
	CourseCode string `toml:"course"`
	Title      string `toml:"title"`
	Due        string `toml:"due"`
	Submitted  int    `toml:"submitted"`
	Status     string `toml:"status"`
	Enrolled   int    `toml:"-"`
}

// Announcement is a markdown notice.
type Announcement struct {
	ID         string `toml:"id"`
	Title      string `toml:"title"`
	AuthorID   string `toml:"author"`
	Posted     string `toml:"posted"`
	Audience   string `toml:"audience"`
	Body       string `toml:"body"`
	AuthorName string `toml:"-"`
}

// Activity is one line of the recent activity feed.
type Activity struct {
	At        string `toml:"at"`
	ActorID   string `toml:"actor"`
	Action    string `toml:"action"`
	ActorName string `toml:"-"`
}

// MonthCount is the number of new enrollments in a month (YYYY-MM).
type MonthCount struct {
	Month string `toml:"month"`
	Count int    `toml:"count"`
}

// Bucket is a labelled count used by charts.
type Bucket struct {
	Label string
	Count int
}

// Stats are the headline numbers of the admin dashboard.
type Stats struct {
	Users         int
	Students      int
	Instructors   int
	Courses       int
	ActiveCourses int
	Enrollments   int
	AvgProgress   int
}

// InstructorStats are the headline numbers of the instructor dashboard.
type InstructorStats struct {
	Courses       int
	Students      int
	OpenWork      int
	ToGrade       int
	AvgProgress   int
	NextDeadline  string
	NextWorkTitle string
}

type fixture struct {
	DefaultInstructor  string         `toml:"default_instructor"`
	Users              []User         `toml:"users"`
	Courses            []Course       `toml:"courses"`
	Enrollments        []Enrollment   `toml:"enrollments"`
	Assignments        []Assignment   `toml:"assignments"`
	Announcements      []Announcement `toml:"announcements"`
	Activity           []Activity     `toml:"activity"`
	MonthlyEnrollments []MonthCount   `toml:"monthly_enrollments"`
}
