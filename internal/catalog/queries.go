package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Grades lists the letter grades in display order.
var Grades = []string{"A", "B", "C", "D", "F"}

// User returns a single user by id.
func (c *Catalog) User(ctx context.Context, id string) (User, error) {
	var u User
	err := c.db.QueryRowContext(ctx,
		`SELECT id, name, email, role, status, joined FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.Joined)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	if err != nil {
		return User{}, fmt.Errorf("catalog: user %s: %w", id, err)
	}
	return u, nil
}

// Users returns users with the given role ordered by id. An empty role
// returns everyone.
func (c *Catalog) Users(ctx context.Context, role string) ([]User, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, name, email, role, status, joined FROM users
		WHERE ? = '' OR role = ?
		ORDER BY id`, role, role)
	if err != nil {
		return nil, fmt.Errorf("catalog: users: %w", err)
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.Joined); err != nil {
			return nil, fmt.Errorf("catalog: scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

const courseSelect = `
	SELECT c.code, c.title, c.instructor_id, u.name, c.category, c.capacity,
		c.credits, c.status, COUNT(e.student_id)
	FROM courses c
	JOIN users u ON u.id = c.instructor_id
	LEFT JOIN enrollments e ON e.course_code = c.code`

// Courses returns every course with its instructor name and enrollment count.
func (c *Catalog) Courses(ctx context.Context) ([]Course, error) {
	return c.courses(ctx, courseSelect+` GROUP BY c.code ORDER BY c.code`)
}

// CoursesByInstructor returns the courses taught by one instructor.
func (c *Catalog) CoursesByInstructor(ctx context.Context, instructorID string) ([]Course, error) {
	return c.courses(ctx, courseSelect+` WHERE c.instructor_id = ? GROUP BY c.code ORDER BY c.code`, instructorID)
}

func (c *Catalog) courses(ctx context.Context, query string, args ...any) ([]Course, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: courses: %w", err)
	}
	defer rows.Close()

	var out []Course
	for rows.Next() {
		var co Course
		if err := rows.Scan(&co.Code, &co.Title, &co.InstructorID, &co.InstructorName,
			&co.Category, &co.Capacity, &co.Credits, &co.Status, &co.Enrolled); err != nil {
			return nil, fmt.Errorf("catalog: scan course: %w", err)
		}
		out = append(out, co)
	}
	return out, rows.Err()
}

// Students returns the enrollments in an instructor's courses joined with
// the student, ordered by course then name.
func (c *Catalog) Students(ctx context.Context, instructorID string) ([]StudentProgress, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.email, e.course_code, e.progress, e.grade
		FROM enrollments e
		JOIN users s ON s.id = e.student_id
		JOIN courses c ON c.code = e.course_code
		WHERE c.instructor_id = ?
		ORDER BY e.course_code, s.name`, instructorID)
	if err != nil {
		return nil, fmt.Errorf("catalog: students: %w", err)
	}
	defer rows.Close()

	var out []StudentProgress
	for rows.Next() {
		var sp StudentProgress
		if err := rows.Scan(&sp.StudentID, &sp.Name, &sp.Email, &sp.CourseCode, &sp.Progress, &sp.Grade); err != nil {
			return nil, fmt.Errorf("catalog: scan student: %w", err)
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

// Assignments returns an instructor's assignments ordered by due date, each
// with the enrollment count of its course.
func (c *Catalog) Assignments(ctx context.Context, instructorID string) ([]Assignment, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT a.id, a.course_code, a.title, a.due, a.submitted, a.status,
			(SELECT COUNT(*) FROM enrollments e WHERE e.course_code = a.course_code)
		FROM assignments a
		JOIN courses c ON c.code = a.course_code
		WHERE c.instructor_id = ?
		ORDER BY a.due, a.id`, instructorID)
	if err != nil {
		return nil, fmt.Errorf("catalog: assignments: %w", err)
	}
	defer rows.Close()

	var out []Assignment
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.CourseCode, &a.Title, &a.Due, &a.Submitted, &a.Status, &a.Enrolled); err != nil {
			return nil, fmt.Errorf("catalog: scan assignment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Announcements returns notices newest first. A non-empty audience returns
// the notices addressed to it plus those addressed to "all".
func (c *Catalog) Announcements(ctx context.Context, audience string) ([]Announcement, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT n.id, n.title, n.author_id, u.name, n.posted, n.audience, n.body
		FROM announcements n
		JOIN users u ON u.id = n.author_id
		WHERE ? = '' OR n.audience IN ('all', ?)
		ORDER BY n.posted DESC, n.id`, audience, audience)
	if err != nil {
		return nil, fmt.Errorf("catalog: announcements: %w", err)
	}
	defer rows.Close()

	var out []Announcement
	for rows.Next() {
		var n Announcement
		if err := rows.Scan(&n.ID, &n.Title, &n.AuthorID, &n.AuthorName, &n.Posted, &n.Audience, &n.Body); err != nil {
			return nil, fmt.Errorf("catalog: scan announcement: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Activity returns the most recent feed lines. limit <= 0 returns all.
func (c *Catalog) Activity(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := c.db.QueryContext(ctx, `
		SELECT a.at, a.actor_id, u.name, a.action
		FROM activity a
		JOIN users u ON u.id = a.actor_id
		ORDER BY a.at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("catalog: activity: %w", err)
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.At, &a.ActorID, &a.ActorName, &a.Action); err != nil {
			return nil, fmt.Errorf("catalog: scan activity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Stats returns campus-wide headline numbers.
func (c *Catalog) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := c.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = 'student'),
			(SELECT COUNT(*) FROM users WHERE role = 'instructor'),
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM courses WHERE status = 'active'),
			(SELECT COUNT(*) FROM enrollments),
			(SELECT COALESCE(CAST(ROUND(AVG(progress)) AS INTEGER), 0) FROM enrollments)`).
		Scan(&s.Users, &s.Students, &s.Instructors, &s.Courses, &s.ActiveCourses, &s.Enrollments, &s.AvgProgress)
	if err != nil {
		return Stats{}, fmt.Errorf("catalog: stats: %w", err)
	}
	return s, nil
}

// InstructorStats returns the headline numbers for one instructor. The next
// deadline is the earliest open assignment.
func (c *Catalog) InstructorStats(ctx context.Context, instructorID string) (InstructorStats, error) {
	var s InstructorStats
	err := c.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM courses WHERE instructor_id = ?1),
			(SELECT COUNT(DISTINCT e.student_id) FROM enrollments e
				JOIN courses c ON c.code = e.course_code WHERE c.instructor_id = ?1),
			(SELECT COUNT(*) FROM assignments a
				JOIN courses c ON c.code = a.course_code
				WHERE c.instructor_id = ?1 AND a.status = 'open'),
			(SELECT COUNT(*) FROM assignments a
				JOIN courses c ON c.code = a.course_code
				WHERE c.instructor_id = ?1 AND a.status = 'grading'),
			(SELECT COALESCE(CAST(ROUND(AVG(e.progress)) AS INTEGER), 0) FROM enrollments e
				JOIN courses c ON c.code = e.course_code WHERE c.instructor_id = ?1)`,
		instructorID).
		Scan(&s.Courses, &s.Students, &s.OpenWork, &s.ToGrade, &s.AvgProgress)
	if err != nil {
		return InstructorStats{}, fmt.Errorf("catalog: instructor stats: %w", err)
	}

	err = c.db.QueryRowContext(ctx, `
		SELECT a.due, a.title FROM assignments a
		JOIN courses c ON c.code = a.course_code
		WHERE c.instructor_id = ? AND a.status = 'open'
		ORDER BY a.due LIMIT 1`, instructorID).
		Scan(&s.NextDeadline, &s.NextWorkTitle)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return InstructorStats{}, fmt.Errorf("catalog: next deadline: %w", err)
	}
	return s, nil
}

// EnrollmentByMonth returns new enrollments per month, oldest first.
func (c *Catalog) EnrollmentByMonth(ctx context.Context) ([]MonthCount, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT month, count FROM monthly_enrollments ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("catalog: enrollment by month: %w", err)
	}
	defer rows.Close()

	var out []MonthCount
	for rows.Next() {
		var m MonthCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, fmt.Errorf("catalog: scan month: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// EnrollmentsByCategory returns enrollment counts per course category,
// largest first.
func (c *Catalog) EnrollmentsByCategory(ctx context.Context) ([]Bucket, error) {
	return c.buckets(ctx, `
		SELECT c.category, COUNT(e.student_id) AS n
		FROM courses c
		LEFT JOIN enrollments e ON e.course_code = c.code
		GROUP BY c.category
		ORDER BY n DESC, c.category`)
}

// CoursesByStatus returns the number of courses per status.
func (c *Catalog) CoursesByStatus(ctx context.Context) ([]Bucket, error) {
	return c.buckets(ctx, `SELECT status, COUNT(*) FROM courses GROUP BY status ORDER BY status`)
}

// GradeDistribution counts enrollments per letter grade in Grades order,
// including zero counts. An empty instructorID covers every course.
func (c *Catalog) GradeDistribution(ctx context.Context, instructorID string) ([]Bucket, error) {
	got, err := c.buckets(ctx, `
		SELECT e.grade, COUNT(*)
		FROM enrollments e
		JOIN courses c ON c.code = e.course_code
		WHERE ? = '' OR c.instructor_id = ?
		GROUP BY e.grade`, instructorID, instructorID)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(got))
	for _, b := range got {
		counts[b.Label] = b.Count
	}
	out := make([]Bucket, 0, len(Grades))
	for _, g := range Grades {
		out = append(out, Bucket{Label: g, Count: counts[g]})
	}
	return out, nil
}

func (c *Catalog) buckets(ctx context.Context, query string, args ...any) ([]Bucket, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: buckets: %w", err)
	}
	defer rows.Close()

	var out []Bucket
	for rows.Next() {
		var b Bucket
		if err := rows.Scan(&b.Label, &b.Count); err != nil {
			return nil, fmt.Errorf("catalog: scan bucket: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
