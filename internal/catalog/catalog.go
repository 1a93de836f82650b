// Package catalog serves the sample records shown by the dashboards from an
// in-memory SQLite database seeded with an embedded TOML fixture.
package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	_ "modernc.org/sqlite"
)

//go:embed fixtures/sample.toml
var sampleFixture []byte

var (
	// ErrUserNotFound indicates an unknown user id.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoInstructor indicates the fixture has no instructor to act as.
	ErrNoInstructor = errors.New("no instructor in catalog")
)

// Catalog is a read-only view over the sample records.
type Catalog struct {
	db                *sql.DB
	defaultInstructor string
}

// Open loads the embedded sample fixture.
func Open(ctx context.Context) (*Catalog, error) {
	return OpenFixture(ctx, sampleFixture)
}

// OpenFixture loads a TOML fixture into a fresh in-memory database.
func OpenFixture(ctx context.Context, data []byte) (*Catalog, error) {
	var fx fixture
	if err := toml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("catalog: decode fixture: %w", err)
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("catalog: open db: %w", err)
	}
	// Every connection to :memory: is its own database.
	db.SetMaxOpenConns(1)

	c := &Catalog{db: db, defaultInstructor: fx.DefaultInstructor}
	if err := c.init(ctx, fx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the database.
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *Catalog) init(ctx context.Context, fx fixture) error {
	if _, err := c.db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("catalog: enable foreign keys: %w", err)
	}
	if _, err := c.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("catalog: create schema: %w", err)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, u := range fx.Users {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, name, email, role, status, joined) VALUES (?, ?, ?, ?, ?, ?)`,
			u.ID, u.Name, u.Email, u.Role, u.Status, u.Joined); err != nil {
			return fmt.Errorf("catalog: seed user %s: %w", u.ID, err)
		}
	}
	for _, co := range fx.Courses {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO courses (code, title, instructor_id, category, capacity, credits, status) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			co.Code, co.Title, co.InstructorID, co.Category, co.Capacity, co.Credits, co.Status); err != nil {
			return fmt.Errorf("catalog: seed course %s: %w", co.Code, err)
		}
	}
	for _, e := range fx.Enrollments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO enrollments (student_id, course_code, progress, grade) VALUES (?, ?, ?, ?)`,
			e.StudentID, e.CourseCode, e.Progress, e.Grade); err != nil {
			return fmt.Errorf("catalog: seed enrollment %s/%s: %w", e.StudentID, e.CourseCode, err)
		}
	}
	for _, a := range fx.Assignments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO assignments (id, course_code, title, due, submitted, status) VALUES (?, ?, ?, ?, ?, ?)`,
			a.ID, a.CourseCode, a.Title, a.Due, a.Submitted, a.Status); err != nil {
			return fmt.Errorf("catalog: seed assignment %s: %w", a.ID, err)
		}
	}
	for _, n := range fx.Announcements {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO announcements (id, title, author_id, posted, audience, body) VALUES (?, ?, ?, ?, ?, ?)`,
			n.ID, n.Title, n.AuthorID, n.Posted, n.Audience, n.Body); err != nil {
			return fmt.Errorf("catalog: seed announcement %s: %w", n.ID, err)
		}
	}
	for _, a := range fx.Activity {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO activity (at, actor_id, action) VALUES (?, ?, ?)`,
			a.At, a.ActorID, a.Action); err != nil {
			return fmt.Errorf("catalog: seed activity: %w", err)
		}
	}
	for _, m := range fx.MonthlyEnrollments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO monthly_enrollments (month, count) VALUES (?, ?)`,
			m.Month, m.Count); err != nil {
			return fmt.Errorf("catalog: seed month %s: %w", m.Month, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog: commit seed: %w", err)
	}
	return nil
}

// DefaultInstructor returns the instructor the instructor shell acts as.
// It is the fixture's default_instructor when set, otherwise the first
// active instructor.
func (c *Catalog) DefaultInstructor(ctx context.Context) (User, error) {
	if c.defaultInstructor != "" {
		return c.User(ctx, c.defaultInstructor)
	}
	users, err := c.Users(ctx, RoleInstructor)
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Status == "active" {
			return u, nil
		}
	}
	return User{}, ErrNoInstructor
}
