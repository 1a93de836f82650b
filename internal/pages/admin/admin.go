// Package admin builds the pages of the administrator shell.
package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/cristianoliveira/coursedash/internal/catalog"
	"github.com/cristianoliveira/coursedash/internal/content"
	"github.com/cristianoliveira/coursedash/internal/nav"
	"github.com/cristianoliveira/coursedash/internal/pages"
	"github.com/cristianoliveira/coursedash/internal/pages/widgets"
)

// Entry ids of the admin shell.
const (
	DashboardID   = "dashboard"
	UsersID       = "users"
	CoursesID     = "courses"
	InstructorsID = "instructors"
	ReportsID     = "reports"
	SettingsID    = "settings"
)

const activityLimit = 5

// Entries returns the admin sidebar in display order.
func Entries(d pages.Deps) []nav.Entry {
	return []nav.Entry{
		{ID: DashboardID, Label: "Dashboard", Icon: "▣", Factory: func() content.View { return dashboard(d) }},
		{ID: UsersID, Label: "Users", Icon: "☺", Factory: func() content.View { return users(d) }},
		{ID: CoursesID, Label: "Courses", Icon: "▤", Factory: func() content.View { return courses(d) }},
		{ID: InstructorsID, Label: "Instructors", Icon: "✎", Factory: func() content.View { return instructors(d) }},
		{ID: ReportsID, Label: "Reports", Icon: "▥", Factory: func() content.View { return reports(d) }},
		{ID: SettingsID, Label: "Settings", Icon: "⚙", Factory: func() content.View { return settings(d) }},
		pages.LogoutEntry(),
	}
}

func dashboard(d pages.Deps) content.View {
	var (
		stats    catalog.Stats
		months   []catalog.MonthCount
		activity []catalog.Activity
	)
	err := d.Load(DashboardID, func(ctx context.Context) error {
		var err error
		if stats, err = d.Catalog.Stats(ctx); err != nil {
			return err
		}
		if months, err = d.Catalog.EnrollmentByMonth(ctx); err != nil {
			return err
		}
		activity, err = d.Catalog.Activity(ctx, activityLimit)
		return err
	})
	if err != nil {
		return pages.Failed(d.Styles, "Dashboard", "dashboard", err)
	}

	st := d.Styles
	return pages.New(st, "Dashboard", "Campus overview", func(width, _ int) string {
		cards := widgets.CardRow(width,
			widgets.Card(st, "Users", fmt.Sprint(stats.Users), fmt.Sprintf("%d students", stats.Students)),
			widgets.Card(st, "Instructors", fmt.Sprint(stats.Instructors), ""),
			widgets.Card(st, "Courses", fmt.Sprint(stats.Courses), fmt.Sprintf("%d active", stats.ActiveCourses)),
			widgets.Card(st, "Enrollments", fmt.Sprint(stats.Enrollments), fmt.Sprintf("avg progress %d%%", stats.AvgProgress)),
		)

		bars := make([]widgets.Bar, len(months))
		for i, m := range months {
			bars[i] = widgets.Bar{Label: m.Month, Value: m.Count}
		}

		feed := make([]string, len(activity))
		for i, a := range activity {
			feed[i] = fmt.Sprintf("%s  %s %s", st.Muted.Render(a.At), a.ActorName, a.Action)
		}
		if len(feed) == 0 {
			feed = []string{widgets.Empty(st, "no recent activity")}
		}

		return widgets.Stack(
			cards,
			widgets.Section(st, "New enrollments per month"),
			widgets.Bars(st, bars, width),
			widgets.Section(st, "Recent activity"),
			strings.Join(feed, "\n"),
		)
	})
}

func users(d pages.Deps) content.View {
	var list []catalog.User
	err := d.Load(UsersID, func(ctx context.Context) error {
		var err error
		list, err = d.Catalog.Users(ctx, "")
		return err
	})
	if err != nil {
		return pages.Failed(d.Styles, "Users", "users", err)
	}

	rows := make([][]string, len(list))
	for i, u := range list {
		rows[i] = []string{u.ID, u.Name, u.Email, u.Role, u.Status, u.Joined}
	}
	cols := []widgets.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 22},
		{Title: "Email", Width: 32},
		{Title: "Role", Width: 10},
		{Title: "Status", Width: 8},
		{Title: "Joined", Width: 10},
	}
	st := d.Styles
	return pages.New(st, "Users", fmt.Sprintf("%d accounts", len(list)), func(width, _ int) string {
		return widgets.Table(st, cols, rows, width)
	})
}

func courses(d pages.Deps) content.View {
	var list []catalog.Course
	err := d.Load(CoursesID, func(ctx context.Context) error {
		var err error
		list, err = d.Catalog.Courses(ctx)
		return err
	})
	if err != nil {
		return pages.Failed(d.Styles, "Courses", "courses", err)
	}

	rows := make([][]string, len(list))
	for i, c := range list {
		rows[i] = []string{
			c.Code, c.Title, c.InstructorName, c.Category,
			fmt.Sprintf("%d/%d", c.Enrolled, c.Capacity), c.Status,
		}
	}
	cols := []widgets.Column{
		{Title: "Code", Width: 6},
		{Title: "Title", Width: 28},
		{Title: "Instructor", Width: 20},
		{Title: "Category", Width: 16},
		{Title: "Seats", Width: 6},
		{Title: "Status", Width: 8},
	}
	st := d.Styles
	return pages.New(st, "Courses", fmt.Sprintf("%d offerings", len(list)), func(width, _ int) string {
		return widgets.Table(st, cols, rows, width)
	})
}

type instructorRow struct {
	user     catalog.User
	courses  int
	students int
}

func instructors(d pages.Deps) content.View {
	var list []instructorRow
	err := d.Load(InstructorsID, func(ctx context.Context) error {
		people, err := d.Catalog.Users(ctx, catalog.RoleInstructor)
		if err != nil {
			return err
		}
		for _, u := range people {
			taught, err := d.Catalog.CoursesByInstructor(ctx, u.ID)
			if err != nil {
				return err
			}
			row := instructorRow{user: u, courses: len(taught)}
			for _, c := range taught {
				row.students += c.Enrolled
			}
			list = append(list, row)
		}
		return nil
	})
	if err != nil {
		return pages.Failed(d.Styles, "Instructors", "instructors", err)
	}

	rows := make([][]string, len(list))
	for i, r := range list {
		rows[i] = []string{r.user.Name, r.user.Email, fmt.Sprint(r.courses), fmt.Sprint(r.students), r.user.Status}
	}
	cols := []widgets.Column{
		{Title: "Name", Width: 22},
		{Title: "Email", Width: 32},
		{Title: "Courses", Width: 7},
		{Title: "Seats", Width: 6},
		{Title: "Status", Width: 8},
	}
	st := d.Styles
	return pages.New(st, "Instructors", "Teaching staff and their load", func(width, _ int) string {
		return widgets.Table(st, cols, rows, width)
	})
}

func reports(d pages.Deps) content.View {
	var byCategory, byStatus, grades []catalog.Bucket
	err := d.Load(ReportsID, func(ctx context.Context) error {
		var err error
		if byCategory, err = d.Catalog.EnrollmentsByCategory(ctx); err != nil {
			return err
		}
		if byStatus, err = d.Catalog.CoursesByStatus(ctx); err != nil {
			return err
		}
		grades, err = d.Catalog.GradeDistribution(ctx, "")
		return err
	})
	if err != nil {
		return pages.Failed(d.Styles, "Reports", "reports", err)
	}

	st := d.Styles
	return pages.New(st, "Reports", "Term to date", func(width, _ int) string {
		return widgets.Stack(
			widgets.Section(st, "Enrollments by category"),
			widgets.Bars(st, toBars(byCategory), width),
			widgets.Section(st, "Courses by status"),
			widgets.Bars(st, toBars(byStatus), width),
			widgets.Section(st, "Grade distribution"),
			widgets.Bars(st, toBars(grades), width),
		)
	})
}

func settings(d pages.Deps) content.View {
	st := d.Styles
	source := d.Theme.Source
	if source == "" {
		source = "built-in"
	}
	fields := []widgets.Field{
		{Label: "Institution", Value: "Northfield College"},
		{Label: "Current term", Value: "Fall 2026"},
		{Label: "Support email", Value: "it-help@campus.example"},
		{Label: "Default capacity", Value: "30"},
		{Label: "Enrollment deadline", Placeholder: "not set"},
		{Label: "Theme", Value: d.Theme.Name},
		{Label: "Stylesheet", Value: source},
	}
	return pages.New(st, "Settings", "Sample values, changes are not saved", func(width, _ int) string {
		return widgets.Form(st, fields, width)
	})
}

func toBars(buckets []catalog.Bucket) []widgets.Bar {
	bars := make([]widgets.Bar, len(buckets))
	for i, b := range buckets {
		bars[i] = widgets.Bar{Label: b.Label, Value: b.Count}
	}
	return bars
}
