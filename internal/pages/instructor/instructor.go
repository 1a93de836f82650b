// Package instructor builds the pages of the instructor shell. Every page is
// scoped to the instructor the shell acts as.
package instructor

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

// Entry ids of the instructor shell.
const (
	DashboardID     = "dashboard"
	CoursesID       = "courses"
	StudentsID      = "students"
	AssignmentsID   = "assignments"
	GradesID        = "grades"
	AnnouncementsID = "announcements"
	ProfileID       = "profile"
)

// Students below this progress are listed under "Needs attention".
const attentionThreshold = 50

// Entries returns the instructor sidebar in display order for me.
func Entries(d pages.Deps, me catalog.User) []nav.Entry {
	return []nav.Entry{
		{ID: DashboardID, Label: "Dashboard", Icon: "▣", Factory: func() content.View { return dashboard(d, me) }},
		{ID: CoursesID, Label: "My Courses", Icon: "▤", Factory: func() content.View { return myCourses(d, me) }},
		{ID: StudentsID, Label: "Students", Icon: "☺", Factory: func() content.View { return students(d, me) }},
		{ID: AssignmentsID, Label: "Assignments", Icon: "✎", Factory: func() content.View { return assignments(d, me) }},
		{ID: GradesID, Label: "Grades", Icon: "▥", Factory: func() content.View { return grades(d, me) }},
		{ID: AnnouncementsID, Label: "Announcements", Icon: "✉", Factory: func() content.View { return announcements(d) }},
		{ID: ProfileID, Label: "Profile", Icon: "◉", Factory: func() content.View { return profile(d, me) }},
		pages.LogoutEntry(),
	}
}

func dashboard(d pages.Deps, me catalog.User) content.View {
	var (
		stats    catalog.InstructorStats
		upcoming []catalog.Assignment
	)
	err := d.Load(DashboardID, func(ctx context.Context) error {
		var err error
		if stats, err = d.Catalog.InstructorStats(ctx, me.ID); err != nil {
			return err
		}
		work, err := d.Catalog.Assignments(ctx, me.ID)
		if err != nil {
			return err
		}
		for _, a := range work {
			if a.Status != "graded" {
				upcoming = append(upcoming, a)
			}
		}
		return nil
	})
	if err != nil {
		return pages.Failed(d.Styles, "Dashboard", "dashboard", err)
	}

	st := d.Styles
	return pages.New(st, "Dashboard", "Welcome back, "+me.Name, func(width, _ int) string {
		next := "nothing due"
		if stats.NextDeadline != "" {
			next = stats.NextWorkTitle
		}
		cards := widgets.CardRow(width,
			widgets.Card(st, "Courses", fmt.Sprint(stats.Courses), ""),
			widgets.Card(st, "Students", fmt.Sprint(stats.Students), fmt.Sprintf("avg progress %d%%", stats.AvgProgress)),
			widgets.Card(st, "To grade", fmt.Sprint(stats.ToGrade), fmt.Sprintf("%d open", stats.OpenWork)),
			widgets.Card(st, "Next deadline", orDash(stats.NextDeadline), next),
		)

		lines := make([]string, len(upcoming))
		for i, a := range upcoming {
			lines[i] = fmt.Sprintf("%s  %-6s %s %s",
				st.Muted.Render(a.Due), a.CourseCode, a.Title, statusBadge(d, a.Status))
		}
		schedule := strings.Join(lines, "\n")
		if len(lines) == 0 {
			schedule = widgets.Empty(st, "no open coursework")
		}

		return widgets.Stack(cards, widgets.Section(st, "Schedule"), schedule)
	})
}

func myCourses(d pages.Deps, me catalog.User) content.View {
	var list []catalog.Course
	err := d.Load(CoursesID, func(ctx context.Context) error {
		var err error
		list, err = d.Catalog.CoursesByInstructor(ctx, me.ID)
		return err
	})
	if err != nil {
		return pages.Failed(d.Styles, "My Courses", "courses", err)
	}

	rows := make([][]string, len(list))
	for i, c := range list {
		rows[i] = []string{c.Code, c.Title, fmt.Sprintf("%d/%d", c.Enrolled, c.Capacity), fmt.Sprint(c.Credits), c.Status}
	}
	cols := []widgets.Column{
		{Title: "Code", Width: 6},
		{Title: "Title", Width: 30},
		{Title: "Seats", Width: 6},
		{Title: "Credits", Width: 7},
		{Title: "Status", Width: 8},
	}
	st := d.Styles
	return pages.New(st, "My Courses", fmt.Sprintf("%d courses this term", len(list)), func(width, _ int) string {
		return widgets.Table(st, cols, rows, width)
	})
}

func students(d pages.Deps, me catalog.User) content.View {
	var list []catalog.StudentProgress
	err := d.Load(StudentsID, func(ctx context.Context) error {
		var err error
		list, err = d.Catalog.Students(ctx, me.ID)
		return err
	})
	if err != nil {
		return pages.Failed(d.Styles, "Students", "students", err)
	}

	rows := make([][]string, len(list))
	for i, s := range list {
		rows[i] = []string{s.Name, s.Email, s.CourseCode, fmt.Sprintf("%d%%", s.Progress), s.Grade}
	}
	cols := []widgets.Column{
		{Title: "Name", Width: 20},
		{Title: "Email", Width: 32},
		{Title: "Course", Width: 6},
		{Title: "Progress", Width: 8},
		{Title: "Grade", Width: 5},
	}
	st := d.Styles
	return pages.New(st, "Students", fmt.Sprintf("%d enrollments", len(list)), func(width, _ int) string {
		return widgets.Table(st, cols, rows, width)
	})
}

func assignments(d pages.Deps, me catalog.User) content.View {
	var list []catalog.Assignment
	err := d.Load(AssignmentsID, func(ctx context.Context) error {
		var err error
		list, err = d.Catalog.Assignments(ctx, me.ID)
		return err
	})
	if err != nil {
		return pages.Failed(d.Styles, "Assignments", "assignments", err)
	}

	st := d.Styles
	return pages.New(st, "Assignments", "Submissions received per assignment", func(width, _ int) string {
		if len(list) == 0 {
			return widgets.Empty(st, "no assignments")
		}
		blocks := make([]string, 0, len(list))
		for _, a := range list {
			head := fmt.Sprintf("%s %s  %s", st.Text.Bold(true).Render(a.Title),
				st.Muted.Render(a.CourseCode+" · due "+a.Due), statusBadge(d, a.Status))
			pct := 0
			if a.Enrolled > 0 {
				pct = a.Submitted * 100 / a.Enrolled
			}
			bar := widgets.Progress(pct, min(width, 50)) +
				st.Muted.Render(fmt.Sprintf("  %d/%d submitted", a.Submitted, a.Enrolled))
			blocks = append(blocks, head, bar)
		}
		return strings.Join(blocks, "\n")
	})
}

func grades(d pages.Deps, me catalog.User) content.View {
	var (
		dist      []catalog.Bucket
		attention []catalog.StudentProgress
	)
	err := d.Load(GradesID, func(ctx context.Context) error {
		var err error
		if dist, err = d.Catalog.GradeDistribution(ctx, me.ID); err != nil {
			return err
		}
		all, err := d.Catalog.Students(ctx, me.ID)
		if err != nil {
			return err
		}
		for _, s := range all {
			if s.Progress < attentionThreshold {
				attention = append(attention, s)
			}
		}
		return nil
	})
	if err != nil {
		return pages.Failed(d.Styles, "Grades", "grades", err)
	}

	st := d.Styles
	return pages.New(st, "Grades", "Current letter grades across your courses", func(width, _ int) string {
		bars := make([]widgets.Bar, len(dist))
		for i, b := range dist {
			bars[i] = widgets.Bar{Label: b.Label, Value: b.Count}
		}

		lines := make([]string, len(attention))
		for i, s := range attention {
			lines[i] = fmt.Sprintf("%s %s  %d%%", st.Warning.Render("!"), s.Name+" ("+s.CourseCode+")", s.Progress)
		}
		flagged := strings.Join(lines, "\n")
		if len(lines) == 0 {
			flagged = widgets.Empty(st, "everyone is on track")
		}

		return widgets.Stack(
			widgets.Section(st, "Distribution"),
			widgets.Bars(st, bars, width),
			widgets.Section(st, "Needs attention"),
			flagged,
		)
	})
}

func announcements(d pages.Deps) content.View {
	var list []catalog.Announcement
	err := d.Load(AnnouncementsID, func(ctx context.Context) error {
		var err error
		list, err = d.Catalog.Announcements(ctx, catalog.RoleInstructor)
		return err
	})
	if err != nil {
		return pages.Failed(d.Styles, "Announcements", "announcements", err)
	}

	st := d.Styles
	return pages.New(st, "Announcements", "Newest first", func(width, _ int) string {
		if len(list) == 0 {
			return widgets.Empty(st, "no announcements")
		}
		blocks := make([]string, 0, 2*len(list))
		for _, n := range list {
			blocks = append(blocks,
				widgets.Section(st, n.Title)+"\n"+st.Muted.Render(n.AuthorName+" · "+n.Posted),
				widgets.Markdown(n.Body, width),
			)
		}
		return widgets.Stack(blocks...)
	})
}

func profile(d pages.Deps, me catalog.User) content.View {
	st := d.Styles
	fields := []widgets.Field{
		{Label: "Name", Value: me.Name},
		{Label: "Email", Value: me.Email},
		{Label: "Role", Value: me.Role},
		{Label: "Member since", Value: me.Joined},
		{Label: "Office hours", Placeholder: "not set"},
		{Label: "Phone", Placeholder: "not set"},
	}
	return pages.New(st, "Profile", "Sample values, changes are not saved", func(width, _ int) string {
		return widgets.Form(st, fields, width)
	})
}

func statusBadge(d pages.Deps, status string) string {
	switch status {
	case "open":
		return d.Styles.Success.Render("[" + status + "]")
	case "grading":
		return d.Styles.Warning.Render("[" + status + "]")
	}
	return d.Styles.Muted.Render("[" + status + "]")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
