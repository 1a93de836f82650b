package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSample(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, c.Close()) })
	return c
}

func TestOpenLoadsEmbeddedFixture(t *testing.T) {
	c := openSample(t)
	ctx := context.Background()

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{
		Users:         14,
		Students:      8,
		Instructors:   4,
		Courses:       7,
		ActiveCourses: 5,
		Enrollments:   15,
		AvgProgress:   63,
	}, stats)
}

func TestOpenFixtureRejectsInvalidTOML(t *testing.T) {
	_, err := OpenFixture(context.Background(), []byte("users = ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode fixture")
}

func TestOpenFixtureRejectsDanglingReferences(t *testing.T) {
	data := []byte(`
[[courses]]
code = "X1"
title = "Orphan"
instructor = "nobody"
category = "None"
capacity = 1
credits = 1
status = "active"
`)
	_, err := OpenFixture(context.Background(), data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed course X1")
}

func TestOpenFixtureEmpty(t *testing.T) {
	c, err := OpenFixture(context.Background(), nil)
	require.NoError(t, err)
	defer c.Close()

	stats, err := c.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)

	_, err = c.DefaultInstructor(context.Background())
	assert.ErrorIs(t, err, ErrNoInstructor)
}

func TestUsersByRole(t *testing.T) {
	c := openSample(t)
	ctx := context.Background()

	all, err := c.Users(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 14)

	admins, err := c.Users(ctx, RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "u-001", admins[0].ID)
	assert.Equal(t, "Amara Okafor", admins[0].Name)

	instructors, err := c.Users(ctx, RoleInstructor)
	require.NoError(t, err)
	assert.Len(t, instructors, 4)
}

func TestUserNotFound(t *testing.T) {
	c := openSample(t)
	_, err := c.User(context.Background(), "u-999")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDefaultInstructor(t *testing.T) {
	c := openSample(t)
	u, err := c.DefaultInstructor(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u-101", u.ID)
	assert.Equal(t, RoleInstructor, u.Role)
}

func TestCoursesCarryInstructorAndEnrollment(t *testing.T) {
	c := openSample(t)
	courses, err := c.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 7)

	byCode := map[string]Course{}
	for _, co := range courses {
		byCode[co.Code] = co
	}
	assert.Equal(t, "Dr. Helena Sato", byCode["CS101"].InstructorName)
	assert.Equal(t, 4, byCode["CS101"].Enrolled)
	assert.Equal(t, 0, byCode["CS340"].Enrolled)
	assert.Equal(t, "archived", byCode["HU110"].Status)
}

func TestCoursesByInstructor(t *testing.T) {
	c := openSample(t)
	courses, err := c.CoursesByInstructor(context.Background(), "u-101")
	require.NoError(t, err)

	var codes []string
	for _, co := range courses {
		codes = append(codes, co.Code)
	}
	assert.Equal(t, []string{"CS101", "CS220", "CS340"}, codes)
}

func TestStudentsForInstructor(t *testing.T) {
	c := openSample(t)
	students, err := c.Students(context.Background(), "u-101")
	require.NoError(t, err)
	require.Len(t, students, 8)
	assert.Equal(t, "CS101", students[0].CourseCode)
	assert.Equal(t, "CS220", students[len(students)-1].CourseCode)

	none, err := c.Students(context.Background(), "u-104")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAssignmentsOrderedByDue(t *testing.T) {
	c := openSample(t)
	work, err := c.Assignments(context.Background(), "u-101")
	require.NoError(t, err)
	require.Len(t, work, 6)
	for i := 1; i < len(work); i++ {
		assert.LessOrEqual(t, work[i-1].Due, work[i].Due)
	}
	assert.Equal(t, "a-01", work[0].ID)
	assert.Equal(t, 4, work[0].Enrolled)
}

func TestAnnouncementsAudience(t *testing.T) {
	c := openSample(t)
	ctx := context.Background()

	all, err := c.Announcements(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "n-04", all[0].ID)

	public, err := c.Announcements(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, public, 2)

	forInstructors, err := c.Announcements(ctx, RoleInstructor)
	require.NoError(t, err)
	assert.Len(t, forInstructors, 4)
	assert.Equal(t, "Lucas Pereira", forInstructors[1].AuthorName)
}

func TestActivityLimit(t *testing.T) {
	c := openSample(t)
	ctx := context.Background()

	recent, err := c.Activity(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2026-10-18 16:42", recent[0].At)
	assert.Equal(t, "Dr. Helena Sato", recent[0].ActorName)

	all, err := c.Activity(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestInstructorStats(t *testing.T) {
	c := openSample(t)
	s, err := c.InstructorStats(context.Background(), "u-101")
	require.NoError(t, err)
	assert.Equal(t, InstructorStats{
		Courses:       3,
		Students:      7,
		OpenWork:      2,
		ToGrade:       2,
		AvgProgress:   66,
		NextDeadline:  "2026-10-24",
		NextWorkTitle: "Mini project proposal",
	}, s)
}

func TestInstructorStatsWithoutWork(t *testing.T) {
	c := openSample(t)
	s, err := c.InstructorStats(context.Background(), "u-104")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Courses)
	assert.Empty(t, s.NextDeadline)
}

func TestEnrollmentByMonth(t *testing.T) {
	c := openSample(t)
	months, err := c.EnrollmentByMonth(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, months)
	assert.Equal(t, "2026-05", months[0].Month)
	assert.Equal(t, 18, months[0].Count)
	for i := 1; i < len(months); i++ {
		assert.Less(t, months[i-1].Month, months[i].Month)
	}
}

func TestBuckets(t *testing.T) {
	c := openSample(t)
	ctx := context.Background()

	cats, err := c.EnrollmentsByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Bucket{
		{Label: "Computer Science", Count: 8},
		{Label: "Mathematics", Count: 4},
		{Label: "Data Science", Count: 3},
		{Label: "Humanities", Count: 0},
	}, cats)

	statuses, err := c.CoursesByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Bucket{
		{Label: "active", Count: 5},
		{Label: "archived", Count: 1},
		{Label: "draft", Count: 1},
	}, statuses)
}

func TestGradeDistribution(t *testing.T) {
	c := openSample(t)
	ctx := context.Background()

	mine, err := c.GradeDistribution(ctx, "u-101")
	require.NoError(t, err)
	assert.Equal(t, []Bucket{
		{Label: "A", Count: 3},
		{Label: "B", Count: 3},
		{Label: "C", Count: 1},
		{Label: "D", Count: 1},
		{Label: "F", Count: 0},
	}, mine)

	all, err := c.GradeDistribution(ctx, "")
	require.NoError(t, err)
	total := 0
	for _, b := range all {
		total += b.Count
	}
	assert.Equal(t, 15, total)
}
