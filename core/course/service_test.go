package course_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/datapulse/backend/core/course"
	"github.com/datapulse/backend/core/user"
	"github.com/datapulse/backend/storage/database/inmem"
	"github.com/datapulse/backend/tests"
)

func setup(t *testing.T) (*course.Service, course.Course, user.User) {
	t.Helper()

	db := inmemdb.NewDB()
	repo := inmemdb.NewCourseRepository(db)
	svc := course.NewService(repo, nil)
	crs := testutil.CreateCourse(t, repo, "Python for Beginners", "Beginner", 0)
	usr := testutil.CreateUser(t, inmemdb.NewUserRepository(db), "Alice", "alice@test.io", "", "")
	return svc, crs, usr
}

func TestService_Enroll(t *testing.T) {
	svc, crs, usr := setup(t)
	ctx := context.Background()

	enr, err := svc.Enroll(ctx, usr.ID, crs.ID)
	if err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}
	if enr.UserID != usr.ID || enr.CourseID != crs.ID {
		t.Errorf("Enroll() = %+v; want user %q course %q", enr, usr.ID, crs.ID)
	}
	if enr.CourseTitle != crs.Title {
		t.Errorf("Enroll() CourseTitle = %q; want %q", enr.CourseTitle, crs.Title)
	}

	// the denormalized counter moved exactly once
	got, err := svc.GetByID(ctx, crs.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.EnrollmentsCount != 1 {
		t.Errorf("EnrollmentsCount = %d; want 1", got.EnrollmentsCount)
	}
}

func TestService_Enroll_duplicate(t *testing.T) {
	svc, crs, usr := setup(t)
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, usr.ID, crs.ID); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}
	if _, err := svc.Enroll(ctx, usr.ID, crs.ID); errors.Cause(err) != course.ErrAlreadyEnrolled {
		t.Errorf("Enroll() error = %v; want %v", err, course.ErrAlreadyEnrolled)
	}

	// duplicate attempt must not bump the counter again
	got, err := svc.GetByID(ctx, crs.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.EnrollmentsCount != 1 {
		t.Errorf("EnrollmentsCount = %d; want 1", got.EnrollmentsCount)
	}
}

func TestService_Enroll_unknownCourse(t *testing.T) {
	svc, _, usr := setup(t)

	if _, err := svc.Enroll(context.Background(), usr.ID, "nope"); errors.Cause(err) != course.ErrNotFound {
		t.Errorf("Enroll() error = %v; want %v", err, course.ErrNotFound)
	}
}

func TestService_QueryUserEnrollments(t *testing.T) {
	svc, crs, usr := setup(t)
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, usr.ID, crs.ID); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}

	enrollments, err := svc.QueryUserEnrollments(ctx, usr.ID)
	if err != nil {
		t.Fatalf("QueryUserEnrollments() failed: %v", err)
	}
	if len(enrollments) != 1 {
		t.Fatalf("len(enrollments) = %d; want 1", len(enrollments))
	}
	if enrollments[0].CourseTitle != crs.Title {
		t.Errorf("CourseTitle = %q; want %q", enrollments[0].CourseTitle, crs.Title)
	}

	other, err := svc.QueryUserEnrollments(ctx, "someone-else")
	if err != nil {
		t.Fatalf("QueryUserEnrollments() failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("len(other) = %d; want 0", len(other))
	}
}
