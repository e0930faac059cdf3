package course

import (
	"context"
	"errors"
	"time"

	"github.com/datapulse/backend/core"
)

var (
	// errors
	ErrNotFound        = errors.New("course not found")
	ErrAlreadyEnrolled = errors.New("already enrolled")
)

type (
	Repository interface {
		QueryAllCourses(ctx context.Context) ([]Course, error)
		GetCourseByID(ctx context.Context, id string) (Course, error)
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		EnrollmentExists(ctx context.Context, userID, courseID string) (bool, error)
		CreateEnrollment(ctx context.Context, enr Enrollment) (Enrollment, error)
		QueryUserEnrollments(ctx context.Context, userID string) ([]Enrollment, error)
		// IncrementEnrollments bumps the course's standalone enrollment counter
		// by one in a single atomic statement.
		IncrementEnrollments(ctx context.Context, courseID string) error
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Course, error) {
	return svc.repo.QueryAllCourses(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, crs Course) (Course, error) {
	if crs.CreatedAt.IsZero() {
		crs.CreatedAt = time.Now().UTC()
	}
	return svc.repo.CreateCourse(ctx, crs)
}

// Enroll enrolls a user in a course. The per-course enrollment counter is
// advisory, display-only; if its increment fails after the enrollment row is
// written, the error is logged and the enrollment stands (accepted
// inconsistency window, never rolled back).
func (svc *Service) Enroll(ctx context.Context, userID, courseID string) (Enrollment, error) {
	crs, err := svc.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		return Enrollment{}, err
	}

	exists, err := svc.repo.EnrollmentExists(ctx, userID, courseID)
	if err != nil {
		return Enrollment{}, err
	}
	if exists {
		return Enrollment{}, ErrAlreadyEnrolled
	}

	enr, err := svc.repo.CreateEnrollment(ctx, Enrollment{
		UserID:    userID,
		CourseID:  courseID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Enrollment{}, err
	}

	if err := svc.repo.IncrementEnrollments(ctx, courseID); err != nil && svc.logger != nil {
		svc.logger.Error("incrementing enrollments counter", err)
	}

	enr.CourseTitle = crs.Title
	return enr, nil
}

func (svc *Service) QueryUserEnrollments(ctx context.Context, userID string) ([]Enrollment, error) {
	return svc.repo.QueryUserEnrollments(ctx, userID)
}
