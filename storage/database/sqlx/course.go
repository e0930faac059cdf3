package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/datapulse/backend/core/course"
)

const pqUniqueViolation = "23505"

type courseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *sqlx.DB) *courseRepository {
	return &courseRepository{db: db}
}

func (repo courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	courses := make([]course.Course, 0)
	err := repo.db.SelectContext(ctx, &courses,
		"SELECT * FROM courses ORDER BY created_at ASC")
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	return courses, nil
}

func (repo courseRepository) GetCourseByID(ctx context.Context, id string) (course.Course, error) {
	var crs course.Course
	err := repo.db.GetContext(ctx, &crs, "SELECT * FROM courses WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, errors.Wrap(err, "getting course by id")
	}
	return crs, nil
}

func (repo courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	crs.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO courses (id, title, description, duration, level, enrollments_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		crs.ID, crs.Title, crs.Description, crs.Duration, crs.Level, crs.EnrollmentsCount, crs.CreatedAt,
	)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return crs, nil
}

func (repo courseRepository) EnrollmentExists(ctx context.Context, userID, courseID string) (bool, error) {
	var exists bool
	err := repo.db.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)",
		userID, courseID,
	)
	if err != nil {
		return false, errors.Wrap(err, "checking enrollment")
	}
	return exists, nil
}

func (repo courseRepository) CreateEnrollment(ctx context.Context, enr course.Enrollment) (course.Enrollment, error) {
	enr.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO enrollments (id, user_id, course_id, progress, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		enr.ID, enr.UserID, enr.CourseID, enr.Progress, enr.CreatedAt,
	)
	if err != nil {
		// concurrent enrollment for the same (user, course) pair
		if pqErr, ok := errors.Cause(err).(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return course.Enrollment{}, course.ErrAlreadyEnrolled
		}
		return course.Enrollment{}, errors.Wrap(err, "inserting enrollment")
	}
	return enr, nil
}

func (repo courseRepository) QueryUserEnrollments(ctx context.Context, userID string) ([]course.Enrollment, error) {
	enrollments := make([]course.Enrollment, 0)
	err := repo.db.SelectContext(ctx, &enrollments,
		`SELECT e.id, e.user_id, e.course_id, e.progress, e.created_at, c.title AS course_title
		 FROM enrollments e
		 JOIN courses c ON c.id = e.course_id
		 WHERE e.user_id = $1
		 ORDER BY e.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying user enrollments")
	}
	return enrollments, nil
}

func (repo courseRepository) IncrementEnrollments(ctx context.Context, courseID string) error {
	_, err := repo.db.ExecContext(ctx,
		"UPDATE courses SET enrollments_count = enrollments_count + 1 WHERE id = $1", courseID)
	return errors.Wrap(err, "incrementing enrollments counter")
}
