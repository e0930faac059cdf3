package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/analytics"
	"github.com/datapulse/backend/core/course"
)

type analyticsRepository struct {
	db *sqlx.DB
}

var _ analytics.Repository = (*analyticsRepository)(nil) // interface compliance check

func NewAnalyticsRepository(db *sqlx.DB) *analyticsRepository {
	return &analyticsRepository{db: db}
}

func (repo analyticsRepository) count(ctx context.Context, query string) (int, error) {
	var count int
	err := repo.db.GetContext(ctx, &count, query)
	return count, err
}

func (repo analyticsRepository) CountUsers(ctx context.Context) (int, error) {
	count, err := repo.count(ctx, "SELECT COUNT(*) FROM users")
	return count, errors.Wrap(err, "counting users")
}

func (repo analyticsRepository) CountCourses(ctx context.Context) (int, error) {
	count, err := repo.count(ctx, "SELECT COUNT(*) FROM courses")
	return count, errors.Wrap(err, "counting courses")
}

func (repo analyticsRepository) CountChatbotQueries(ctx context.Context) (int, error) {
	count, err := repo.count(ctx, "SELECT COUNT(*) FROM chatbot_queries")
	return count, errors.Wrap(err, "counting chatbot queries")
}

func (repo analyticsRepository) QueryActiveUserIDs(ctx context.Context, since time.Time) ([]string, error) {
	ids := make([]string, 0)
	err := repo.db.SelectContext(ctx, &ids,
		"SELECT user_id FROM activities WHERE timestamp >= $1", since)
	if err != nil {
		return nil, errors.Wrap(err, "querying active user ids")
	}
	return ids, nil
}

func (repo analyticsRepository) QueryRecentActivities(ctx context.Context, limit int) ([]activity.Activity, error) {
	rows := make([]activityRow, 0)
	err := repo.db.SelectContext(ctx, &rows,
		"SELECT * FROM activities ORDER BY timestamp DESC LIMIT $1", limit)
	if err != nil {
		return nil, errors.Wrap(err, "querying recent activities")
	}
	return activityRepository{db: repo.db}.toActivities(rows)
}

func (repo analyticsRepository) QueryCourseCounters(ctx context.Context) ([]course.Course, error) {
	courses := make([]course.Course, 0)
	err := repo.db.SelectContext(ctx, &courses,
		"SELECT id, title, enrollments_count FROM courses ORDER BY created_at ASC")
	if err != nil {
		return nil, errors.Wrap(err, "querying course counters")
	}
	return courses, nil
}

func (repo analyticsRepository) QueryUserSignupTimes(ctx context.Context) ([]time.Time, error) {
	times := make([]time.Time, 0)
	err := repo.db.SelectContext(ctx, &times,
		"SELECT created_at FROM users ORDER BY created_at ASC")
	if err != nil {
		return nil, errors.Wrap(err, "querying user signup times")
	}
	return times, nil
}
