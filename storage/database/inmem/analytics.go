package inmemdb

import (
	"context"
	"sort"
	"time"

	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/analytics"
	"github.com/datapulse/backend/core/course"
)

type analyticsRepository struct {
	db *DB
}

var _ analytics.Repository = (*analyticsRepository)(nil)

func NewAnalyticsRepository(db *DB) *analyticsRepository {
	return &analyticsRepository{db: db}
}

func (repo *analyticsRepository) CountUsers(ctx context.Context) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return len(repo.db.users), nil
}

func (repo *analyticsRepository) CountCourses(ctx context.Context) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return len(repo.db.courses), nil
}

func (repo *analyticsRepository) CountChatbotQueries(ctx context.Context) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return len(repo.db.queries), nil
}

func (repo *analyticsRepository) QueryActiveUserIDs(ctx context.Context, since time.Time) ([]string, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	ids := make([]string, 0)
	for _, act := range repo.db.activities {
		if !act.Timestamp.Before(since) {
			ids = append(ids, act.UserID)
		}
	}
	return ids, nil
}

func (repo *analyticsRepository) QueryRecentActivities(ctx context.Context, limit int) ([]activity.Activity, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	activities := make([]activity.Activity, 0, len(repo.db.activities))
	for _, act := range repo.db.activities {
		activities = append(activities, *act)
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

func (repo *analyticsRepository) QueryCourseCounters(ctx context.Context) ([]course.Course, error) {
	return NewCourseRepository(repo.db).QueryAllCourses(ctx)
}

func (repo *analyticsRepository) QueryUserSignupTimes(ctx context.Context) ([]time.Time, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	times := make([]time.Time, 0, len(repo.db.users))
	for _, usr := range repo.db.users {
		times = append(times, usr.CreatedAt)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times, nil
}
