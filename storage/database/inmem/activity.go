package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/datapulse/backend/core/activity"
)

type activityRepository struct {
	db *DB
}

var _ activity.Repository = (*activityRepository)(nil)

func NewActivityRepository(db *DB) *activityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) CreateActivity(ctx context.Context, act activity.Activity) (activity.Activity, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	act.ID = uuid.New().String()
	repo.db.activities = append(repo.db.activities, &act)
	return act, nil
}

func (repo *activityRepository) FilterActivities(ctx context.Context, filter activity.QueryFilter) ([]activity.Activity, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	activities := make([]activity.Activity, 0)
	for _, act := range repo.db.activities {
		if filter.UserID != "" && act.UserID != filter.UserID {
			continue
		}
		activities = append(activities, *act)
	}
	// newest first; stable keeps arrival order on timestamp ties
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if filter.Limit > 0 && len(activities) > filter.Limit {
		activities = activities[:filter.Limit]
	}
	return activities, nil
}

func (repo *activityRepository) CountUserActivities(ctx context.Context, userID string) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var count int
	for _, act := range repo.db.activities {
		if act.UserID == userID {
			count++
		}
	}
	return count, nil
}
