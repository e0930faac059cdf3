package activity

import (
	"context"
	"time"
)

const defaultQueryLimit = 50

type (
	Repository interface {
		CreateActivity(ctx context.Context, act Activity) (Activity, error)
		// FilterActivities returns activities newest first, optionally
		// restricted to a user, capped at filter.Limit.
		FilterActivities(ctx context.Context, filter QueryFilter) ([]Activity, error)
		CountUserActivities(ctx context.Context, userID string) (int, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends exactly one event on behalf of userID. The timestamp defaults
// to now (UTC) when the caller does not supply one. Storage failures propagate;
// there is no retry and no deduplication.
func (svc *Service) Record(ctx context.Context, userID string, na NewActivity) (Activity, error) {
	ts := na.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return svc.repo.CreateActivity(ctx, Activity{
		UserID:     userID,
		ActionType: na.ActionType,
		Details:    na.Details,
		Metadata:   na.Metadata,
		Timestamp:  ts.UTC(),
	})
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Activity, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultQueryLimit
	}
	return svc.repo.FilterActivities(ctx, filter)
}

func (svc *Service) CountForUser(ctx context.Context, userID string) (int, error) {
	return svc.repo.CountUserActivities(ctx, userID)
}
