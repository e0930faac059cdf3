package sqlxrepos

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
)

type activityRepository struct {
	db *sqlx.DB
}

var _ activity.Repository = (*activityRepository)(nil) // interface compliance check

func NewActivityRepository(db *sqlx.DB) *activityRepository {
	return &activityRepository{db: db}
}

// activityRow mirrors the activities table; details/metadata are nullable jsonb.
type activityRow struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	ActionType string    `db:"action_type"`
	Details    null.JSON `db:"details"`
	Metadata   null.JSON `db:"metadata"`
	Timestamp  time.Time `db:"timestamp"`
}

func (row activityRow) toActivity() (activity.Activity, error) {
	act := activity.Activity{
		ID:         row.ID,
		UserID:     row.UserID,
		ActionType: row.ActionType,
		Timestamp:  row.Timestamp,
	}
	if row.Details.Valid {
		if err := json.Unmarshal(row.Details.JSON, &act.Details); err != nil {
			return activity.Activity{}, errors.Wrap(err, "unmarshaling activity details")
		}
	}
	if row.Metadata.Valid {
		if err := json.Unmarshal(row.Metadata.JSON, &act.Metadata); err != nil {
			return activity.Activity{}, errors.Wrap(err, "unmarshaling activity metadata")
		}
	}
	return act, nil
}

func jsonbValue(m core.JSONMap) (null.JSON, error) {
	if m == nil {
		return null.JSON{}, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return null.JSON{}, errors.Wrap(err, "marshaling jsonb payload")
	}
	return null.JSONFrom(b), nil
}

func (repo activityRepository) CreateActivity(ctx context.Context, act activity.Activity) (activity.Activity, error) {
	act.ID = uuid.New().String()

	details, err := jsonbValue(act.Details)
	if err != nil {
		return activity.Activity{}, err
	}
	metadata, err := jsonbValue(act.Metadata)
	if err != nil {
		return activity.Activity{}, err
	}

	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO activities (id, user_id, action_type, details, metadata, timestamp)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		act.ID, act.UserID, act.ActionType, details, metadata, act.Timestamp,
	)
	if err != nil {
		return activity.Activity{}, errors.Wrap(err, "inserting activity")
	}
	return act, nil
}

func (repo activityRepository) FilterActivities(ctx context.Context, filter activity.QueryFilter) ([]activity.Activity, error) {
	query := "SELECT * FROM activities"
	args := make([]interface{}, 0, 2)
	if filter.UserID != "" {
		query += " WHERE user_id = $1"
		args = append(args, filter.UserID)
	}
	query += " ORDER BY timestamp DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		if filter.UserID != "" {
			query += " LIMIT $2"
		} else {
			query += " LIMIT $1"
		}
	}

	rows := make([]activityRow, 0)
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying activities")
	}
	return repo.toActivities(rows)
}

func (repo activityRepository) CountUserActivities(ctx context.Context, userID string) (int, error) {
	var count int
	err := repo.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM activities WHERE user_id = $1", userID)
	if err != nil {
		return 0, errors.Wrap(err, "counting user activities")
	}
	return count, nil
}

func (repo activityRepository) toActivities(rows []activityRow) ([]activity.Activity, error) {
	activities := make([]activity.Activity, 0, len(rows))
	for _, row := range rows {
		act, err := row.toActivity()
		if err != nil {
			return nil, err
		}
		activities = append(activities, act)
	}
	return activities, nil
}
