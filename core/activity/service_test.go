package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/storage/database/inmem"
)

func setup() *activity.Service {
	db := inmemdb.NewDB()
	return activity.NewService(inmemdb.NewActivityRepository(db))
}

func TestService_Record(t *testing.T) {
	svc := setup()
	ctx := context.Background()

	before := time.Now().UTC()
	act, err := svc.Record(ctx, "usr1", activity.NewActivity{
		ActionType: activity.ActionCourseView,
		Details:    core.JSONMap{"course_id": "crs1"},
		Metadata:   core.JSONMap{"source": "web"},
	})
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if act.ID == "" {
		t.Error("Record() returned activity without ID")
	}
	if act.UserID != "usr1" || act.ActionType != activity.ActionCourseView {
		t.Errorf("Record() = %+v", act)
	}
	// timestamp defaults to now when unset
	if act.Timestamp.Before(before) || act.Timestamp.After(time.Now().UTC()) {
		t.Errorf("Record() Timestamp = %v; want within test run", act.Timestamp)
	}

	// exactly one event was appended
	activities, err := svc.Query(ctx, activity.QueryFilter{})
	if err != nil {
		t.Fatalf("Query() failed: %v", err)
	}
	if len(activities) != 1 {
		t.Errorf("len(activities) = %d; want 1", len(activities))
	}
}

func TestService_Record_explicitTimestamp(t *testing.T) {
	svc := setup()

	ts := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	act, err := svc.Record(context.Background(), "usr1", activity.NewActivity{
		ActionType: activity.ActionLogin,
		Timestamp:  ts,
	})
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if !act.Timestamp.Equal(ts) {
		t.Errorf("Record() Timestamp = %v; want %v", act.Timestamp, ts)
	}
}

func TestService_Query(t *testing.T) {
	svc := setup()
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		uid := "usr1"
		if i%2 == 1 {
			uid = "usr2"
		}
		_, err := svc.Record(ctx, uid, activity.NewActivity{
			ActionType: activity.ActionPageView,
			Timestamp:  now.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	t.Run("newest first", func(t *testing.T) {
		activities, err := svc.Query(ctx, activity.QueryFilter{})
		if err != nil {
			t.Fatalf("Query() failed: %v", err)
		}
		if len(activities) != 5 {
			t.Fatalf("len(activities) = %d; want 5", len(activities))
		}
		for i := 1; i < len(activities); i++ {
			if activities[i].Timestamp.After(activities[i-1].Timestamp) {
				t.Errorf("activities not newest first at %d", i)
			}
		}
	})

	t.Run("user filter", func(t *testing.T) {
		activities, err := svc.Query(ctx, activity.QueryFilter{UserID: "usr2"})
		if err != nil {
			t.Fatalf("Query() failed: %v", err)
		}
		if len(activities) != 2 {
			t.Errorf("len(activities) = %d; want 2", len(activities))
		}
		for _, act := range activities {
			if act.UserID != "usr2" {
				t.Errorf("activity for %q leaked into usr2 filter", act.UserID)
			}
		}
	})

	t.Run("limit", func(t *testing.T) {
		activities, err := svc.Query(ctx, activity.QueryFilter{Limit: 3})
		if err != nil {
			t.Fatalf("Query() failed: %v", err)
		}
		if len(activities) != 3 {
			t.Errorf("len(activities) = %d; want 3", len(activities))
		}
	})
}

func TestService_CountForUser(t *testing.T) {
	svc := setup()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Record(ctx, "usr1", activity.NewActivity{ActionType: activity.ActionLogin}); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}
	if _, err := svc.Record(ctx, "usr2", activity.NewActivity{ActionType: activity.ActionLogin}); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	count, err := svc.CountForUser(ctx, "usr1")
	if err != nil {
		t.Fatalf("CountForUser() failed: %v", err)
	}
	if count != 3 {
		t.Errorf("CountForUser() = %d; want 3", count)
	}
}
