package tests

import (
	"net/http"
	"testing"
	"time"

	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/user"
	"github.com/datapulse/backend/tests"
)

func Test_activityApi_record(t *testing.T) {
	db.Reset()
	usr := testutil.CreateUser(t, usrRepo, "Alice", "alice@test.io", "secret1", "")

	t.Run("auth required", func(t *testing.T) {
		body := marchallObj(t, activity.NewActivity{ActionType: activity.ActionPageView})
		req, rec := newRequest(http.MethodPost, "/v1/activities", body)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		}, rec)
	})

	t.Run("ok", func(t *testing.T) {
		body := marchallObj(t, activity.NewActivity{
			ActionType: activity.ActionCourseView,
			Details:    core.JSONMap{"course_id": "crs1"},
			Metadata:   core.JSONMap{"source": "web"},
		})
		req, rec := newAuthRequest(http.MethodPost, "/v1/activities", getToken(t, usr), body)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %d; want %d; body = %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		var resp struct {
			Activity activity.Activity `json:"activity"`
		}
		decodeBody(t, rec, &resp)
		if resp.Activity.UserID != usr.ID {
			t.Errorf("UserID = %q; want %q (from token, not payload)", resp.Activity.UserID, usr.ID)
		}
		if resp.Activity.ActionType != activity.ActionCourseView {
			t.Errorf("ActionType = %q", resp.Activity.ActionType)
		}
		if resp.Activity.Timestamp.IsZero() {
			t.Error("Timestamp not defaulted")
		}
	})

	t.Run("missing action_type", func(t *testing.T) {
		body := marchallObj(t, activity.NewActivity{})
		req, rec := newAuthRequest(http.MethodPost, "/v1/activities", getToken(t, usr), body)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %d; want %d; body = %s", rec.Code, http.StatusBadRequest, rec.Body.String())
		}
	})
}

func Test_activityApi_query(t *testing.T) {
	db.Reset()

	alice := testutil.CreateUser(t, usrRepo, "Alice", "alice@test.io", "secret1", "")
	bob := testutil.CreateUser(t, usrRepo, "Bob", "bob@test.io", "secret1", "")
	admin := testutil.CreateUser(t, usrRepo, "Root", "root@test.io", "secret1", user.RoleAdmin)

	now := time.Now().UTC()
	testutil.CreateActivity(t, actRepo, alice.ID, activity.ActionLogin, now.Add(-3*time.Minute))
	testutil.CreateActivity(t, actRepo, alice.ID, activity.ActionPageView, now.Add(-2*time.Minute))
	testutil.CreateActivity(t, actRepo, bob.ID, activity.ActionLogin, now.Add(-time.Minute))

	query := func(t *testing.T, path, token string) []activity.Activity {
		t.Helper()
		req, rec := newAuthRequest(http.MethodGet, path, token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d; body = %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			Activities []activity.Activity `json:"activities"`
		}
		decodeBody(t, rec, &resp)
		return resp.Activities
	}

	t.Run("non-admin sees only their own", func(t *testing.T) {
		activities := query(t, "/v1/activities", getToken(t, alice))
		if len(activities) != 2 {
			t.Fatalf("len(activities) = %d; want 2", len(activities))
		}
		for _, act := range activities {
			if act.UserID != alice.ID {
				t.Errorf("activity of %q leaked", act.UserID)
			}
		}
	})

	t.Run("non-admin cannot spy via user_id param", func(t *testing.T) {
		activities := query(t, "/v1/activities?user_id="+bob.ID, getToken(t, alice))
		for _, act := range activities {
			if act.UserID != alice.ID {
				t.Errorf("activity of %q leaked", act.UserID)
			}
		}
	})

	t.Run("admin sees all", func(t *testing.T) {
		activities := query(t, "/v1/activities", getToken(t, admin))
		if len(activities) != 3 {
			t.Errorf("len(activities) = %d; want 3", len(activities))
		}
	})

	t.Run("admin filters by user", func(t *testing.T) {
		activities := query(t, "/v1/activities?user_id="+bob.ID, getToken(t, admin))
		if len(activities) != 1 || activities[0].UserID != bob.ID {
			t.Errorf("activities = %+v; want bob's single event", activities)
		}
	})

	t.Run("limit", func(t *testing.T) {
		activities := query(t, "/v1/activities?limit=1", getToken(t, admin))
		if len(activities) != 1 {
			t.Errorf("len(activities) = %d; want 1", len(activities))
		}
	})
}
