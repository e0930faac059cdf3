package tests

import (
	"context"
	"net/http"
	"strings"
	"testing"

	. "github.com/datapulse/backend/apps/api/echo"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/user"
	"github.com/datapulse/backend/tests"
)

func Test_authApi_signup(t *testing.T) {
	db.Reset()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		body := marchallObj(t, user.NewUser{Name: "Alice", Email: "alice@test.io", Password: "secret1"})
		req, rec := newRequest(http.MethodPost, "/v1/auth/signup", body)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %d; want %d; body = %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		var resp TokenResponse
		decodeBody(t, rec, &resp)
		if resp.Token == "" {
			t.Error("signup returned empty token")
		}
		if resp.User.Email != "alice@test.io" || resp.User.Role != user.RoleUser {
			t.Errorf("signup user = %+v", resp.User)
		}
		if got := rec.Body.String(); containsPasswordHash(got) {
			t.Errorf("password hash leaked: %s", got)
		}

		// a signup event was recorded
		activities, err := activitySvc.Query(ctx, activity.QueryFilter{UserID: resp.User.ID})
		if err != nil {
			t.Fatalf("Query() failed: %v", err)
		}
		if len(activities) != 1 || activities[0].ActionType != activity.ActionSignup {
			t.Errorf("activities = %+v; want one signup event", activities)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		body := marchallObj(t, user.NewUser{Name: "Clone", Email: "alice@test.io", Password: "secret2"})
		req, rec := newRequest(http.MethodPost, "/v1/auth/signup", body)
		app.ServeHTTP(rec, req)

		checkCodeAndData(t, httpTest{
			wantCode: http.StatusConflict,
			wantData: marchallObj(t, httpErr{Error: "email already registered"}),
		}, rec)
	})

	t.Run("validation errors", func(t *testing.T) {
		body := marchallObj(t, user.NewUser{Email: "nope", Password: "meh"})
		req, rec := newRequest(http.MethodPost, "/v1/auth/signup", body)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("code = %d; want %d; body = %s", rec.Code, http.StatusBadRequest, rec.Body.String())
		}
		var fields map[string]string
		decodeBody(t, rec, &fields)
		for _, fld := range []string{"name", "email", "password"} {
			if _, ok := fields[fld]; !ok {
				t.Errorf("missing field error for %q: %v", fld, fields)
			}
		}
	})
}

func Test_authApi_login(t *testing.T) {
	db.Reset()
	usr := testutil.CreateUser(t, usrRepo, "Alice", "alice@test.io", "secret1", "")

	tests := []httpTest{
		{
			name: "ok", method: http.MethodPost, path: "/v1/auth/login",
			body:     marchallObj(t, user.Credentials{Email: "alice@test.io", Password: "secret1"}),
			wantCode: http.StatusOK,
		},
		{
			name: "wrong password", method: http.MethodPost, path: "/v1/auth/login",
			body:     marchallObj(t, user.Credentials{Email: "alice@test.io", Password: "nope"}),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "invalid credentials"}),
		},
		{
			name: "unknown email", method: http.MethodPost, path: "/v1/auth/login",
			body:     marchallObj(t, user.Credentials{Email: "ghost@test.io", Password: "secret1"}),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "invalid credentials"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusOK {
				var resp TokenResponse
				decodeBody(t, rec, &resp)
				if resp.Token == "" {
					t.Error("login returned empty token")
				}
				if resp.User.ID != usr.ID {
					t.Errorf("login user = %+v; want %v", resp.User, usr.ID)
				}
			}
		})
	}
}

func Test_authApi_me(t *testing.T) {
	db.Reset()
	usr := testutil.CreateUser(t, usrRepo, "Alice", "alice@test.io", "secret1", "")

	t.Run("auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/auth/me")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		}, rec)
	})

	t.Run("ok", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/auth/me", getToken(t, usr))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, map[string]interface{}{"user": map[string]string{
				"id":    usr.ID,
				"name":  usr.Name,
				"email": usr.Email,
				"role":  usr.Role,
			}}),
		}, rec)
	})
}

func containsPasswordHash(body string) bool {
	return strings.Contains(body, "password_hash") || strings.Contains(body, "PasswordHash")
}
