package tests

import (
	"net/http"
	"testing"

	"github.com/datapulse/backend/core/chatbot"
	"github.com/datapulse/backend/core/user"
	"github.com/datapulse/backend/tests"
)

func Test_chatbotApi_ask(t *testing.T) {
	db.Reset()
	usr := testutil.CreateUser(t, usrRepo, "Alice", "alice@test.io", "secret1", "")
	token := getToken(t, usr)

	t.Run("auth required", func(t *testing.T) {
		body := marchallObj(t, chatbot.NewQuery{Query: "hello"})
		req, rec := newRequest(http.MethodPost, "/v1/chatbot", body)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		}, rec)
	})

	t.Run("ok", func(t *testing.T) {
		body := marchallObj(t, chatbot.NewQuery{Query: "Do I get a certificate?"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/chatbot", token, body)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d; want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var resp struct {
			Response string `json:"response"`
			QueryID  string `json:"query_id"`
		}
		decodeBody(t, rec, &resp)
		if resp.QueryID == "" {
			t.Error("ask returned empty query_id")
		}
		if resp.Response == "" {
			t.Error("ask returned empty response")
		}
	})

	t.Run("missing query", func(t *testing.T) {
		body := marchallObj(t, chatbot.NewQuery{})
		req, rec := newAuthRequest(http.MethodPost, "/v1/chatbot", token, body)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %d; want %d; body = %s", rec.Code, http.StatusBadRequest, rec.Body.String())
		}
	})
}

func Test_chatbotApi_queries(t *testing.T) {
	db.Reset()
	usr := testutil.CreateUser(t, usrRepo, "Alice", "alice@test.io", "secret1", "")
	admin := testutil.CreateUser(t, usrRepo, "Root", "root@test.io", "secret1", user.RoleAdmin)

	body := marchallObj(t, chatbot.NewQuery{Query: "how long is the course?"})
	req, rec := newAuthRequest(http.MethodPost, "/v1/chatbot", getToken(t, usr), body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("ask failed: %s", rec.Body.String())
	}

	t.Run("admin required", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/chatbot/queries", getToken(t, usr))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, errPermDenied),
		}, rec)
	})

	t.Run("ok", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/chatbot/queries", getToken(t, admin))
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d; body = %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			Queries []chatbot.Query `json:"queries"`
		}
		decodeBody(t, rec, &resp)
		if len(resp.Queries) != 1 {
			t.Fatalf("len(queries) = %d; want 1", len(resp.Queries))
		}
		if resp.Queries[0].UserID != usr.ID {
			t.Errorf("query = %+v", resp.Queries[0])
		}
	})
}
