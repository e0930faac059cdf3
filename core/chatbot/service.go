package chatbot

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
)

type (
	Repository interface {
		CreateQuery(ctx context.Context, q Query) (Query, error)
		// QueryAllQueries returns all persisted queries, newest first.
		QueryAllQueries(ctx context.Context) ([]Query, error)
	}

	Service struct {
		repo        Repository
		activitySvc *activity.Service
	}
)

func NewService(repo Repository, activitySvc *activity.Service) *Service {
	return &Service{repo: repo, activitySvc: activitySvc}
}

// Ask answers a question with the first matching canned response and persists
// the exchange. Every call, matched or not, is logged as a chatbot_query
// activity event.
func (svc *Service) Ask(ctx context.Context, userID string, nq NewQuery) (Query, error) {
	q, err := svc.repo.CreateQuery(ctx, Query{
		UserID:    userID,
		Query:     nq.Query,
		Response:  respond(nq.Query, nq.CourseTitle),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Query{}, errors.Wrap(err, "persisting chatbot query")
	}

	_, err = svc.activitySvc.Record(ctx, userID, activity.NewActivity{
		ActionType: activity.ActionChatbotQuery,
		Details: core.JSONMap{
			"query":       nq.Query,
			"description": fmt.Sprintf("Asked: %s...", core.TruncateString(nq.Query, 50)),
		},
		Metadata: core.JSONMap{"source": "web"},
	})
	if err != nil {
		return Query{}, errors.Wrap(err, "recording chatbot activity")
	}
	return q, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Query, error) {
	return svc.repo.QueryAllQueries(ctx)
}
