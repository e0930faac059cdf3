package sqlxrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/datapulse/backend/core/chatbot"
)

type chatbotRepository struct {
	db *sqlx.DB
}

var _ chatbot.Repository = (*chatbotRepository)(nil) // interface compliance check

func NewChatbotRepository(db *sqlx.DB) *chatbotRepository {
	return &chatbotRepository{db: db}
}

func (repo chatbotRepository) CreateQuery(ctx context.Context, q chatbot.Query) (chatbot.Query, error) {
	q.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO chatbot_queries (id, user_id, query, response, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		q.ID, q.UserID, q.Query, q.Response, q.CreatedAt,
	)
	if err != nil {
		return chatbot.Query{}, errors.Wrap(err, "inserting chatbot query")
	}
	return q, nil
}

func (repo chatbotRepository) QueryAllQueries(ctx context.Context) ([]chatbot.Query, error) {
	queries := make([]chatbot.Query, 0)
	err := repo.db.SelectContext(ctx, &queries,
		"SELECT * FROM chatbot_queries ORDER BY created_at DESC")
	if err != nil {
		return nil, errors.Wrap(err, "querying chatbot queries")
	}
	return queries, nil
}
