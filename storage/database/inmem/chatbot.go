package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/datapulse/backend/core/chatbot"
)

type chatbotRepository struct {
	db *DB
}

var _ chatbot.Repository = (*chatbotRepository)(nil)

func NewChatbotRepository(db *DB) *chatbotRepository {
	return &chatbotRepository{db: db}
}

func (repo *chatbotRepository) CreateQuery(ctx context.Context, q chatbot.Query) (chatbot.Query, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	q.ID = uuid.New().String()
	repo.db.queries = append(repo.db.queries, &q)
	return q, nil
}

func (repo *chatbotRepository) QueryAllQueries(ctx context.Context) ([]chatbot.Query, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	queries := make([]chatbot.Query, 0, len(repo.db.queries))
	for _, q := range repo.db.queries {
		queries = append(queries, *q)
	}
	sort.SliceStable(queries, func(i, j int) bool {
		return queries[i].CreatedAt.After(queries[j].CreatedAt)
	})
	return queries, nil
}
