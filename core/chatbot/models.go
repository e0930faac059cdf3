package chatbot

import (
	"time"

	"github.com/datapulse/backend/core"
)

// Query is a persisted question/answer pair.
type Query struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Query     string    `json:"query" db:"query"`
	Response  string    `json:"response" db:"response"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
}

// NewQuery is a chatbot request payload.
type NewQuery struct {
	Query       string `json:"query" validate:"required"`
	CourseTitle string `json:"course_title"`
}

func (nq *NewQuery) Validate() error {
	nq.Query = core.CleanString(nq.Query)
	return core.Validate.Struct(nq)
}
