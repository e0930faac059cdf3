package activity

import (
	"time"

	"github.com/datapulse/backend/core"
)

// Well-known action types. The tag set is open: any string is accepted at the
// boundary so new event kinds don't require a schema migration.
const (
	ActionLogin        = "login"
	ActionSignup       = "signup"
	ActionCourseEnroll = "course_enroll"
	ActionCourseView   = "course_view"
	ActionDownload     = "download"
	ActionChatbotQuery = "chatbot_query"
	ActionPageView     = "page_view"
)

// Activity is an immutable record of a single user action. Once appended it is
// never updated or deleted.
type Activity struct {
	ID         string       `json:"id" db:"id"`
	UserID     string       `json:"user_id" db:"user_id"`
	ActionType string       `json:"action_type" db:"action_type"`
	Details    core.JSONMap `json:"details" db:"details"`
	Metadata   core.JSONMap `json:"metadata" db:"metadata"`
	Timestamp  time.Time    `json:"timestamp" db:"timestamp"` // UTC
}

// NewActivity contains information needed to record a new Activity.
type NewActivity struct {
	ActionType string       `json:"action_type" validate:"required"`
	Details    core.JSONMap `json:"details"`
	Metadata   core.JSONMap `json:"metadata"`
	Timestamp  time.Time    `json:"timestamp"`
}

func (na *NewActivity) Validate() error {
	na.ActionType = core.CleanString(na.ActionType)
	return core.Validate.Struct(na)
}

type QueryFilter struct {
	UserID string `query:"user_id"`
	Limit  int    `query:"limit"`
}
