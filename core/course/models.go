package course

import (
	"time"

	"github.com/datapulse/backend/core"
)

type Course struct {
	ID               string    `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Description      string    `json:"description" db:"description"`
	Duration         string    `json:"duration" db:"duration"`
	Level            string    `json:"level" db:"level"`
	EnrollmentsCount int       `json:"enrollments_count" db:"enrollments_count"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"` // UTC
}

type Enrollment struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	CourseID  string    `json:"course_id" db:"course_id"`
	Progress  int       `json:"progress" db:"progress"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC

	// CourseTitle is populated on reads that join the course.
	CourseTitle string `json:"course_title,omitempty" db:"course_title"`
}

// NewEnrollment is an enrollment request payload.
type NewEnrollment struct {
	CourseID string `json:"course_id" validate:"required"`
}

func (ne *NewEnrollment) Validate() error {
	ne.CourseID = core.CleanString(ne.CourseID)
	return core.Validate.Struct(ne)
}
