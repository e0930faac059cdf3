// Package inmemdb provides in-memory repository implementations used in tests
// and local development.
package inmemdb

import (
	"sync"

	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/chatbot"
	"github.com/datapulse/backend/core/course"
	"github.com/datapulse/backend/core/user"
)

type DB struct {
	mutex sync.RWMutex

	users       map[string]*user.User
	courses     map[string]*course.Course
	enrollments map[string]*course.Enrollment

	// append-only; arrival order breaks timestamp ties
	activities []*activity.Activity
	queries    []*chatbot.Query
}

func NewDB() *DB {
	return &DB{
		users:       make(map[string]*user.User),
		courses:     make(map[string]*course.Course),
		enrollments: make(map[string]*course.Enrollment),
	}
}

// Reset drops all stored data. Repositories bound to this DB stay valid.
func (db *DB) Reset() {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	db.users = make(map[string]*user.User)
	db.courses = make(map[string]*course.Course)
	db.enrollments = make(map[string]*course.Enrollment)
	db.activities = nil
	db.queries = nil
}
