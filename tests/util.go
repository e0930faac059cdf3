package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/course"
	"github.com/datapulse/backend/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, email, pwd, role string,
	createdAt ...time.Time,
) user.User {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	if role == "" {
		role = user.RoleUser
	}
	usr := user.User{
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(
	t *testing.T,
	repo course.Repository,
	title, level string,
	enrollmentsCount int,
) course.Course {
	t.Helper()

	crs, err := repo.CreateCourse(context.Background(), course.Course{
		Title:            title,
		Description:      title + " description",
		Duration:         "8 weeks",
		Level:            level,
		EnrollmentsCount: enrollmentsCount,
		CreatedAt:        time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return crs
}

func CreateActivity(
	t *testing.T,
	repo activity.Repository,
	userID, actionType string,
	timestamp ...time.Time,
) activity.Activity {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(timestamp) > 0 {
		tstamp = timestamp[0].UTC()
	}
	act, err := repo.CreateActivity(context.Background(), activity.Activity{
		UserID:     userID,
		ActionType: actionType,
		Details:    core.JSONMap{},
		Metadata:   core.JSONMap{},
		Timestamp:  tstamp,
	})
	if err != nil {
		t.Fatalf("CreateActivity() failed: %v", err)
	}
	return act
}
