package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/chatbot"
	"github.com/datapulse/backend/core/course"
	"github.com/datapulse/backend/core/user"
	sqlxrepos "github.com/datapulse/backend/storage/database/sqlx"
)

const seedPassword = "password123"

// seed loads the demo fixture: an admin, two users, five courses, a few
// enrollments plus a spread of activities and chatbot queries. Running it a
// second time is a no-op.
func (cli *commandLine) seed() error {
	ctx := context.Background()

	if _, err := cli.usrSvc.GetByEmail(ctx, "admin@datapulse.com"); err == nil {
		fmt.Println("seed data already exists")
		return nil
	} else if errors.Cause(err) != user.ErrNotFound {
		return err
	}

	if _, err := cli.usrSvc.Create(ctx, user.NewUser{
		Name: "Admin User", Email: "admin@datapulse.com", Password: seedPassword, Role: user.RoleAdmin,
	}); err != nil {
		return err
	}
	sarah, err := cli.usrSvc.Create(ctx, user.NewUser{
		Name: "Sarah Johnson", Email: "sarah@example.com", Password: seedPassword,
	})
	if err != nil {
		return err
	}
	john, err := cli.usrSvc.Create(ctx, user.NewUser{
		Name: "John Smith", Email: "john@example.com", Password: seedPassword,
	})
	if err != nil {
		return err
	}

	courses := []course.Course{
		{
			Title:            "Python for Beginners",
			Description:      "Master Python programming from scratch with hands-on projects and real-world examples.",
			Duration:         "8 weeks",
			Level:            "Beginner",
			EnrollmentsCount: 245,
		},
		{
			Title:            "Web Development Bootcamp",
			Description:      "Full-stack web development with HTML, CSS, JavaScript, React, and Node.js.",
			Duration:         "12 weeks",
			Level:            "Intermediate",
			EnrollmentsCount: 189,
		},
		{
			Title:            "Data Science Fundamentals",
			Description:      "Learn data analysis, visualization, and machine learning basics with Python.",
			Duration:         "10 weeks",
			Level:            "Beginner",
			EnrollmentsCount: 312,
		},
		{
			Title:            "Mobile App Development",
			Description:      "Build cross-platform mobile apps with React Native and deploy to App Store.",
			Duration:         "8 weeks",
			Level:            "Intermediate",
			EnrollmentsCount: 156,
		},
		{
			Title:            "UI/UX Design Mastery",
			Description:      "Design beautiful, user-friendly interfaces with modern design principles and Figma.",
			Duration:         "6 weeks",
			Level:            "Beginner",
			EnrollmentsCount: 198,
		},
	}
	created := make([]course.Course, 0, len(courses))
	for _, crs := range courses {
		crs, err := cli.courseSvc.Create(ctx, crs)
		if err != nil {
			return err
		}
		created = append(created, crs)
	}

	courseRepo := sqlxrepos.NewCourseRepository(cli.db)
	enrollments := []course.Enrollment{
		{UserID: sarah.ID, CourseID: created[0].ID, Progress: 65},
		{UserID: sarah.ID, CourseID: created[2].ID, Progress: 30},
		{UserID: john.ID, CourseID: created[1].ID, Progress: 80},
		{UserID: john.ID, CourseID: created[3].ID, Progress: 45},
	}
	for _, enr := range enrollments {
		enr.CreatedAt = time.Now().UTC()
		if _, err := courseRepo.CreateEnrollment(ctx, enr); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	actionTypes := []string{
		activity.ActionPageView,
		activity.ActionCourseEnroll,
		activity.ActionCourseView,
		activity.ActionDownload,
		activity.ActionChatbotQuery,
		activity.ActionLogin,
	}
	for i := 0; i < 40; i++ {
		uid := john.ID
		if i%3 == 0 {
			uid = sarah.ID
		}
		device := "mobile"
		if i%2 == 0 {
			device = "desktop"
		}
		actionType := actionTypes[i%len(actionTypes)]
		_, err := cli.activitySvc.Record(ctx, uid, activity.NewActivity{
			ActionType: actionType,
			Details:    core.JSONMap{"description": fmt.Sprintf("Sample %s activity", actionType)},
			Metadata:   core.JSONMap{"source": "web", "device": device},
			Timestamp:  now.Add(-time.Duration(i) * 40 * time.Minute),
		})
		if err != nil {
			return err
		}
	}

	chatbotRepo := sqlxrepos.NewChatbotRepository(cli.db)
	queries := []chatbot.Query{
		{
			UserID:   sarah.ID,
			Query:    "What are the prerequisites for Python for Beginners?",
			Response: "No prior experience is needed. This course starts from the very basics of Python programming.",
		},
		{
			UserID:   john.ID,
			Query:    "How long is the Web Development Bootcamp?",
			Response: "The Web Development Bootcamp is 12 weeks long, with approximately 8-10 hours of content per week.",
		},
		{
			UserID:   sarah.ID,
			Query:    "Will I get a certificate?",
			Response: "Yes! Upon completing all course modules and passing the final assessment, you will receive a verified certificate of completion.",
		},
		{
			UserID:   john.ID,
			Query:    "What technologies will I learn?",
			Response: "You will learn HTML5, CSS3, JavaScript ES6+, React, Node.js, Express, and MongoDB.",
		},
	}
	for _, q := range queries {
		q.CreatedAt = time.Now().UTC()
		if _, err := chatbotRepo.CreateQuery(ctx, q); err != nil {
			return err
		}
	}

	fmt.Println("seed data created")
	return nil
}
