package tests

import (
	"os"
	"testing"

	. "github.com/datapulse/backend/apps/api/echo"
	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/analytics"
	"github.com/datapulse/backend/core/chatbot"
	"github.com/datapulse/backend/core/course"
	"github.com/datapulse/backend/core/user"
	"github.com/datapulse/backend/services/email"
	"github.com/datapulse/backend/storage/database/inmem"
)

var (
	db  *inmemdb.DB
	app Server

	usrRepo     user.Repository
	courseRepo  course.Repository
	actRepo     activity.Repository
	chatbotRepo chatbot.Repository

	usrSvc      *user.Service
	courseSvc   *course.Service
	activitySvc *activity.Service
	chatbotSvc  *chatbot.Service

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errPermDenied   = httpErr{Error: "permission denied"}
)

func TestMain(m *testing.M) {
	core.Conf.Debug = false
	core.Conf.TestMode = true

	// set up DB & repos
	db = inmemdb.NewDB()
	usrRepo = inmemdb.NewUserRepository(db)
	courseRepo = inmemdb.NewCourseRepository(db)
	actRepo = inmemdb.NewActivityRepository(db)
	chatbotRepo = inmemdb.NewChatbotRepository(db)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock()
	usrSvc = user.NewService(usrRepo, mailSvc)
	courseSvc = course.NewService(courseRepo, nil)
	activitySvc = activity.NewService(actRepo)
	chatbotSvc = chatbot.NewService(chatbotRepo, activitySvc)
	analyticsSvc := analytics.NewService(inmemdb.NewAnalyticsRepository(db))

	// set up server
	app = NewServer(
		&Options{
			DisableReqLogs: true,
			UserSvc:        usrSvc,
			CourseSvc:      courseSvc,
			ActivitySvc:    activitySvc,
			ChatbotSvc:     chatbotSvc,
			AnalyticsSvc:   analyticsSvc,
		},
	)

	os.Exit(m.Run())
}
