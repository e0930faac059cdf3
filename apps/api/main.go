package main

import (
	"log"
	"os"

	echoapi "github.com/datapulse/backend/apps/api/echo"
	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/analytics"
	"github.com/datapulse/backend/core/chatbot"
	"github.com/datapulse/backend/core/course"
	"github.com/datapulse/backend/core/user"
	emailsvc "github.com/datapulse/backend/services/email"
	logsvc "github.com/datapulse/backend/services/logger"
	"github.com/datapulse/backend/storage/database"
	sqlxrepos "github.com/datapulse/backend/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile)

	logger := logsvc.NewRollbarLogger(std, core.Conf)
	logger.Enable(!core.Conf.Debug)

	// set up DB
	db, err := database.Open(core.Conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}
	defer func() { _ = db.Close() }()

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}
	usrSvc := user.NewService(sqlxrepos.NewUserRepository(db), mailSvc)
	activitySvc := activity.NewService(sqlxrepos.NewActivityRepository(db))
	courseSvc := course.NewService(sqlxrepos.NewCourseRepository(db), logger)
	chatbotSvc := chatbot.NewService(sqlxrepos.NewChatbotRepository(db), activitySvc)
	analyticsSvc := analytics.NewService(sqlxrepos.NewAnalyticsRepository(db))

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:         ":" + core.Conf.Server.Port,
			Logger:       logger,
			UserSvc:      usrSvc,
			CourseSvc:    courseSvc,
			ActivitySvc:  activitySvc,
			ChatbotSvc:   chatbotSvc,
			AnalyticsSvc: analyticsSvc,
		},
	)
	app.Start()
}
