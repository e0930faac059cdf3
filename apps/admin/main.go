package main

import (
	"log"
	"os"

	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/chatbot"
	"github.com/datapulse/backend/core/course"
	"github.com/datapulse/backend/core/user"
	"github.com/datapulse/backend/storage/database"
	sqlxrepos "github.com/datapulse/backend/storage/database/sqlx"
)

func main() {
	db, err := database.Open(core.Conf)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer func() { _ = db.Close() }()

	activitySvc := activity.NewService(sqlxrepos.NewActivityRepository(db))
	cli := &commandLine{
		db:          db,
		usrSvc:      user.NewService(sqlxrepos.NewUserRepository(db), nil),
		courseSvc:   course.NewService(sqlxrepos.NewCourseRepository(db), nil),
		activitySvc: activitySvc,
		chatbotSvc:  chatbot.NewService(sqlxrepos.NewChatbotRepository(db), activitySvc),
	}
	if err := cli.run(os.Args); err != nil {
		if err == errHelp {
			os.Exit(2)
		}
		log.Fatalf("%+v", err)
	}
}
