package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/datapulse/backend/core"
	"github.com/datapulse/backend/core/activity"
	"github.com/datapulse/backend/core/chatbot"
	"github.com/datapulse/backend/core/course"
	"github.com/datapulse/backend/core/user"
	"github.com/datapulse/backend/storage/database"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db          *sqlx.DB
	usrSvc      *user.Service
	courseSvc   *course.Service
	activitySvc *activity.Service
	chatbotSvc  *chatbot.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  createdb - create the database and app user if they do not exist")
	fmt.Println("  migrate - run database migrations")
	fmt.Println("  seed    - load demo data")
	fmt.Println("  adduser -email EMAIL -name NAME [-admin] - create a user; the password will be prompted")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserEmail := addUserCmd.String("email", "", "The user's email.")
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserAdmin := addUserCmd.Bool("admin", false, "Grant the admin role.")

	switch args[1] {
	case "createdb":
		return database.CreateIfNotExist(core.Conf)
	case "migrate":
		return database.Migrate(cli.db.DB)
	case "seed":
		return cli.seed()
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserEmail == "" || *addUserName == "" {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserEmail, *addUserName, *addUserAdmin)
	default:
		cli.printUsage()
		return errHelp
	}
}
