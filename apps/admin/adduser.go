package main

import (
	"context"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/datapulse/backend/core/user"
)

var readPasswordFunc = term.ReadPassword // mockable

func (cli *commandLine) addUser(email, name string, admin bool) error {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}
	if len(pwd) == 0 {
		return errHelp
	}

	role := user.RoleUser
	if admin {
		role = user.RoleAdmin
	}
	nu := user.NewUser{
		Name:     name,
		Email:    email,
		Password: string(pwd),
		Role:     role,
	}
	if err := nu.Validate(); err != nil {
		return err
	}

	usr, err := cli.usrSvc.Create(context.Background(), nu)
	if err != nil {
		return err
	}
	fmt.Printf("user %s (%s) created\n", usr.Email, usr.Role)
	return nil
}
