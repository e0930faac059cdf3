package main

import (
	"context"
	"testing"

	"github.com/datapulse/backend/core/user"
	"github.com/datapulse/backend/storage/database/inmem"
)

type cliTest struct {
	name    string
	args    []string // without program name
	pwd     string
	wantErr error
}

func Test_commandLine_addUser(t *testing.T) {
	db := inmemdb.NewDB()
	usrRepo := inmemdb.NewUserRepository(db)
	cli := &commandLine{
		usrSvc: user.NewService(usrRepo, nil),
	}

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "missing flags", args: []string{"adduser"}, wantErr: errHelp},
		{name: "email but no name", args: []string{"adduser", "-email", "a@test.io"}, wantErr: errHelp},
		{name: "empty password", args: []string{"adduser", "-email", "a@test.io", "-name", "A"}, wantErr: errHelp},
		{name: "ok", args: []string{"adduser", "-email", "a@test.io", "-name", "A"}, pwd: "secret1"},
		{name: "admin", args: []string{"adduser", "-email", "root@test.io", "-name", "Root", "-admin"}, pwd: "secret1"},
		{name: "duplicate email", args: []string{"adduser", "-email", "a@test.io", "-name", "A2"}, pwd: "secret1", wantErr: user.ErrEmailExists},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.pwd), nil
		}

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	// roles stuck
	usr, err := usrRepo.GetUserByEmail(context.Background(), "root@test.io")
	if err != nil {
		t.Fatalf("GetUserByEmail() failed: %v", err)
	}
	if !usr.IsAdmin() {
		t.Errorf("Role = %q; want %q", usr.Role, user.RoleAdmin)
	}
}
