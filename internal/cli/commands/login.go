package commands

import (
	"Diarium/internal/cli/api"
	"Diarium/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth token" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/api/login/"), credentials{Username: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		s, err := api.PersistSession(body, NewStore(cfg))
		if err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintf(Out, "Logged in as %s\n", s.Username)
		return nil
	case http.StatusBadRequest:
		if msg := api.ErrorMessage(body); msg != "Invalid credentials" {
			return errors.New(msg)
		}
		return errors.New("invalid login or password")
	}
	return fmt.Errorf("server error: %s", api.ErrorMessage(body))
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget stored auth token" }
func (logoutCmd) Usage() string       { return "logout" }

// Run удаляет токен только локально: на сервере токены бессрочные.
func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := NewStore(cfg).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
