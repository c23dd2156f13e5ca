package commands

import (
	"Diarium/internal/cli/api"
	"Diarium/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and store auth token" }
func (registerCmd) Usage() string       { return "register <username> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/api/register/"), credentials{Username: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusCreated:
		s, err := api.PersistSession(body, NewStore(cfg))
		if err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintf(Out, "Registered %s (id %d)\n", s.Username, s.UserID)
		return nil
	case http.StatusBadRequest:
		return errors.New(api.ErrorMessage(body))
	}
	return fmt.Errorf("server error: %s", api.ErrorMessage(body))
}

func init() { RegisterCmd(registerCmd{}) }
