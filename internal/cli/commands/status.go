package commands

import (
	"Diarium/internal/config"
	"context"
	"fmt"
	"net/http"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check stored token against the server" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []diaryView
	if err := call(ctx, cfg, http.MethodGet, "/api/diaries/list/", nil, &list); err != nil {
		return err
	}
	login, err := NewStore(cfg).LoadLogin()
	if err != nil {
		login = "<unknown>"
	}
	fmt.Fprintf(Out, "Status: authorized as %s, diary entries: %d\n", login, len(list))
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
