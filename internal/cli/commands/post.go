package commands

import (
	"Diarium/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"
)

type postView struct {
	ID      int64  `json:"id"`
	User    int64  `json:"user"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type postsCmd struct{}

func (postsCmd) Name() string        { return "posts" }
func (postsCmd) Description() string { return "List all posts, newest first" }
func (postsCmd) Usage() string       { return "posts" }

func (postsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	var list []postView
	if err := call(ctx, cfg, http.MethodGet, "/posts/", nil, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет постов")
		return nil
	}
	for _, p := range list {
		fmt.Fprintf(Out, "- #%d  [user %d]  %s\n", p.ID, p.User, p.Title)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

type postAddCmd struct{}

func (postAddCmd) Name() string        { return "post-add" }
func (postAddCmd) Description() string { return "Publish a post" }
func (postAddCmd) Usage() string       { return "post-add <title> <content...>" }

func (postAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	payload := map[string]string{"title": args[0], "content": strings.Join(args[1:], " ")}
	var p postView
	if err := call(ctx, cfg, http.MethodPost, "/posts/create/", payload, &p); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created post #%d: %s\n", p.ID, p.Title)
	return nil
}

type postRmCmd struct{}

func (postRmCmd) Name() string        { return "post-rm" }
func (postRmCmd) Description() string { return "Delete own post" }
func (postRmCmd) Usage() string       { return "post-rm <id>" }

func (postRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := call(ctx, cfg, http.MethodDelete, fmt.Sprintf("/posts/delete/%d/", id), nil, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted post #%d\n", id)
	return nil
}

func init() {
	RegisterCmd(postsCmd{})
	RegisterCmd(postAddCmd{})
	RegisterCmd(postRmCmd{})
}
