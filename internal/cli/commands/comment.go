package commands

import (
	"Diarium/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"
)

type commentView struct {
	ID      int64  `json:"id"`
	Post    int64  `json:"post"`
	User    int64  `json:"user"`
	Content string `json:"content"`
}

type commentsCmd struct{}

func (commentsCmd) Name() string        { return "comments" }
func (commentsCmd) Description() string { return "List comments of a post" }
func (commentsCmd) Usage() string       { return "comments <post_id>" }

func (commentsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	postID, err := parseID(args[0])
	if err != nil {
		return err
	}
	var list []commentView
	if err := call(ctx, cfg, http.MethodGet, fmt.Sprintf("/posts/%d/comments/", postID), nil, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет комментариев")
		return nil
	}
	for _, c := range list {
		fmt.Fprintf(Out, "- #%d  [user %d]  %s\n", c.ID, c.User, c.Content)
	}
	return nil
}

type commentAddCmd struct{}

func (commentAddCmd) Name() string        { return "comment-add" }
func (commentAddCmd) Description() string { return "Comment on a post" }
func (commentAddCmd) Usage() string       { return "comment-add <post_id> <content...>" }

func (commentAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	postID, err := parseID(args[0])
	if err != nil {
		return err
	}
	payload := map[string]any{"post": postID, "content": strings.Join(args[1:], " ")}
	var c commentView
	if err := call(ctx, cfg, http.MethodPost, "/comments/create/", payload, &c); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created comment #%d on post #%d\n", c.ID, c.Post)
	return nil
}

func init() {
	RegisterCmd(commentsCmd{})
	RegisterCmd(commentAddCmd{})
}
