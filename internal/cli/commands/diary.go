package commands

import (
	"Diarium/internal/config"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type diaryView struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	WriteDate string `json:"write_date"`
	UpdatedAt string `json:"updated_at"`
}

func printDiary(d diaryView) {
	fmt.Fprintf(Out, "- #%d  %s  %s\n", d.ID, d.WriteDate, d.Content)
}

type diaryAddCmd struct{}

func (diaryAddCmd) Name() string        { return "diary-add" }
func (diaryAddCmd) Description() string { return "Add a diary entry (date YYYY-MM-DD or RFC 3339)" }
func (diaryAddCmd) Usage() string       { return "diary-add <write_date> <content...>" }

func (diaryAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	payload := map[string]string{"write_date": args[0], "content": strings.Join(args[1:], " ")}
	var d diaryView
	if err := call(ctx, cfg, http.MethodPost, "/api/diaries/create/", payload, &d); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	printDiary(d)
	return nil
}

type diariesCmd struct{}

func (diariesCmd) Name() string        { return "diaries" }
func (diariesCmd) Description() string { return "List own diary entries, optionally for one day" }
func (diariesCmd) Usage() string       { return "diaries [YYYY-MM-DD]" }

func (diariesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	path := "/api/diaries/list/"
	if len(args) == 1 {
		path += "?" + url.Values{"date": {args[0]}}.Encode()
	}
	var list []diaryView
	if err := call(ctx, cfg, http.MethodGet, path, nil, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, d := range list {
		printDiary(d)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

type diaryEditCmd struct{}

func (diaryEditCmd) Name() string        { return "diary-edit" }
func (diaryEditCmd) Description() string { return "Replace the content of own diary entry" }
func (diaryEditCmd) Usage() string       { return "diary-edit <id> <content...>" }

func (diaryEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	var d diaryView
	payload := map[string]string{"content": strings.Join(args[1:], " ")}
	if err := call(ctx, cfg, http.MethodPatch, fmt.Sprintf("/api/diaries/%d/update/", id), payload, &d); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated:")
	printDiary(d)
	return nil
}

type diaryRmCmd struct{}

func (diaryRmCmd) Name() string        { return "diary-rm" }
func (diaryRmCmd) Description() string { return "Delete own diary entry" }
func (diaryRmCmd) Usage() string       { return "diary-rm <id>" }

func (diaryRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := call(ctx, cfg, http.MethodDelete, fmt.Sprintf("/api/diaries/%d/delete/", id), nil, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted #%d\n", id)
	return nil
}

func init() {
	RegisterCmd(diaryAddCmd{})
	RegisterCmd(diariesCmd{})
	RegisterCmd(diaryEditCmd{})
	RegisterCmd(diaryRmCmd{})
}
