package commands

import (
	"Diarium/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// Exit codes of the diarium CLI.
const (
	ExitOK          = 0
	ExitFailed      = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// Dispatch runs one diarium subcommand and returns the process exit code.
// "diarium help [command]" and --help print usage.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			fmt.Fprint(Out, FormatGlobalUsage())
			return ExitOK
		}
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" {
		return help(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		unknown(name)
		return ExitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: diarium %s\n", c.Usage())
		return ExitUsage
	case errors.Is(err, ErrNotLoggedIn):
		fmt.Fprintln(Out, "Not logged in. Run: diarium login <username> <password>")
		return ExitFailed
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(Out, "interrupted")
		return ExitInterrupted
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return ExitFailed
	}
}

func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	}
	if c, ok := Get(strings.ToLower(args[0])); ok {
		fmt.Fprintf(Out, "Usage: diarium %s\n  %s\n", c.Usage(), c.Description())
		return ExitOK
	}
	unknown(args[0])
	return ExitUsage
}

// unknown печатает подсказку: команды с тем же префиксом ("diary" → diary-add, diary-rm...).
func unknown(name string) {
	fmt.Fprintf(Out, "Unknown command: %s\n", name)
	prefix, _, _ := strings.Cut(name, "-")
	var similar []string
	for _, c := range List() {
		if prefix != "" && strings.HasPrefix(c.Name(), prefix) {
			similar = append(similar, c.Name())
		}
	}
	if len(similar) > 0 {
		fmt.Fprintf(Out, "Did you mean: %s?\n", strings.Join(similar, ", "))
		return
	}
	fmt.Fprintln(Out)
	fmt.Fprint(Out, FormatGlobalUsage())
}
