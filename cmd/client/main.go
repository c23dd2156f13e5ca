package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"Diarium/internal/cli/commands"
	"Diarium/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// diarium — консольный клиент дневника: команды ходят в HTTP API сервера,
// токен хранится в файле (TOKEN_FILE или -token-file).
func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion(cfg)
		return
	}

	// Ctrl+C отменяет текущий запрос к серверу
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	os.Exit(code)
}

func printVersion(cfg *config.Config) {
	fmt.Printf("diarium %s (built %s)\nserver: %s\ntoken file: %s\n", version, buildDate, cfg.ServerURL, cfg.TokenFile)
}
