package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vfg2006/meta-ads-cli/internal/cli"
)

func main() {
	// Ctrl+C cancela as chamadas em andamento
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	cancel()
	os.Exit(code)
}
