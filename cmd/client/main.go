package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/feelflow/internal/client/cli"
	"github.com/dmitrijs2005/feelflow/internal/client/config"
	"github.com/dmitrijs2005/feelflow/internal/flagx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	args := flagx.Positional(os.Args[1:], []string{"-c", "-config", "-u", "-t", "-r"})
	if err := app.Run(ctx, args); err != nil {
		stop()
		os.Exit(1)
	}
}
