package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/cocosforest/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewRootCmd(cli.OpenDatabase).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("forestctl failed")
		cancel()
		os.Exit(1)
	}
}
