package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/jamesEmerson112/Valentine-2026/engine/logger"
	"github.com/jamesEmerson112/Valentine-2026/greeting"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	flag.Parse()

	logger.Init()
	if port := os.Getenv("PORT"); port != "" {
		*addr = ":" + port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := greeting.New(*addr, nil).Run(ctx); err != nil {
		logger.Log.WithError(err).Fatal("greeting service failed")
	}
}
