package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/locvowork/companyset/internal/bootstrap"
	"github.com/locvowork/companyset/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application", err)
		panic(err)
	}

	logger.InfoLog(ctx, "Company API listening with capacity %d", app.Company.Stats(ctx).Capacity)
	if err := app.Serve(ctx); err != nil {
		logger.ErrorLog(ctx, "Server stopped", err)
		panic(err)
	}
}
