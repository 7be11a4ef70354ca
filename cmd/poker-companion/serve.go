package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/poker-companion/internal/config"
	"github.com/lox/poker-companion/internal/server"
)

// ServeCmd runs the websocket analysis server.
type ServeCmd struct {
	Addr string `help:"Listen address, overrides the config file" placeholder:":8417"`
}

func (c *ServeCmd) Run(globals *Globals) error {
	logger := setupLogger(globals.Debug)

	cfg, err := config.Load(globals.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	addr := cfg.Server.Addr
	if c.Addr != "" {
		addr = c.Addr
	}
	srv := server.NewServer(addr, logger, server.WithIdleTimeout(cfg.IdleTimeoutDuration()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()
	logger.Info("Server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
