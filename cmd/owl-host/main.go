// cmd/owl-host/main.go
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go-owl-patrol/internal/app"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/defs"
	"go-owl-patrol/internal/host"

	"golang.org/x/sync/errgroup"
)

// Безголовый хост: виджеты монтируются и управляются только через мост.
func main() {
	configPath := flag.String("config", "", "path to host config (YAML); bridge_addr and log_level are used")
	addr := flag.String("addr", "", "listen address, overrides bridge_addr")
	flag.Parse()

	hostCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		hostCfg.BridgeAddr = *addr
	}
	if hostCfg.BridgeAddr == "" {
		hostCfg.BridgeAddr = "localhost:7070"
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: hostCfg.Level()})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := app.NewRegistry(defs.DefaultJokes())
	defer registry.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.NewLoop(registry, 0).Run(ctx) })
	g.Go(func() error { return host.Serve(ctx, hostCfg.BridgeAddr, host.NewBridge(registry, 0, hostCfg.Origins())) })
	if err := g.Wait(); err != nil {
		slog.Error("host stopped", "err", err)
		os.Exit(1)
	}
}
