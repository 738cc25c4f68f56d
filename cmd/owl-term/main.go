// cmd/owl-term/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go-owl-patrol/internal/app"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/defs"
	"go-owl-patrol/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to host config (YAML)")
	logPath := flag.String("log", "", "log file; the terminal is busy drawing")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the clock")
	flag.Parse()

	hostCfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		hostCfg.Seed = *seed
	}

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: hostCfg.Level()})))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := app.NewRegistry(defs.DefaultJokes())
	defer registry.Close()
	registry.RegisterContainer("term", term.ViewportFor(screen.Size()))
	widget, err := registry.Mount("term", hostCfg)
	if err != nil {
		return err
	}

	return term.NewFrontend(screen, widget, registry).Run(ctx)
}
