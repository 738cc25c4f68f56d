// cmd/widget/main.go
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-owl-patrol/internal/app"
	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/defs"
	"go-owl-patrol/internal/host"
	"go-owl-patrol/internal/sound"
	"go-owl-patrol/internal/state"
	"go-owl-patrol/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	ctx            context.Context
}

func (a *AppGame) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to host config (YAML)")
	container := flag.String("container", "page", "mount container id")
	bridge := flag.String("bridge", "", "websocket bridge address, overrides bridge_addr")
	jokesPath := flag.String("jokes", "", "path to a JSON joke bank")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the clock")
	flag.Parse()

	hostCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		hostCfg.Seed = *seed
	}
	if *bridge != "" {
		hostCfg.BridgeAddr = *bridge
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: hostCfg.Level()})))

	jokes := defs.DefaultJokes()
	if *jokesPath != "" {
		if jokes, err = defs.LoadJokes(*jokesPath); err != nil {
			log.Fatal(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := app.NewRegistry(jokes)
	defer registry.Close()
	registry.RegisterContainer(*container, types.Viewport{Width: config.ScreenWidth, Height: config.ScreenHeight})
	widget, err := registry.Mount(*container, hostCfg)
	if err != nil {
		log.Fatal(err)
	}

	player := sound.NewPlayer()
	if err := player.Initialize(); err != nil {
		// Без звука виджет работает так же.
		slog.Warn("audio disabled", "err", err)
	}
	defer player.Close()
	player.Subscribe(widget.EventDispatcher)

	if hostCfg.BridgeAddr != "" {
		go func() {
			if err := host.Serve(ctx, hostCfg.BridgeAddr, host.NewBridge(registry, 0, hostCfg.Origins())); err != nil {
				slog.ErrorContext(ctx, "bridge failed", "err", err)
			}
		}()
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewWidgetState(sm, registry, widget, basicfont.Face7x13, func() {
		if err := registry.Unmount(*container); err != nil {
			slog.Warn("unmount failed", "err", err)
		}
	}))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		ctx:            ctx,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Owl Patrol")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
