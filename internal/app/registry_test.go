package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go-owl-patrol/internal/config"
	"go-owl-patrol/internal/types"
)

func TestRegistry_MountRequiresContainer(t *testing.T) {
	r := NewRegistry(nil)
	if _, err := r.Mount("owl-root", config.DefaultHost()); !errors.Is(err, ErrContainerNotFound) {
		t.Fatalf("err = %v, want ErrContainerNotFound", err)
	}
}

func TestRegistry_MountUnmount(t *testing.T) {
	r := NewRegistry(nil)
	r.RegisterContainer("owl-root", types.Viewport{Width: 800, Height: 600})

	w, err := r.Mount("owl-root", config.DefaultHost())
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if _, err := r.Mount("owl-root", config.DefaultHost()); !errors.Is(err, ErrAlreadyMounted) {
		t.Fatalf("second Mount: err = %v", err)
	}
	if got, ok := r.Get("owl-root"); !ok || got != w {
		t.Fatalf("Get returned %v, %v", got, ok)
	}

	r.RegisterContainer("owl-root", types.Viewport{Width: 400, Height: 300})
	if vp := w.Viewport(); vp.Width != 400 {
		t.Fatalf("container resize not forwarded: %v", vp)
	}

	if err := r.Unmount("owl-root"); err != nil {
		t.Fatalf("Unmount: %v", err)
	}
	if !w.Closed() {
		t.Fatalf("widget not closed on unmount")
	}
	if err := r.Unmount("owl-root"); !errors.Is(err, ErrNotMounted) {
		t.Fatalf("second Unmount: err = %v", err)
	}
}

func TestRegistry_TicksAllWidgets(t *testing.T) {
	r := NewRegistry(nil)
	r.RegisterContainer("a", types.Viewport{Width: 800, Height: 600})
	r.RegisterContainer("b", types.Viewport{Width: 800, Height: 600})
	a, _ := r.Mount("a", config.DefaultHost())
	b, _ := r.Mount("b", config.DefaultHost())
	defer r.Close()

	r.Tick(frame)
	if a.Store.Now != frame || b.Store.Now != frame {
		t.Fatalf("clocks = %v, %v", a.Store.Now, b.Store.Now)
	}
}

type countingTicker struct{ n atomic.Int64 }

func (c *countingTicker) Tick(time.Duration) { c.n.Add(1) }

func TestLoop_RunsUntilCancelled(t *testing.T) {
	target := &countingTicker{}
	loop := NewLoop(target, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if target.n.Load() == 0 || loop.Ticks() != uint64(target.n.Load()) {
		t.Fatalf("ticks = %d, loop counted %d", target.n.Load(), loop.Ticks())
	}
	if err := loop.Run(context.Background()); err == nil {
		t.Fatalf("second Run accepted")
	}
}
