// internal/app/loop.go
package app

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"go-owl-patrol/internal/config"
)

// Ticker — то, что двигает Loop: один виджет или весь реестр.
type Ticker interface {
	Tick(dt time.Duration)
}

// Loop — планировщик кадров для фронтендов без собственного цикла (терминал, безголовый хост).
// Каждый тик получает фиксированный dt, поэтому симуляция не зависит от дрожания таймера.
type Loop struct {
	target   Ticker
	interval time.Duration
	ticks    atomic.Uint64
	started  atomic.Bool
	onTick   func()
}

// NewLoop создаёт цикл. interval <= 0 означает config.TickInterval.
func NewLoop(target Ticker, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = config.TickInterval
	}
	return &Loop{target: target, interval: interval}
}

// OnTick вызывается после каждого тика (перерисовка терминала). Задаётся до Run.
func (l *Loop) OnTick(fn func()) {
	l.onTick = fn
}

// Ticks — число выполненных тиков.
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

// Run тикает до отмены контекста. Вызывается один раз.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return errors.New("loop: run called multiple times")
	}
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.DebugContext(ctx, "loop stopped", "ticks", l.ticks.Load(), "reason", ctx.Err())
			return nil
		case <-ticker.C:
			l.target.Tick(l.interval)
			l.ticks.Add(1)
			if l.onTick != nil {
				l.onTick()
			}
		}
	}
}
