// internal/term/frontend.go
package term

import (
	"context"
	"log/slog"

	"go-owl-patrol/internal/app"
	"go-owl-patrol/internal/component"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// Frontend — терминальный фронтенд одного виджета: цикл кадров, ввод и перерисовка.
type Frontend struct {
	screen tcell.Screen
	widget *app.Widget
	loop   *app.Loop
	held   tcell.ButtonMask
}

// NewFrontend связывает экран с виджетом. Экран должен быть уже инициализирован.
func NewFrontend(screen tcell.Screen, widget *app.Widget, ticker app.Ticker) *Frontend {
	f := &Frontend{screen: screen, widget: widget, loop: app.NewLoop(ticker, 0)}
	f.loop.OnTick(f.redraw)
	screen.EnableMouse()
	widget.Resize(ViewportFor(screen.Size()))
	return f
}

func (f *Frontend) redraw() {
	Draw(f.screen, f.widget.Snapshot())
}

// Run крутит цикл и читает события, пока пользователь не выйдет или ctx не отменят.
func (f *Frontend) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return f.loop.Run(ctx) })
	// PollEvent блокирует до события; после screen.Fini возвращает nil.
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					cancel()
					return nil
				}
				if f.HandleEvent(ev) {
					slog.DebugContext(ctx, "terminal quit requested")
					cancel()
					return nil
				}
			}
		}
	})
	return g.Wait()
}

// HandleEvent применяет событие терминала. Возвращает true, если пользователь выходит.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.widget.Resize(ViewportFor(ev.Size()))
		f.screen.Sync()
	case *tcell.EventMouse:
		// Терминал шлёт события и при удержании кнопки; реагируем только на нажатие.
		col, row := ev.Position()
		pressed := ev.Buttons() &^ f.held
		f.held = ev.Buttons()
		switch {
		case pressed&tcell.Button1 != 0:
			f.widget.PointerClick(FromCell(col, row))
		case pressed&tcell.Button2 != 0:
			f.widget.PointerSecondary(FromCell(col, row))
		}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		return f.handleRune(ev.Rune())
	}
	return false
}

func (f *Frontend) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case 's':
		f.widget.Spawn()
	case 'c':
		f.widget.ClearAll()
	case 'a':
		f.widget.SetAutoSpawn(!f.widget.Host().AutoSpawn)
	case 'r':
		f.widget.SetReturnToStart(!f.widget.Host().ReturnToStart)
	case 'j':
		f.widget.ClickOwl()
	case 'b':
		f.widget.SecondaryClick()
	case '1', '2', '3':
		stat := component.AllStats[r-'1']
		if err := f.widget.ChooseStat(stat); err != nil {
			slog.Debug("stat choice rejected", "stat", stat, "err", err)
		}
	}
	return false
}
